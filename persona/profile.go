package persona

// Persona describes a companion's voice and identity. All fields are
// free-form strings/slices the prompt builder folds into a system prompt;
// the core never interprets their content.
type Persona struct {
	Name      string
	Tone      string
	Risk      string
	Humor     string
	Voice     string
	Backstory string
	Likes     []string
	Dislikes  []string
	Goals     []string
}

// Episode is one remembered event, the raw material the manager distills
// into Facts once Working memory is full.
type Episode struct {
	Title   string
	Summary string
	Tags    []string
	Tick    uint64
}

// Fact is a distilled, queryable piece of knowledge extracted from past
// Episodes.
type Fact struct {
	Key   string
	Value string
	Kind  string
}

// Skill tracks a companion's proficiency at something, surfaced to content
// systems outside this package's scope.
type Skill struct {
	Name  string
	Level uint8
	Notes string
}

// Profile is a companion's persistent persona state: identity plus
// accumulated Episodes, distilled Facts, and Skills.
type Profile struct {
	ID       string
	Persona  Persona
	Episodes []Episode
	Facts    []Fact
	Skills   []Skill
}

// NewProfile returns an empty profile for id with persona p.
func NewProfile(id string, p Persona) *Profile {
	return &Profile{ID: id, Persona: p}
}

// Distill turns every remembered Episode into a Fact, the same naive
// policy the source engine uses: one fact per episode, keyed by title.
func (p *Profile) Distill() {
	for _, e := range p.Episodes {
		p.Facts = append(p.Facts, Fact{Key: e.Title, Value: e.Summary, Kind: "episode"})
	}
}

// SystemPrompt renders the persona into a system-prompt string, optionally
// appending retrieved context.
func (p *Profile) SystemPrompt(context string) string {
	base := "You are " + p.Persona.Name + ". " + p.Persona.Backstory +
		" Speak in a " + p.Persona.Voice + " voice, with a " + p.Persona.Tone + " tone."
	if context == "" {
		return base
	}
	return base + "\n\nContext:\n" + context
}
