package persona

// DefaultWorkingMemoryCapacity is the source engine's documented Working
// memory capacity: a policy knob, not a core
// invariant, so Manager exposes it as an overridable field rather than a
// hardcoded constant.
const DefaultWorkingMemoryCapacity = 50

// Manager owns one companion's Profile and enforces the Working memory
// capacity: once Episodes reaches WorkingCapacity, the oldest episode is
// distilled into a Fact and evicted, keeping the live episode list bounded
// while nothing is silently forgotten.
type Manager struct {
	Profile         *Profile
	WorkingCapacity int
	Retriever       Retriever
}

// NewManager returns a Manager over profile with the default Working
// capacity and no retriever configured.
func NewManager(profile *Profile) *Manager {
	return &Manager{Profile: profile, WorkingCapacity: DefaultWorkingMemoryCapacity}
}

// Remember appends e to the profile's episode list, evicting-and-
// distilling the oldest episode first if the list is already at capacity.
func (m *Manager) Remember(e Episode) {
	if m.WorkingCapacity > 0 && len(m.Profile.Episodes) >= m.WorkingCapacity {
		oldest := m.Profile.Episodes[0]
		m.Profile.Facts = append(m.Profile.Facts, Fact{Key: oldest.Title, Value: oldest.Summary, Kind: "episode"})
		m.Profile.Episodes = m.Profile.Episodes[1:]
	}
	m.Profile.Episodes = append(m.Profile.Episodes, e)
}

// RetrieveContext delegates to the configured Retriever, or returns an
// empty string if none is wired (matching the source engine's
// not(feature = "rag") fallback of returning an empty context rather than
// erroring).
func (m *Manager) RetrieveContext(query string, budgetTokens int) string {
	if m.Retriever == nil {
		return ""
	}
	return m.Retriever.RetrieveContext(query, budgetTokens)
}

// SystemPrompt renders the profile's persona plus freshly retrieved
// context for query into a single prompt string.
func (m *Manager) SystemPrompt(query string, budgetTokens int) string {
	return m.Profile.SystemPrompt(m.RetrieveContext(query, budgetTokens))
}
