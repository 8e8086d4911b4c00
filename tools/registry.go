package tools

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Constraints are the process-wide switches the spec names in §3's
// ToolRegistry data model. They gate whole validation tiers rather than
// per-verb behavior: disabling EnforceCooldowns, for instance, is a debug/
// editor knob, never something a planner can request per call.
type Constraints struct {
	EnforceCooldowns bool
	EnforceLOS       bool
	EnforceStamina   bool
}

// DefaultConstraints enforces every tier, matching normal gameplay.
func DefaultConstraints() Constraints {
	return Constraints{EnforceCooldowns: true, EnforceLOS: true, EnforceStamina: true}
}

// Spec declares one registered verb: its argument JSON schema and which
// validation tiers apply to it. The registry is immutable after Registry's
// constructor returns, matching "process-wide immutable after startup"
//.
type Spec struct {
	Verb             Verb
	ArgsSchemaJSON   string
	RequiresAmmo     bool
	RequiresAdjacentDowned bool
	RequiresLOS      bool
	Cooldown         bool
}

type compiledSpec struct {
	spec   Spec
	schema *jsonschema.Schema
}

// Registry is the process-wide, immutable-after-construction table of
// registered verbs. Planners only ever see the verbs registered here —
// nothing a planner can do reaches further than this manifest.
type Registry struct {
	mu          sync.RWMutex
	specs       map[Verb]*compiledSpec
	constraints Constraints
}

// NewRegistry compiles every spec's argument schema and returns a Registry.
// Compiling every schema at construction time (rather than lazily, per
// call) means a malformed manifest fails fast at startup.
func NewRegistry(constraints Constraints, specs ...Spec) (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	reg := &Registry{specs: make(map[Verb]*compiledSpec, len(specs)), constraints: constraints}
	for _, s := range specs {
		url := "mem://tools/" + string(s.Verb) + ".json"
		if err := compiler.AddResource(url, strings.NewReader(s.ArgsSchemaJSON)); err != nil {
			return nil, fmt.Errorf("tools: add schema resource for %s: %w", s.Verb, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("tools: compile schema for %s: %w", s.Verb, err)
		}
		reg.specs[s.Verb] = &compiledSpec{spec: s, schema: schema}
	}
	return reg, nil
}

// Constraints returns the registry's global validation-tier switches.
func (r *Registry) Constraints() Constraints { return r.constraints }

// Lookup returns the Spec for v and whether it is registered.
func (r *Registry) Lookup(v Verb) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cs, ok := r.specs[v]
	if !ok {
		return Spec{}, false
	}
	return cs.spec, true
}

// Verbs returns every registered verb, sorted for deterministic iteration.
func (r *Registry) Verbs() []Verb {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Verb, 0, len(r.specs))
	for v := range r.specs {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidateArgs checks argsJSON (the verb's flattened argument object,
// "act" included) against the verb's declared schema. This is validation
// tier 1 ("Schema"): it establishes a verb exists and its
// arguments match declared types/ranges, nothing more.
func (r *Registry) ValidateArgs(v Verb, argsJSON []byte) error {
	r.mu.RLock()
	cs, ok := r.specs[v]
	r.mu.RUnlock()
	if !ok {
		return NewError(v, ReasonUnknownVerb, "verb not registered", nil)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(argsJSON))
	if err != nil {
		return NewError(v, ReasonInvalidArg, "malformed argument JSON: "+err.Error(), nil)
	}
	if err := cs.schema.Validate(doc); err != nil {
		return NewError(v, ReasonInvalidArg, err.Error(), nil)
	}
	return nil
}

const argsSchemaMoveTo = `{
  "type": "object",
  "required": ["act", "x", "y"],
  "additionalProperties": false,
  "properties": {
    "act": {"const": "MoveTo"},
    "x": {"type": "integer"},
    "y": {"type": "integer"}
  }
}`

const argsSchemaThrow = `{
  "type": "object",
  "required": ["act", "item", "x", "y"],
  "additionalProperties": false,
  "properties": {
    "act": {"const": "Throw"},
    "item": {"enum": ["smoke", "grenade", "flashbang"]},
    "x": {"type": "integer"},
    "y": {"type": "integer"}
  }
}`

const argsSchemaCoverFire = `{
  "type": "object",
  "required": ["act", "target_id", "duration"],
  "additionalProperties": false,
  "properties": {
    "act": {"const": "CoverFire"},
    "target_id": {"type": "integer", "minimum": 0},
    "duration": {"type": "number", "exclusiveMinimum": 0}
  }
}`

const argsSchemaRevive = `{
  "type": "object",
  "required": ["act", "ally_id"],
  "additionalProperties": false,
  "properties": {
    "act": {"const": "Revive"},
    "ally_id": {"type": "integer", "minimum": 0}
  }
}`

const argsSchemaScan = `{
  "type": "object",
  "required": ["act", "radius"],
  "additionalProperties": false,
  "properties": {
    "act": {"const": "Scan"},
    "radius": {"type": "number", "exclusiveMinimum": 0}
  }
}`

const argsSchemaWait = `{
  "type": "object",
  "required": ["act", "duration"],
  "additionalProperties": false,
  "properties": {
    "act": {"const": "Wait"},
    "duration": {"type": "number", "minimum": 0}
  }
}`

// DefaultSpecs returns the six built-in verb specs, with constraints matching the original engine's tiered
// validation: Throw and CoverFire consume ammo, CoverFire needs LOS,
// Revive needs an adjacent downed ally, and Throw, CoverFire and Revive
// carry a cooldown (MoveTo, Scan and Wait do not).
func DefaultSpecs() []Spec {
	return []Spec{
		{Verb: VerbMoveTo, ArgsSchemaJSON: argsSchemaMoveTo},
		{Verb: VerbThrow, ArgsSchemaJSON: argsSchemaThrow, RequiresAmmo: true, Cooldown: true},
		{Verb: VerbCoverFire, ArgsSchemaJSON: argsSchemaCoverFire, RequiresAmmo: true, RequiresLOS: true, Cooldown: true},
		{Verb: VerbRevive, ArgsSchemaJSON: argsSchemaRevive, RequiresAdjacentDowned: true, Cooldown: true},
		{Verb: VerbScan, ArgsSchemaJSON: argsSchemaScan},
		{Verb: VerbWait, ArgsSchemaJSON: argsSchemaWait},
	}
}

// NewDefaultRegistry is NewRegistry pre-populated with DefaultSpecs and
// DefaultConstraints; cmd/demo and most tests use this rather than hand-
// assembling the manifest.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultConstraints(), DefaultSpecs()...)
}
