package weave

// WeaveIntent is a budgeted, cooldown-gated proposal for an emergent world
// event. ID is the adjudicator's tie-break key and must be stable across
// ticks for the same recurring condition (e.g. "aid_event", not a fresh
// UUID each time). CooldownKey is looked up separately: it defaults to ID
// but several intents with distinct ids can share one CooldownKey (e.g.
// every "mediator_<pair>" intent shares the "mediator" cooldown), so that
// accepting one such intent puts the whole category on cooldown rather
// than just the specific pair that fired.
type WeaveIntent struct {
	ID          string
	CooldownKey string
	Priority    float32
	Cost        uint32
	Kind        string
	Payload     map[string]string
}

// NewIntent returns a WeaveIntent with the given id, zero priority and
// cost, ready for the builder-style With* calls below. CooldownKey
// defaults to id; call WithCooldownKey to share a cooldown across several
// distinct ids.
func NewIntent(id string) WeaveIntent {
	return WeaveIntent{ID: id, CooldownKey: id}
}

// WithCooldownKey returns a copy of i with CooldownKey set, overriding the
// default of CooldownKey == ID.
func (i WeaveIntent) WithCooldownKey(key string) WeaveIntent {
	i.CooldownKey = key
	return i
}

// WithPriority returns a copy of i with Priority set.
func (i WeaveIntent) WithPriority(p float32) WeaveIntent {
	i.Priority = p
	return i
}

// WithCost returns a copy of i with Cost set.
func (i WeaveIntent) WithCost(c uint32) WeaveIntent {
	i.Cost = c
	return i
}

// WithKind returns a copy of i with Kind set.
func (i WeaveIntent) WithKind(k string) WeaveIntent {
	i.Kind = k
	return i
}

// WithPayload returns a copy of i with a single payload key set. The
// payload map is copied on every call, so i's own map is left unchanged.
func (i WeaveIntent) WithPayload(key, value string) WeaveIntent {
	out := make(map[string]string, len(i.Payload)+1)
	for k, v := range i.Payload {
		out[k] = v
	}
	out[key] = value
	i.Payload = out
	return i
}

// WeaveIntentEvent is pushed to the world's event channel for every
// WeaveIntent the adjudicator accepts.
type WeaveIntentEvent struct {
	Intent WeaveIntent
}

// WeaveIntentRejectedEvent is pushed for every intent the adjudicator
// rejects, so telemetry can count acceptance/rejection without the
// adjudicator depending on a telemetry package directly.
type WeaveIntentRejectedEvent struct {
	Intent WeaveIntent
	Reason string
}
