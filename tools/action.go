package tools

import (
	"encoding/json"
	"fmt"
)

// Verb identifies which ActionStep variant is carried. The wire schema
// discriminates on the flat "act" field, not a nested object key,
// so ActionStep implements its own MarshalJSON/UnmarshalJSON rather than
// relying on encoding/json's struct tags.
type Verb string

const (
	VerbMoveTo    Verb = "MoveTo"
	VerbThrow     Verb = "Throw"
	VerbCoverFire Verb = "CoverFire"
	VerbRevive    Verb = "Revive"
	VerbScan      Verb = "Scan"
	VerbWait      Verb = "Wait"
)

// ThrowItem enumerates the items Throw accepts.
type ThrowItem string

const (
	ItemSmoke      ThrowItem = "smoke"
	ItemGrenade    ThrowItem = "grenade"
	ItemFlashbang  ThrowItem = "flashbang"
)

// MoveTo, Throw, CoverFire, Revive, Scan, and Wait are the argument payloads
// for each verb. Every field is a primitive — no pointers into the world —
// so a step can cross the LLM JSON boundary and the command buffer alike.
type (
	MoveTo struct {
		X, Y int32
	}
	Throw struct {
		Item ThrowItem
		X, Y int32
	}
	CoverFire struct {
		TargetID uint32
		Duration float32
	}
	Revive struct {
		AllyID uint32
	}
	Scan struct {
		Radius float32
	}
	Wait struct {
		Duration float32
	}
)

// ActionStep is the tagged union of verbs a PlanIntent may contain. Exactly
// one payload field is set, matching Verb. Construct with the NewXxx
// helpers rather than populating fields directly.
type ActionStep struct {
	Verb      Verb
	MoveTo    *MoveTo
	Throw     *Throw
	CoverFire *CoverFire
	Revive    *Revive
	Scan      *Scan
	Wait      *Wait
}

func NewMoveTo(x, y int32) ActionStep { return ActionStep{Verb: VerbMoveTo, MoveTo: &MoveTo{X: x, Y: y}} }

func NewThrow(item ThrowItem, x, y int32) ActionStep {
	return ActionStep{Verb: VerbThrow, Throw: &Throw{Item: item, X: x, Y: y}}
}

func NewCoverFire(targetID uint32, duration float32) ActionStep {
	return ActionStep{Verb: VerbCoverFire, CoverFire: &CoverFire{TargetID: targetID, Duration: duration}}
}

func NewRevive(allyID uint32) ActionStep {
	return ActionStep{Verb: VerbRevive, Revive: &Revive{AllyID: allyID}}
}

func NewScan(radius float32) ActionStep { return ActionStep{Verb: VerbScan, Scan: &Scan{Radius: radius}} }

func NewWait(duration float32) ActionStep { return ActionStep{Verb: VerbWait, Wait: &Wait{Duration: duration}} }

// MarshalJSON flattens the active payload alongside its "act" discriminator,
// matching the LLM I/O wire schema exactly.
func (a ActionStep) MarshalJSON() ([]byte, error) {
	switch a.Verb {
	case VerbMoveTo:
		return json.Marshal(struct {
			Act string `json:"act"`
			X   int32  `json:"x"`
			Y   int32  `json:"y"`
		}{string(VerbMoveTo), a.MoveTo.X, a.MoveTo.Y})
	case VerbThrow:
		return json.Marshal(struct {
			Act  string    `json:"act"`
			Item ThrowItem `json:"item"`
			X    int32     `json:"x"`
			Y    int32     `json:"y"`
		}{string(VerbThrow), a.Throw.Item, a.Throw.X, a.Throw.Y})
	case VerbCoverFire:
		return json.Marshal(struct {
			Act      string  `json:"act"`
			TargetID uint32  `json:"target_id"`
			Duration float32 `json:"duration"`
		}{string(VerbCoverFire), a.CoverFire.TargetID, a.CoverFire.Duration})
	case VerbRevive:
		return json.Marshal(struct {
			Act     string `json:"act"`
			AllyID  uint32 `json:"ally_id"`
		}{string(VerbRevive), a.Revive.AllyID})
	case VerbScan:
		return json.Marshal(struct {
			Act    string  `json:"act"`
			Radius float32 `json:"radius"`
		}{string(VerbScan), a.Scan.Radius})
	case VerbWait:
		return json.Marshal(struct {
			Act      string  `json:"act"`
			Duration float32 `json:"duration"`
		}{string(VerbWait), a.Wait.Duration})
	default:
		return nil, fmt.Errorf("tools: unknown verb %q", a.Verb)
	}
}

// UnmarshalJSON dispatches on the "act" field and rejects unknown fields by
// first decoding into a map and checking the key set matches exactly what
// the verb declares — the wire schema requires unknown fields to be
// rejected, not silently ignored.
func (a *ActionStep) UnmarshalJSON(data []byte) error {
	var probe struct {
		Act string `json:"act"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("tools: decode act discriminator: %w", err)
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("tools: decode action step: %w", err)
	}

	allow := func(fields ...string) error {
		want := map[string]bool{"act": true}
		for _, f := range fields {
			want[f] = true
		}
		for k := range raw {
			if !want[k] {
				return fmt.Errorf("tools: unknown field %q for act %q", k, probe.Act)
			}
		}
		return nil
	}

	switch Verb(probe.Act) {
	case VerbMoveTo:
		if err := allow("x", "y"); err != nil {
			return err
		}
		var v struct {
			X, Y int32
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = NewMoveTo(v.X, v.Y)
	case VerbThrow:
		if err := allow("item", "x", "y"); err != nil {
			return err
		}
		var v struct {
			Item ThrowItem
			X, Y int32
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = NewThrow(v.Item, v.X, v.Y)
	case VerbCoverFire:
		if err := allow("target_id", "duration"); err != nil {
			return err
		}
		var v struct {
			TargetID uint32  `json:"target_id"`
			Duration float32 `json:"duration"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = NewCoverFire(v.TargetID, v.Duration)
	case VerbRevive:
		if err := allow("ally_id"); err != nil {
			return err
		}
		var v struct {
			AllyID uint32 `json:"ally_id"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = NewRevive(v.AllyID)
	case VerbScan:
		if err := allow("radius"); err != nil {
			return err
		}
		var v struct {
			Radius float32
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = NewScan(v.Radius)
	case VerbWait:
		if err := allow("duration"); err != nil {
			return err
		}
		var v struct {
			Duration float32
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*a = NewWait(v.Duration)
	default:
		return fmt.Errorf("tools: unknown act %q", probe.Act)
	}
	return nil
}

// PlanIntent is the sole artifact an orchestrator produces: an ordered list
// of steps proposed for execution. It carries no effect on the world by
// itself — only PlanExecutor, via the sandbox, does that.
type PlanIntent struct {
	PlanID string       `json:"plan_id"`
	Steps  []ActionStep `json:"steps"`
}
