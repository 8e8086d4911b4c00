package perception

import "github.com/astraweave-go/astraweave/tools"

// PlayerState is the redacted view of the human player an agent perceives.
type PlayerState struct {
	HP     int32
	Pos    Pos
	Stance uint8
	Orders string
}

// SelfState is the perceiving agent's own, unredacted state.
type SelfState struct {
	Ammo      int32
	Cooldowns map[tools.CooldownKey]uint64
	Morale    float32
	Pos       Pos
}

// Pos is a grid-cell coordinate, matching the spec's (i32, i32) convention.
type Pos struct {
	X, Y int32
}

// EnemyView is a redacted view of one perceived hostile.
type EnemyView struct {
	ID       uint32
	Pos      Pos
	HP       int32
	Cover    bool
	LastSeen uint64
}

// POI is a point of interest the perceiving agent is aware of.
type POI struct {
	ID   uint32
	Pos  Pos
	Kind string
}

// Obstacle is a static blocker the agent is aware of, for planners that
// reason about terrain without a full physics query.
type Obstacle struct {
	Pos Pos
}

// WorldSnapshot is the per-tick, per-agent redacted view of the world and
// the only input any orchestrator ever sees. It is a plain value:
// copying it never aliases world state.
type WorldSnapshot struct {
	T         uint64
	Player    PlayerState
	Me        SelfState
	Enemies   []EnemyView
	POIs      []POI
	Obstacles []Obstacle
	Objective string
	HasObjective bool
}
