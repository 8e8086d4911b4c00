package sandbox

import "github.com/astraweave-go/astraweave/components"

// BodyID identifies a physics body occupying a cell.
type BodyID uint32

// Hit is the result of a successful raycast.
type Hit struct {
	Body BodyID
	At   components.Pos
}

// PhysicsQuery is the thin spatial-query surface the validator consumes
//. The core never owns physics state; it only borrows this
// interface for the duration of a single validation call.
type PhysicsQuery interface {
	Raycast(from, to components.Pos) (Hit, bool)
	OverlapAABB(center components.Pos, halfExtentX, halfExtentY int32) bool
	BodyAtCell(x, y int32) (BodyID, bool)
}

// NoPhysics is a PhysicsQuery that reports no colliders and always clear
// lines of sight. It lets tests and early bring-up exercise every other
// validation tier without a real physics world, and is the value the
// validator's "physics unavailable" tier checks against: nil, not
// NoPhysics, means unavailable.
type NoPhysics struct{}

func (NoPhysics) Raycast(components.Pos, components.Pos) (Hit, bool) { return Hit{}, false }
func (NoPhysics) OverlapAABB(components.Pos, int32, int32) bool       { return false }
func (NoPhysics) BodyAtCell(int32, int32) (BodyID, bool)              { return 0, false }
