package scheduler

import (
	"context"
	"fmt"

	"github.com/astraweave-go/astraweave/ecs"
)

// StageFunc runs one registered system within a stage. It queues structural
// mutations onto cb rather than mutating w directly; the Scheduler flushes
// cb to w once every StageFunc registered for the stage has run.
type StageFunc func(ctx context.Context, w *ecs.World, cb *ecs.CommandBuffer, tick uint64) error

// Scheduler drives a World through Order once per call to RunTick. Systems
// register against a Stage; RunTick runs every stage's systems in
// registration order, flushes the stage's command buffer, then advances to
// the next stage.
type Scheduler struct {
	world  *ecs.World
	stages map[Stage][]StageFunc
}

// New returns a Scheduler bound to w. w's tick counter advances by exactly
// one per call to RunTick.
func New(w *ecs.World) *Scheduler {
	return &Scheduler{world: w, stages: make(map[Stage][]StageFunc)}
}

// Register appends fn to the systems that run during stage. Order is not
// validated against Order here; an unrecognized stage simply never runs,
// which callers can catch in tests by asserting expected side effects.
func (s *Scheduler) Register(stage Stage, fn StageFunc) {
	s.stages[stage] = append(s.stages[stage], fn)
}

// World returns the scheduler's bound world.
func (s *Scheduler) World() *ecs.World {
	return s.world
}

// RunTick executes one full pass over Order. A stage system returning an
// error aborts the remainder of that stage's systems and the tick; systems
// already flushed keep their effects.
func (s *Scheduler) RunTick(ctx context.Context) error {
	tick := s.world.Tick()
	for _, stage := range Order {
		cb := ecs.NewCommandBuffer(s.world.TypeRegistry())
		for _, fn := range s.stages[stage] {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("scheduler: tick %d stage %s: %w", tick, stage, err)
			}
			if err := fn(ctx, s.world, cb, tick); err != nil {
				cb.Flush(s.world)
				return fmt.Errorf("scheduler: tick %d stage %s: %w", tick, stage, err)
			}
		}
		cb.Flush(s.world)
	}
	s.world.DrainAllEvents()
	s.world.SetTick(tick + 1)
	return nil
}

// RunFixed runs n ticks in sequence, stopping early if a tick returns an
// error or ctx is cancelled.
func (s *Scheduler) RunFixed(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := s.RunTick(ctx); err != nil {
			return err
		}
	}
	return nil
}
