package scheduler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/ecs"
	"github.com/astraweave-go/astraweave/scheduler"
)

type counter struct{ n int }

func TestRunTickAdvancesTickAndRunsStagesInOrder(t *testing.T) {
	tr := ecs.NewTypeRegistry()
	w := ecs.NewWorld(tr)
	s := scheduler.New(w)

	var order []scheduler.Stage
	for _, stage := range scheduler.Order {
		st := stage
		s.Register(st, func(ctx context.Context, w *ecs.World, cb *ecs.CommandBuffer, tick uint64) error {
			order = append(order, st)
			return nil
		})
	}

	require.NoError(t, s.RunTick(context.Background()))
	assert.Equal(t, scheduler.Order, order)
	assert.Equal(t, uint64(1), w.Tick())
}

func TestRunFixedRunsRequestedTicks(t *testing.T) {
	tr := ecs.NewTypeRegistry()
	w := ecs.NewWorld(tr)
	s := scheduler.New(w)

	c := &counter{}
	s.Register(scheduler.StageSimulation, func(ctx context.Context, w *ecs.World, cb *ecs.CommandBuffer, tick uint64) error {
		c.n++
		return nil
	})

	require.NoError(t, s.RunFixed(context.Background(), 5))
	assert.Equal(t, 5, c.n)
	assert.Equal(t, uint64(5), w.Tick())
}

func TestRunTickStopsOnSystemError(t *testing.T) {
	tr := ecs.NewTypeRegistry()
	w := ecs.NewWorld(tr)
	s := scheduler.New(w)

	boom := errors.New("boom")
	ranPhysics := false
	s.Register(scheduler.StageAIPlanning, func(ctx context.Context, w *ecs.World, cb *ecs.CommandBuffer, tick uint64) error {
		return boom
	})
	s.Register(scheduler.StagePhysics, func(ctx context.Context, w *ecs.World, cb *ecs.CommandBuffer, tick uint64) error {
		ranPhysics = true
		return nil
	})

	err := s.RunTick(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.False(t, ranPhysics)
}

func TestRunTickRespectsCancelledContext(t *testing.T) {
	tr := ecs.NewTypeRegistry()
	w := ecs.NewWorld(tr)
	s := scheduler.New(w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	s.Register(scheduler.StagePerception, func(ctx context.Context, w *ecs.World, cb *ecs.CommandBuffer, tick uint64) error {
		ran = true
		return nil
	})

	err := s.RunTick(ctx)
	require.Error(t, err)
	assert.False(t, ran)
}
