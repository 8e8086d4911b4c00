package anchor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/anchor"
)

func TestAnchorStartsCorrupted(t *testing.T) {
	a := anchor.New(1, "")
	assert.Equal(t, anchor.StateCorrupted, a.State)
	assert.Equal(t, float32(0), a.Progress)
}

func TestAnchorProgressesWhileInZone(t *testing.T) {
	a := anchor.New(1, "")
	stabilized := a.Tick(true, 0.25, 10)
	require.False(t, stabilized)
	assert.Equal(t, anchor.StateRepairing, a.State)
	assert.InDelta(t, 0.25, a.Progress, 0.001)
}

func TestAnchorStabilizesAtFullProgress(t *testing.T) {
	a := anchor.New(1, "")
	var stabilized bool
	for i := 0; i < 4; i++ {
		stabilized = a.Tick(true, 0.25, 10)
	}
	assert.True(t, stabilized)
	assert.Equal(t, anchor.StateStabilized, a.State)
	assert.Equal(t, float32(1), a.Progress)
}

func TestAnchorPausesWithinGracePeriod(t *testing.T) {
	a := anchor.New(1, "")
	a.Tick(true, 0.5, 3)
	a.Tick(false, 0.5, 3)
	a.Tick(false, 0.5, 3)
	assert.InDelta(t, 0.5, a.Progress, 0.001)
	assert.Equal(t, anchor.StateRepairing, a.State)
}

func TestAnchorResetsAfterGracePeriodExpires(t *testing.T) {
	a := anchor.New(1, "")
	a.Tick(true, 0.5, 2)
	a.Tick(false, 0.5, 2)
	a.Tick(false, 0.5, 2)
	a.Tick(false, 0.5, 2) // 3rd tick out of zone exceeds graceTicks=2
	assert.Equal(t, float32(0), a.Progress)
	assert.Equal(t, anchor.StateCorrupted, a.State)
}

func TestAnchorStabilizedStaysStabilized(t *testing.T) {
	a := anchor.New(1, "")
	for i := 0; i < 4; i++ {
		a.Tick(true, 0.25, 10)
	}
	require.Equal(t, anchor.StateStabilized, a.State)

	stabilized := a.Tick(false, 0.25, 0)
	assert.False(t, stabilized)
	assert.Equal(t, anchor.StateStabilized, a.State)
	assert.Equal(t, float32(1), a.Progress)
}
