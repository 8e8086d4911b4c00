package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/economy"
)

func TestApplyPickupsRiftStalkerKill(t *testing.T) {
	c := economy.NewEchoCurrency()
	economy.ApplyPickups(c, []economy.CombatRewardEvent{{Enemy: economy.EnemyRiftStalker}}, nil)
	assert.Equal(t, int64(1), c.Balance())

	tx, ok := c.LastTransaction()
	require.True(t, ok)
	assert.Equal(t, economy.ReasonKillRiftStalker, tx.Reason)
}

func TestApplyPickupsSentinelKill(t *testing.T) {
	c := economy.NewEchoCurrency()
	economy.ApplyPickups(c, []economy.CombatRewardEvent{{Enemy: economy.EnemySentinel}}, nil)
	assert.Equal(t, int64(2), c.Balance())
}

func TestApplyPickupsShardPickup(t *testing.T) {
	c := economy.NewEchoCurrency()
	economy.ApplyPickups(c, nil, []economy.PickupEvent{{Pickup: economy.PickupEchoShard}})
	assert.Equal(t, int64(1), c.Balance())
}

func TestApplyPickupsMultipleKillsAccumulate(t *testing.T) {
	c := economy.NewEchoCurrency()
	economy.ApplyPickups(c, []economy.CombatRewardEvent{
		{Enemy: economy.EnemyRiftStalker},
		{Enemy: economy.EnemyRiftStalker},
		{Enemy: economy.EnemySentinel},
	}, nil)
	assert.Equal(t, int64(4), c.Balance())
}

func TestApplyPickupsCombinedCombatAndShards(t *testing.T) {
	c := economy.NewEchoCurrency()
	economy.ApplyPickups(c,
		[]economy.CombatRewardEvent{
			{Enemy: economy.EnemyRiftStalker},
			{Enemy: economy.EnemySentinel},
		},
		[]economy.PickupEvent{
			{Pickup: economy.PickupEchoShard},
			{Pickup: economy.PickupEchoShard},
		},
	)
	assert.Equal(t, int64(5), c.Balance())
}

func TestApplyPickupsAccumulatesOntoExistingBalance(t *testing.T) {
	c := economy.WithBalance(10)
	economy.ApplyPickups(c, []economy.CombatRewardEvent{{Enemy: economy.EnemySentinel}}, nil)
	assert.Equal(t, int64(12), c.Balance())
}
