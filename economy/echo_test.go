package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astraweave-go/astraweave/economy"
)

func TestGrantAndSpendUpdateBalance(t *testing.T) {
	c := economy.NewEchoCurrency()
	c.Grant(5, economy.ReasonFoundShard)
	c.Spend(2, economy.ReasonAbilityActivate)
	assert.Equal(t, int64(3), c.Balance())
}

func TestBalanceEqualsLedgerSum(t *testing.T) {
	c := economy.NewEchoCurrency()
	c.Grant(1, economy.ReasonKillRiftStalker)
	c.Grant(2, economy.ReasonKillSentinel)
	c.Spend(1, economy.ReasonAnchorRepair)

	var sum int64
	for _, tx := range c.Ledger() {
		sum += tx.Amount
	}
	assert.Equal(t, sum, c.Balance())
}

func TestLastTransactionReflectsMostRecentEntry(t *testing.T) {
	c := economy.NewEchoCurrency()
	c.Grant(1, economy.ReasonFoundShard)
	c.Grant(2, economy.ReasonKillSentinel)

	tx, ok := c.LastTransaction()
	require.True(t, ok)
	assert.Equal(t, int64(2), tx.Amount)
	assert.Equal(t, economy.ReasonKillSentinel, tx.Reason)
}

func TestLastTransactionEmptyLedger(t *testing.T) {
	c := economy.NewEchoCurrency()
	_, ok := c.LastTransaction()
	assert.False(t, ok)
}

func TestWithBalanceSeedsOpeningBalance(t *testing.T) {
	c := economy.WithBalance(10)
	assert.Equal(t, int64(10), c.Balance())
}

func TestCanAfford(t *testing.T) {
	c := economy.WithBalance(5)
	assert.True(t, c.CanAfford(5))
	assert.False(t, c.CanAfford(6))
}

func TestZeroAmountTransactionsAreNoops(t *testing.T) {
	c := economy.NewEchoCurrency()
	c.Grant(0, economy.ReasonFoundShard)
	c.Spend(0, economy.ReasonAbilityActivate)
	assert.Equal(t, int64(0), c.Balance())
	assert.Empty(t, c.Ledger())
}
