package economy

// EnemyKind identifies which enemy archetype was killed, for the purpose
// of awarding an Echo bounty.
type EnemyKind uint8

const (
	EnemyRiftStalker EnemyKind = iota
	EnemySentinel
)

// EchoReward returns how many Echoes killing this enemy kind grants.
func (k EnemyKind) EchoReward() uint32 {
	switch k {
	case EnemySentinel:
		return 2
	default:
		return 1
	}
}

func (k EnemyKind) reason() Reason {
	if k == EnemySentinel {
		return ReasonKillSentinel
	}
	return ReasonKillRiftStalker
}

// PickupKind identifies a world pickup that grants Echoes.
type PickupKind uint8

const (
	PickupEchoShard PickupKind = iota
)

// EchoReward returns how many Echoes this pickup kind grants.
func (k PickupKind) EchoReward() uint32 {
	switch k {
	case PickupEchoShard:
		return 1
	default:
		return 0
	}
}

// CombatRewardEvent is read by ApplyPickups for one enemy kill this tick.
type CombatRewardEvent struct {
	Enemy EnemyKind
}

// PickupEvent is read by ApplyPickups for one shard collected this tick.
type PickupEvent struct {
	Pickup PickupKind
}

// ApplyPickups grants currency for every combat kill and pickup event
// accumulated this tick, in the order given.
func ApplyPickups(currency *EchoCurrency, combat []CombatRewardEvent, pickups []PickupEvent) {
	for _, ev := range combat {
		currency.Grant(ev.Enemy.EchoReward(), ev.Enemy.reason())
	}
	for _, ev := range pickups {
		currency.Grant(ev.Pickup.EchoReward(), ReasonFoundShard)
	}
}
