package llmclient_test

import "github.com/astraweave-go/astraweave/perception"

func snapshotFixture() perception.WorldSnapshot {
	return perception.WorldSnapshot{
		T:  3,
		Me: perception.SelfState{Ammo: 5, Pos: perception.Pos{X: 1, Y: 2}},
		Enemies: []perception.EnemyView{
			{ID: 9, Pos: perception.Pos{X: 4, Y: 4}, HP: 60},
		},
	}
}
