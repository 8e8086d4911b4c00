// Command demo wires a world, the fixed-tick scheduler, the three-tier
// arbiter, and the weave/anchor/economy systems, then runs a handful of
// ticks against a single companion agent and one enemy.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/astraweave-go/astraweave/anchor"
	"github.com/astraweave-go/astraweave/arbiter"
	"github.com/astraweave-go/astraweave/components"
	"github.com/astraweave-go/astraweave/config"
	"github.com/astraweave-go/astraweave/ecs"
	"github.com/astraweave-go/astraweave/economy"
	"github.com/astraweave-go/astraweave/orchestrator"
	"github.com/astraweave-go/astraweave/perception"
	"github.com/astraweave-go/astraweave/planexec"
	"github.com/astraweave-go/astraweave/sandbox"
	"github.com/astraweave-go/astraweave/scheduler"
	"github.com/astraweave-go/astraweave/telemetry"
	"github.com/astraweave-go/astraweave/tools"
	"github.com/astraweave-go/astraweave/weave"
)

func main() {
	configPath := flag.String("config", "", "path to an astraweave.toml config file (optional)")
	ticks := flag.Uint64("ticks", 20, "number of ticks to run")
	streamAddr := flag.String("stream-addr", "", "address to serve the telemetry websocket stream on (optional, e.g. :8090)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	logger := newLogger(cfg)
	metrics := telemetry.NewNoopMetrics()
	events := telemetry.NewEventStream()
	defer events.Close()
	if *streamAddr != "" {
		mux := http.NewServeMux()
		mux.HandleFunc("/stream", events.ServeWS)
		go func() {
			if err := http.ListenAndServe(*streamAddr, mux); err != nil {
				logger.Error(context.Background(), "telemetry stream server stopped", "err", err)
			}
		}()
	}
	ctx := context.Background()

	tr := ecs.NewTypeRegistry()
	ecs.Register[components.Pos](tr)
	ecs.Register[components.Health](tr)
	ecs.Register[components.Team](tr)
	ecs.Register[components.Ammo](tr)
	ecs.Register[components.Morale](tr)
	ecs.Register[components.Cooldowns](tr)
	ecs.Register[components.AiAgent](tr)
	ecs.Register[components.StanceComponent](tr)
	ecs.Register[components.PlayerControlled](tr)
	ecs.Register[components.Orders](tr)

	w := ecs.NewWorld(tr)

	player := w.Spawn()
	ecs.Insert(w, player, components.Pos{X: 0, Y: 0})
	ecs.Insert(w, player, components.Health{HP: 100, Max: 100})
	ecs.Insert(w, player, components.Team{ID: 0})
	ecs.Insert(w, player, components.PlayerControlled{})
	ecs.Insert(w, player, components.Orders{})

	companion := w.Spawn()
	ecs.Insert(w, companion, components.Pos{X: 1, Y: 0})
	ecs.Insert(w, companion, components.Health{HP: 80, Max: 80})
	ecs.Insert(w, companion, components.Team{ID: 0})
	ecs.Insert(w, companion, components.Ammo{Count: 6})
	ecs.Insert(w, companion, components.Morale{Value: 0.8})
	ecs.Insert(w, companion, components.Cooldowns{})
	ecs.Insert(w, companion, components.AiAgent{})

	enemy := w.Spawn()
	ecs.Insert(w, enemy, components.Pos{X: 5, Y: 0})
	ecs.Insert(w, enemy, components.Health{HP: 40, Max: 40})
	ecs.Insert(w, enemy, components.Team{ID: 1})

	registry, err := tools.NewDefaultRegistry()
	if err != nil {
		panic(err)
	}
	executor := planexec.NewExecutor(registry)

	goap := orchestrator.NewGOAPOrchestrator()
	arb := arbiter.New(goap, nil) // no LLM client wired: demo stays on GOAP/BT
	arb.LLMBudgetMs = cfg.Arbiter.LLMBudgetMs
	arb.LLMTriggerEveryTicks = cfg.Arbiter.LLMTriggerEveryTicks
	arb.CooldownTicks = cfg.Arbiter.CooldownTicks

	perceptionCfg := perception.DefaultConfig()

	weaveAdjudicator := weave.NewAdjudicator(weave.Config{
		BudgetPerTick: cfg.Weave.BudgetPerTick,
		Cooldowns:     cfg.Weave.Cooldowns,
		MinPriority:   cfg.Weave.MinPriority,
	})
	detectors := []weave.PatternDetector{
		weave.LowHealthClusterDetector{Threshold: 0.3, MinClusterSize: 1},
		weave.CombatIntensityDetector{EventsThreshold: 3, TimeWindowSec: 10},
	}

	shardAnchor := anchor.New(1, "dash_ability")
	currency := economy.NewEchoCurrency()

	s := scheduler.New(w)
	s.Register(scheduler.StageAIPlanning, func(ctx context.Context, w *ecs.World, cb *ecs.CommandBuffer, tick uint64) error {
		snapshot := perception.BuildSnapshot(w, companion, tick, perceptionCfg)
		plan := arb.Tick(ctx, snapshot, tick)
		if len(plan.Steps) == 0 {
			return nil
		}
		valCtx := sandbox.ValidationContext{
			AgentPos: components.Pos{X: snapshot.Me.Pos.X, Y: snapshot.Me.Pos.Y},
			Ammo:     snapshot.Me.Ammo,
		}
		result := executor.Execute(w, cb, companion, plan, 0, snapshot, valCtx)
		if result.Blocked != nil {
			logger.Warn(ctx, "plan step blocked", "reason", result.Blocked.Reason, "tool", result.Blocked.Tool)
		}
		metrics.IncCounter("goap_steps", float64(result.Cursor), "agent", "companion")
		events.Publish(telemetry.PlanExecutionRecord{
			PlanID:        result.PlanID,
			StepsTotal:    len(plan.Steps),
			StepsExecuted: result.Cursor,
			Outcome:       planOutcome(result),
		})
		return nil
	})
	s.Register(scheduler.StagePostSimulation, func(ctx context.Context, w *ecs.World, cb *ecs.CommandBuffer, tick uint64) error {
		worldMetrics := weave.WorldMetrics{AvgHealth: 1.0}
		decisions := weave.Run(w, weaveAdjudicator, detectors, worldMetrics, cfg.General.WorldSeed)
		for _, d := range decisions {
			logger.Info(ctx, "weave decision", "intent", d.Intent.ID, "accepted", d.Accepted)
			events.Publish(d)
		}
		anchor.TickAnchor(w, cb, companion, shardAnchor, true, 0.05, 30)
		for _, applied := range ecs.DrainEvents[planexec.StepApplied](w) {
			if applied.Step.Verb == tools.VerbCoverFire {
				currency.Grant(economy.EnemyRiftStalker.EchoReward(), economy.ReasonKillRiftStalker)
			}
		}
		return nil
	})

	for i := uint64(0); i < *ticks; i++ {
		if err := s.RunTick(ctx); err != nil {
			logger.Error(ctx, "tick failed", "tick", i, "err", err)
			break
		}
	}

	fmt.Printf("ran %d ticks, final echo balance=%d\n", *ticks, currency.Balance())
}

func planOutcome(result planexec.Result) string {
	switch {
	case result.Blocked != nil:
		return "blocked"
	case result.Completed:
		return "completed"
	default:
		return "partial"
	}
}

func newLogger(cfg *config.Config) telemetry.Logger {
	if cfg.Telemetry.LogBackend != "zap" {
		return telemetry.NewNoopLogger()
	}
	zl, err := zap.NewProduction()
	if err != nil {
		return telemetry.NewNoopLogger()
	}
	return telemetry.NewZapLogger(zl)
}
