package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration is a time.Duration that unmarshals from TOML strings like "50ms"
// or "2s" instead of a raw nanosecond integer.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the root of the AstraWeave TOML configuration file.
type Config struct {
	General     General     `toml:"general"`
	Weave       Weave       `toml:"weave"`
	Tools       Tools       `toml:"tools"`
	Arbiter     Arbiter     `toml:"arbiter"`
	Persona     Persona     `toml:"persona"`
	Persistence Persistence `toml:"persistence"`
	Telemetry   Telemetry   `toml:"telemetry"`
}

// General configures the fixed-tick scheduler loop.
type General struct {
	TickRate   float64  `toml:"tick_rate"`   // ticks per second
	WorldSeed  uint64   `toml:"world_seed"`
	MaxTicks   uint64   `toml:"max_ticks"`   // 0 means unbounded
	TickBudget Duration `toml:"tick_budget"` // soft wall-clock budget per tick, for logging overruns
}

// Weave configures the emergent-intent adjudicator.
type Weave struct {
	BudgetPerTick uint32            `toml:"budget_per_tick"`
	MinPriority   float32           `toml:"min_priority"`
	Cooldowns     map[string]uint64 `toml:"cooldowns"` // cooldown key -> cooldown length in ticks
}

// Tools configures which validation tiers the tool sandbox enforces.
// Disabling a tier is a debug/content-authoring escape hatch, never the
// production default.
type Tools struct {
	EnforceCooldowns bool `toml:"enforce_cooldowns"`
	EnforceLOS       bool `toml:"enforce_los"`
	EnforceStamina   bool `toml:"enforce_stamina"`
}

// Arbiter configures the three-tier LLM/GOAP/BT fallback state machine.
type Arbiter struct {
	LLMBudgetMs          int64  `toml:"llm_budget_ms"`
	LLMTriggerEveryTicks uint64 `toml:"llm_trigger_every_ticks"`
	CooldownTicks        uint64 `toml:"cooldown_ticks"`
}

// Persona configures the companion memory/RAG adapter's working-memory
// eviction threshold.
type Persona struct {
	WorkingCapacity int `toml:"working_capacity"`
}

// Persistence configures where save slots are written.
type Persistence struct {
	SaveDir string `toml:"save_dir"`
}

// Telemetry selects the production telemetry backends. Backend is one of
// "noop" or "zap"/"prometheus"/"otel"; fields left at their zero value fall
// back to the noop implementations.
type Telemetry struct {
	LogBackend     string `toml:"log_backend"`
	MetricsBackend string `toml:"metrics_backend"`
	TracerBackend  string `toml:"tracer_backend"`
	ServiceName    string `toml:"service_name"`
}

// Load reads and validates an AstraWeave TOML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: validating %s: %w", path, err)
	}

	return &cfg, nil
}

// Default returns a Config populated with the same defaults Load applies
// to an empty file, for callers (tests, the demo binary) that don't read
// one from disk.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.General.TickRate == 0 {
		cfg.General.TickRate = 60
	}
	if cfg.General.TickBudget.Duration == 0 {
		cfg.General.TickBudget = Duration{16 * time.Millisecond}
	}
	if cfg.Weave.BudgetPerTick == 0 {
		cfg.Weave.BudgetPerTick = 20
	}
	if cfg.Weave.MinPriority == 0 {
		cfg.Weave.MinPriority = 0.3
	}
	if cfg.Weave.Cooldowns == nil {
		cfg.Weave.Cooldowns = map[string]uint64{}
	}
	if !cfg.Tools.EnforceCooldowns && !cfg.Tools.EnforceLOS && !cfg.Tools.EnforceStamina {
		cfg.Tools.EnforceCooldowns = true
		cfg.Tools.EnforceLOS = true
		cfg.Tools.EnforceStamina = true
	}
	if cfg.Arbiter.LLMBudgetMs == 0 {
		cfg.Arbiter.LLMBudgetMs = 50
	}
	if cfg.Arbiter.LLMTriggerEveryTicks == 0 {
		cfg.Arbiter.LLMTriggerEveryTicks = 10
	}
	if cfg.Arbiter.CooldownTicks == 0 {
		cfg.Arbiter.CooldownTicks = 20
	}
	if cfg.Persona.WorkingCapacity == 0 {
		cfg.Persona.WorkingCapacity = 50
	}
	if cfg.Persistence.SaveDir == "" {
		cfg.Persistence.SaveDir = "saves/slots"
	}
	if cfg.Telemetry.LogBackend == "" {
		cfg.Telemetry.LogBackend = "noop"
	}
	if cfg.Telemetry.MetricsBackend == "" {
		cfg.Telemetry.MetricsBackend = "noop"
	}
	if cfg.Telemetry.TracerBackend == "" {
		cfg.Telemetry.TracerBackend = "noop"
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "astraweave"
	}
}

func validate(cfg *Config) error {
	if cfg.General.TickRate <= 0 {
		return fmt.Errorf("general.tick_rate must be positive, got %v", cfg.General.TickRate)
	}
	if cfg.Weave.MinPriority < 0 || cfg.Weave.MinPriority > 1 {
		return fmt.Errorf("weave.min_priority must be in [0,1], got %v", cfg.Weave.MinPriority)
	}
	if cfg.Arbiter.LLMBudgetMs <= 0 {
		return fmt.Errorf("arbiter.llm_budget_ms must be positive, got %v", cfg.Arbiter.LLMBudgetMs)
	}
	if cfg.Persona.WorkingCapacity <= 0 {
		return fmt.Errorf("persona.working_capacity must be positive, got %v", cfg.Persona.WorkingCapacity)
	}
	switch cfg.Telemetry.LogBackend {
	case "noop", "zap":
	default:
		return fmt.Errorf("telemetry.log_backend must be \"noop\" or \"zap\", got %q", cfg.Telemetry.LogBackend)
	}
	switch cfg.Telemetry.MetricsBackend {
	case "noop", "prometheus":
	default:
		return fmt.Errorf("telemetry.metrics_backend must be \"noop\" or \"prometheus\", got %q", cfg.Telemetry.MetricsBackend)
	}
	switch cfg.Telemetry.TracerBackend {
	case "noop", "otel":
	default:
		return fmt.Errorf("telemetry.tracer_backend must be \"noop\" or \"otel\", got %q", cfg.Telemetry.TracerBackend)
	}
	return nil
}
