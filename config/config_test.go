package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "astraweave.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
[general]
tick_rate = 30
world_seed = 42
`

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTestConfig(t, minimalConfig)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.General.TickRate)
	assert.Equal(t, uint64(42), cfg.General.WorldSeed)
	assert.Equal(t, uint32(20), cfg.Weave.BudgetPerTick)
	assert.Equal(t, float32(0.3), cfg.Weave.MinPriority)
	assert.NotNil(t, cfg.Weave.Cooldowns)
	assert.True(t, cfg.Tools.EnforceCooldowns)
	assert.True(t, cfg.Tools.EnforceLOS)
	assert.True(t, cfg.Tools.EnforceStamina)
	assert.Equal(t, int64(50), cfg.Arbiter.LLMBudgetMs)
	assert.Equal(t, uint64(10), cfg.Arbiter.LLMTriggerEveryTicks)
	assert.Equal(t, uint64(20), cfg.Arbiter.CooldownTicks)
	assert.Equal(t, 50, cfg.Persona.WorkingCapacity)
	assert.Equal(t, "saves/slots", cfg.Persistence.SaveDir)
	assert.Equal(t, "noop", cfg.Telemetry.LogBackend)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTestConfig(t, `
[general]
tick_rate = 60
tick_budget = "8ms"

[weave]
budget_per_tick = 5
min_priority = 0.5

[weave.cooldowns]
aid_event = 100

[tools]
enforce_cooldowns = false
enforce_los = true
enforce_stamina = true

[arbiter]
llm_budget_ms = 75

[persona]
working_capacity = 10

[telemetry]
log_backend = "zap"
metrics_backend = "prometheus"
tracer_backend = "otel"
service_name = "demo"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(5), cfg.Weave.BudgetPerTick)
	assert.Equal(t, float32(0.5), cfg.Weave.MinPriority)
	assert.Equal(t, uint64(100), cfg.Weave.Cooldowns["aid_event"])
	assert.False(t, cfg.Tools.EnforceCooldowns)
	assert.Equal(t, int64(75), cfg.Arbiter.LLMBudgetMs)
	assert.Equal(t, 10, cfg.Persona.WorkingCapacity)
	assert.Equal(t, "zap", cfg.Telemetry.LogBackend)
	assert.Equal(t, "prometheus", cfg.Telemetry.MetricsBackend)
	assert.Equal(t, "otel", cfg.Telemetry.TracerBackend)
	assert.Equal(t, "demo", cfg.Telemetry.ServiceName)
	assert.Equal(t, "8ms", cfg.General.TickBudget.Duration.String())
}

func TestLoadRejectsInvalidTickRate(t *testing.T) {
	path := writeTestConfig(t, `
[general]
tick_rate = 0
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsOutOfRangeMinPriority(t *testing.T) {
	path := writeTestConfig(t, `
[weave]
min_priority = 1.5
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownTelemetryBackend(t *testing.T) {
	path := writeTestConfig(t, `
[telemetry]
log_backend = "stdout"
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefaultMatchesLoadOfEmptyFile(t *testing.T) {
	path := writeTestConfig(t, "")
	fromFile, err := Load(path)
	require.NoError(t, err)

	fromDefault := Default()
	assert.Equal(t, fromDefault.General.TickRate, fromFile.General.TickRate)
	assert.Equal(t, fromDefault.Weave.BudgetPerTick, fromFile.Weave.BudgetPerTick)
	assert.Equal(t, fromDefault.Arbiter.LLMBudgetMs, fromFile.Arbiter.LLMBudgetMs)
}
