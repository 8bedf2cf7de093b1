package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"blog-apps/internal/irr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, irr.DefaultConfig(), c.Solver.ToIRR())
	assert.Equal(t, "8080", c.Server.Port)
	assert.Equal(t, time.Hour, c.Cache.TTL.Duration)
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "apps.yaml", `
server:
  port: "9090"
  cors_origins: ["https://example.com"]
solver:
  tolerance: 0.0005
  rederive_every: 10
sailor:
  simulations: 500
cache:
  ttl: 30m
log:
  development: true
`)
	t.Setenv("API_PORT", "")
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Server.Port)
	assert.Equal(t, []string{"https://example.com"}, c.Server.CORSOrigins)
	assert.Equal(t, 0.0005, c.Solver.Tolerance)
	// The step follows the tolerance unless the file sets one.
	assert.Zero(t, c.Solver.Step)
	assert.Equal(t, 10, c.Solver.RederiveEvery)
	assert.Equal(t, irr.DefaultMaxIterations, c.Solver.MaxIterations)
	assert.Equal(t, 500, c.Sailor.Simulations)
	assert.Equal(t, 5, c.Sailor.StartPosition)
	assert.Equal(t, 30*time.Minute, c.Cache.TTL.Duration)
	assert.Equal(t, 5*time.Minute, c.Cache.CleanupInterval.Duration)
	assert.True(t, c.Log.Development)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "apps.toml", `
[server]
port = "7070"
env = "production"

[solver]
initial_guess = 0.05
step = 0.0001

[cache]
ttl = "10m"
`)
	c, err := LoadUnchecked(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "7070", c.Server.Port)
	assert.True(t, c.Production())
	assert.Equal(t, 0.05, c.Solver.InitialGuess)
	assert.Equal(t, 0.0001, c.Solver.Step)
	assert.Equal(t, 10*time.Minute, c.Cache.TTL.Duration)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"API_PORT":   "1234",
		"API_ENV":    "production",
		"STATIC_DIR": "/srv/www",
		"LOG_LEVEL":  "debug",
	}
	c := Default()
	c.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "1234", c.Server.Port)
	assert.True(t, c.Production())
	assert.Equal(t, "/srv/www", c.Server.StaticDir)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = "http" }},
		{"no workers", func(c *Config) { c.Server.CompareWorkers = 0 }},
		{"no scenarios", func(c *Config) { c.Server.MaxScenarios = 0 }},
		{"singular guess", func(c *Config) { c.Solver.InitialGuess = -1 }},
		{"zero tolerance", func(c *Config) { c.Solver.Tolerance = 0 }},
		{"probability", func(c *Config) { c.Sailor.TowardsEdge = 2 }},
		{"simulations over limit", func(c *Config) { c.Sailor.Simulations = c.Sailor.MaxSimulations + 1 }},
		{"steps over limit", func(c *Config) { c.Sailor.MaxSteps = c.Sailor.MaxStepsLimit + 1 }},
		{"iterations over limit", func(c *Config) { c.Solver.MaxIterations = c.Solver.MaxIterationsLimit + 1 }},
		{"no cash flows", func(c *Config) { c.Solver.MaxCashFlows = 0 }},
		{"zero ttl", func(c *Config) { c.Cache.TTL.Duration = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "apps.ini", "port=1"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "apps.yaml", "cache:\n  ttl: soon\n"))
	assert.Error(t, err)
}

func TestShippedExamplesLoad(t *testing.T) {
	yml, err := LoadUnchecked("../../examples/config.yaml")
	require.NoError(t, err)
	require.NoError(t, yml.Validate())
	assert.Equal(t, Default(), yml)

	tml, err := LoadUnchecked("../../examples/config.toml")
	require.NoError(t, err)
	require.NoError(t, tml.Validate())
	assert.True(t, tml.Production())
	assert.Equal(t, 30*time.Minute, tml.Cache.TTL.Duration)
	assert.Equal(t, "warn", tml.Log.Level)
}
