package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"blog-apps/internal/irr"
	"blog-apps/internal/sailor"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML or TOML).
type Config struct {
	Server ServerConfig `yaml:"server" toml:"server"`
	Solver SolverConfig `yaml:"solver" toml:"solver"`
	Sailor SailorConfig `yaml:"sailor" toml:"sailor"`
	Cache  CacheConfig  `yaml:"cache" toml:"cache"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

type ServerConfig struct {
	Port        string   `yaml:"port" toml:"port"`
	Env         string   `yaml:"env" toml:"env"`
	StaticDir   string   `yaml:"static_dir" toml:"static_dir"`
	CORSOrigins []string `yaml:"cors_origins" toml:"cors_origins"`
	// CompareWorkers bounds how many scenarios are solved at once.
	CompareWorkers int `yaml:"compare_workers" toml:"compare_workers"`
	MaxScenarios   int `yaml:"max_scenarios" toml:"max_scenarios"`
}

type SolverConfig struct {
	InitialGuess  float64 `yaml:"initial_guess" toml:"initial_guess"`
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance" toml:"tolerance"`
	Step          float64 `yaml:"step" toml:"step"`
	RederiveEvery int     `yaml:"rederive_every" toml:"rederive_every"`

	// Caps on what one API request may ask for.
	MaxIterationsLimit int `yaml:"max_iterations_limit" toml:"max_iterations_limit"`
	MaxCashFlows       int `yaml:"max_cash_flows" toml:"max_cash_flows"`
}

type SailorConfig struct {
	StartPosition  int     `yaml:"start_position" toml:"start_position"`
	TowardsEdge    float64 `yaml:"towards_edge" toml:"towards_edge"`
	Simulations    int     `yaml:"simulations" toml:"simulations"`
	MaxSteps       int     `yaml:"max_steps" toml:"max_steps"`
	MaxSimulations int     `yaml:"max_simulations" toml:"max_simulations"`
	MaxStepsLimit  int     `yaml:"max_steps_limit" toml:"max_steps_limit"`
}

type CacheConfig struct {
	TTL             Duration `yaml:"ttl" toml:"ttl"`
	CleanupInterval Duration `yaml:"cleanup_interval" toml:"cleanup_interval"`
}

type LogConfig struct {
	Level       string `yaml:"level" toml:"level"`
	Development bool   `yaml:"development" toml:"development"`
}

// Duration decodes "90s"-style strings from either format.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Default returns the settings used when no file is given.
func Default() *Config {
	solver := irr.DefaultConfig()
	params := sailor.DefaultParams()
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			StaticDir:      "./web/dist",
			CORSOrigins:    []string{"*"},
			CompareWorkers: 4,
			MaxScenarios:   20,
		},
		Solver: SolverConfig{
			InitialGuess:  solver.InitialGuess,
			MaxIterations: solver.MaxIterations,
			Tolerance:     solver.Tolerance,
			Step:          solver.Step,

			MaxIterationsLimit: 10 * irr.DefaultMaxIterations,
			MaxCashFlows:       1000,
		},
		Sailor: SailorConfig{
			StartPosition:  params.StartPosition,
			TowardsEdge:    params.TowardsEdge,
			Simulations:    params.Simulations,
			MaxSteps:       params.MaxSteps,
			MaxSimulations: sailor.DefaultMaxSimulations,
			MaxStepsLimit:  sailor.DefaultMaxStepsLimit,
		},
		Cache: CacheConfig{
			TTL:             Duration{time.Hour},
			CleanupInterval: Duration{5 * time.Minute},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path means defaults plus environment.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv(os.Getenv)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked decodes the file over the defaults without validating.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(raw), c); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file type %q", filepath.Ext(path))
	}
	return c, nil
}

// ApplyEnv overlays API_PORT, API_ENV, STATIC_DIR and LOG_LEVEL when set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("API_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("API_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := getenv("STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("server.port %q is not a valid port", c.Server.Port)
	}
	if c.Server.CompareWorkers <= 0 {
		return errors.New("server.compare_workers must be > 0")
	}
	if c.Server.MaxScenarios <= 0 {
		return errors.New("server.max_scenarios must be > 0")
	}
	if err := c.Solver.ToIRR().Validate(); err != nil {
		return fmt.Errorf("solver config invalid: %w", err)
	}
	if c.Solver.MaxCashFlows <= 0 {
		return errors.New("solver.max_cash_flows must be > 0")
	}
	if c.Solver.MaxIterations > c.Solver.MaxIterationsLimit {
		return fmt.Errorf("solver.max_iterations %d exceeds solver.max_iterations_limit %d",
			c.Solver.MaxIterations, c.Solver.MaxIterationsLimit)
	}
	if c.Sailor.MaxSimulations <= 0 || c.Sailor.MaxStepsLimit <= 0 {
		return errors.New("sailor.max_simulations and sailor.max_steps_limit must be > 0")
	}
	if err := c.Sailor.ToParams().Validate(c.Sailor.Limits()); err != nil {
		return fmt.Errorf("sailor config invalid: %w", err)
	}
	if c.Cache.TTL.Duration <= 0 || c.Cache.CleanupInterval.Duration <= 0 {
		return errors.New("cache.ttl and cache.cleanup_interval must be > 0")
	}
	return nil
}

// Production reports whether the server runs with API_ENV=production semantics.
func (c *Config) Production() bool {
	return c.Server.Env == "production"
}

func (s SolverConfig) ToIRR() irr.Config {
	return irr.Config{
		InitialGuess:  s.InitialGuess,
		MaxIterations: s.MaxIterations,
		Tolerance:     s.Tolerance,
		Step:          s.Step,
		RederiveEvery: s.RederiveEvery,
	}
}

func (s SailorConfig) Limits() sailor.Limits {
	return sailor.Limits{
		MaxSimulations: s.MaxSimulations,
		MaxSteps:       s.MaxStepsLimit,
	}
}

func (s SailorConfig) ToParams() sailor.Params {
	return sailor.Params{
		StartPosition: s.StartPosition,
		TowardsEdge:   s.TowardsEdge,
		Simulations:   s.Simulations,
		MaxSteps:      s.MaxSteps,
	}
}
