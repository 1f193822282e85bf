// Package config holds the settings of the wordgraph command: analysis
// parameters, random seed, output files, and logging.
//
// Precedence, lowest first: Default(), YAML/JSON file, .env file and process
// environment (WORDGRAPH_*), command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordgraph/pagerank"
)

var (
	// ErrReadConfig is returned when a config file exists but cannot be read or parsed.
	ErrReadConfig = errors.New("config: cannot read config file")

	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDGRAPH_"

// Config is the full configuration.
type Config struct {
	// Analysis contains PageRank parameters.
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`

	// Random controls the randomized commands (generate, walk).
	Random RandomConfig `json:"random" yaml:"random"`

	// Output names the files written by walk and dot.
	Output OutputConfig `json:"output" yaml:"output"`

	// Log configures the logger.
	Log LogConfig `json:"log" yaml:"log"`
}

// AnalysisConfig contains PageRank settings.
type AnalysisConfig struct {
	Damping       float64 `json:"damping" yaml:"damping"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations"`
	Epsilon       float64 `json:"epsilon" yaml:"epsilon"`
}

// RandomConfig contains the seed for randomized commands. 0 means a fresh
// clock-based seed on every run.
type RandomConfig struct {
	Seed int64 `json:"seed" yaml:"seed"`
}

// OutputConfig contains output file locations.
type OutputConfig struct {
	WalkFile string `json:"walk_file" yaml:"walk_file"`
	DotFile  string `json:"dot_file" yaml:"dot_file"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "text" or "json"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Analysis: AnalysisConfig{
			Damping:       pagerank.DefaultDampingFactor,
			MaxIterations: pagerank.DefaultMaxIterations,
			Epsilon:       pagerank.DefaultEpsilon,
		},
		Output: OutputConfig{
			WalkFile: "random_walk.txt",
			DotFile:  "graph.dot",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load merges defaults, the file at path (optional; a missing file is not an
// error), .env files and the environment, then validates the result.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	LoadDotEnv(envFiles...)
	ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("%w: %s: yaml: %v, json: %v", ErrReadConfig, path, err, jsonErr)
		}
	}

	return nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. With no names it tries ./.env.
// Missing files are ignored.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}
}

// ApplyEnv overlays WORDGRAPH_* variables. Unparsable numbers are ignored.
func ApplyEnv(cfg *Config) {
	if v, ok := lookup("DAMPING"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Analysis.Damping = f
		}
	}
	if v, ok := lookup("MAX_ITERATIONS"); ok {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.MaxIterations = i
		}
	}
	if v, ok := lookup("EPSILON"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Analysis.Epsilon = f
		}
	}
	if v, ok := lookup("SEED"); ok {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Random.Seed = i
		}
	}
	if v, ok := lookup("WALK_FILE"); ok {
		cfg.Output.WalkFile = v
	}
	if v, ok := lookup("DOT_FILE"); ok {
		cfg.Output.DotFile = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Analysis.Damping < 0 || c.Analysis.Damping > 1 {
		return fmt.Errorf("%w: damping must be in [0, 1], got %v", ErrInvalidConfig, c.Analysis.Damping)
	}
	if c.Analysis.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be >= 1", ErrInvalidConfig)
	}
	if c.Analysis.Epsilon <= 0 {
		return fmt.Errorf("%w: epsilon must be > 0", ErrInvalidConfig)
	}
	if c.Output.WalkFile == "" {
		return fmt.Errorf("%w: walk_file must not be empty", ErrInvalidConfig)
	}
	if c.Output.DotFile == "" {
		return fmt.Errorf("%w: dot_file must not be empty", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// PageRankOptions converts the analysis section.
func (a AnalysisConfig) PageRankOptions() pagerank.Options {
	return pagerank.Options{
		DampingFactor: a.Damping,
		MaxIterations: a.MaxIterations,
		Epsilon:       a.Epsilon,
	}
}
