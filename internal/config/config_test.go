package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/internal/config"
	"github.com/katalvlaran/wordgraph/pagerank"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefault_IsValid(t *testing.T) {
	d := config.Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, "random_walk.txt", d.Output.WalkFile)
	assert.Equal(t, pagerank.DefaultOptions().DampingFactor, d.Analysis.PageRankOptions().DampingFactor)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "wordgraph.yaml", `
analysis:
  damping: 0.5
  max_iterations: 20
random:
  seed: 7
output:
  dot_file: out.dot
log:
  level: debug
`)
	cfg, err := config.Load(p, filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Analysis.Damping)
	assert.Equal(t, 20, cfg.Analysis.MaxIterations)
	assert.Equal(t, pagerank.DefaultEpsilon, cfg.Analysis.Epsilon, "unset keys keep defaults")
	assert.Equal(t, int64(7), cfg.Random.Seed)
	assert.Equal(t, "out.dot", cfg.Output.DotFile)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_JSONFallback(t *testing.T) {
	p := writeFile(t, "wordgraph.json", `{"random": {"seed": 3}, "log": {"format": "json"}}`)
	cfg, err := config.Load(p, filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.Random.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	p := writeFile(t, "bad.yaml", "analysis: [unclosed")
	_, err := config.Load(p)
	assert.ErrorIs(t, err, config.ErrReadConfig)

	p = writeFile(t, "invalid.yaml", "analysis:\n  damping: 3\n")
	_, err = config.Load(p, filepath.Join(t.TempDir(), "none.env"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "wordgraph.yaml", "random:\n  seed: 7\n")
	t.Setenv("WORDGRAPH_SEED", "11")
	t.Setenv("WORDGRAPH_MAX_ITERATIONS", "not-a-number")
	t.Setenv("WORDGRAPH_LOG_FORMAT", "json")

	cfg, err := config.Load(p, filepath.Join(t.TempDir(), "none.env"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), cfg.Random.Seed)
	assert.Equal(t, pagerank.DefaultMaxIterations, cfg.Analysis.MaxIterations, "garbage ignored")
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Setenv("WORDGRAPH_WALK_FILE", "")
	require.NoError(t, os.Unsetenv("WORDGRAPH_WALK_FILE"))
	env := writeFile(t, ".env", "WORDGRAPH_WALK_FILE=walk.out\n")

	cfg, err := config.Load("", env)
	require.NoError(t, err)
	assert.Equal(t, "walk.out", cfg.Output.WalkFile)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"damping":    func(c *config.Config) { c.Analysis.Damping = -0.1 },
		"iterations": func(c *config.Config) { c.Analysis.MaxIterations = 0 },
		"epsilon":    func(c *config.Config) { c.Analysis.Epsilon = 0 },
		"walk file":  func(c *config.Config) { c.Output.WalkFile = "" },
		"dot file":   func(c *config.Config) { c.Output.DotFile = "" },
		"level":      func(c *config.Config) { c.Log.Level = "loud" },
		"format":     func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestFlags_OnlyChangedOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--seed", "5", "--damping", "0.9"}))

	cfg := config.Default()
	cfg.Output.DotFile = "from-file.dot"
	require.NoError(t, config.ApplyFlags(fs, &cfg))
	assert.Equal(t, int64(5), cfg.Random.Seed)
	assert.Equal(t, 0.9, cfg.Analysis.Damping)
	assert.Equal(t, "from-file.dot", cfg.Output.DotFile, "untouched flag keeps earlier value")
}

func TestFlags_InvalidValueRejected(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-format", "yaml"}))

	cfg := config.Default()
	assert.ErrorIs(t, config.ApplyFlags(fs, &cfg), config.ErrInvalidConfig)
}
