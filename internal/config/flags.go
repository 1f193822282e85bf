package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by BindFlags and ApplyFlags.
const (
	FlagSeed          = "seed"
	FlagWalkFile      = "walk-file"
	FlagDotFile       = "dot-file"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
	FlagDamping       = "damping"
	FlagMaxIterations = "max-iterations"
	FlagEpsilon       = "epsilon"
)

// BindFlags registers every overridable setting on fs, with Default() values
// shown as defaults.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int64(FlagSeed, d.Random.Seed, "seed for generate and walk (0 = random each run)")
	fs.String(FlagWalkFile, d.Output.WalkFile, "file the random walk is written to")
	fs.String(FlagDotFile, d.Output.DotFile, "file the DOT export is written to")
	fs.String(FlagLogLevel, d.Log.Level, "log level (trace, debug, info, warn, error)")
	fs.String(FlagLogFormat, d.Log.Format, "log format (text or json)")
	fs.Float64(FlagDamping, d.Analysis.Damping, "PageRank damping factor")
	fs.Int(FlagMaxIterations, d.Analysis.MaxIterations, "PageRank iteration cap")
	fs.Float64(FlagEpsilon, d.Analysis.Epsilon, "PageRank convergence threshold")
}

// ApplyFlags copies the flags the user actually set onto cfg. Flags left at
// their defaults do not override file or environment values.
func ApplyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var err error
	if fs.Changed(FlagSeed) {
		if cfg.Random.Seed, err = fs.GetInt64(FlagSeed); err != nil {
			return err
		}
	}
	if fs.Changed(FlagWalkFile) {
		if cfg.Output.WalkFile, err = fs.GetString(FlagWalkFile); err != nil {
			return err
		}
	}
	if fs.Changed(FlagDotFile) {
		if cfg.Output.DotFile, err = fs.GetString(FlagDotFile); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogFormat) {
		if cfg.Log.Format, err = fs.GetString(FlagLogFormat); err != nil {
			return err
		}
	}
	if fs.Changed(FlagDamping) {
		if cfg.Analysis.Damping, err = fs.GetFloat64(FlagDamping); err != nil {
			return err
		}
	}
	if fs.Changed(FlagMaxIterations) {
		if cfg.Analysis.MaxIterations, err = fs.GetInt(FlagMaxIterations); err != nil {
			return err
		}
	}
	if fs.Changed(FlagEpsilon) {
		if cfg.Analysis.Epsilon, err = fs.GetFloat64(FlagEpsilon); err != nil {
			return err
		}
	}

	return cfg.Validate()
}
