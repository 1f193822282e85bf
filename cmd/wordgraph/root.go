package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/internal/config"
	"github.com/katalvlaran/wordgraph/internal/logx"
	"github.com/katalvlaran/wordgraph/report"
	"github.com/katalvlaran/wordgraph/store"
)

// Input holds the root flags that are not part of config.Config.
type Input struct {
	file       string
	configPath string
	verbose    bool
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	input  Input
	cfg    config.Config
	store  *store.Store
	logger *log.Logger
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := newRootCommand(version).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(version string) *cobra.Command {
	a := &app{store: store.New(), cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "wordgraph",
		Short: "Analyze a text as a directed graph of adjacent words",
		Long: `wordgraph reads a text file, turns every pair of adjacent words into a
weighted directed edge, and answers questions about the resulting graph.

Words are lowercased; anything that is not an ASCII letter separates words.
Without --file the graph is empty and every query says so.

Examples:
  wordgraph -f story.txt show
  wordgraph -f story.txt bridge analyzed data
  wordgraph -f story.txt path scientist team
  wordgraph -f story.txt --seed 42 walk`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.input.file, "file", "f", "", "text file to build the graph from")
	pf.StringVar(&a.input.configPath, "config", "wordgraph.yaml", "config file (YAML or JSON); a missing file is ignored")
	pf.BoolVarP(&a.input.verbose, "verbose", "v", false, "verbose output")
	config.BindFlags(pf)

	rootCmd.AddCommand(
		a.showCmd(),
		a.bridgeCmd(),
		a.generateCmd(),
		a.pathCmd(),
		a.allPathsCmd(),
		a.pageRankCmd(),
		a.walkCmd(),
		a.dotCmd(),
	)

	return rootCmd
}

// setup resolves the configuration, installs the logger and loads the input
// file before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.input.configPath)
	if err != nil {
		return err
	}
	if err = config.ApplyFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = newLogger(cfg.Log, a.input.verbose, cmd.ErrOrStderr())
	ctx := logx.WithLogger(cmd.Context(), a.logger)
	cmd.SetContext(ctx)

	return a.load(ctx)
}

func (a *app) load(ctx context.Context) error {
	logger := logx.Logger(ctx)
	if a.input.file == "" {
		logger.Debug("no input file given, graph is empty")
		return nil
	}

	f, err := os.Open(a.input.file)
	if err != nil {
		return fmt.Errorf("%w: %v", builder.ErrSourceUnavailable, err)
	}
	defer f.Close()

	g, err := a.store.LoadReader(ctx, f)
	if err != nil {
		return err
	}
	logger.WithField("file", a.input.file).Info(report.Loaded(g))

	return nil
}

// graph is the currently loaded graph; never nil.
func (a *app) graph() *core.Graph {
	return a.store.Current()
}

func newLogger(c config.LogConfig, verbose bool, w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)

	level, err := log.ParseLevel(c.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	l.SetLevel(level)

	if c.Format == "json" {
		l.SetFormatter(&log.JSONFormatter{})
	} else {
		tty := isTerminal(w)
		l.SetFormatter(&log.TextFormatter{
			ForceColors:   tty,
			DisableColors: !tty,
			FullTimestamp: !tty,
		})
	}

	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
