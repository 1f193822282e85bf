package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph/augment"
	"github.com/katalvlaran/wordgraph/bfs"
	"github.com/katalvlaran/wordgraph/bridge"
	"github.com/katalvlaran/wordgraph/dijkstra"
	"github.com/katalvlaran/wordgraph/dot"
	"github.com/katalvlaran/wordgraph/internal/logx"
	"github.com/katalvlaran/wordgraph/pagerank"
	"github.com/katalvlaran/wordgraph/report"
	"github.com/katalvlaran/wordgraph/tokenize"
	"github.com/katalvlaran/wordgraph/walk"
)

const allScoresHeader = "PageRank values of all words (sorted):\n"

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every word and weighted edge of the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Graph(a.graph()))
			return err
		},
	}
}

func (a *app) bridgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bridge WORD1 WORD2",
		Short: "Find the words that sit between two words",
		Long: `A bridge word B links WORD1 to WORD2 when the text contains both
"WORD1 B" and "B WORD2". Bridges are listed in the order they were first seen.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := bridge.Find(a.graph(), args[0], args[1])
			_, err := fmt.Fprintln(cmd.OutOrStdout(), res.String())
			return err
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate TEXT...",
		Short: "Insert bridge words into a new text",
		Long: `For every pair of adjacent words in TEXT that has bridge words in the
graph, one of them is picked at random and inserted between the pair.
Use --seed for a reproducible result.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			var opts []augment.Option
			if a.cfg.Random.Seed != 0 {
				opts = append(opts, augment.WithSeed(a.cfg.Random.Seed))
			}
			res := augment.Generate(a.graph(), input, opts...)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Generated(input, res.String()))
			return err
		},
	}
}

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path WORD1 [WORD2]",
		Short: "Find the cheapest path between two words, or from one word to all others",
		Long: `Edge weights are costs: a pair that occurs often is a more expensive hop.
With one word, the cheapest path to every reachable word is printed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctxOpt := dijkstra.WithContext(cmd.Context())
			var out string
			if len(args) == 2 {
				out = dijkstra.ShortestPath(a.graph(), args[0], args[1], ctxOpt).String()
			} else {
				out = report.ShortestFrom(dijkstra.FromSource(a.graph(), args[0], ctxOpt))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (a *app) allPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allpaths WORD1 WORD2",
		Short: "List every path with the fewest hops between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.graph()
			if g.IsEmpty() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), bridge.NoGraphMessage)
				return err
			}
			w1, w2 := tokenize.Word(args[0]), tokenize.Word(args[1])
			paths := bfs.AllShortestPaths(g, w1, w2, bfs.WithContext(cmd.Context()))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.AllPaths(w1, w2, paths))
			return err
		},
	}
}

func (a *app) pageRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pagerank [WORD]",
		Short: "Rank words by weighted PageRank",
		Long: `Without WORD every word is listed, highest score first.
--damping, --max-iterations and --epsilon tune the computation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.graph()
			w := cmd.OutOrStdout()
			if g.IsEmpty() {
				_, err := fmt.Fprintln(w, bridge.NoGraphMessage)
				return err
			}

			res := pagerank.Compute(g,
				pagerank.WithOptions(a.cfg.Analysis.PageRankOptions()),
				pagerank.WithContext(cmd.Context()),
			)
			table := report.PageRankTable(pagerank.Sorted(res.Scores))
			if len(args) == 0 {
				_, err := fmt.Fprint(w, allScoresHeader+table)
				return err
			}

			word := tokenize.Word(args[0])
			score, ok := res.Scores[word]
			if !ok {
				_, err := fmt.Fprintln(w, report.PageRank(word, score, ok))
				return err
			}
			_, err := fmt.Fprint(w, report.PageRank(word, score, ok)+"\n\n"+allScoresHeader+table)
			return err
		},
	}
}

func (a *app) walkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk",
		Short: "Take a random walk along the edges and save it",
		Long: `The walk starts at a random word and follows random outgoing edges, more
frequent pairs being more likely, until it reaches a word without successors
or is about to reuse an edge. The walk is printed and written to --walk-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []walk.Option{walk.WithContext(cmd.Context())}
			if a.cfg.Random.Seed != 0 {
				opts = append(opts, walk.WithSeed(a.cfg.Random.Seed))
			}
			res := walk.Random(a.graph(), opts...)
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), report.Walk(res)); err != nil {
				return err
			}
			if res.Stop == walk.NoGraph {
				return nil
			}

			if err := os.WriteFile(a.cfg.Output.WalkFile, []byte(res.String()), 0o644); err != nil {
				return fmt.Errorf("write walk: %w", err)
			}
			logx.Logger(cmd.Context()).WithField("file", a.cfg.Output.WalkFile).Info("random walk saved")
			return nil
		},
	}
}

func (a *app) dotCmd() *cobra.Command {
	var (
		name   string
		stdout bool
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the graph in Graphviz DOT format",
		Long: `Writes the graph to --dot-file, or to standard output with --stdout.
Render it with: dot -Tpng graph.dot -o graph.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []dot.Option{dot.WithName(name)}
			if stdout {
				return dot.Write(cmd.OutOrStdout(), a.graph(), opts...)
			}

			f, err := os.Create(a.cfg.Output.DotFile)
			if err != nil {
				return fmt.Errorf("write dot: %w", err)
			}
			if err = dot.Write(f, a.graph(), opts...); err != nil {
				_ = f.Close()
				return fmt.Errorf("write dot: %w", err)
			}
			if err = f.Close(); err != nil {
				return fmt.Errorf("write dot: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "DOT graph written to %s\n", a.cfg.Output.DotFile)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "G", "graph name in the DOT header")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print to standard output instead of --dot-file")

	return cmd
}
