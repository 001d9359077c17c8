// SPDX-License-Identifier: MIT

// Package commands implements the knob subcommands on cobra.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knob/codec"
	"github.com/katalvlaran/knob/core"
)

// app carries the global flag values of one command tree.
type app struct {
	verbose    bool
	format     string
	outputFile string
	timeout    time.Duration
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "knob",
		Short: "Subgraph pattern matching and graph rewriting",
		Long: `knob - match pattern graphs against target graphs and rewrite graphs with patterns.

Graphs are documents (YAML, JSON or MessagePack) listing keyed nodes and
edges; elements flagged "marked: true" drive graft and prune.

Examples:
  # List every embedding of a pattern
  knob match --pattern triangle.yaml --target city.yaml --mappings

  # Attach the marked part of donor.yaml wherever its context matches
  knob graft --host city.yaml --donor bridge.yaml -o city2.yaml

  # Summarize a graph as JSON
  knob inspect city.yaml -F json

  # Generate a fixture
  knob gen grid 3 4 -o grid.yaml
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.initLogging(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVarP(&a.format, "format", "F", "yaml", "output format: yaml, json or msgpack")
	root.PersistentFlags().StringVarP(&a.outputFile, "output", "o", "", "output file (default: stdout)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "abort the search after this long (0 = no limit)")

	root.AddCommand(a.matchCommand())
	root.AddCommand(a.graftCommand())
	root.AddCommand(a.pruneCommand())
	root.AddCommand(a.inspectCommand())
	root.AddCommand(a.genCommand())

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) initLogging(w io.Writer) {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}

// context derives the command context, bounded by --timeout when set.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}

	return context.WithCancel(ctx)
}

// output writes v in the selected format to --output or the command's stdout.
func (a *app) output(cmd *cobra.Command, v any) error {
	f, err := codec.ParseFormat(a.format)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if a.outputFile != "" {
		file, err := os.Create(a.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	return codec.WriteValue(w, v, f)
}

// load reads a graph file and logs its size.
func load(role, path string) (*graphFile, error) {
	if path == "" {
		return nil, fmt.Errorf("--%s is required", role)
	}
	g, syms, err := codec.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", role, err)
	}
	slog.Debug("loaded graph", "role", role, "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return &graphFile{graph: g, syms: syms}, nil
}

// graphFile is a decoded graph together with its document keys.
type graphFile struct {
	graph *core.Graph
	syms  *codec.Symbols
}
