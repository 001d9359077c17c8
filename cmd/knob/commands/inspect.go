// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knob/component"
)

// InspectReport summarizes one graph.
type InspectReport struct {
	Nodes       int    `yaml:"nodes" json:"nodes" msgpack:"nodes"`
	Edges       int    `yaml:"edges" json:"edges" msgpack:"edges"`
	MarkedNodes int    `yaml:"marked_nodes" json:"marked_nodes" msgpack:"marked_nodes"`
	MarkedEdges int    `yaml:"marked_edges" json:"marked_edges" msgpack:"marked_edges"`
	Loops       int    `yaml:"loops" json:"loops" msgpack:"loops"`
	Components  int    `yaml:"components" json:"components" msgpack:"components"`
	Compact     string `yaml:"compact" json:"compact" msgpack:"compact"`
}

func (a *app) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print counts, components and the compact form of a graph",
		Long: `Print a summary of a graph file.

Use "-" to read YAML from stdin.

Examples:
  knob inspect g.yaml
  cat g.yaml | knob inspect - -F json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load("file", args[0])
			if err != nil {
				return err
			}
			comps, err := component.Count(f.graph)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			st := f.graph.Stats()

			return a.output(cmd, InspectReport{
				Nodes:       st.NodeCount,
				Edges:       st.EdgeCount,
				MarkedNodes: st.MarkedNodeCount,
				MarkedEdges: st.MarkedEdgeCount,
				Loops:       st.LoopCount,
				Components:  comps,
				Compact:     f.graph.String(),
			})
		},
	}
}
