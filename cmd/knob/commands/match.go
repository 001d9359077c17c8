// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knob/codec"
	"github.com/katalvlaran/knob/match"
)

// MatchReport is the output of the match command.
type MatchReport struct {
	Count    int              `yaml:"count" json:"count" msgpack:"count"`
	Mappings []MappingDoc     `yaml:"mappings,omitempty" json:"mappings,omitempty" msgpack:"mappings,omitempty"`
	Images   []codec.Document `yaml:"images,omitempty" json:"images,omitempty" msgpack:"images,omitempty"`
}

// MappingDoc names one embedding by document keys: pattern key to target key.
type MappingDoc struct {
	Nodes map[string]string `yaml:"nodes" json:"nodes" msgpack:"nodes"`
	Edges map[string]string `yaml:"edges,omitempty" json:"edges,omitempty" msgpack:"edges,omitempty"`
}

func (a *app) matchCommand() *cobra.Command {
	var (
		patternFile string
		targetFile  string
		limit       int
		workers     int
		mappings    bool
		countOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Enumerate embeddings of a pattern into a target",
		Long: `Enumerate every embedding of the pattern graph into the target graph.

By default each embedding is printed as the image subgraph of the target.
With --mappings each embedding is printed as pattern key -> target key pairs.

Examples:
  knob match --pattern tri.yaml --target g.yaml
  knob match --pattern tri.yaml --target g.yaml --mappings --limit 10
  knob match --pattern tri.yaml --target g.json --count --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := load("pattern", patternFile)
			if err != nil {
				return err
			}
			target, err := load("target", targetFile)
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			start := time.Now()
			found, err := match.Collect(pattern.graph, target.graph,
				match.WithContext(ctx),
				match.WithLimit(limit),
				match.WithWorkers(workers),
			)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			slog.Debug("match finished", "embeddings", len(found), "elapsed", time.Since(start))

			report := MatchReport{Count: len(found)}
			if !countOnly {
				for _, m := range found {
					if mappings {
						report.Mappings = append(report.Mappings, mappingDoc(m, pattern.syms, target.syms))
						continue
					}
					image, err := target.graph.Subgraph(m.TargetNodes(), m.TargetEdges())
					if err != nil {
						return fmt.Errorf("match: image: %w", err)
					}
					report.Images = append(report.Images, codec.Encode(image, target.syms))
				}
			}

			return a.output(cmd, report)
		},
	}

	cmd.Flags().StringVarP(&patternFile, "pattern", "p", "", "pattern graph file (required)")
	cmd.Flags().StringVarP(&targetFile, "target", "t", "", "target graph file (required)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many embeddings (0 = all)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "parallel search workers")
	cmd.Flags().BoolVar(&mappings, "mappings", false, "print key mappings instead of image subgraphs")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of embeddings")

	return cmd
}

func mappingDoc(m match.Mapping, pattern, target *codec.Symbols) MappingDoc {
	doc := MappingDoc{Nodes: make(map[string]string, len(m.Nodes))}
	for p, t := range m.Nodes {
		doc.Nodes[pattern.NodeKey(p)] = target.NodeKey(t)
	}
	if len(m.Edges) > 0 {
		doc.Edges = make(map[string]string, len(m.Edges))
		for p, t := range m.Edges {
			doc.Edges[pattern.EdgeKey(p)] = target.EdgeKey(t)
		}
	}

	return doc
}
