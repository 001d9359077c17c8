// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knob/codec"
	"github.com/katalvlaran/knob/core"
	"github.com/katalvlaran/knob/edit"
)

// editFunc is the shape shared by edit.Graft and edit.Prune.
type editFunc func(host, donor *core.Graph, opts ...edit.Option) (*core.Graph, error)

func (a *app) graftCommand() *cobra.Command {
	return a.editCommand("graft", edit.Graft,
		"Add a donor's marked elements wherever its context matches the host",
		`Graft the donor into the host.

The donor context (the donor without its marked elements) is matched against
the host; for each embedding the marked nodes and edges are added, with edges
between context and marked parts attached to the matched host nodes.

Examples:
  knob graft --host g.yaml --donor bridge.yaml
  knob graft --host g.yaml --donor bridge.yaml --first -o g2.yaml`)
}

func (a *app) pruneCommand() *cobra.Command {
	return a.editCommand("prune", edit.Prune,
		"Remove a donor's marked elements wherever the donor matches the host",
		`Prune the donor from the host.

The whole donor is matched against the host; for each embedding the images of
the marked edges are removed and the images of the marked nodes are removed
together with every incident edge.

Examples:
  knob prune --host g.yaml --donor leaf.yaml
  knob prune --host g.yaml --donor leaf.yaml -F json`)
}

func (a *app) editCommand(name string, apply editFunc, short, long string) *cobra.Command {
	var (
		hostFile  string
		donorFile string
		first     bool
		workers   int
	)

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := load("host", hostFile)
			if err != nil {
				return err
			}
			donor, err := load("donor", donorFile)
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			policy := edit.UnionAll
			if first {
				policy = edit.FirstOnly
			}
			out, err := apply(host.graph, donor.graph,
				edit.WithContext(ctx),
				edit.WithPolicy(policy),
				edit.WithWorkers(workers),
			)
			if errors.Is(err, edit.ErrMismatch) {
				return fmt.Errorf("%s: no match: donor does not embed into host", name)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			slog.Debug(name+" finished", "policy", policy,
				"nodes", out.NodeCount(), "edges", out.EdgeCount())

			// Donor elements kept by graft retain their keys.
			syms := codec.NewSymbols()
			syms.Merge(host.syms)
			syms.Merge(donor.syms)

			return a.output(cmd, codec.Encode(out, syms))
		},
	}

	cmd.Flags().StringVarP(&hostFile, "host", "H", "", "host graph file (required)")
	cmd.Flags().StringVarP(&donorFile, "donor", "d", "", "donor graph file with marked elements (required)")
	cmd.Flags().BoolVar(&first, "first", false, "apply only the first embedding")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "parallel search workers")

	return cmd
}
