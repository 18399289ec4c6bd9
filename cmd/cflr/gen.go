// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cflr/builder"
	"github.com/katalvlaran/cflr/lgraph"
)

type genFlags struct {
	n, m, fields, depth int
	p                   float64
	seed                int64
	label               string
	out                 string
}

func (a *app) genCmd() *cobra.Command {
	var f genFlags
	cmd := &cobra.Command{
		Use:       "gen {path|cycle|complete|random|fields|balanced}",
		Short:     "Generate a labeled graph file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"path", "cycle", "complete", "random", "fields", "balanced"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := f.constructor(args[0])
			if err != nil {
				return err
			}
			edges, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(f.seed)}, ctor)
			if err != nil {
				return err
			}
			if f.out == "" {
				err = lgraph.WriteEdges(a.stdout, edges)
			} else {
				err = writeEdgesFile(f.out, edges)
			}
			if err != nil {
				return err
			}
			a.log.Info("generated", "kind", args[0], "edges", len(edges))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.n, "vertices", "n", 10, "Vertex count")
	fl.IntVarP(&f.m, "edges", "m", 20, "Edge count (fields)")
	fl.IntVar(&f.fields, "fields", 4, "Block count (fields)")
	fl.IntVar(&f.depth, "depth", 4, "Nesting depth (balanced)")
	fl.Float64VarP(&f.p, "probability", "p", 0.1, "Edge probability (random)")
	fl.Int64Var(&f.seed, "seed", 1, "Random seed")
	fl.StringVarP(&f.label, "label", "l", "a", "Edge label")
	fl.StringVarP(&f.out, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func (f genFlags) constructor(kind string) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(f.n, f.label), nil
	case "cycle":
		return builder.Cycle(f.n, f.label), nil
	case "complete":
		return builder.Complete(f.n, f.label), nil
	case "random":
		return builder.RandomSparse(f.n, f.p, f.label), nil
	case "fields":
		return builder.Fields(f.n, f.m, f.fields, "store_i", "load_i"), nil
	case "balanced":
		return builder.Balanced(f.depth, "open", "close"), nil
	default:
		return nil, fmt.Errorf("unknown graph kind %q", kind)
	}
}

// writeEdgesFile writes edges to path. A failed close is returned like a
// failed write.
func writeEdgesFile(path string, edges []lgraph.Edge) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = lgraph.WriteEdges(file, edges); err != nil {
		return errors.Join(err, file.Close())
	}

	return file.Close()
}
