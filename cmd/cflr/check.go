// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cflr/allpairs"
	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/setting"
)

// errMismatch reports that two configurations disagreed on the answer.
var errMismatch = errors.New("answers differ between configurations")

// variant is one (algorithm, settings) combination.
type variant struct {
	algo     allpairs.Algo
	settings []setting.Setting
}

func (v variant) describe() string {
	var on []string
	for _, s := range v.settings {
		if s.Enabled() {
			on = append(on, s.VarName())
		}
	}

	return fmt.Sprintf("%v", on)
}

// variants enumerates every algorithm with every on/off combination of
// the default settings.
func variants() []variant {
	n := len(setting.Defaults())
	var out []variant
	for _, algo := range allpairs.Algos() {
		for mask := 0; mask < 1<<n; mask++ {
			list := setting.Defaults()
			for i, s := range list {
				s.SetEnabled(mask&(1<<i) != 0)
			}
			out = append(out, variant{algo: algo, settings: list})
		}
	}

	return out
}

func (a *app) checkCmd() *cobra.Command {
	var graphPath, grammarPath string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Solve with every algorithm and setting combination and compare the answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lgraph.ReadFile(graphPath)
			if err != nil {
				return err
			}
			gr, err := grammar.ReadFile(grammarPath)
			if err != nil {
				return err
			}
			vs := variants()
			answers := make([]*matrix.Bool, len(vs))

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(runtime.GOMAXPROCS(0))
			for i, v := range vs {
				eg.Go(func() error {
					answer, err := allpairs.Solve(ctx, v.algo, g, gr, v.settings,
						allpairs.WithMatrixOptions(a.cfg.MatrixOptions()...))
					if err != nil {
						return fmt.Errorf("%s %s: %w", v.algo.Name(), v.describe(), err)
					}
					answers[i] = answer
					return nil
				})
			}
			if err = eg.Wait(); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGO\tSETTINGS\tNVALS\tSAME")
			mismatches := 0
			for i, v := range vs {
				same := answers[i].Equal(answers[0])
				if !same {
					mismatches++
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%v\n", v.algo.Name(), v.describe(), answers[i].NVals(), same)
			}
			if err = tw.Flush(); err != nil {
				return err
			}
			a.log.Info("check finished", "variants", len(vs), "mismatches", mismatches)
			if mismatches > 0 {
				return fmt.Errorf("%d of %d variants: %w", mismatches, len(vs), errMismatch)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "Graph file")
	cmd.Flags().StringVarP(&grammarPath, "grammar", "G", "", "CNF grammar file")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("grammar")

	return cmd
}
