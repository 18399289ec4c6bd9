// SPDX-License-Identifier: MIT
package setting_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/optimized"
	"github.com/katalvlaran/cflr/setting"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()

	list := setting.Defaults()
	want := []struct {
		varName, flag string
		enabled       bool
	}{
		{"optimize_empty", "--disable-optimize-empty", true},
		{"lazy_add", "--disable-lazy-add", true},
		{"optimize_format", "--disable-optimize-format", true},
		{"explode_indexes", "--disable-optimize-block-matrix", false},
	}
	require.Len(t, list, len(want))
	for i, w := range want {
		require.Equal(t, w.varName, list[i].VarName())
		require.Equal(t, w.flag, list[i].FlagName())
		require.Equal(t, w.enabled, list[i].Enabled())
		require.NotEmpty(t, list[i].Help())
		require.False(t, list[i].WasSpecifiedByUser())
		require.False(t, list[i].WasUsedByAlgo())
	}
	require.Equal(t, optimized.AllLayers, setting.Layers(list))
}

func TestApplyFlag(t *testing.T) {
	t.Parallel()

	list := setting.Defaults()
	lazy, ok := setting.ByVarName(list, "lazy_add")
	require.True(t, ok)
	lazy.ApplyFlag()
	require.False(t, lazy.Enabled())
	require.True(t, lazy.WasSpecifiedByUser())

	explode, ok := setting.ByVarName(list, "explode_indexes")
	require.True(t, ok)
	explode.ApplyFlag()
	require.True(t, explode.Enabled())

	require.Equal(t, optimized.Layers{Empty: true, Format: true}, setting.Layers(list))

	_, ok = setting.ByVarName(list, "nope")
	require.False(t, ok)
}

func TestLayers_OrderIndependent(t *testing.T) {
	t.Parallel()

	list := setting.Defaults()
	reversed := []setting.Setting{list[3], list[2], list[1], list[0]}
	require.Equal(t, setting.Layers(list), setting.Layers(reversed))
}

func TestClone(t *testing.T) {
	t.Parallel()

	list := setting.Defaults()
	list[0].ApplyFlag()
	list[0].MarkUsed()
	c := setting.Clone(list)
	require.False(t, c[0].Enabled())
	require.False(t, c[0].WasSpecifiedByUser())
	require.False(t, c[0].WasUsedByAlgo())
	require.True(t, c[1].Enabled())
}

func TestStrategy(t *testing.T) {
	t.Parallel()

	p, err := setting.Strategy(setting.Defaults())
	require.NoError(t, err)
	require.IsType(t, &setting.BlockMatrix{}, p)

	list := setting.Defaults()
	list[3].ApplyFlag()
	p, err = setting.Strategy(list)
	require.NoError(t, err)
	require.IsType(t, &setting.IndexExploding{}, p)
	require.True(t, list[3].WasUsedByAlgo())

	both := append(setting.Defaults(), setting.NewBlockMatrix())
	both[3].SetEnabled(true)
	_, err = setting.Strategy(both)
	require.ErrorIs(t, err, setting.ErrTooManyPreProcessors)
}

func TestPreprocess(t *testing.T) {
	t.Parallel()

	g, err := lgraph.FromEdges([]lgraph.Edge{
		{Src: 0, Dst: 1, Label: "a_i", Index: 0},
		{Src: 1, Dst: 2, Label: "a_i", Index: 1},
	})
	require.NoError(t, err)
	a := grammar.NewSymbol("a_i")
	s := grammar.NewSymbol("S")
	gr, err := grammar.New(s, nil, []grammar.SimpleRule{{LHS: s, RHS: a}}, nil)
	require.NoError(t, err)

	pg, pgr, err := setting.Preprocess(g, gr, setting.Defaults())
	require.NoError(t, err)
	require.Same(t, g, pg)
	require.Same(t, gr, pgr)

	list := setting.Defaults()
	list[3].ApplyFlag()
	pg, pgr, err = setting.Preprocess(g, gr, list)
	require.NoError(t, err)
	require.Equal(t, 1, pg.Space().BlockCount())
	require.True(t, pg.Get(a.At(0)).Has(0, 1))
	require.True(t, pg.Get(a.At(1)).Has(1, 2))
	require.Len(t, pgr.SimpleRules(), 2)
}

func TestReportUnused(t *testing.T) {
	t.Parallel()

	list := setting.Defaults()
	list[0].ApplyFlag()
	list[3].ApplyFlag()
	setting.Layers(list)

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	unused := setting.ReportUnused(list, log)
	require.Equal(t, []string{"--disable-optimize-block-matrix"}, unused)
	require.Contains(t, buf.String(), "--disable-optimize-block-matrix")
	require.NotContains(t, buf.String(), "--disable-optimize-empty")

	require.Nil(t, setting.ReportUnused(setting.Defaults(), nil))
}
