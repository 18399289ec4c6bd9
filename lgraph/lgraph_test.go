// SPDX-License-Identifier: MIT
package lgraph_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/cflr/block"
	"github.com/katalvlaran/cflr/grammar"
	"github.com/katalvlaran/cflr/lgraph"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/optimized"
	"github.com/stretchr/testify/require"
)

const fields = `
0 1 a
1 2 a
0 1 load_i 2
2 0 store_i
`

func sym(label string) grammar.Symbol { return grammar.NewSymbol(label) }

func TestRead(t *testing.T) {
	t.Parallel()

	g, err := lgraph.Read(strings.NewReader(fields))
	require.NoError(t, err)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.Space().BlockCount())
	require.Equal(t, []grammar.Symbol{sym("a"), sym("load_i"), sym("store_i")}, g.Symbols())
	require.Equal(t, 4, g.NVals())

	a := g.Get(sym("a"))
	require.Equal(t, [][2]int{{0, 1}, {1, 2}}, a.Pairs())

	load := g.Get(sym("load_i"))
	require.Equal(t, 9, load.Rows())
	require.Equal(t, 3, load.Cols())
	require.True(t, load.Has(0+2*3, 1))

	require.True(t, g.Get(sym("store_i")).Has(2, 0))
	require.True(t, g.Get(sym("missing")).IsEmpty())
	require.Equal(t, 9, g.Get(sym("missing_i")).Rows())
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"too few fields", "0 1\n", lgraph.ErrMalformedEdge},
		{"too many fields", "0 1 a 0 0\n", lgraph.ErrMalformedEdge},
		{"bad id", "x 1 a\n", lgraph.ErrMalformedEdge},
		{"negative id", "0 -1 a\n", lgraph.ErrMalformedEdge},
		{"bad index", "0 1 a_i q\n", lgraph.ErrMalformedEdge},
		{"index on plain label", "0 1 a 1\n", lgraph.ErrIndexOnPlainLabel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := lgraph.Read(strings.NewReader(tc.input))
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}

	_, err := lgraph.Read(strings.NewReader("0 1 a\n0 1 a 1\n"))
	require.ErrorContains(t, err, "_i")
}

func TestEmptyGraph(t *testing.T) {
	t.Parallel()

	g, err := lgraph.Read(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, 1, g.Space().BlockCount())
	require.Empty(t, g.Symbols())
}

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := lgraph.Read(strings.NewReader(fields))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf))
	back, err := lgraph.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Symbols(), back.Symbols())
	for _, s := range g.Symbols() {
		require.True(t, g.Get(s).Equal(back.Get(s)), s.String())
	}

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(fields), 0o600))
	fromFile, err := lgraph.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, g.NVals(), fromFile.NVals())
}

func TestSet_ChecksShape(t *testing.T) {
	t.Parallel()

	s, err := block.NewSpace(2, 3)
	require.NoError(t, err)
	g := lgraph.New(s)
	require.NoError(t, g.Set(sym("a"), s.NewCell()))
	require.NoError(t, g.Set(sym("a_i"), s.NewVector(block.Horizontal)))
	require.ErrorIs(t, g.Set(sym("a"), s.NewVector(block.Vertical)), lgraph.ErrShape)
	require.ErrorIs(t, g.Set(sym("a_i"), s.NewCell()), lgraph.ErrShape)
	require.ErrorIs(t, g.Set(sym("a"), nil), matrix.ErrNilMatrix)
}

func TestExplode(t *testing.T) {
	t.Parallel()

	g, err := lgraph.Read(strings.NewReader(fields))
	require.NoError(t, err)
	e, err := g.Explode()
	require.NoError(t, err)
	require.Equal(t, 1, e.Space().BlockCount())
	require.Equal(t, []grammar.Symbol{sym("a"), sym("load_i_2"), sym("store_i_0")}, e.Symbols())
	require.Equal(t, [][2]int{{0, 1}}, e.Get(sym("load_i_2")).Pairs())
	require.Equal(t, g.NVals(), e.NVals())
}

// TestExplode_SingleBlock covers indexed labels in a graph whose block
// count is one: they are still renamed to their block-0 symbol.
func TestExplode_SingleBlock(t *testing.T) {
	t.Parallel()

	g, err := lgraph.Read(strings.NewReader("0 1 load_i\n"))
	require.NoError(t, err)
	e, err := g.Explode()
	require.NoError(t, err)
	require.Equal(t, []grammar.Symbol{sym("load_i_0")}, e.Symbols())
}

func TestOptimized_MxmAndRSub(t *testing.T) {
	t.Parallel()

	g, err := lgraph.Read(strings.NewReader("0 1 a\n1 2 b\n"))
	require.NoError(t, err)
	gr, err := grammar.Read(strings.NewReader("S a b\nCount:\nS\n"))
	require.NoError(t, err)

	for _, ls := range []optimized.Layers{{}, optimized.AllLayers} {
		o, err := lgraph.FromUnoptimized(g, ls.Recipe())
		require.NoError(t, err)
		require.Equal(t, 2, o.NVals())
		require.True(t, o.Has(sym("a")))
		require.False(t, o.Has(sym("S")))

		acc, err := o.Mxm(g, gr, matrix.AnyPair, nil, false)
		require.NoError(t, err)
		require.Equal(t, [][2]int{{0, 2}}, acc.Get(sym("S")).Pairs())

		racc, err := o.RMxm(g, gr, matrix.AnyPair, nil)
		require.NoError(t, err)
		require.Equal(t, [][2]int{{0, 2}}, racc.Get(sym("S")).Pairs())

		plain, err := acc.ToUnoptimized()
		require.NoError(t, err)
		fresh, err := acc.RSub(plain, matrix.ComplementMask)
		require.NoError(t, err)
		require.Equal(t, 0, fresh.NVals())

		fresh, err = o.EmptyCopy().RSub(plain, matrix.ComplementMask)
		require.NoError(t, err)
		require.Equal(t, 1, fresh.NVals())
		require.Equal(t, map[grammar.Symbol]int{sym("a"): 1, sym("b"): 1}, o.NValsBySymbol())
	}
}

func TestOptimized_ToUnoptimizedIsVertical(t *testing.T) {
	t.Parallel()

	g, err := lgraph.Read(strings.NewReader("0 1 a\n1 0 b_i 1\n"))
	require.NoError(t, err)
	gr, err := grammar.Read(strings.NewReader("X_i a b_i\nCount:\nS\n"))
	require.NoError(t, err)
	o, err := lgraph.FromUnoptimized(g, optimized.AllLayers.Recipe())
	require.NoError(t, err)
	// a (cell) × b_i (vector) rotates b_i to horizontal inside the product
	acc, err := o.Mxm(g, gr, matrix.AnyPair, nil, false)
	require.NoError(t, err)
	out, err := acc.ToUnoptimized()
	require.NoError(t, err)
	x := out.Get(sym("X_i"))
	r, c := x.Shape()
	orient, ok := out.Space().Orientation(r, c)
	require.True(t, ok)
	require.Equal(t, block.Vertical, orient)
	// block 1: a(0→1) then b_1(1→0) gives 0→0
	require.True(t, x.Has(1*2+0, 0))
	require.Equal(t, 1, x.NVals())
}
