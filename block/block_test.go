// SPDX-License-Identifier: MIT
package block_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/cflr/block"
	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/optimized"
	"github.com/stretchr/testify/require"
)

func mustSpace(t *testing.T, n, b int) block.Space {
	t.Helper()
	s, err := block.NewSpace(n, b)
	require.NoError(t, err)

	return s
}

func randomCell(t *testing.T, s block.Space, density float64, seed int64) *matrix.Bool {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := s.NewCell()
	for i := 0; i < s.N(); i++ {
		for j := 0; j < s.N(); j++ {
			if rng.Float64() < density {
				require.NoError(t, m.Set(i, j))
			}
		}
	}

	return m
}

func randomCells(t *testing.T, s block.Space, seed int64) []*matrix.Bool {
	t.Helper()
	cells := make([]*matrix.Bool, s.BlockCount())
	for k := range cells {
		cells[k] = randomCell(t, s, 0.3, seed+int64(k))
	}

	return cells
}

func mxm(t *testing.T, a, b *matrix.Bool) *matrix.Bool {
	t.Helper()
	p, err := matrix.Mxm(a, b, matrix.AnyPair)
	require.NoError(t, err)

	return p
}

func requireBlocks(t *testing.T, s block.Space, v *matrix.Bool, want []*matrix.Bool) {
	t.Helper()
	got, err := s.Blocks(v)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for k := range want {
		require.Truef(t, want[k].Equal(got[k]), "block %d: want %v got %v", k, want[k], got[k])
	}
}

func TestNewSpace(t *testing.T) {
	t.Parallel()

	_, err := block.NewSpace(-1, 1)
	require.ErrorIs(t, err, block.ErrBadSpace)
	_, err = block.NewSpace(3, 0)
	require.ErrorIs(t, err, block.ErrBadSpace)

	s := mustSpace(t, 3, 2)
	require.Equal(t, 3, s.N())
	require.Equal(t, 2, s.BlockCount())
}

func TestSpace_Classification(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 3, 2)
	tests := []struct {
		rows, cols int
		cell, vec  bool
		orient     block.Orientation
	}{
		{3, 3, true, false, 0},
		{6, 3, false, true, block.Vertical},
		{3, 6, false, true, block.Horizontal},
		{6, 6, false, false, 0},
	}
	for _, tc := range tests {
		require.Equal(t, tc.cell, s.IsCell(tc.rows, tc.cols))
		require.Equal(t, tc.vec, s.IsVector(tc.rows, tc.cols))
		if tc.vec {
			o, ok := s.Orientation(tc.rows, tc.cols)
			require.True(t, ok)
			require.Equal(t, tc.orient, o)
		}
	}

	// with one block the vector shapes coincide with the cell
	one := mustSpace(t, 3, 1)
	require.True(t, one.IsCell(3, 3))
	require.False(t, one.IsVector(3, 3))
}

func TestSpace_StackBlocksRotate(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 4, 3)
	cells := randomCells(t, s, 1)
	v, err := s.Stack(cells)
	require.NoError(t, err)
	r, c := v.Shape()
	o, ok := s.Orientation(r, c)
	require.True(t, ok)
	require.Equal(t, block.Vertical, o)
	requireBlocks(t, s, v, cells)

	h, err := s.Rotate(v, block.Horizontal)
	require.NoError(t, err)
	require.Equal(t, 4, h.Rows())
	require.Equal(t, 12, h.Cols())
	require.Equal(t, v.NVals(), h.NVals())
	requireBlocks(t, s, h, cells)

	back, err := s.Rotate(h, block.Vertical)
	require.NoError(t, err)
	require.True(t, v.Equal(back))

	same, err := s.Rotate(v, block.Vertical)
	require.NoError(t, err)
	require.Same(t, v, same)

	_, err = s.Rotate(s.NewCell(), block.Horizontal)
	require.ErrorIs(t, err, block.ErrNotBlockShape)
}

func TestSpace_Errors(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 2, 3)
	_, err := s.Rotate(matrix.NewBool(5, 5), block.Vertical)
	require.ErrorIs(t, err, block.ErrNotBlockShape)
	_, err = s.Stack([]*matrix.Bool{s.NewCell()})
	require.ErrorIs(t, err, block.ErrBlockCount)
	_, err = s.Stack([]*matrix.Bool{s.NewCell(), s.NewCell(), matrix.NewBool(1, 1)})
	require.ErrorIs(t, err, block.ErrNotBlockShape)
	_, err = s.Reduce(s.NewVector(block.Vertical), matrix.Monoid{})
	require.ErrorIs(t, err, matrix.ErrUnknownMonoid)
	_, err = s.Blocks(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSpace_Reduce(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 3, 4)
	cells := randomCells(t, s, 7)
	want := s.NewCell()
	for _, c := range cells {
		require.NoError(t, want.IAdd(c, matrix.LOr))
	}
	v, err := s.Stack(cells)
	require.NoError(t, err)
	for _, o := range []block.Orientation{block.Vertical, block.Horizontal} {
		rv, err := s.Rotate(v, o)
		require.NoError(t, err)
		got, err := s.Reduce(rv, matrix.LOr)
		require.NoError(t, err)
		require.True(t, want.Equal(got), o.String())
	}

	cell := randomCell(t, s, 0.5, 3)
	got, err := s.Reduce(cell, matrix.LOr)
	require.NoError(t, err)
	require.Same(t, cell, got)
}

func TestSpace_ToBlockDiag(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 3, 2)
	cells := randomCells(t, s, 11)
	v, err := s.Stack(cells)
	require.NoError(t, err)
	h, err := s.Rotate(v, block.Horizontal)
	require.NoError(t, err)

	for _, vec := range []*matrix.Bool{v, h} {
		d, err := s.ToBlockDiag(vec)
		require.NoError(t, err)
		require.Equal(t, 6, d.Rows())
		require.Equal(t, 6, d.Cols())
		require.Equal(t, vec.NVals(), d.NVals())
		for k, c := range cells {
			c.Each(func(i, j int) { require.True(t, d.Has(k*3+i, k*3+j)) })
		}
	}
}

func TestSpace_Repeat(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 3, 3)
	c := randomCell(t, s, 0.4, 5)
	v, err := s.Repeat(c)
	require.NoError(t, err)
	requireBlocks(t, s, v, []*matrix.Bool{c, c, c})
}

// TestWrap_Products checks every cell/vector product against per-block
// products, with and without swapped operands.
func TestWrap_Products(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 4, 3)
	recipe := optimized.AllLayers.Recipe()
	cellA := randomCell(t, s, 0.3, 21)
	cellsV := randomCells(t, s, 31)
	cellsW := randomCells(t, s, 41)
	v, err := s.Stack(cellsV)
	require.NoError(t, err)
	w, err := s.Stack(cellsW)
	require.NoError(t, err)
	wh, err := s.Rotate(w, block.Horizontal)
	require.NoError(t, err)

	perBlock := func(f func(k int) *matrix.Bool) []*matrix.Bool {
		out := make([]*matrix.Bool, s.BlockCount())
		for k := range out {
			out[k] = f(k)
		}
		return out
	}

	tests := []struct {
		name  string
		this  *matrix.Bool
		other *matrix.Bool
		swap  bool
		want  []*matrix.Bool
	}{
		{"cell×vector", cellA, v, false, perBlock(func(k int) *matrix.Bool { return mxm(t, cellA, cellsV[k]) })},
		{"vector×cell", cellA, v, true, perBlock(func(k int) *matrix.Bool { return mxm(t, cellsV[k], cellA) })},
		{"vector·cell", v, cellA, false, perBlock(func(k int) *matrix.Bool { return mxm(t, cellsV[k], cellA) })},
		{"cell·vector", v, cellA, true, perBlock(func(k int) *matrix.Bool { return mxm(t, cellA, cellsV[k]) })},
		{"vector·vector", v, w, false, perBlock(func(k int) *matrix.Bool { return mxm(t, cellsV[k], cellsW[k]) })},
		{"vector·vector swapped", v, wh, true, perBlock(func(k int) *matrix.Bool { return mxm(t, cellsW[k], cellsV[k]) })},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := s.Wrap(recipe(tc.this.Clone()))
			got, err := m.Mxm(tc.other, matrix.AnyPair, tc.swap)
			require.NoError(t, err)
			requireBlocks(t, s, got, tc.want)
			require.True(t, tc.this.Equal(m.ToUnoptimized()) || sameVector(t, s, tc.this, m.ToUnoptimized()))
		})
	}
}

// sameVector compares two block vectors regardless of orientation.
func sameVector(t *testing.T, s block.Space, a, b *matrix.Bool) bool {
	t.Helper()
	rb, err := s.Rotate(b, block.Vertical)
	require.NoError(t, err)
	ra, err := s.Rotate(a, block.Vertical)
	require.NoError(t, err)

	return ra.Equal(rb)
}

func TestWrap_IAddAndRSub(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 3, 2)
	recipe := optimized.Layers{Empty: true}.Recipe()

	// cell receiving a vector folds all blocks
	cells := randomCells(t, s, 51)
	v, err := s.Stack(cells)
	require.NoError(t, err)
	cm := s.Wrap(recipe(s.NewCell()))
	require.NoError(t, cm.IAdd(v, matrix.Any))
	want, err := s.Reduce(v, matrix.Any)
	require.NoError(t, err)
	require.True(t, want.Equal(cm.ToUnoptimized()))
	require.Panics(t, func() { _, _ = cm.RSub(v, matrix.ComplementMask) })

	// vector receiving a cell adds it to every block
	vm := s.Wrap(recipe(s.NewVector(block.Vertical)))
	c := randomCell(t, s, 0.5, 61)
	require.NoError(t, vm.IAdd(c, matrix.Any))
	requireBlocks(t, s, vm.ToUnoptimized(), []*matrix.Bool{c, c})

	// rotate the vector (first rotation drops the vertical copy) and keep adding
	_, err = vm.Mxm(s.NewCell(), matrix.AnyPair, true)
	require.NoError(t, err)
	require.NoError(t, vm.IAdd(v, matrix.Any))
	wantV := make([]*matrix.Bool, 2)
	for k := range wantV {
		wantV[k], err = matrix.EwiseAdd(c, cells[k], matrix.Any)
		require.NoError(t, err)
	}
	requireBlocks(t, s, vm.ToUnoptimized(), wantV)

	// RSub with a vertical operand is rotated to the kept orientation
	other, err := s.Stack([]*matrix.Bool{s.NewCell(), randomCell(t, s, 0.9, 71)})
	require.NoError(t, err)
	fresh, err := vm.RSub(other, matrix.ComplementMask)
	require.NoError(t, err)
	freshBlocks, err := s.Blocks(fresh)
	require.NoError(t, err)
	otherBlocks, err := s.Blocks(other)
	require.NoError(t, err)
	wantFresh, err := matrix.Minus(otherBlocks[1], wantV[1])
	require.NoError(t, err)
	require.True(t, wantFresh.Equal(freshBlocks[1]))
	require.True(t, freshBlocks[0].IsEmpty())
}

func TestWrap_PanicsOnForeignShape(t *testing.T) {
	t.Parallel()

	s := mustSpace(t, 3, 2)
	require.Panics(t, func() { s.Wrap(optimized.NewAdapter(matrix.NewBool(5, 5))) })
}

func ExampleSpace_Rotate() {
	s, _ := block.NewSpace(2, 2)
	v := s.NewVector(block.Vertical)
	_ = v.Set(3, 0) // block 1, row 1, column 0
	h, _ := s.Rotate(v, block.Horizontal)
	fmt.Println(h.Rows(), h.Cols(), h.Pairs())
	// Output:
	// 2 4 [[1 2]]
}
