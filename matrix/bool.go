// SPDX-License-Identifier: MIT
// Package matrix: Bool constructors, accessors and in-place mutation.

package matrix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// NewBool creates an empty rows×cols matrix stored ByRow.
// Panics on negative dimensions (programmer error).
// Complexity: O(1).
func NewBool(rows, cols int) *Bool {
	return NewBoolFormat(rows, cols, ByRow)
}

// NewBoolFormat creates an empty rows×cols matrix stored in layout f.
// Zero-sized matrices are legal (an empty graph has no edges to store).
// Complexity: O(1).
func NewBoolFormat(rows, cols int, f Format) *Bool {
	if rows < 0 || cols < 0 {
		panic(panicNegativeShape)
	}
	if f != ByRow && f != ByCol {
		panic(panicUnknownFormat)
	}

	return &Bool{rows: rows, cols: cols, format: f, lines: make(map[int]*roaring.Bitmap)}
}

// NewBoolShape returns an empty matrix with the shape of m.
func NewBoolShape(m *Bool) *Bool {
	return NewBoolFormat(m.rows, m.cols, m.format)
}

// Identity returns the n×n identity relation.
// Complexity: O(n).
func Identity(n int) *Bool {
	m := NewBool(n, n)
	for i := 0; i < n; i++ {
		m.lines[i] = roaring.BitmapOf(uint32(i))
	}
	m.nvals = n

	return m
}

// FromCOO builds a rows×cols matrix from parallel coordinate slices.
// Duplicate coordinates collapse (boolean OR).
//
// Errors:
//   - ErrDimensionMismatch if len(ri) != len(ci).
//   - ErrOutOfRange if any coordinate falls outside the shape.
//
// Complexity: O(len(ri)).
func FromCOO(rows, cols int, ri, ci []int) (*Bool, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf("FromCOO", ErrBadShape)
	}
	if len(ri) != len(ci) {
		return nil, matrixErrorf("FromCOO", ErrDimensionMismatch)
	}
	m := NewBool(rows, cols)
	for k := range ri {
		if err := m.Set(ri[k], ci[k]); err != nil {
			return nil, matrixErrorf("FromCOO", err)
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Bool) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Bool) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Bool) Shape() (int, int) { return m.rows, m.cols }

// NVals returns the number of true entries. Complexity: O(1).
func (m *Bool) NVals() int { return m.nvals }

// IsEmpty reports whether m stores no entries.
func (m *Bool) IsEmpty() bool { return m.nvals == 0 }

// Format returns the storage layout.
func (m *Bool) Format() Format { return m.format }

// key maps a logical coordinate to (line, cross) in the current layout.
func (m *Bool) key(i, j int) (int, int) {
	if m.format == ByRow {
		return i, j
	}

	return j, i
}

// Set marks (i, j) true.
// Returns ErrOutOfRange if the coordinate is outside the shape.
// Complexity: O(log line) amortized.
func (m *Bool) Set(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Bool.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	line, cross := m.key(i, j)
	bm, ok := m.lines[line]
	if !ok {
		bm = roaring.New()
		m.lines[line] = bm
	}
	if bm.CheckedAdd(uint32(cross)) {
		m.nvals++
	}

	return nil
}

// Has reports whether (i, j) is true. Out-of-range coordinates are false.
func (m *Bool) Has(i, j int) bool {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false
	}
	line, cross := m.key(i, j)
	bm, ok := m.lines[line]

	return ok && bm.Contains(uint32(cross))
}

// sortedKeys returns the non-empty line indices in ascending order.
func (m *Bool) sortedKeys() []int {
	keys := make([]int, 0, len(m.lines))
	for k := range m.lines {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// Each calls fn for every true entry, lines ascending, cross indices ascending.
// For ByRow that is row-major order, for ByCol column-major order.
func (m *Bool) Each(fn func(i, j int)) {
	for _, line := range m.sortedKeys() {
		it := m.lines[line].Iterator()
		for it.HasNext() {
			cross := int(it.Next())
			if m.format == ByRow {
				fn(line, cross)
			} else {
				fn(cross, line)
			}
		}
	}
}

// Pairs returns every true entry as (row, col), sorted row-major.
// Complexity: O(nvals log nvals) for ByCol, O(nvals) for ByRow.
func (m *Bool) Pairs() [][2]int {
	out := make([][2]int, 0, m.nvals)
	m.Each(func(i, j int) { out = append(out, [2]int{i, j}) })
	if m.format == ByCol {
		sort.Slice(out, func(a, b int) bool {
			if out[a][0] != out[b][0] {
				return out[a][0] < out[b][0]
			}
			return out[a][1] < out[b][1]
		})
	}

	return out
}

// Clone returns a deep copy in the same layout. Complexity: O(nvals).
func (m *Bool) Clone() *Bool {
	c := NewBoolShape(m)
	for k, bm := range m.lines {
		c.lines[k] = bm.Clone()
	}
	c.nvals = m.nvals

	return c
}

// Reformat returns the same logical matrix stored in layout f.
// When m already uses f, m itself is returned (no copy).
// Complexity: O(nvals) when a layout switch happens.
func (m *Bool) Reformat(f Format) *Bool {
	if m.format == f {
		return m
	}
	out := NewBoolFormat(m.rows, m.cols, f)
	for line, bm := range m.lines {
		it := bm.Iterator()
		for it.HasNext() {
			cross := int(it.Next())
			dst, ok := out.lines[cross]
			if !ok {
				dst = roaring.New()
				out.lines[cross] = dst
			}
			dst.Add(uint32(line))
		}
	}
	out.nvals = m.nvals

	return out
}

// IAdd folds other into m in place under monoid mon (m ← m ⊕ other).
// other is never retained by m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnknownMonoid.
// Complexity: O(nvals(other)) plus bitmap merge cost.
func (m *Bool) IAdd(other *Bool, mon Monoid) error {
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf("Bool.IAdd", err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf("Bool.IAdd", err)
	}
	if !mon.Valid() {
		return matrixErrorf("Bool.IAdd", ErrUnknownMonoid)
	}
	src := other.Reformat(m.format)
	for k, bm := range src.lines {
		if dst, ok := m.lines[k]; ok {
			before := dst.GetCardinality()
			mon.fold(dst, bm)
			m.nvals += int(dst.GetCardinality() - before)
			continue
		}
		m.lines[k] = bm.Clone()
		m.nvals += int(bm.GetCardinality())
	}

	return nil
}

// Equal reports whether m and o have the same shape and the same true set,
// regardless of layout.
func (m *Bool) Equal(o *Bool) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || m.nvals != o.nvals {
		return false
	}
	oo := o.Reformat(m.format)
	if len(oo.lines) != len(m.lines) {
		return false
	}
	for k, bm := range m.lines {
		obm, ok := oo.lines[k]
		if !ok || !bm.Equals(obm) {
			return false
		}
	}

	return true
}

// recount recomputes nvals and drops empty lines. Used by kernels that
// write bitmaps directly.
func (m *Bool) recount() {
	m.nvals = 0
	for k, bm := range m.lines {
		card := int(bm.GetCardinality())
		if card == 0 {
			delete(m.lines, k)
			continue
		}
		m.nvals += card
	}
}

// String implements fmt.Stringer for easy debugging.
func (m *Bool) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bool(%dx%d, %s, nvals=%d)", m.rows, m.cols, m.format, m.nvals)
	for _, p := range m.Pairs() {
		fmt.Fprintf(&sb, " (%d,%d)", p[0], p[1])
	}

	return sb.String()
}
