// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Compact binary form of a Bool, used by the answer cache.
//
// Layout:
//   uvarint rows | uvarint cols | byte format | roaring64 bitmap of i*cols+j
//
// The true set is encoded row-major regardless of layout, so two equal
// matrices in different layouts differ only in the format byte.

package matrix

import (
	"bytes"
	"encoding/binary"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Bool) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, matrixErrorf("Bool.MarshalBinary", ErrNilMatrix)
	}
	cells := roaring64.New()
	cols := uint64(m.cols)
	m.Each(func(i, j int) { cells.Add(uint64(i)*cols + uint64(j)) })
	cells.RunOptimize()

	var buf bytes.Buffer
	var hdr [2*binary.MaxVarintLen64 + 1]byte
	n := binary.PutUvarint(hdr[:], uint64(m.rows))
	n += binary.PutUvarint(hdr[n:], cols)
	hdr[n] = byte(m.format)
	buf.Write(hdr[:n+1])
	if _, err := cells.WriteTo(&buf); err != nil {
		return nil, matrixErrorf("Bool.MarshalBinary", err)
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver is
// overwritten. Any malformed input yields ErrCorruptEncoding.
func (m *Bool) UnmarshalBinary(data []byte) error {
	if m == nil {
		return matrixErrorf("Bool.UnmarshalBinary", ErrNilMatrix)
	}
	r := bytes.NewReader(data)
	rows, err := binary.ReadUvarint(r)
	if err != nil {
		return matrixErrorf("Bool.UnmarshalBinary: rows", ErrCorruptEncoding)
	}
	cols, err := binary.ReadUvarint(r)
	if err != nil {
		return matrixErrorf("Bool.UnmarshalBinary: cols", ErrCorruptEncoding)
	}
	fb, err := r.ReadByte()
	if err != nil || (Format(fb) != ByRow && Format(fb) != ByCol) {
		return matrixErrorf("Bool.UnmarshalBinary: format", ErrCorruptEncoding)
	}
	const maxDim = 1 << 31
	if rows > maxDim || cols > maxDim {
		return matrixErrorf("Bool.UnmarshalBinary: shape", ErrCorruptEncoding)
	}
	cells := roaring64.New()
	if _, err = cells.ReadFrom(r); err != nil {
		return matrixErrorf("Bool.UnmarshalBinary: cells", ErrCorruptEncoding)
	}

	out := NewBoolFormat(int(rows), int(cols), Format(fb))
	it := cells.Iterator()
	for it.HasNext() {
		v := it.Next()
		if cols == 0 {
			return matrixErrorf("Bool.UnmarshalBinary: cells", ErrCorruptEncoding)
		}
		if err = out.Set(int(v/cols), int(v%cols)); err != nil {
			return matrixErrorf("Bool.UnmarshalBinary: cells", ErrCorruptEncoding)
		}
	}
	*m = *out

	return nil
}
