// SPDX-License-Identifier: MIT
// Package matrix_test covers the binary codec.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cflr/matrix"
	"github.com/stretchr/testify/require"
)

func TestBool_BinaryRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range formats {
		m := randomBool(t, 31, 5, 0.25, 99).Reformat(f)
		data, err := m.MarshalBinary()
		require.NoError(t, err)

		var back matrix.Bool
		require.NoError(t, back.UnmarshalBinary(data))
		require.Equal(t, f, back.Format())
		require.True(t, m.Equal(&back))
	}
}

func TestBool_UnmarshalCorrupt(t *testing.T) {
	t.Parallel()

	var m matrix.Bool
	require.ErrorIs(t, m.UnmarshalBinary(nil), matrix.ErrCorruptEncoding)
	require.ErrorIs(t, m.UnmarshalBinary([]byte{2, 2, 7}), matrix.ErrCorruptEncoding)
	require.ErrorIs(t, m.UnmarshalBinary([]byte{2, 2, 0, 0xff}), matrix.ErrCorruptEncoding)
}
