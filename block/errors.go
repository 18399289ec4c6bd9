// SPDX-License-Identifier: MIT

package block

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSpace is returned by NewSpace for a negative vertex count or a
	// block count below one.
	ErrBadSpace = errors.New("block: invalid space parameters")

	// ErrNotBlockShape indicates a matrix that is neither a cell nor a block
	// vector of the space.
	ErrNotBlockShape = errors.New("block: shape is neither a cell nor a block vector")

	// ErrBlockCount indicates Stack received a number of cells different from
	// the block count.
	ErrBlockCount = errors.New("block: wrong number of blocks")
)

func blockErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Panic messages (no magic strings).
const (
	panicWrapShape = "block: Wrap: base is neither a cell nor a block vector"
	panicCellRSub  = "block: cell RSub with a non-cell operand"
)
