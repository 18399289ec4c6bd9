// SPDX-License-Identifier: MIT

package optimized

import "github.com/katalvlaran/cflr/matrix"

// Layers selects which decorators wrap a matrix. The wrapping order is fixed:
// Empty innermost, then LazyAdd, then Format outermost.
type Layers struct {
	Empty   bool
	LazyAdd bool
	Format  bool
}

// AllLayers enables every decorator.
var AllLayers = Layers{Empty: true, LazyAdd: true, Format: true}

// Recipe returns the wrapping function for ls.
func (ls Layers) Recipe(opts ...Option) Recipe {
	return func(base *matrix.Bool) Matrix {
		m := NewAdapter(base)
		if ls.Empty {
			m = NewEmpty(m)
		}
		if ls.LazyAdd {
			m = NewLazyAdd(m, opts...)
		}
		if ls.Format {
			m = NewFormat(m, opts...)
		}

		return m
	}
}
