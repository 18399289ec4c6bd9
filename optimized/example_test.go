// SPDX-License-Identifier: MIT
package optimized_test

import (
	"fmt"

	"github.com/katalvlaran/cflr/matrix"
	"github.com/katalvlaran/cflr/optimized"
)

// ExampleLayers_Recipe runs one semi-naive step through the full decorator
// stack: the relation is composed with itself and only new pairs are kept.
func ExampleLayers_Recipe() {
	m := optimized.AllLayers.Recipe()(matrix.NewBool(3, 3))
	ab, _ := matrix.FromCOO(3, 3, []int{0}, []int{1})
	bc, _ := matrix.FromCOO(3, 3, []int{1}, []int{2})
	_ = m.IAdd(ab, matrix.Any)
	_ = m.IAdd(bc, matrix.Any)
	fmt.Println(m.NVals())

	step, _ := m.Mxm(m.ToUnoptimized().Clone(), matrix.AnyPair, false)
	fresh, _ := m.RSub(step, matrix.ComplementMask)
	fmt.Println(fresh.Pairs())
	// Output:
	// 2
	// [[0 2]]
}
