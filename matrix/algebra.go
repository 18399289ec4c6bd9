// SPDX-License-Identifier: MIT
// Package matrix: algebraic structures for boolean kernels.
//
// Purpose:
//   - Monoid: the associative-commutative "add" used by EwiseAdd/IAdd and by
//     Mxm to accumulate partial products.
//   - Semiring: the "multiply" used by Mxm; carries its additive Monoid.
//   - SubOp: "what in the minuend is not in the subtrahend".
//   - Structure: the bundle a solver runs under.
//
// Only existence of a path matters, so every structure here is boolean; the
// multiply is structural (pair / land) and is therefore implicit in the
// kernels, while the additive monoid decides how partial lines combine.

package matrix

import "github.com/RoaringBitmap/roaring/v2"

// Monoid is a named associative and commutative combine over line bitmaps.
// Monoids contain functions and are therefore compared by Name().
type Monoid struct {
	name   string
	fold   func(acc, x *roaring.Bitmap)             // acc ← acc ⊕ x (in place)
	reduce func(xs ...*roaring.Bitmap) *roaring.Bitmap // ⊕ over xs into a fresh bitmap
}

// Name returns the stable identifier of the monoid.
func (m Monoid) Name() string { return m.name }

// Valid reports whether m is one of the constructed monoids (not the zero value).
func (m Monoid) Valid() bool { return m.fold != nil && m.reduce != nil }

// Semiring pairs a structural multiply with an additive Monoid.
type Semiring struct {
	name string
	add  Monoid
}

// Name returns the stable identifier of the semiring.
func (s Semiring) Name() string { return s.name }

// Monoid returns the additive monoid of the semiring.
func (s Semiring) Monoid() Monoid { return s.add }

// Valid reports whether s carries a valid additive monoid.
func (s Semiring) Valid() bool { return s.add.Valid() }

// SubOp returns the entries of minuend that are absent from subtrahend.
// Implementations must not mutate either argument.
type SubOp func(minuend, subtrahend *Bool) (*Bool, error)

// Structure bundles everything a fixpoint solver needs from the algebra.
type Structure struct {
	Semiring Semiring
	Sub      SubOp
}

// Monoid is a shortcut for s.Semiring.Monoid().
func (s Structure) Monoid() Monoid { return s.Semiring.Monoid() }

func orFold(acc, x *roaring.Bitmap) { acc.Or(x) }

func orReduce(xs ...*roaring.Bitmap) *roaring.Bitmap {
	switch len(xs) {
	case 0:
		return roaring.New()
	case 1:
		return xs[0].Clone()
	default:
		return roaring.FastOr(xs...)
	}
}

var (
	// LOr is logical OR.
	LOr = Monoid{name: "lor", fold: orFold, reduce: orReduce}

	// Any keeps any present value; on booleans it coincides with LOr.
	Any = Monoid{name: "any", fold: orFold, reduce: orReduce}

	// AnyPair multiplies structurally (pair) and adds with Any.
	AnyPair = Semiring{name: "any_pair", add: Any}

	// LOrLAnd is the textbook boolean semiring.
	LOrLAnd = Semiring{name: "lor_land", add: LOr}

	// ComplementMask is the default SubOp: Minus.
	ComplementMask SubOp = Minus

	// Boolean is the structure CFL-reachability runs under.
	Boolean = Structure{Semiring: AnyPair, Sub: ComplementMask}
)
