// SPDX-License-Identifier: MIT

// Package optimized: functional configuration of the decorator thresholds.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX constructors panic on nonsensical values
//     (programmer error); public entry points consume ...Option.

package optimized

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultReformatThreshold is the operand size ratio above which the
	// format optimizer pays for a second storage layout.
	DefaultReformatThreshold = 3.0

	// DefaultSizeFactor bounds how far apart (multiplicatively) two
	// bucket sizes may be for the lazy-add accumulator to merge them.
	DefaultSizeFactor = 10.0

	// DefaultMinNVals is the size floor used when comparing buckets, so that
	// tiny deltas are merged instead of piling up.
	DefaultMinNVals = 10

	// DefaultDiscardBaseOnReformat drops the original layout once a second
	// one has been materialized.
	DefaultDiscardBaseOnReformat = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicReformatThreshold = "optimized: WithReformatThreshold: threshold must be > 1"
	panicSizeFactor        = "optimized: WithSizeFactor: factor must be > 1"
	panicMinNVals          = "optimized: WithMinNVals: min must be > 0"
	panicWrongShape        = "optimized: decorator produced a result of the wrong shape"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	reformatThreshold     float64
	sizeFactor            float64
	minNVals              int
	discardBaseOnReformat bool
}

// WithReformatThreshold sets the operand size ratio that triggers a layout
// switch in the format optimizer. Panics if r <= 1.
func WithReformatThreshold(r float64) Option {
	if !(r > 1) {
		panic(panicReformatThreshold)
	}

	return func(o *Options) { o.reformatThreshold = r }
}

// WithSizeFactor sets the lazy-add merge window. Panics if f <= 1.
func WithSizeFactor(f float64) Option {
	if !(f > 1) {
		panic(panicSizeFactor)
	}

	return func(o *Options) { o.sizeFactor = f }
}

// WithMinNVals sets the lazy-add size floor. Panics if m <= 0.
func WithMinNVals(m int) Option {
	if m <= 0 {
		panic(panicMinNVals)
	}

	return func(o *Options) { o.minNVals = m }
}

// WithDiscardBaseOnReformat makes the format optimizer keep only the newly
// materialized layout after its first switch.
func WithDiscardBaseOnReformat(discard bool) Option {
	return func(o *Options) { o.discardBaseOnReformat = discard }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		reformatThreshold:     DefaultReformatThreshold,
		sizeFactor:            DefaultSizeFactor,
		minNVals:              DefaultMinNVals,
		discardBaseOnReformat: DefaultDiscardBaseOnReformat,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ReformatThreshold returns the configured format-switch ratio.
func (o Options) ReformatThreshold() float64 { return o.reformatThreshold }

// SizeFactor returns the configured lazy-add merge window.
func (o Options) SizeFactor() float64 { return o.sizeFactor }

// MinNVals returns the configured lazy-add size floor.
func (o Options) MinNVals() int { return o.minNVals }

// DiscardBaseOnReformat reports whether the first layout is dropped on switch.
func (o Options) DiscardBaseOnReformat() bool { return o.discardBaseOnReformat }
