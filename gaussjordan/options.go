package gaussjordan

import "math"

// DefaultEpsilon is the pivot tolerance: a candidate pivot p with |p| ≤ DefaultEpsilon
// is treated as zero.
const DefaultEpsilon = 1e-12

const panicEpsilonInvalid = "gaussjordan: WithEpsilon: eps must be finite, non-negative"

// Option configures a single engine call.
type Option func(*Options)

// Options holds the resolved configuration of a call.
type Options struct {
	eps float64
}

// WithEpsilon sets the pivot tolerance. Panics when eps is NaN, ±Inf or negative.
// With eps == 0 only exact zeros are treated as singular pivots.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon returns the resolved pivot tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
