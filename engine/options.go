// SPDX-License-Identifier: MIT

package engine

import "github.com/katalvlaran/matrixcalc/matrix"

// Option configures an Engine. Constructors panic only on nonsensical values.
type Option func(*config)

type config struct {
	tracer        Tracer
	rankThreshold float64
	finiteInputs  bool
}

// WithTracer installs t as the diagnostic observer. nil restores NopTracer.
func WithTracer(t Tracer) Option {
	return func(c *config) {
		if t == nil {
			t = NopTracer{}
		}
		c.tracer = t
	}
}

// panicRankThreshold is the stable message WithRankThreshold panics with.
const panicRankThreshold = "engine: WithRankThreshold: threshold must be finite, in [0,1)"

// WithRankThreshold sets the relative pivot threshold Divide uses to decide
// invertibility. 0 keeps the adaptive default ε·n. Panics unless 0 ≤ t < 1.
func WithRankThreshold(t float64) Option {
	if matrix.ValidateRankThreshold(t) != nil {
		panic(panicRankThreshold)
	}

	return func(c *config) { c.rankThreshold = t }
}

// WithFiniteInputs rejects operands containing NaN or ±Inf with ErrNaNInf.
// By default such values propagate through the arithmetic.
func WithFiniteInputs() Option {
	return func(c *config) { c.finiteInputs = true }
}

func gatherConfig(opts ...Option) config {
	c := config{tracer: NopTracer{}}
	for _, fn := range opts {
		if fn != nil {
			fn(&c)
		}
	}

	return c
}
