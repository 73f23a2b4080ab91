// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Ingestion policy (validateNaNInf) is consumed by NewFromRowMajor and carried
//     by the resulting Dense into Set.
//   - Rank policy (rankThreshold) is consumed by FactorizeLU: a pivot u is counted
//     as non-zero when |u| > threshold * maxPivot. Zero selects the adaptive default
//     ε·n (ε = machine epsilon, n = matrix order).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by AllClose-style checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Off by default: arithmetic propagates NaN/Inf the way IEEE-754 does.
	DefaultValidateNaNInf = false

	// DefaultRankThreshold selects the adaptive rank threshold ε·n in FactorizeLU.
	DefaultRankThreshold = 0.0

	// MachineEpsilon is the spacing of float64 values around 1 (2^-52).
	MachineEpsilon = 0x1p-52
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRankThresholdInvalid = "matrix: WithRankThreshold: threshold must be finite, in [0,1)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	rankThreshold  float64 // [0,1); DefaultRankThreshold (0 ⇒ ε·n)
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by comparison helpers.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - NewFromRowMajor rejects buffers containing NaN/±Inf with ErrNaNInf.
//   - Set on the resulting Dense rejects NaN/±Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Hints:
//   - Enable at boundaries fed by untrusted input (parsers, user forms).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (default).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithRankThreshold sets the relative pivot threshold used by FactorizeLU to
// decide rank and invertibility.
// Implementation:
//   - Stage 1: validate t is finite and 0 ≤ t < 1.
//   - Stage 2: return a setter that writes t into Options.
//
// Behavior highlights:
//   - t == 0 restores the adaptive default ε·n.
//   - Larger t classifies more near-singular matrices as singular.
//
// Errors:
//   - Panics with a stable message when t is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Hints:
//   - Values around 1e-12 suit data with a few digits of measurement noise.
func WithRankThreshold(t float64) Option {
	if ValidateRankThreshold(t) != nil {
		panic(panicRankThresholdInvalid)
	}

	return func(o *Options) { o.rankThreshold = t }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		rankThreshold:  DefaultRankThreshold,
	}
}

// gatherOptions applies setters over defaults in order; later setters win.
// nil setters are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// effectiveThreshold resolves the rank threshold for an n×n factorization.
func (o Options) effectiveThreshold(n int) float64 {
	if o.rankThreshold > 0 {
		return o.rankThreshold
	}

	return MachineEpsilon * float64(n)
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
