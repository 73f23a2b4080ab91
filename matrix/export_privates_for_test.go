// SPDX-License-Identifier: MIT
// Package matrix exposes selected internals to the external matrix_test package.
// This file is compiled only with `go test`.

package matrix

// OptionsSnapshot is a read-only view of resolved Options for assertions.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
	RankThreshold  float64
}

// Panic messages re-exported for stable-message assertions.
const (
	PanicEpsilonInvalid_TestOnly       = panicEpsilonInvalid
	PanicRankThresholdInvalid_TestOnly = panicRankThresholdInvalid
)

// GatherOptionsSnapshot_TestOnly resolves opts over defaults and snapshots the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Eps:            o.eps,
		ValidateNaNInf: o.validateNaNInf,
		RankThreshold:  o.rankThreshold,
	}
}
