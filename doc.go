// Package matrixcalc is a small dense-matrix calculator: add, subtract,
// multiply and divide (A·B⁻¹) over flat row-major float64 buffers, with
// typed errors that say exactly which precondition failed.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/   owned Dense type, kernels (Add/Sub/Mul/Transpose/Scale),
//	            full-pivoting LU (rank, inverse, solve, determinant)
//	engine/   the flat-buffer boundary: Add/Subtract/Multiply/Divide,
//	            *Into variants, Apply by Op, OpError, Tracer hook
//	tracing/  zap-backed engine.Tracer
//	logging/  zap logger construction
//	config/   MATRIXCALC_* environment configuration
//	jobfile/  YAML/TOML job documents
//	cmd/matrixcalc/ command-line calculator
//
// Quick example:
//
//	eng := engine.New()
//	c, err := eng.Divide([]float64{1, 0, 0, 1}, []float64{2, 0, 0, 2}, 2, 2, 2, 2)
//	// c == [0.5 0 0 0.5]
//
// Divide checks its preconditions in a fixed order: cols1 == rows2, then
// B square, then B invertible. Invertibility comes from a full-pivoting LU
// whose factors also produce B⁻¹, so B is factored once per call.
package matrixcalc
