// Package matrix offers owned dense matrices and the numeric kernels behind
// matrixcalc.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix that owns its storage. NewFromRowMajor
//     ingests a caller buffer and fails fast with ErrBufferLength when the
//     buffer does not hold exactly rows*cols values.
//   - Add, Sub, Mul, Transpose and Scale kernels with deterministic loop
//     orders and *Dense fast paths.
//   - FactorizeLU, a full-pivoting LU (P·A·Q = L·U) with a rank-revealing
//     invertibility test, inverse, linear solve and determinant.
//   - RightDivide, the A·B⁻¹ composition with the error precedence
//     dimension mismatch → non-square → singular.
//
// All failures are reported through the sentinels in errors.go and can be
// matched with errors.Is.
package matrix
