// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity to build a neutral element for products and inverse checks.
//   - For A·B⁻¹ call RightDivide; it factors B once and reuses the factorization.

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// Hints: Use as a neutral element for products and inverse checks.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Inverse returns A⁻¹ via full-pivoting LU.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n^3).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := FactorizeLU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse()
}

// Det returns det(A) via full-pivoting LU.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3).
func Det(m Matrix) (float64, error) {
	f, err := FactorizeLU(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// IsInvertible reports whether the square matrix m passes the full-pivot LU rank test.
// Errors: ErrNilMatrix, ErrNonSquare.
func IsInvertible(m Matrix, opts ...Option) (bool, error) {
	f, err := FactorizeLU(m, opts...)
	if err != nil {
		return false, err
	}

	return f.IsInvertible(), nil
}

// RightDivide computes C = A·B⁻¹.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b)  → ErrDimensionMismatch first.
//   - Stage 2: ValidateSquare(b)            → ErrNonSquare second.
//   - Stage 3: FactorizeLU(b); rank test    → ErrSingular third.
//   - Stage 4: B⁻¹ from the same factors, then Mul(a, B⁻¹).
//
// Returns:
//   - C (rows(A) × cols(B)) and the computed B⁻¹.
//
// Complexity:
//   - Time O(n^3 + r*n^2), Space O(n^2 + r*n).
func RightDivide(a, b Matrix, opts ...Option) (c, bInv *Dense, err error) {
	if err = ValidateMulCompatible(a, b); err != nil {
		return nil, nil, err
	}
	if err = ValidateSquare(b); err != nil {
		return nil, nil, err
	}
	f, err := FactorizeLU(b, opts...)
	if err != nil {
		return nil, nil, err
	}
	if bInv, err = f.Inverse(); err != nil {
		return nil, nil, err
	}
	if c, err = Mul(a, bInv); err != nil {
		return nil, nil, err
	}

	return c, bInv, nil
}

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports whether a and b agree element-wise within eps, used as both
// the relative and the absolute tolerance. eps comes from WithEpsilon
// (DefaultEpsilon otherwise).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, o.eps, o.eps)
}
