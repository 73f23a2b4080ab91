// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with complete (full) pivoting.
//
// Purpose:
//   - Factor a square A as P·A·Q = L·U, choosing at each step the entry of largest
//     magnitude in the trailing submatrix as pivot (row AND column exchange).
//   - Decide rank/invertibility from the pivots relative to the largest pivot, not
//     from a raw determinant threshold.
//   - Reuse one factorization for the invertibility verdict, the inverse, linear
//     solves and the determinant.
//
// Storage:
//   - lu holds L (strictly below the diagonal, unit diagonal implied) and U (on and
//     above the diagonal) in one row-major n×n buffer.
//   - rowPerm[i] is the original row placed at position i; colPerm[j] the original
//     column placed at position j. Hence (P·A·Q)[i,j] = A[rowPerm[i], colPerm[j]].
//
// Rank policy:
//   - A pivot u_kk counts as non-zero when |u_kk| > threshold·maxPivot, where
//     maxPivot is the largest |pivot| met (the first one, by construction) and
//     threshold defaults to ε·n (see options.go). An all-zero matrix has rank 0.
//
// Determinism:
//   - Pivot search scans rows then columns in ascending order and keeps the first
//     strict maximum, so ties always resolve the same way.

package matrix

import (
	"fmt"
	"math"
)

// PivotedLU is the result of FactorizeLU. It is immutable after construction and
// safe for concurrent readers.
type PivotedLU struct {
	n         int       // matrix order
	lu        []float64 // compact L\U storage, row-major n×n
	rowPerm   []int     // P as a gather index over rows
	colPerm   []int     // Q as a gather index over columns
	swaps     int       // number of row+column transpositions performed
	maxPivot  float64   // largest |pivot| encountered
	threshold float64   // effective relative rank threshold
}

// FactorizeLU computes P·A·Q = L·U with complete pivoting.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); copy m into a private row-major buffer.
//   - Stage 2: for k = 0..n-1:
//     find (p,q) = argmax |a[i,j]| over i,j ≥ k; stop early if it is exactly 0;
//     swap rows k↔p and columns k↔q (whole rows/columns, keeping L consistent);
//     compute multipliers a[i,k] /= a[k,k] and update the trailing block.
//
// Behavior highlights:
//   - Input m is never mutated.
//   - Never fails on singular input: singularity is a property queried afterwards
//     (IsInvertible, Rank), mirroring rank-revealing factorizations.
//
// Inputs:
//   - m: non-nil square matrix.
//   - opts: WithRankThreshold to override the adaptive ε·n threshold.
//
// Returns:
//   - *PivotedLU holding the factors and permutations.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with opLU).
//
// Complexity:
//   - Time O(n^3) (elimination) + O(n^3) (pivot search), Space O(n^2).
//
// Hints:
//   - Factor once, then call IsInvertible/Inverse/Solve/Det on the same value.
func FactorizeLU(m Matrix, opts ...Option) (*PivotedLU, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := src.r
	f := &PivotedLU{
		n:         n,
		lu:        make([]float64, n*n),
		rowPerm:   make([]int, n),
		colPerm:   make([]int, n),
		threshold: o.effectiveThreshold(n),
	}
	copy(f.lu, src.data) // private working copy
	for i := 0; i < n; i++ {
		f.rowPerm[i], f.colPerm[i] = i, i
	}

	a := f.lu
	var (
		i, j, k, p, q int
		biggest, v    float64
		pivot, mult   float64
		baseK, baseI  int
	)
	for k = 0; k < n; k++ {
		// Pivot search over the trailing block (rows then columns ascending).
		biggest, p, q = -1, k, k
		for i = k; i < n; i++ {
			baseI = i * n
			for j = k; j < n; j++ {
				v = math.Abs(a[baseI+j])
				if v > biggest {
					biggest, p, q = v, i, j
				}
			}
		}
		// Exactly zero trailing block: remaining pivots are zero, nothing to eliminate.
		if biggest == 0 {
			break
		}
		if biggest > f.maxPivot {
			f.maxPivot = biggest
		}

		// Row exchange k↔p (whole rows, so stored multipliers follow P).
		if p != k {
			baseK, baseI = k*n, p*n
			for j = 0; j < n; j++ {
				a[baseK+j], a[baseI+j] = a[baseI+j], a[baseK+j]
			}
			f.rowPerm[k], f.rowPerm[p] = f.rowPerm[p], f.rowPerm[k]
			f.swaps++
		}
		// Column exchange k↔q (whole columns; columns < k hold L and are never touched).
		if q != k {
			for i = 0; i < n; i++ {
				baseI = i * n
				a[baseI+k], a[baseI+q] = a[baseI+q], a[baseI+k]
			}
			f.colPerm[k], f.colPerm[q] = f.colPerm[q], f.colPerm[k]
			f.swaps++
		}

		// Elimination below the pivot.
		baseK = k * n
		pivot = a[baseK+k]
		for i = k + 1; i < n; i++ {
			baseI = i * n
			mult = a[baseI+k] / pivot
			a[baseI+k] = mult
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[baseI+j] -= mult * a[baseK+j]
			}
		}
	}

	return f, nil
}

// Order returns n for an n×n factorization.
func (f *PivotedLU) Order() int { return f.n }

// MaxPivot returns the largest pivot magnitude met during elimination.
func (f *PivotedLU) MaxPivot() float64 { return f.maxPivot }

// Threshold returns the effective relative rank threshold.
func (f *PivotedLU) Threshold() float64 { return f.threshold }

// Rank counts the pivots whose magnitude exceeds Threshold()·MaxPivot().
// Complexity: O(n).
func (f *PivotedLU) Rank() int {
	limit := f.threshold * f.maxPivot
	rank := 0
	for i := 0; i < f.n; i++ {
		if math.Abs(f.lu[i*f.n+i]) > limit {
			rank++
		}
	}

	return rank
}

// IsInvertible reports whether the factored matrix has full rank.
// Complexity: O(n).
func (f *PivotedLU) IsInvertible() bool { return f.Rank() == f.n }

// Det returns det(A) = (-1)^swaps · Π u_ii.
// Singular matrices may yield a tiny non-zero value; use IsInvertible to decide.
// Complexity: O(n).
func (f *PivotedLU) Det() float64 {
	det := 1.0
	if f.swaps%2 == 1 {
		det = -1.0
	}
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// L returns the unit lower-triangular factor as a fresh Dense.
// Complexity: O(n^2).
func (f *PivotedLU) L() *Dense {
	n := f.n
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
		out.data[i*n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor as a fresh Dense.
// Complexity: O(n^2).
func (f *PivotedLU) U() *Dense {
	n := f.n
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
	}

	return out
}

// RowPermutation returns a copy of P as a gather index: (P·A)[i,:] = A[perm[i],:].
func (f *PivotedLU) RowPermutation() []int { return append([]int(nil), f.rowPerm...) }

// ColPermutation returns a copy of Q as a gather index: (A·Q)[:,j] = A[:,perm[j]].
func (f *PivotedLU) ColPermutation() []int { return append([]int(nil), f.colPerm...) }

// solveInto solves A·x = b using the stored factors; y and z are scratch of length n.
// Assumes full rank (callers check IsInvertible first).
//
//	c[i] = b[rowPerm[i]]       (apply P)
//	L·y = c                    (forward, unit diagonal)
//	U·z = y                    (backward)
//	x[colPerm[j]] = z[j]       (apply Q)
func (f *PivotedLU) solveInto(x, b, y, z []float64) {
	n := f.n
	a := f.lu
	var (
		i, k  int
		sum   float64
		baseI int
	)
	for i = 0; i < n; i++ {
		sum = b[f.rowPerm[i]]
		baseI = i * n
		for k = 0; k < i; k++ {
			sum -= a[baseI+k] * y[k]
		}
		y[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		baseI = i * n
		for k = i + 1; k < n; k++ {
			sum -= a[baseI+k] * z[k]
		}
		z[i] = sum / a[baseI+i]
	}
	for i = 0; i < n; i++ {
		x[f.colPerm[i]] = z[i]
	}
}

// Solve returns x with A·x = b.
// Errors: ErrDimensionMismatch (len(b) != n), ErrSingular (rank-deficient A).
// Complexity: O(n^2).
func (f *PivotedLU) Solve(b []float64) ([]float64, error) {
	if len(b) != f.n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), f.n, ErrDimensionMismatch))
	}
	if !f.IsInvertible() {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	x := make([]float64, f.n)
	f.solveInto(x, b, make([]float64, f.n), make([]float64, f.n))

	return x, nil
}

// Inverse computes A⁻¹ from the stored factors, one unit column at a time.
// Implementation:
//   - Stage 1: refuse rank-deficient factorizations with ErrSingular.
//   - Stage 2: for col = 0..n-1 solve A·x = e_col and scatter x into column col.
//
// Errors:
//   - ErrSingular (wrapped with opInverse).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the result plus O(n) scratch.
func (f *PivotedLU) Inverse() (*Dense, error) {
	if !f.IsInvertible() {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		e = make([]float64, n) // unit vector e_col
		x = make([]float64, n) // solution column
		y = make([]float64, n) // forward workspace
		z = make([]float64, n) // backward workspace
	)
	for col := 0; col < n; col++ {
		e[col] = 1
		f.solveInto(x, e, y, z)
		e[col] = 0
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
