// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Own the memory: caller buffers are copied on ingestion and on export, so a Dense
//     never aliases memory it did not allocate.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking,
//     and buffer lengths are validated against the declared shape at construction.
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - Use NewFromRowMajor at every boundary that receives flat buffers; it fails fast with ErrBufferLength.
//
// Complexity quicksheet:
//   - NewDense / NewFromRowMajor: O(r*c); At/Set: O(1); Clone / RawRowMajor: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"              // method tag used in error wrappers
	ctxSet    = "Set"             // method tag used in error wrappers
	ctxIngest = "NewFromRowMajor" // ctor tag for buffer ingestion
	ctxExport = "CopyRowMajor"    // method tag for buffer export
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: ValidateDims (rows>0, cols>0, rows*cols fits in int); else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape; rows*cols must not overflow.
	if err := ValidateDims(rows, cols); err != nil {
		return nil, err
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewFromRowMajor builds an owned rows×cols Dense from a flat row-major buffer.
// MAIN DESCRIPTION:
//   - Boundary constructor: element (i,j) is read from buf[i*cols+j].
//
// Implementation:
//   - Stage 1: resolve options; ValidateDims (ErrInvalidDimensions, incl. rows*cols overflow).
//   - Stage 2: validate len(buf) == rows*cols (ErrBufferLength).
//   - Stage 3: when the numeric policy is on, scan for NaN/±Inf (ErrNaNInf).
//   - Stage 4: copy buf into freshly allocated storage.
//
// Behavior highlights:
//   - The caller's slice is never retained; later writes to buf do not leak in.
//   - Fails fast before any allocation proportional to the buffer on shape errors.
//
// Inputs:
//   - rows, cols: declared shape.
//   - buf: row-major values, len must be rows*cols.
//   - opts: numeric policy (WithValidateNaNInf / WithNoValidateNaNInf).
//
// Returns:
//   - *Dense owning a copy of buf.
//
// Errors:
//   - ErrInvalidDimensions, ErrBufferLength, ErrNaNInf (wrapped with index context).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Hints:
//   - Use at every flat-buffer boundary instead of NewDense+Set loops.
func NewFromRowMajor(rows, cols int, buf []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	// Shape first: non-positive or overflowing dimensions make rows*cols meaningless.
	if err := ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxIngest, rows, cols, err)
	}
	// Buffer length must match the declared shape exactly.
	if err := ValidateBuffer(buf, rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxIngest, rows, cols, err)
	}
	// Optional finite-only ingestion.
	if o.validateNaNInf {
		for idx, v := range buf {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxIngest, idx/cols, idx%cols, ErrNaNInf)
			}
		}
	}

	data := make([]float64, len(buf))
	copy(data, buf)

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods (At/Set) wrap with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel error.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// RawRowMajor returns a fresh row-major copy of the matrix contents.
// The returned slice is owned by the caller.
// Complexity: O(r*c).
func (m *Dense) RawRowMajor() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// CopyRowMajor writes the matrix contents into dst in row-major order.
// dst must hold exactly Rows()*Cols() elements; otherwise ErrBufferLength is
// returned and dst is not touched.
// Complexity: O(r*c), no allocations.
func (m *Dense) CopyRowMajor(dst []float64) error {
	if err := ValidateBuffer(dst, m.r, m.c); err != nil {
		return fmt.Errorf("%s(%d,%d): %w", ctxExport, m.r, m.c, err)
	}
	copy(dst, m.data)

	return nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// asDense returns m as *Dense when possible, else a materialized *Dense copy.
// Kernels that need flat storage (LU) use it to keep a single code path.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
