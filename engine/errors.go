// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixcalc/matrix"
)

// Sentinels re-exported from the matrix package so callers need a single import.
var (
	ErrInvalidDimensions = matrix.ErrInvalidDimensions
	ErrBufferLength      = matrix.ErrBufferLength
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrNonSquare         = matrix.ErrNonSquare
	ErrSingular          = matrix.ErrSingular
	ErrNaNInf            = matrix.ErrNaNInf
)

// ErrUnknownOp is returned by ParseOp and Apply for an operation outside the four supported.
var ErrUnknownOp = errors.New("engine: unknown operation")

// Failure reasons carried by OpError.
const (
	reasonShapes       = "shapes must match"
	reasonInner        = "cols1 must equal rows2"
	reasonNonSquare    = "matrix 2 must be square for division"
	reasonSingular     = "matrix 2 is not invertible"
	reasonDims         = "dimensions must be positive with rows*cols representable"
	reasonNonFinite    = "input contains NaN or Inf"
	reasonUnknownOp    = "unknown operation"
	reasonLeftBuffer   = "buffer 1 length %d does not match %s"
	reasonRightBuffer  = "buffer 2 length %d does not match %s"
	reasonResultBuffer = "result buffer length %d does not match %s"
)

// OpError describes a failed engine operation: which operation, the operand
// shapes involved, and which precondition failed.
type OpError struct {
	Op     Op
	Left   Shape  // shape of operand 1 as declared by the caller
	Right  Shape  // shape of operand 2 as declared by the caller
	Reason string // human-readable precondition, e.g. "matrix 2 is not invertible"
	Err    error  // underlying cause; matches one of the sentinels above
}

// Error implements error.
func (e *OpError) Error() string {
	return fmt.Sprintf("engine: %s %s, %s: %s", e.Op, e.Left, e.Right, e.Reason)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *OpError) Unwrap() error { return e.Err }

// newOpError classifies err into an OpError with the matching reason.
func newOpError(op Op, left, right Shape, err error) *OpError {
	oe := &OpError{Op: op, Left: left, Right: right, Err: err}
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch):
		oe.Reason = reasonInner
		if op == OpAdd || op == OpSubtract {
			oe.Reason = reasonShapes
		}
	case errors.Is(err, matrix.ErrNonSquare):
		oe.Reason = reasonNonSquare
	case errors.Is(err, matrix.ErrSingular):
		oe.Reason = reasonSingular
	case errors.Is(err, matrix.ErrInvalidDimensions):
		oe.Reason = reasonDims
	case errors.Is(err, matrix.ErrNaNInf):
		oe.Reason = reasonNonFinite
	case errors.Is(err, ErrUnknownOp):
		oe.Reason = reasonUnknownOp
	default:
		oe.Reason = err.Error()
	}

	return oe
}

// bufferError reports a buffer whose length does not match its declared shape.
func bufferError(op Op, left, right Shape, format string, n int, want Shape) *OpError {
	return &OpError{
		Op:     op,
		Left:   left,
		Right:  right,
		Reason: fmt.Sprintf(format, n, want),
		Err:    matrix.ErrBufferLength,
	}
}
