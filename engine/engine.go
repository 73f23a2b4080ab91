// SPDX-License-Identifier: MIT

package engine

import (
	"errors"

	"github.com/katalvlaran/matrixcalc/matrix"
)

// Engine performs matrix arithmetic over flat row-major buffers.
// The zero value is not usable; construct with New.
type Engine struct {
	tracer  Tracer
	tracing bool            // false for NopTracer; skips result copies
	ingest  []matrix.Option // options for NewFromRowMajor
	lu      []matrix.Option // options for FactorizeLU
}

// New builds an Engine. Without options it traces nothing, lets NaN/Inf
// propagate and uses the adaptive rank threshold ε·n.
func New(opts ...Option) *Engine {
	c := gatherConfig(opts...)
	_, nop := c.tracer.(NopTracer)

	e := &Engine{tracer: c.tracer, tracing: !nop}
	if c.finiteInputs {
		e.ingest = append(e.ingest, matrix.WithValidateNaNInf())
	}
	if c.rankThreshold > 0 {
		e.lu = append(e.lu, matrix.WithRankThreshold(c.rankThreshold))
	}

	return e
}

// Add returns A+B for two rows×cols buffers.
func (e *Engine) Add(a, b []float64, rows, cols int) ([]float64, error) {
	s := Shape{Rows: rows, Cols: cols}
	return e.fresh(OpAdd, a, s, b, s)
}

// Subtract returns A−B for two rows×cols buffers.
func (e *Engine) Subtract(a, b []float64, rows, cols int) ([]float64, error) {
	s := Shape{Rows: rows, Cols: cols}
	return e.fresh(OpSubtract, a, s, b, s)
}

// Multiply returns the rows1×cols2 product A·B.
// Each entry accumulates Σ_k A(i,k)·B(k,j) left to right over k.
func (e *Engine) Multiply(a, b []float64, rows1, cols1, rows2, cols2 int) ([]float64, error) {
	return e.fresh(OpMultiply, a, Shape{Rows: rows1, Cols: cols1}, b, Shape{Rows: rows2, Cols: cols2})
}

// Divide returns A·B⁻¹ (rows1×cols2).
// Preconditions are checked in order: cols1 == rows2 (ErrDimensionMismatch),
// B square (ErrNonSquare), B invertible (ErrSingular). B is factored once
// and the same factorization yields both the verdict and the inverse.
func (e *Engine) Divide(a, b []float64, rows1, cols1, rows2, cols2 int) ([]float64, error) {
	return e.fresh(OpDivide, a, Shape{Rows: rows1, Cols: cols1}, b, Shape{Rows: rows2, Cols: cols2})
}

// AddInto writes A+B into dst, which must hold exactly rows*cols values.
// dst is left untouched on failure.
func (e *Engine) AddInto(dst, a, b []float64, rows, cols int) error {
	s := Shape{Rows: rows, Cols: cols}
	return e.into(dst, OpAdd, a, s, b, s)
}

// SubtractInto writes A−B into dst; see AddInto.
func (e *Engine) SubtractInto(dst, a, b []float64, rows, cols int) error {
	s := Shape{Rows: rows, Cols: cols}
	return e.into(dst, OpSubtract, a, s, b, s)
}

// MultiplyInto writes A·B into dst, which must hold exactly rows1*cols2 values.
// dst is left untouched on failure.
func (e *Engine) MultiplyInto(dst, a, b []float64, rows1, cols1, rows2, cols2 int) error {
	return e.into(dst, OpMultiply, a, Shape{Rows: rows1, Cols: cols1}, b, Shape{Rows: rows2, Cols: cols2})
}

// DivideInto writes A·B⁻¹ into dst; see MultiplyInto.
func (e *Engine) DivideInto(dst, a, b []float64, rows1, cols1, rows2, cols2 int) error {
	return e.into(dst, OpDivide, a, Shape{Rows: rows1, Cols: cols1}, b, Shape{Rows: rows2, Cols: cols2})
}

// Apply dispatches op over two buffers with independent shapes. For
// OpAdd and OpSubtract differing shapes fail with ErrDimensionMismatch.
// It returns the result buffer together with its shape.
func (e *Engine) Apply(op Op, a []float64, sa Shape, b []float64, sb Shape) ([]float64, Shape, error) {
	out, err := e.fresh(op, a, sa, b, sb)
	if err != nil {
		return nil, Shape{}, err
	}

	return out, resultShape(op, sa, sb), nil
}

// ApplyInto is Apply writing into dst; dst is left untouched on failure.
func (e *Engine) ApplyInto(dst []float64, op Op, a []float64, sa Shape, b []float64, sb Shape) error {
	return e.into(dst, op, a, sa, b, sb)
}

// resultShape is rows×cols for element-wise ops and rows1×cols2 otherwise.
func resultShape(op Op, sa, sb Shape) Shape {
	if op == OpAdd || op == OpSubtract {
		return sa
	}

	return Shape{Rows: sa.Rows, Cols: sb.Cols}
}

// fresh runs op and returns the result in a newly allocated buffer.
func (e *Engine) fresh(op Op, a []float64, sa Shape, b []float64, sb Shape) ([]float64, error) {
	res, err := e.run(op, a, sa, b, sb)
	if err != nil {
		return nil, err
	}

	return res.RawRowMajor(), nil
}

// into runs op and copies the result into dst. The length check happens
// after the operation succeeds, so dst is written only on full success.
func (e *Engine) into(dst []float64, op Op, a []float64, sa Shape, b []float64, sb Shape) error {
	res, err := e.run(op, a, sa, b, sb)
	if err != nil {
		return err
	}
	if len(dst) != res.Rows()*res.Cols() {
		return e.fail(bufferError(op, sa, sb, reasonResultBuffer, len(dst), resultShape(op, sa, sb)))
	}
	if err = res.CopyRowMajor(dst); err != nil {
		return e.fail(newOpError(op, sa, sb, err))
	}

	return nil
}

// run is the single pipeline behind every public method:
// ingest operands, check preconditions, compute.
func (e *Engine) run(op Op, a []float64, sa Shape, b []float64, sb Shape) (*matrix.Dense, error) {
	if !op.Valid() {
		return nil, e.fail(newOpError(op, sa, sb, ErrUnknownOp))
	}

	left, oe := e.operand(op, a, sa, sa, sb, reasonLeftBuffer)
	if oe != nil {
		return nil, e.fail(oe)
	}
	e.trace(op, StageLeft, left)

	right, oe := e.operand(op, b, sb, sa, sb, reasonRightBuffer)
	if oe != nil {
		return nil, e.fail(oe)
	}
	e.trace(op, StageRight, right)

	var (
		res *matrix.Dense
		err error
	)
	switch op {
	case OpAdd:
		res, err = matrix.Add(left, right)
	case OpSubtract:
		res, err = matrix.Sub(left, right)
	case OpMultiply:
		res, err = matrix.Mul(left, right)
	case OpDivide:
		var inv *matrix.Dense
		res, inv, err = matrix.RightDivide(left, right, e.lu...)
		if err == nil {
			e.trace(op, StageInverse, inv)
		}
	}
	if err != nil {
		return nil, e.fail(newOpError(op, sa, sb, err))
	}
	e.trace(op, StageResult, res)

	return res, nil
}

// operand builds an owned matrix from buf, reporting length mismatches with
// the operand-specific reason format.
func (e *Engine) operand(op Op, buf []float64, s, sa, sb Shape, format string) (*matrix.Dense, *OpError) {
	m, err := matrix.NewFromRowMajor(s.Rows, s.Cols, buf, e.ingest...)
	switch {
	case err == nil:
		return m, nil
	case errors.Is(err, matrix.ErrBufferLength):
		return nil, bufferError(op, sa, sb, format, len(buf), s)
	default:
		return nil, newOpError(op, sa, sb, err)
	}
}

func (e *Engine) trace(op Op, stage Stage, m *matrix.Dense) {
	if !e.tracing {
		return
	}
	r, c := m.Shape()
	e.tracer.Stage(op, stage, Shape{Rows: r, Cols: c}, m.RawRowMajor())
}

// fail reports oe to the tracer and returns it as an error.
func (e *Engine) fail(oe *OpError) error {
	e.tracer.Failed(oe)

	return oe
}
