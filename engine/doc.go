// SPDX-License-Identifier: MIT

// Package engine is the flat-buffer boundary of matrixcalc.
//
// An Engine receives two matrices as row-major float64 buffers plus explicit
// dimensions and performs one of four operations:
//
//   - Add and Subtract: element-wise, shapes must match.
//   - Multiply: rows1×cols2 product, cols1 must equal rows2.
//   - Divide: A·B⁻¹, checked in the order dimension → square → invertible.
//
// Every operation returns a freshly allocated result buffer; the *Into
// variants write into a caller buffer instead and leave it untouched on any
// failure. Failures are *OpError values that unwrap to the sentinels
// re-exported here, so both errors.Is and errors.As work:
//
//	c, err := eng.Divide(a, b, 2, 2, 2, 3)
//	if errors.Is(err, engine.ErrNonSquare) { ... }
//	var oe *engine.OpError
//	if errors.As(err, &oe) { fmt.Println(oe.Right) } // 2x3
//
// An Engine is immutable after New and safe for concurrent use on disjoint
// buffers. Diagnostic output goes through an optional Tracer.
package engine
