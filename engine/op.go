// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"strings"
)

// Op names one of the four engine operations.
type Op uint8

// Supported operations. The zero value is invalid.
const (
	OpAdd Op = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
)

var opNames = [...]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

// String returns the canonical lower-case name.
func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("op(%d)", uint8(o))
	}

	return opNames[o]
}

// Valid reports whether o is one of the supported operations.
func (o Op) Valid() bool { return o >= OpAdd && o <= OpDivide }

// ParseOp maps a case-insensitive name to an Op. Accepted names are
// add, sub, subtract, mul, multiply, div and divide.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return OpAdd, nil
	case "sub", "subtract":
		return OpSubtract, nil
	case "mul", "multiply":
		return OpMultiply, nil
	case "div", "divide":
		return OpDivide, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows int
	Cols int
}

// Len returns Rows*Cols, the length of a row-major buffer of this shape.
func (s Shape) Len() int { return s.Rows * s.Cols }

// String formats the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
