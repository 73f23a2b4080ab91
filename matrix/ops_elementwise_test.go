// SPDX-License-Identifier: MIT
// Package matrix_test verifies AllClose semantics.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matrixcalc/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose_Basics(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	b := NewFilledDense(t, 1, 3, []float64{1, 2, 3 + 1e-10})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, hide{b}, 1e-9, 0) // relative tolerance, fallback path
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllClose_NonFinite(t *testing.T) {
	t.Parallel()

	inf := NewFilledDense(t, 1, 2, []float64{math.Inf(1), math.Inf(-1)})
	ok, err := matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, ok) // equal infinities compare close

	nan := NewFilledDense(t, 1, 1, []float64{math.NaN()})
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok) // NaN is never close
}

func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	_, err := matrix.AllClose(a, MustDense(t, 2, 3), 0, 0)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	AssertErrorIs(t, err, matrix.ErrNaNInf)

	ok, err := matrix.AllClose(a, a, -1, -1) // negative tolerances are normalized
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEqual_UsesEpsilonOption(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1, 2 + 1e-7})

	ok, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.False(t, ok) // DefaultEpsilon is 1e-9

	ok, err = matrix.Equal(a, b, matrix.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.True(t, ok)
}
