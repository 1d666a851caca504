// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lupkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second typed nil", dense(2, 2), typedNil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSquare(hide{MustDense(t, 1, 1)}), "fallback types are accepted")
}

// TestValidateVecLenAndMul covers vector length and product compatibility.
func TestValidateVecLenAndMul(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 2, 3)), matrix.ErrNilMatrix)
}

// TestValidateFlatSquare follows the fixed error priority: shape → nil → length.
func TestValidateFlatSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateFlatSquare(make([]float64, 4), 0), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateFlatSquare(nil, -2), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateFlatSquare(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateFlatSquare(make([]float64, 3), 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateFlatSquare(make([]float64, 5), 2), "longer buffers are accepted")
}

// TestValidateFlatSquare_Overflow rejects an n whose n*n wraps around int
// before the length comparison can be fooled.
func TestValidateFlatSquare_Overflow(t *testing.T) {
	t.Parallel()

	edge := overflowSide()
	require.ErrorIs(t, matrix.ValidateFlatSquare([]float64{1}, edge), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateFlatSquare([]float64{1}, math.MaxInt/2), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateFlatSquare(make([]float64, 4), math.MaxInt), matrix.ErrBadShape)
	require.ErrorIs(t, matrix.ValidateFlatSquare([]float64{1}, edge-1), matrix.ErrDimensionMismatch,
		"the largest representable n*n is still a plain length check")
}

// TestValidateNoAlias checks overlap detection across sub-slices.
func TestValidateNoAlias(t *testing.T) {
	t.Parallel()

	buf := make([]float64, 8)
	require.NoError(t, matrix.ValidateNoAlias(buf[:4], buf[4:]))
	require.ErrorIs(t, matrix.ValidateNoAlias(buf[:5], buf[4:]), matrix.ErrAliasedOutput)
	require.ErrorIs(t, matrix.ValidateNoAlias(buf, make([]float64, 2), buf[7:]), matrix.ErrAliasedOutput)
	require.NoError(t, matrix.ValidateNoAlias(buf, nil))
	require.NoError(t, matrix.ValidateNoAlias(buf))
}
