// SPDX-License-Identifier: MIT

// Package ops provides flat-buffer entry points for the lupkit/matrix package.
//
// Every function takes row-major []float64 buffers plus the dimension n, in
// the conventional flat argument order: Inverse(a, ia, n),
// Determinant(a, n), Trace(a, n), Transpose(a, n), Multiply(x, y, r, n).
//
// Contract:
//   - Lengths are checked once on entry: n <= 0 is ErrBadShape, a nil buffer
//     is ErrNilMatrix, a buffer shorter than n*n is ErrDimensionMismatch, and
//     an n whose n*n overflows int is ErrBadShape.
//     Longer buffers are accepted; only the first n*n entries are used. The
//     right-hand side of Solve follows the same rule with n entries, unlike
//     matrix.Solve and (*matrix.LUP).Solve, which require len(b) == n.
//   - Decompose, Inverse and Determinant overwrite a with its L/U factors.
//     Copy a first when the original is still needed.
//   - A degenerate pivot returns an error wrapping matrix.ErrSingular; the
//     output buffer of Inverse is not written on that path.
//
// Sentinels are shared with package matrix so errors.Is works across both.
package ops

import (
	"fmt"

	"github.com/katalvlaran/lupkit/internal/lup"
	"github.com/katalvlaran/lupkit/matrix"
)

const (
	opDecompose   = "ops.Decompose"
	opSolve       = "ops.Solve"
	opInverse     = "ops.Inverse"
	opDeterminant = "ops.Determinant"
	opTrace       = "ops.Trace"
	opTranspose   = "ops.Transpose"
	opMultiply    = "ops.Multiply"
)

// Permutation is the pivot record returned by Decompose: entries 0..n-1 are
// the original row at each position, entry n is n plus the swap count.
type Permutation = lup.Permutation

func opsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// decompose validates a and factorizes it in place with the exact-zero pivot policy.
func decompose(tag string, a []float64, n int) (Permutation, error) {
	if err := matrix.ValidateFlatSquare(a, n); err != nil {
		return nil, opsErrorf(tag, err)
	}
	p := lup.NewPermutation(n)
	if !lup.Decompose(a, n, p, matrix.DefaultPivotTolerance) {
		col := lup.DegenerateColumn(a, n, matrix.DefaultPivotTolerance)
		return nil, opsErrorf(tag, fmt.Errorf("column %d: %w", col, matrix.ErrSingular))
	}

	return p, nil
}

// Decompose overwrites a with P·A = L·U and returns the pivot record.
// On ErrSingular a is left partially eliminated.
//
// Complexity: O(n^3) time, O(n) extra space.
func Decompose(a []float64, n int) (Permutation, error) {
	return decompose(opDecompose, a, n)
}

// Solve returns x with A·x = b, given the factors a and pivot record p from
// Decompose. b is not modified; only b[:n] is read.
//
// Errors:
//   - ErrBadShape / ErrNilMatrix / ErrDimensionMismatch for a and b.
//   - ErrDimensionMismatch when len(p) != n+1; ErrBadShape when p is not a
//     valid pivot record.
//
// Complexity: O(n^2).
func Solve(a []float64, p []int, b []float64, n int) ([]float64, error) {
	if err := matrix.ValidateFlatSquare(a, n); err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	if len(p) != n+1 {
		return nil, opsErrorf(opSolve, matrix.ErrDimensionMismatch)
	}
	perm := Permutation(p)
	if !perm.IsValid() {
		return nil, opsErrorf(opSolve, matrix.ErrBadShape)
	}
	if b == nil {
		return nil, opsErrorf(opSolve, matrix.ErrNilMatrix)
	}
	if len(b) < n {
		return nil, opsErrorf(opSolve, matrix.ErrDimensionMismatch)
	}
	x := make([]float64, n)
	lup.Solve(a, perm, b, n, x)

	return x, nil
}

// Inverse factorizes a in place and writes A^{-1} into ia.
//
// Implementation:
//   - Stage 1: validate both buffers and reject ia overlapping a.
//   - Stage 2: Decompose(a); ErrSingular leaves ia untouched.
//   - Stage 3: column-by-column substitution against the permuted basis.
//
// Errors: ErrBadShape, ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOutput, ErrSingular.
// Complexity: O(n^3).
func Inverse(a, ia []float64, n int) error {
	if err := matrix.ValidateFlatSquare(a, n); err != nil {
		return opsErrorf(opInverse, err)
	}
	if err := matrix.ValidateFlatSquare(ia, n); err != nil {
		return opsErrorf(opInverse, err)
	}
	if err := matrix.ValidateNoAlias(ia[:n*n], a[:n*n]); err != nil {
		return opsErrorf(opInverse, err)
	}
	p, err := decompose(opInverse, a, n)
	if err != nil {
		return err
	}
	lup.Invert(a, p, n, ia)

	return nil
}

// Determinant factorizes a in place and returns det(A).
// A singular matrix yields (0, ErrSingular).
// Complexity: O(n^3).
func Determinant(a []float64, n int) (float64, error) {
	p, err := decompose(opDeterminant, a, n)
	if err != nil {
		return 0, err
	}

	return lup.Determinant(a, p, n), nil
}

// Trace returns Σ a[i,i]. a is not modified. Complexity: O(n).
func Trace(a []float64, n int) (float64, error) {
	if err := matrix.ValidateFlatSquare(a, n); err != nil {
		return 0, opsErrorf(opTrace, err)
	}

	return lup.Trace(a, n), nil
}

// Transpose transposes a in place. Complexity: O(n^2).
func Transpose(a []float64, n int) error {
	if err := matrix.ValidateFlatSquare(a, n); err != nil {
		return opsErrorf(opTranspose, err)
	}
	lup.Transpose(a, n)

	return nil
}

// Multiply writes r = x·y. r must not overlap x or y (ErrAliasedOutput);
// x and y may be the same buffer.
// Complexity: O(n^3).
func Multiply(x, y, r []float64, n int) error {
	for _, buf := range [][]float64{x, y, r} {
		if err := matrix.ValidateFlatSquare(buf, n); err != nil {
			return opsErrorf(opMultiply, err)
		}
	}
	nn := n * n
	if err := matrix.ValidateNoAlias(r[:nn], x[:nn], y[:nn]); err != nil {
		return opsErrorf(opMultiply, err)
	}
	lup.Multiply(x, y, r, n)

	return nil
}
