// SPDX-License-Identifier: MIT
// Package matrix provides LU factorization with partial pivoting and the
// operations built on it: linear solve, inverse and determinant.
//
// Purpose:
//   - Expose the flat kernels of internal/lup behind a bounds-checked surface.
//   - Make mutation explicit: Factorize/Inverse/Determinant copy their input,
//     the *InPlace variants consume a caller-owned *Dense.
//   - Surface a degenerate pivot as ErrSingular at every entry point.
//
// Notes:
//   - All kernels validate via validators.go and wrap with matrixErrorf(op*, err).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lupkit/internal/lup"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLU          = "LU"
	opSolve       = "Solve"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opTrace       = "Trace"
	opTranspose   = "Transpose"
	opMul         = "Mul"
	opIdentity    = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Returns:
//   - error: formats as "<tag>: <underlying>" and still matches errors.Is/As.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// singularErrorf reports the column at which factorization found no pivot.
func singularErrorf(col int) error {
	return matrixErrorf(opLU, fmt.Errorf("column %d: %w", col, ErrSingular))
}

// LUP is a completed factorization P·A = L·U of a square matrix A.
//
//   - lu holds L strictly below the diagonal (unit diagonal implicit) and U on
//     and above it, row-major n×n.
//   - perm is the permutation record: perm[i] is the original row at position
//     i, perm[n] = n + number of swaps.
//
// A LUP built by Factorize owns its storage: it is immutable after
// construction and may be shared by concurrent readers, and every method
// allocates its own outputs. A LUP built by FactorizeInPlace shares d's
// buffer instead, so writes through d change the factorization.
type LUP struct {
	n    int // validDims(n, n) holds for every source matrix that reaches here
	lu   []float64
	perm lup.Permutation
}

// Factorize computes P·A = L·U for a copy of m. m is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); resolve options (pivot tolerance).
//   - Stage 2: flatten m (fast copy for *Dense, At-walk otherwise).
//   - Stage 3: run lup.Decompose; on a degenerate column return ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Factorize(m Matrix, opts ...Option) (*LUP, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	buf, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	return factorizeBuffer(buf, m.Rows(), gatherOptions(opts...))
}

// FactorizeInPlace factorizes d, reusing its buffer as the L/U storage.
//
// d is consumed: on success it holds the packed factors (and aliases the
// returned LUP's storage, so it must not be written afterwards); on
// ErrSingular it is left partially eliminated up to the failing column.
// Clone first if the original values are still needed.
//
// Complexity: O(n^3) time, O(n) extra space.
func FactorizeInPlace(d *Dense, opts ...Option) (*LUP, error) {
	if err := ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	return factorizeBuffer(d.data, d.r, gatherOptions(opts...))
}

// factorizeBuffer runs the raw kernel on buf (len n*n) and reports the first
// degenerate column on failure.
func factorizeBuffer(buf []float64, n int, o Options) (*LUP, error) {
	perm := lup.NewPermutation(n)
	if !lup.Decompose(buf, n, perm, o.pivotTol) {
		return nil, singularErrorf(lup.DegenerateColumn(buf, n, o.pivotTol))
	}

	return &LUP{n: n, lu: buf, perm: perm}, nil
}

// N returns the dimension of the factorized matrix.
func (f *LUP) N() int { return f.n }

// Pivots returns a copy of the row ordering (perm[0..n-1]).
func (f *LUP) Pivots() []int { return f.perm.Rows() }

// Swaps returns the number of row exchanges performed during factorization.
func (f *LUP) Swaps() int { return f.perm.Swaps() }

// L returns the unit lower-triangular factor as a fresh Dense.
// Complexity: O(n^2).
func (f *LUP) L() *Dense {
	n := f.n
	out := newDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
		out.data[i*n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor as a fresh Dense.
// Complexity: O(n^2).
func (f *LUP) U() *Dense {
	n := f.n
	out := newDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
	}

	return out
}

// P returns the permutation matrix with P·A = L·U (P[i, perm[i]] = 1).
// Complexity: O(n^2).
func (f *LUP) P() *Dense {
	n := f.n
	out := newDense(n, n)
	for i := 0; i < n; i++ {
		out.data[i*n+f.perm[i]] = 1
	}

	return out
}

// Solve returns x with A·x = b.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != n).
//
// Complexity: O(n^2) time, O(n) space.
func (f *LUP) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, f.n)
	lup.Solve(f.lu, f.perm, b, f.n, x)

	return x, nil
}

// SolveInto writes the solution of A·x = b into x without allocating.
// b is read through the permutation, so x must not share storage with b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOutput.
func (f *LUP) SolveInto(x, b []float64) error {
	if err := ValidateVecLen(b, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(x, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateNoAlias(x, b); err != nil {
		return matrixErrorf(opSolve, err)
	}
	lup.Solve(f.lu, f.perm, b, f.n, x)

	return nil
}

// Inverse returns A^{-1} as a fresh Dense. Complexity: O(n^3).
func (f *LUP) Inverse() *Dense {
	out := newDense(f.n, f.n)
	lup.Invert(f.lu, f.perm, f.n, out.data)

	return out
}

// InverseInto writes A^{-1} into dst, which must be n×n.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOutput (dst shares the factor storage).
func (f *LUP) InverseInto(dst *Dense) error {
	if err := ValidateSquare(dst); err != nil {
		return matrixErrorf(opInverse, err)
	}
	if dst.r != f.n {
		return matrixErrorf(opInverse, ErrDimensionMismatch)
	}
	if err := ValidateNoAlias(dst.data, f.lu); err != nil {
		return matrixErrorf(opInverse, err)
	}
	lup.Invert(f.lu, f.perm, f.n, dst.data)

	return nil
}

// Determinant returns det(A): the U diagonal product with the permutation sign.
// Complexity: O(n).
func (f *LUP) Determinant() float64 {
	return lup.Determinant(f.lu, f.perm, f.n)
}

// Solve returns x with m·x = b, factorizing a copy of m.
// For repeated right-hand sides, use Factorize once and (*LUP).Solve.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n^3).
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := Factorize(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Inverse computes m^{-1} using LU factorization with partial pivoting.
// The input is copied; m is never mutated.
//
// Implementation:
//   - Stage 1: Factorize(m) (validates non-nil, square; detects singularity).
//   - Stage 2: for each column j run forward/backward substitution against
//     the permuted basis vector e_j directly into column j of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := Factorize(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return f.Inverse(), nil
}

// InverseInPlace factorizes a in place and writes a^{-1} into dst.
//
// a is consumed (see FactorizeInPlace). On ErrSingular dst is left untouched.
// dst must be a distinct n×n Dense.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOutput, ErrSingular.
func InverseInPlace(a, dst *Dense, opts ...Option) error {
	if err := ValidateSquare(a); err != nil {
		return matrixErrorf(opInverse, err)
	}
	if err := ValidateSameShape(a, dst); err != nil {
		return matrixErrorf(opInverse, err)
	}
	if err := ValidateNoAlias(dst.data, a.data); err != nil {
		return matrixErrorf(opInverse, err)
	}
	f, err := FactorizeInPlace(a, opts...)
	if err != nil {
		return matrixErrorf(opInverse, err)
	}
	lup.Invert(f.lu, f.perm, f.n, dst.data)

	return nil
}

// Determinant returns det(m) via LU factorization of a copy of m.
//
// A degenerate pivot yields (0, ErrSingular): the matrix is singular within
// the pivot tolerance, so 0 is the mathematically expected value, and the
// error lets callers tell "exactly singular" from "tiny but non-zero".
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n^3).
func Determinant(m Matrix, opts ...Option) (float64, error) {
	f, err := Factorize(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return f.Determinant(), nil
}

// DeterminantInPlace is Determinant without the copy: a is consumed.
func DeterminantInPlace(a *Dense, opts ...Option) (float64, error) {
	f, err := FactorizeInPlace(a, opts...)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return f.Determinant(), nil
}
