// SPDX-License-Identifier: MIT

// Package matrix - trace, transpose, multiply and the small constructors
// and comparisons used around them.
//
// Every entry point follows the same shape:
//   - validate via validators.go (nil → shape → aliasing);
//   - take the flat *Dense fast-path, or read through At in fixed i→j order;
//   - wrap failures with matrixErrorf(op, err).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lupkit/internal/lup"
)

// Trace returns the sum of the main diagonal of a square matrix.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := m.Rows()
	if d, ok := m.(*Dense); ok {
		return lup.Trace(d.data, n), nil
	}

	var (
		t, v float64
		err  error
	)
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		t += v
	}

	return t, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// m is never mutated; rectangular input is accepted.
//
// Implementation:
//   - Stage 1: validate m is non-nil and allocate a Cols×Rows result.
//   - Stage 2: *Dense fast-path copies data[i*cols+j] → res[j*rows+i].
//   - Stage 3: fallback reads through At.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// TransposeInPlace swaps d[i,j] and d[j,i] for every i < j.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n^2), no allocation.
func TransposeInPlace(d *Dense) error {
	if err := ValidateSquare(d); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	lup.Transpose(d.data, d.r)

	return nil
}

// Mul returns the product a·b as a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: flatten both operands (Dense copies its buffer, others via At).
//   - Stage 3: square operands run the flat kernel; rectangular ones the same
//     row·column accumulation with their own strides.
//
// Behavior highlights:
//   - Each entry is one accumulator summed over k in increasing order, so
//     results are reproducible bit-for-bit.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*k*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	x, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	y, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulFlat(x, y, res.data, a.Rows(), a.Cols(), b.Cols())

	return res, nil
}

// MulInto writes a·b into dst without allocating.
//
// dst must be a.Rows()×b.Cols() and must not share storage with a or b:
// the kernel reads both operands while it writes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOutput.
func MulInto(dst, a, b *Dense) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opMul, err)
	}
	if dst.r != a.r || dst.c != b.c {
		return matrixErrorf(opMul, ErrDimensionMismatch)
	}
	if err := ValidateNoAlias(dst.data, a.data, b.data); err != nil {
		return matrixErrorf(opMul, err)
	}
	mulFlat(a.data, b.data, dst.data, a.r, a.c, b.c)

	return nil
}

// mulFlat computes r = x·y for x (rows×inner) and y (inner×cols).
func mulFlat(x, y, r []float64, rows, inner, cols int) {
	if rows == inner && inner == cols {
		lup.Multiply(x, y, r, rows)
		return
	}
	var i, j, k, baseX int
	var acc float64
	for i = 0; i < rows; i++ {
		baseX = i * inner
		for j = 0; j < cols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += x[baseX+k] * y[k*cols+j]
			}
			r[i*cols+j] = acc
		}
	}
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// NewZeros is NewDense under the name callers usually look for.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// AllClose reports whether a and b share a shape and every pair satisfies
// |a-b| <= atol + rtol*|b|. NaN never compares close.
//
// Errors: ErrNilMatrix, plus any At failure of a non-Dense operand.
// A shape difference is not an error: it reports false.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, err
	}
	if err := ValidateNotNil(b); err != nil {
		return false, err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	x, err := flatten(a)
	if err != nil {
		return false, err
	}
	y, err := flatten(b)
	if err != nil {
		return false, err
	}
	for i := range x {
		if !(math.Abs(x[i]-y[i]) <= atol+rtol*math.Abs(y[i])) {
			return false, nil
		}
	}

	return true, nil
}

// IsIdentity reports whether m is square with |m[i,j] - δij| <= eps
// everywhere; eps comes from WithEpsilon (DefaultEpsilon otherwise).
func IsIdentity(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, err
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	_, worst, err := MaxIdentityResidual(m)
	if err != nil {
		return false, err
	}

	return worst <= gatherOptions(opts...).eps, nil
}

// MaxIdentityResidual returns the largest |m[i,j] - δij| and its flat offset.
// NaN entries report +Inf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(n^2).
func MaxIdentityResidual(m Matrix) (at int, worst float64, err error) {
	if err = ValidateSquare(m); err != nil {
		return 0, 0, matrixErrorf(opIdentity, err)
	}
	buf, err := flatten(m)
	if err != nil {
		return 0, 0, matrixErrorf(opIdentity, err)
	}
	n := m.Rows()
	var d float64
	for idx, v := range buf {
		if idx/n == idx%n {
			v--
		}
		d = math.Abs(v)
		if math.IsNaN(d) {
			d = math.Inf(1)
		}
		if d > worst {
			worst, at = d, idx
		}
	}

	return at, worst, nil
}
