// SPDX-License-Identifier: MIT

// Package lup holds the raw row-major kernels behind lupkit: LU factorization
// with partial pivoting (Doolittle), triangular solves, inversion and the
// determinant, plus trace/transpose/multiply on flat n×n buffers.
//
// Contract for every function here:
//   - a, x, y, r, ia are flat row-major buffers with len >= n*n (vectors: >= n).
//   - n >= 1.
//   - Nothing is validated. Shape checks live in package matrix and matrix/ops;
//     violating the contract panics with an index error or yields garbage.
//
// All loops run in a fixed order, so identical inputs give bit-identical
// outputs.
package lup

import "math"

// Decompose overwrites a with its combined L/U factors and fills p.
//
// Implementation:
//   - Stage 1: reset p to identity with p[n] = n.
//   - Stage 2: for each column i pick the row imax in i..n-1 with the largest
//     |a[k,i]|; strict '>' keeps the first maximal row in scan order.
//   - Stage 3: if the best magnitude is <= tol, stop and return false.
//   - Stage 4: swap rows i/imax of a and entries of p, bump p[n].
//   - Stage 5: store multipliers a[j,i] /= a[i,i] and update the trailing block.
//
// On failure a and p are left as they were at the failing column. Callers
// that need the original must copy it first.
//
// Complexity: O(n^3) time, O(1) extra space.
func Decompose(a []float64, n int, p Permutation, tol float64) bool {
	var (
		i, j, k, imax int
		maxA, absA    float64
		rowI, rowJ    int
	)
	p.Reset()

	for i = 0; i < n; i++ {
		maxA = 0
		imax = i
		for k = i; k < n; k++ {
			if absA = math.Abs(a[k*n+i]); absA > maxA {
				maxA = absA
				imax = k
			}
		}

		// NaN columns never beat maxA = 0 and land here as well.
		if maxA <= tol {
			return false
		}

		if imax != i {
			p[i], p[imax] = p[imax], p[i]
			swapRows(a, n, i, imax)
			p[n]++
		}

		rowI = i * n
		for j = i + 1; j < n; j++ {
			rowJ = j * n
			a[rowJ+i] /= a[rowI+i]
			for k = i + 1; k < n; k++ {
				a[rowJ+k] -= a[rowJ+i] * a[rowI+k]
			}
		}
	}

	return true
}

// DegenerateColumn returns the first column i of a partially eliminated
// buffer whose sub-column a[i..n-1, i] has no magnitude above tol, or -1.
// After a failed Decompose this is the column that stopped it.
// Complexity: O(n^2).
func DegenerateColumn(a []float64, n int, tol float64) int {
	var i, k int
	for i = 0; i < n; i++ {
		k = i
		for ; k < n; k++ {
			if math.Abs(a[k*n+i]) > tol {
				break
			}
		}
		if k == n {
			return i
		}
	}

	return -1
}

// swapRows exchanges full rows r1 and r2 of the n×n buffer a.
func swapRows(a []float64, n, r1, r2 int) {
	b1, b2 := r1*n, r2*n
	for c := 0; c < n; c++ {
		a[b1+c], a[b2+c] = a[b2+c], a[b1+c]
	}
}

// Solve writes into x the solution of A·x = b, where a and p come from a
// successful Decompose of A. b is read through p, so b and x must not alias.
//
// Forward pass:  x[i] = b[p[i]] - Σ_{k<i} a[i,k]·x[k]   (unit diagonal of L).
// Backward pass: x[i] = (x[i] - Σ_{k>i} a[i,k]·x[k]) / a[i,i].
//
// Complexity: O(n^2).
func Solve(a []float64, p Permutation, b []float64, n int, x []float64) {
	var i, k, row int
	for i = 0; i < n; i++ {
		row = i * n
		x[i] = b[p[i]]
		for k = 0; k < i; k++ {
			x[i] -= a[row+k] * x[k]
		}
	}

	for i = n - 1; i >= 0; i-- {
		row = i * n
		for k = i + 1; k < n; k++ {
			x[i] -= a[row+k] * x[k]
		}
		x[i] /= a[row+i]
	}
}

// Invert writes A^{-1} into ia using the factors a, p from Decompose.
// Each column j starts from the permuted basis vector (ia[i,j] = 1 iff
// p[i] == j) and runs the same two passes as Solve directly in column j.
//
// Complexity: O(n^3).
func Invert(a []float64, p Permutation, n int, ia []float64) {
	var i, j, k, row int
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			row = i * n
			if p[i] == j {
				ia[row+j] = 1
			} else {
				ia[row+j] = 0
			}
			for k = 0; k < i; k++ {
				ia[row+j] -= a[row+k] * ia[k*n+j]
			}
		}

		for i = n - 1; i >= 0; i-- {
			row = i * n
			for k = i + 1; k < n; k++ {
				ia[row+j] -= a[row+k] * ia[k*n+j]
			}
			ia[row+j] /= a[row+i]
		}
	}
}

// Determinant returns det(A) from the factors a, p of Decompose: the product
// of the U diagonal, negated when the swap count is odd.
// Complexity: O(n).
func Determinant(a []float64, p Permutation, n int) float64 {
	det := a[0]
	for i := 1; i < n; i++ {
		det *= a[i*n+i]
	}

	return det * p.Sign()
}

// Trace returns Σ a[i,i]. Complexity: O(n).
func Trace(a []float64, n int) float64 {
	var t float64
	for i := 0; i < n; i++ {
		t += a[i*n+i]
	}

	return t
}

// Transpose swaps a[i,j] and a[j,i] for all i < j, in place.
// Complexity: O(n^2), no extra buffer.
func Transpose(a []float64, n int) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a[i*n+j], a[j*n+i] = a[j*n+i], a[i*n+j]
		}
	}
}

// Multiply writes r = x·y with the plain triple loop
// r[row,col] = Σ_k x[row,k]·y[k,col]. r must not alias x or y.
// Complexity: O(n^3).
func Multiply(x, y, r []float64, n int) {
	var row, col, k, base int
	var acc float64
	for row = 0; row < n; row++ {
		base = row * n
		for col = 0; col < n; col++ {
			acc = 0
			for k = 0; k < n; k++ {
				acc += x[base+k] * y[k*n+col]
			}
			r[base+col] = acc
		}
	}
}
