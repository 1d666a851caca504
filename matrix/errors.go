// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// and matrix/ops packages. Kernels return these sentinels (optionally wrapped
// with an operation tag) and tests check them via errors.Is. No kernel panics
// on user-triggered error conditions; panics are reserved for programmer
// errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with matrixErrorf(op, ErrX) at the kernel
// boundary; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> aliasing -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when a flat buffer cannot describe an n×n matrix
	// (n <= 0, or a data slice whose length is not rows*cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// a non-square input to a factorization, Mul with a.Cols != b.Rows, or a
	// right-hand side whose length differs from n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when the best available pivot of some column is
	// within the pivot tolerance (exactly zero by default).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAliasedOutput is returned when an output buffer shares storage with
	// an input that the kernel still reads (MulInto, ops.Multiply, Solve).
	ErrAliasedOutput = errors.New("matrix: output aliases input")

	// ErrParse signals a malformed matrix literal passed to ParseRows.
	ErrParse = errors.New("matrix: malformed matrix literal")
)
