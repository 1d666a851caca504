// Package matrix offers a bounds-checked dense matrix and LU-based linear algebra.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container whose At/Set return errors
//     instead of panicking.
//   - Factorize / FactorizeInPlace producing an LUP (P·A = L·U with partial
//     pivoting) that can be reused for many Solve calls.
//   - Inverse, Determinant and Solve built on the factorization; a column
//     without a usable pivot surfaces as ErrSingular.
//   - Trace, Transpose, Mul and their in-place forms, plus identity helpers
//     and AllClose / IsIdentity comparisons.
//   - FormatLaTeX and ParseRows for moving matrices through text.
//
// Entry points copy their inputs unless the name says InPlace/Into; those
// consume or fill caller-owned storage and reject aliased outputs.
//
// Numeric policy (pivot tolerance, comparison epsilon, NaN/Inf rejection)
// is configured per call with functional options; see options.go.
//
// See the examples in this package for usage patterns.
package matrix
