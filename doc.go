// Package lupkit is a small dense linear-algebra kernel for square matrices:
// LU factorization with partial pivoting and everything that falls out of it.
//
// 🚀 What is lupkit?
//
//	A pure-Go, allocation-conscious toolkit that brings together:
//		• LU decomposition with partial pivoting (P·A = L·U, in place)
//		• Linear solve from a reusable factorization
//		• Inverse and determinant, with singularity reported as an error
//		• Trace, transpose and multiply on the same row-major layout
//		• LaTeX output and a compact "4 3; 6 3" row literal
//
// ✨ Why choose lupkit?
//
//   - Explicit mutation - copying entry points by default, *InPlace when you ask
//   - Deterministic - fixed loop order, bit-identical results for identical input
//   - Honest failures - a zero pivot is ErrSingular, never a silent Inf
//
// Layout:
//
//	matrix/       - Dense, validators, options, LUP and the safe public API
//	matrix/ops/   - flat []float64 entry points: Inverse(a, ia, n), Determinant(a, n), …
//	internal/lup/ - raw kernels shared by both surfaces
//	cmd/lupcheck/ - diagnostic CLI: random A·A⁻¹ self-check and one-shot evaluation
//
// Quick example:
//
//	a, _ := matrix.ParseRows("4 3; 6 3")
//	det, _ := matrix.Determinant(a) // -6
//	inv, _ := matrix.Inverse(a)     // [[-0.5 0.5] [1 -0.6667]]
//
//	go get github.com/katalvlaran/lupkit
package lupkit
