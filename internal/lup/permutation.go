// SPDX-License-Identifier: MIT

package lup

// Permutation records the row ordering produced by Decompose.
//
// Layout (length n+1):
//   - p[0..n-1]: p[i] names the original row now sitting at position i.
//   - p[n]:      n + number of row swaps (parity carrier for determinants).
//
// The zero value is not usable; build one with NewPermutation.
type Permutation []int

// NewPermutation allocates an identity record for dimension n (p[n] == n).
// Complexity: O(n).
func NewPermutation(n int) Permutation {
	p := make(Permutation, n+1)
	p.Reset()

	return p
}

// Reset rewrites p to the identity ordering with a zero swap count.
func (p Permutation) Reset() {
	for i := range p {
		p[i] = i // p[n] = n by construction of the loop
	}
}

// N returns the dimension the record was sized for.
func (p Permutation) N() int { return len(p) - 1 }

// Swaps returns the number of row exchanges recorded in p[n].
func (p Permutation) Swaps() int { return p[len(p)-1] - p.N() }

// Sign returns +1 for an even number of swaps and -1 for an odd one.
func (p Permutation) Sign() float64 {
	if p.Swaps()%2 == 0 {
		return 1
	}

	return -1
}

// Rows returns a copy of the ordering entries p[0..n-1].
func (p Permutation) Rows() []int {
	out := make([]int, p.N())
	copy(out, p[:p.N()])

	return out
}

// IsValid reports whether p[0..n-1] is a bijection onto {0..n-1} and
// p[n] >= n. Complexity: O(n) time, O(n) scratch.
func (p Permutation) IsValid() bool {
	if len(p) < 2 {
		return false
	}
	n := p.N()
	if p[n] < n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range p[:n] {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
