// SPDX-License-Identifier: MIT

package lup

import "unsafe"

// Overlaps reports whether the backing memory of a and b intersects.
// Empty slices never overlap.
func Overlaps(a, b []float64) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	const width = unsafe.Sizeof(float64(0))
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*width
	b1 := b0 + uintptr(len(b))*width

	return a0 < b1 && b0 < a1
}
