// Package conv provides checked integer narrowing for the engine's
// internal bookkeeping (node ids, byte ranges).
//
// The helpers panic on overflow: a value out of range here means an
// internal invariant was broken, not that the input was bad.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// uint comparison keeps this correct where int is 32 bits wide
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// IntToByte converts n to a byte.
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToByte(n int) byte {
	if n < 0 || n > math.MaxUint8 {
		panic("integer overflow: int value out of byte range")
	}
	return byte(n)
}
