//go:build amd64

package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// hasAVX2 selects the runtime's vectorised IndexByte for long inputs.
var hasAVX2 = cpu.X86.HasAVX2

// avx2Threshold is the input length below which SWAR beats the call
// overhead of the vectorised path.
const avx2Threshold = 64

// Memchr returns the index of the first needle in haystack, or -1.
func Memchr(haystack []byte, needle byte) int {
	if hasAVX2 && len(haystack) >= avx2Threshold {
		return bytes.IndexByte(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first needle1 or needle2, or -1.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first needle1, needle2 or needle3, or -1.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	return memchr3Generic(haystack, needle1, needle2, needle3)
}
