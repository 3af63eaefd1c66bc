// Package simd provides the byte search primitives used by prefilters to
// skip text that cannot start a match.
//
// The portable implementations use SWAR (SIMD within a register): eight
// bytes are compared at once through uint64 arithmetic. On amd64 CPUs
// with AVX2, long single-byte searches are handed to bytes.IndexByte,
// whose runtime implementation is vectorised.
package simd
