package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1. An empty needle matches at 0.
//
// Candidates are found by scanning for the needle's rarest byte with
// Memchr; each candidate is then verified in full.
func Memmem(haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return Memchr(haystack, needle[0])
	}

	rare := RarestByte(needle)
	rb := needle[rare]

	// the rare byte of a match at s sits at s+rare, so s <= len-len(needle)
	// bounds the scan to [rare, len-len(needle)+rare]
	limit := len(haystack) - len(needle) + rare
	for pos := rare; pos <= limit; {
		off := Memchr(haystack[pos:limit+1], rb)
		if off < 0 {
			return -1
		}
		pos += off
		start := pos - rare
		if bytes.Equal(haystack[start:start+len(needle)], needle) {
			return start
		}
		pos++
	}
	return -1
}
