package simd

// byteOrder lists bytes from most to least common in English prose and
// source code. Bytes not listed (control bytes, non-ASCII) rank as rarest.
const byteOrder = " etaoinsrhldcumfpgwybv,.\n_-()kx=\"'0;:12/jq\t*z{}<>[]3$#@!9&%+45678?|\\~^`" +
	"ETAOINSRHLDCUMFPGWYBVKXJQZ"

// byteRank maps each byte to a rarity rank: lower is rarer.
var byteRank = func() (rank [256]byte) {
	n := len(byteOrder)
	for i := 0; i < n; i++ {
		// most common gets 255, the tail of the list still ranks above 0
		rank[byteOrder[i]] = byte(255 - i*254/n)
	}
	return rank
}()

// Rank returns the rarity rank of b; lower values are rarer.
func Rank(b byte) byte {
	return byteRank[b]
}

// RarestByte returns the index of the rarest byte in needle. Ties go to
// the later position, which tends to reject candidates sooner.
func RarestByte(needle []byte) int {
	best := 0
	for i := 1; i < len(needle); i++ {
		if byteRank[needle[i]] <= byteRank[needle[best]] {
			best = i
		}
	}
	return best
}
