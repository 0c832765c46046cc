package hashing

import "fmt"

// ipolyAddrBits holds, per bank count, the H-matrix of the IPOLY interleaving
// scheme: row k lists the address bits that are XORed into output bit k, on
// top of raw-index bit k. The rows are reproduced verbatim from the published
// design (IPOLY(19) for 16 banks, IPOLY(37) for 32, IPOLY(67) for 64,
// IPOLY(131) for 128, IPOLY(283) for 256) and must not be re-derived.
var ipolyAddrBits = map[uint64][][]uint{
	8: {
		{11, 10, 9, 7, 4, 3, 2, 0},
		{12, 9, 8, 7, 5, 2, 1, 0},
		{13, 10, 9, 8, 6, 3, 2, 1},
	},
	16: {
		{11, 10, 9, 8, 6, 4, 3, 0},
		{12, 8, 7, 6, 5, 3, 1, 0},
		{9, 8, 7, 6, 4, 2, 1},
		{10, 9, 8, 7, 5, 3, 2},
	},
	32: {
		{13, 12, 11, 10, 9, 6, 5, 3, 0},
		{14, 13, 12, 11, 10, 7, 6, 4, 1},
		{14, 10, 9, 8, 7, 6, 3, 2, 0},
		{11, 10, 9, 8, 7, 4, 3, 1},
		{12, 11, 10, 9, 8, 5, 4, 2},
	},
	64: {
		{18, 17, 16, 15, 12, 10, 6, 5, 0},
		{15, 13, 12, 11, 10, 7, 5, 1, 0},
		{16, 14, 13, 12, 11, 8, 6, 2, 1},
		{17, 15, 14, 13, 12, 9, 7, 3, 2},
		{18, 16, 15, 14, 13, 10, 8, 4, 3},
		{17, 16, 15, 14, 11, 9, 5, 4},
	},
	128: {
		{21, 20, 19, 18, 14, 12, 7, 6, 0},
		{22, 18, 15, 14, 13, 12, 8, 6, 1, 0},
		{19, 16, 15, 14, 13, 9, 7, 2, 1},
		{20, 17, 16, 15, 14, 10, 8, 3, 2},
		{21, 18, 17, 16, 15, 11, 9, 4, 3},
		{22, 19, 18, 17, 16, 12, 10, 5, 4},
		{20, 19, 18, 17, 13, 11, 6, 5},
	},
	256: {
		{21, 20, 19, 17, 16, 13, 12, 10, 7, 5, 4, 0},
		{19, 18, 16, 14, 12, 11, 10, 8, 7, 6, 4, 1, 0},
		{20, 19, 17, 15, 13, 12, 11, 9, 8, 7, 5, 2, 1},
		{19, 18, 17, 14, 9, 8, 7, 6, 5, 4, 3, 2, 0},
		{21, 18, 17, 16, 15, 13, 12, 9, 8, 6, 3, 1, 0},
		{19, 18, 17, 16, 14, 13, 10, 9, 7, 4, 2, 1},
		{20, 19, 18, 17, 15, 14, 11, 10, 8, 5, 3, 2},
		{21, 20, 19, 18, 16, 15, 12, 11, 9, 6, 4, 3},
	},
}

// IPolySupports reports whether IPolyHash carries a matrix for bankCount.
func IPolySupports(bankCount uint64) bool {
	_, ok := ipolyAddrBits[bankCount]
	return ok
}

// IPolyHash remaps a raw bank index with the pseudo-randomly interleaved
// memory scheme of Rau et al. (ISCA 1991). For every fixed value of highBits
// the map from raw index to hashed index is a bijection, and the hash is
// conflict-free for all power-of-two strides. bankCount must be one of 8,
// 16, 32, 64, 128, or 256; any other value panics.
func IPolyHash(highBits, index, bankCount uint64) uint64 {
	rows, ok := ipolyAddrBits[bankCount]
	if !ok {
		panic(fmt.Sprintf(
			"ipoly hash supports 8, 16, 32, 64, 128, or 256 banks, not %d",
			bankCount))
	}

	hashed := uint64(0)
	for k, addrBits := range rows {
		bit := (index >> uint(k)) & 1
		bit ^= xorReduce(highBits, addrBits)
		hashed |= bit << uint(k)
	}

	return hashed
}
