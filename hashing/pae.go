package hashing

import "fmt"

// A gfRow selects the input bits that are XORed into one output bit.
type gfRow struct {
	addrBits  []uint
	indexBits []uint
}

// paeRows32 is the page-address-entropy matrix for 32 banks. Unlike the
// IPOLY matrices, each row draws from several raw-index bits. Self-cancelling
// bit pairs in the reference matrix are elided; the remaining terms are
// behavior-identical over GF(2).
var paeRows32 = []gfRow{
	{addrBits: []uint{13, 10, 9, 5, 0}, indexBits: []uint{3}},
	{addrBits: []uint{12, 11, 6, 1}, indexBits: []uint{3, 2}},
	{addrBits: []uint{14, 9, 8, 7, 2}, indexBits: []uint{2, 1}},
	{addrBits: []uint{11, 10, 8, 3}, indexBits: []uint{2}},
	{addrBits: []uint{12, 9, 8, 5, 4}, indexBits: []uint{4, 1, 0}},
}

// PAEHash remaps a raw bank index by mixing entropy from both the page and
// the bank bits of the address, following Liu et al., "Get Out of the
// Valley". Only 32 banks are supported; any other bankCount panics.
func PAEHash(highBits, index, bankCount uint64) uint64 {
	if bankCount != 32 {
		panic(fmt.Sprintf(
			"pae hash supports 32 banks, not %d", bankCount))
	}

	hashed := uint64(0)
	for k, row := range paeRows32 {
		bit := xorReduce(highBits, row.addrBits)
		bit ^= xorReduce(index, row.indexBits)
		hashed |= bit << uint(k)
	}

	return hashed
}
