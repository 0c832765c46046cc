// Package hashing implements conflict-avoiding bank-index hash functions for
// interleaved memory partitions and banked caches.
//
// Each function takes the high-order bits of a physical address (everything
// above the raw index and offset bits), the raw bank index, and the number of
// banks, and returns a remapped index in [0, bankCount). The remapping is a
// fixed linear map over GF(2): every output bit is the XOR of a fixed subset
// of the input bits, so identical inputs always produce identical outputs.
// Bit 0 is the least-significant bit throughout.
package hashing

// xorReduce XORs together the listed bits of v.
func xorReduce(v uint64, bits []uint) uint64 {
	r := uint64(0)
	for _, b := range bits {
		r ^= (v >> b) & 1
	}

	return r
}
