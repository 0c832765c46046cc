package hashing

// BitwiseHash XORs the raw index with the low bits of highBits. It is the
// cheap baseline: trivially invertible, but weaker against power-of-two
// strides than IPolyHash. bankCount must be a power of two; the function does
// not check this precondition.
func BitwiseHash(highBits, index, bankCount uint64) uint64 {
	return index ^ (highBits & (bankCount - 1))
}
