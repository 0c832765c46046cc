package mapping

import (
	"fmt"

	"github.com/sarchlab/bankhash/hashing"
)

// Builder can build hashed bank mappers.
type Builder struct {
	numBanks         uint64
	interleavingSize uint64
	hashKind         HashKind
}

// MakeBuilder creates a builder with default configuration: 32 banks
// interleaved at 256-byte granularity, hashed with IPoly.
func MakeBuilder() Builder {
	return Builder{
		numBanks:         32,
		interleavingSize: 256,
		hashKind:         HashIPoly,
	}
}

// WithNumBanks sets the number of banks. It must be a power of two.
func (b Builder) WithNumBanks(n uint64) Builder {
	b.numBanks = n
	return b
}

// WithInterleavingSize sets the number of bytes mapped to one bank before
// moving to the next. It must be a power of two.
func (b Builder) WithInterleavingSize(size uint64) Builder {
	b.interleavingSize = size
	return b
}

// WithHashKind sets the hash function the mapper applies.
func (b Builder) WithHashKind(kind HashKind) Builder {
	b.hashKind = kind
	return b
}

// Build creates the mapper. It panics if the configuration cannot support
// the selected hash.
func (b Builder) Build() *HashedBankMapper {
	log2Banks, ok := log2(b.numBanks)
	if !ok {
		panic("number of banks must be a power of two")
	}

	log2Interleaving, ok := log2(b.interleavingSize)
	if !ok {
		panic("interleaving size must be a power of two")
	}

	m := &HashedBankMapper{
		numBanks:             b.numBanks,
		log2InterleavingSize: log2Interleaving,
		log2NumBanks:         log2Banks,
	}

	switch b.hashKind {
	case HashBitwise:
		m.hash = hashing.BitwiseHash
	case HashIPoly:
		if !hashing.IPolySupports(b.numBanks) {
			panic(fmt.Sprintf(
				"ipoly hash does not support %d banks", b.numBanks))
		}
		m.hash = hashing.IPolyHash
	case HashPAE:
		if b.numBanks != 32 {
			panic(fmt.Sprintf(
				"pae hash does not support %d banks", b.numBanks))
		}
		m.hash = hashing.PAEHash
	default:
		panic("hash kind " + b.hashKind.String() +
			" cannot be used with a hashed bank mapper")
	}

	return m
}

// log2 returns the log2 of a number. It also returns false if it is not a
// log2 number.
func log2(n uint64) (uint64, bool) {
	oneCount := 0
	onePos := uint64(0)

	for i := uint64(0); i < 64; i++ {
		if n&(1<<i) > 0 {
			onePos = i
			oneCount++
		}
	}

	return onePos, oneCount == 1
}
