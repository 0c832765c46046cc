package mapping

import (
	"fmt"
	"strings"
)

// A HashKind selects which hash function a HashedBankMapper applies.
type HashKind int

// The supported hash kinds.
const (
	HashNone HashKind = iota
	HashBitwise
	HashIPoly
	HashPAE
)

func (k HashKind) String() string {
	switch k {
	case HashNone:
		return "none"
	case HashBitwise:
		return "bitwise"
	case HashIPoly:
		return "ipoly"
	case HashPAE:
		return "pae"
	default:
		return fmt.Sprintf("HashKind(%d)", int(k))
	}
}

// ParseHashKind converts a configuration string into a HashKind.
func ParseHashKind(s string) (HashKind, error) {
	switch strings.ToLower(s) {
	case "none":
		return HashNone, nil
	case "bitwise":
		return HashBitwise, nil
	case "ipoly":
		return HashIPoly, nil
	case "pae":
		return HashPAE, nil
	default:
		return HashNone, fmt.Errorf("unknown hash kind %q", s)
	}
}

// HashedBankMapper splits an address into raw bank index and higher bits at a
// configurable interleaving granularity and remaps the index through one of
// the hash functions in the hashing package. Build one with MakeBuilder; the
// configuration is validated once there so Find stays unchecked.
type HashedBankMapper struct {
	numBanks             uint64
	log2InterleavingSize uint64
	log2NumBanks         uint64
	hash                 func(highBits, index, bankCount uint64) uint64
}

// Find returns the hashed bank for the provided address.
func (m *HashedBankMapper) Find(address uint64) uint64 {
	index := (address >> m.log2InterleavingSize) & (m.numBanks - 1)
	highBits := address >> (m.log2InterleavingSize + m.log2NumBanks)

	return m.hash(highBits, index, m.numBanks)
}
