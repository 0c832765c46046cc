// Package mapping maps physical addresses to memory-bank numbers.
package mapping

// A BankMapper finds the bank that holds the data at a certain address.
type BankMapper interface {
	Find(address uint64) uint64
}

// SingleBankMapper is used when all addresses live in one bank.
type SingleBankMapper struct {
	Bank uint64
}

// Find simply returns the solo bank.
func (m *SingleBankMapper) Find(address uint64) uint64 {
	return m.Bank
}

// InterleavedBankMapper stripes consecutive interleaving units across banks
// in order, without hashing. Strided access patterns whose stride is a
// multiple of InterleavingSize*NumBanks all land on the same bank; use a
// HashedBankMapper to avoid that.
type InterleavedBankMapper struct {
	InterleavingSize uint64
	NumBanks         uint64
}

// Find returns the bank that has the data at the provided address.
func (m *InterleavedBankMapper) Find(address uint64) uint64 {
	return address / m.InterleavingSize % m.NumBanks
}
