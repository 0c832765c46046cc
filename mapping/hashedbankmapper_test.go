package mapping

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HashedBankMapper", func() {
	It("should keep the raw index when the high bits are zero", func() {
		mapper := MakeBuilder().
			WithNumBanks(32).
			WithInterleavingSize(256).
			WithHashKind(HashIPoly).
			Build()

		Expect(mapper.Find(0x000)).To(Equal(uint64(0)))
		Expect(mapper.Find(0x500)).To(Equal(uint64(5)))
		Expect(mapper.Find(0x1f00)).To(Equal(uint64(31)))
	})

	It("should hash the high bits into the index", func() {
		mapper := MakeBuilder().
			WithNumBanks(32).
			WithInterleavingSize(256).
			WithHashKind(HashIPoly).
			Build()

		Expect(mapper.Find(0xabcd00)).To(Equal(uint64(0)))
		Expect(mapper.Find(0x12345678)).To(Equal(uint64(12)))
	})

	It("should spread a full power-of-two stride over all banks", func() {
		mapper := MakeBuilder().
			WithNumBanks(32).
			WithInterleavingSize(256).
			WithHashKind(HashIPoly).
			Build()

		// Stride 8192 keeps the raw index at 0 for every access; an
		// InterleavedBankMapper would send all of them to bank 0.
		seen := make(map[uint64]bool)
		for i := uint64(0); i < 32; i++ {
			seen[mapper.Find(i*8192)] = true
		}
		Expect(seen).To(HaveLen(32))
	})

	It("should apply the bitwise hash", func() {
		mapper := MakeBuilder().
			WithNumBanks(32).
			WithInterleavingSize(256).
			WithHashKind(HashBitwise).
			Build()

		Expect(mapper.Find(5<<13 | 5<<8)).To(Equal(uint64(0)))
		Expect(mapper.Find(5 << 8)).To(Equal(uint64(5)))
	})

	It("should apply the pae hash", func() {
		mapper := MakeBuilder().
			WithNumBanks(32).
			WithInterleavingSize(256).
			WithHashKind(HashPAE).
			Build()

		Expect(mapper.Find(0x500)).To(Equal(uint64(30)))
		Expect(mapper.Find(0xabcd00)).To(Equal(uint64(20)))
		Expect(mapper.Find(0x12345678)).To(Equal(uint64(19)))
	})
})

var _ = Describe("Builder", func() {
	It("should panic on a non-power-of-two bank count", func() {
		Expect(func() {
			MakeBuilder().WithNumBanks(6).Build()
		}).To(Panic())
	})

	It("should panic on a non-power-of-two interleaving size", func() {
		Expect(func() {
			MakeBuilder().WithInterleavingSize(100).Build()
		}).To(Panic())
	})

	It("should panic when the hash cannot serve the bank count", func() {
		Expect(func() {
			MakeBuilder().
				WithNumBanks(4).
				WithHashKind(HashIPoly).
				Build()
		}).To(Panic())

		Expect(func() {
			MakeBuilder().
				WithNumBanks(64).
				WithHashKind(HashPAE).
				Build()
		}).To(Panic())
	})

	It("should panic when no hash is selected", func() {
		Expect(func() {
			MakeBuilder().WithHashKind(HashNone).Build()
		}).To(Panic())
	})
})

var _ = Describe("ParseHashKind", func() {
	It("should parse the known kinds", func() {
		for _, kind := range []HashKind{
			HashNone, HashBitwise, HashIPoly, HashPAE,
		} {
			parsed, err := ParseHashKind(kind.String())
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(kind))
		}
	})

	It("should reject unknown kinds", func() {
		_, err := ParseHashKind("md5")
		Expect(err).To(HaveOccurred())
	})
})
