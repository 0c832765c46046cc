package hashing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PAEHash", func() {
	It("should match the reference matrix", func() {
		type vector struct {
			highBits, index, hashed uint64
		}

		vectors := []vector{
			{0, 0, 0},
			{0, 5, 30},
			{0xdeadbeef, 3, 25},
			{0x123456789ab, 31, 17},
			{0x3fff, 9, 2},
		}

		for _, v := range vectors {
			Expect(PAEHash(v.highBits, v.index, 32)).To(Equal(v.hashed))
		}
	})

	It("should stay within the bank range", func() {
		for _, highBits := range []uint64{0, 0xabcdef, 1 << 50} {
			for index := uint64(0); index < 32; index++ {
				Expect(PAEHash(highBits, index, 32)).
					To(BeNumerically("<", uint64(32)))
			}
		}
	})

	It("should be deterministic", func() {
		first := PAEHash(0x13579bdf, 21, 32)
		for i := 0; i < 16; i++ {
			Expect(PAEHash(0x13579bdf, 21, 32)).To(Equal(first))
		}
	})

	It("should panic on any bank count other than 32", func() {
		Expect(func() { PAEHash(0, 0, 64) }).To(Panic())
		Expect(func() { PAEHash(0, 0, 8) }).To(Panic())
	})
})
