package mapping

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InterleavedBankMapper", func() {
	var mapper *InterleavedBankMapper

	BeforeEach(func() {
		mapper = &InterleavedBankMapper{
			InterleavingSize: 4096,
			NumBanks:         6,
		}
	})

	It("should stripe consecutive units across banks", func() {
		Expect(mapper.Find(0)).To(Equal(uint64(0)))
		Expect(mapper.Find(4096)).To(Equal(uint64(1)))
		Expect(mapper.Find(4097)).To(Equal(uint64(1)))
		Expect(mapper.Find(6 * 4096)).To(Equal(uint64(0)))
	})

	It("should collapse strides that are multiples of the full sweep", func() {
		stride := mapper.InterleavingSize * mapper.NumBanks
		for i := uint64(0); i < 100; i++ {
			Expect(mapper.Find(i * stride)).To(Equal(uint64(0)))
		}
	})
})

var _ = Describe("SingleBankMapper", func() {
	It("should return the solo bank", func() {
		mapper := &SingleBankMapper{Bank: 3}
		Expect(mapper.Find(0)).To(Equal(uint64(3)))
		Expect(mapper.Find(0xffffffff)).To(Equal(uint64(3)))
	})
})
