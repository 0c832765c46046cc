package conflictstats

import "github.com/sarchlab/bankhash/mapping"

// A SweepConfig describes one stride sweep.
type SweepConfig struct {
	// Mapper labels the mapper under test in the results.
	Mapper string

	NumBanks uint64
	Strides  []uint64

	// Accesses is the number of addresses replayed per stride.
	Accesses uint64
}

// A SweepResult summarizes one strided run through a bank mapper.
type SweepResult struct {
	Mapper         string
	NumBanks       uint64
	Stride         uint64
	Accesses       uint64
	BanksTouched   uint64
	BusiestCount   uint64
	ConflictFactor float64
}

// RunStrideSweep replays, for each stride, a sequence of accesses at
// addresses 0, stride, 2*stride, ... through the mapper and reports how the
// accesses distributed over the banks.
func RunStrideSweep(
	mapper mapping.BankMapper,
	cfg SweepConfig,
) []SweepResult {
	results := make([]SweepResult, 0, len(cfg.Strides))

	for _, stride := range cfg.Strides {
		histogram := NewHistogram(cfg.NumBanks)
		for i := uint64(0); i < cfg.Accesses; i++ {
			histogram.Add(mapper.Find(i * stride))
		}

		results = append(results, SweepResult{
			Mapper:         cfg.Mapper,
			NumBanks:       cfg.NumBanks,
			Stride:         stride,
			Accesses:       histogram.Total(),
			BanksTouched:   histogram.BanksTouched(),
			BusiestCount:   histogram.BusiestCount(),
			ConflictFactor: histogram.ConflictFactor(),
		})
	}

	return results
}
