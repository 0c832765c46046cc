// Package conflictstats measures how evenly a bank mapper spreads memory
// accesses across banks.
package conflictstats

// Histogram counts accesses per bank.
type Histogram struct {
	counts []uint64
	total  uint64
}

// NewHistogram creates a histogram over numBanks banks.
func NewHistogram(numBanks uint64) *Histogram {
	return &Histogram{counts: make([]uint64, numBanks)}
}

// Add records one access to the given bank.
func (h *Histogram) Add(bank uint64) {
	h.counts[bank]++
	h.total++
}

// Count returns the number of accesses recorded for one bank.
func (h *Histogram) Count(bank uint64) uint64 {
	return h.counts[bank]
}

// Total returns the number of accesses recorded.
func (h *Histogram) Total() uint64 {
	return h.total
}

// BanksTouched returns the number of banks with at least one access.
func (h *Histogram) BanksTouched() uint64 {
	touched := uint64(0)
	for _, c := range h.counts {
		if c > 0 {
			touched++
		}
	}

	return touched
}

// BusiestCount returns the access count of the most-loaded bank.
func (h *Histogram) BusiestCount() uint64 {
	busiest := uint64(0)
	for _, c := range h.counts {
		if c > busiest {
			busiest = c
		}
	}

	return busiest
}

// ConflictFactor returns the load of the busiest bank relative to a perfectly
// uniform spread. 1.0 means conflict-free; the number of banks is the worst
// case, with every access on one bank.
func (h *Histogram) ConflictFactor() float64 {
	if h.total == 0 {
		return 0
	}

	ideal := float64(h.total) / float64(len(h.counts))

	return float64(h.BusiestCount()) / ideal
}
