// Package bloom deduplicates article URLs in batch input using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate is used by Dedup.
const DefaultFalsePositiveRate = 0.001

// Filter records article URLs that have already been queued.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records url.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test reports whether url may have been recorded. False positives are
// possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// TestAndAdd records url and reports whether it may have been recorded before.
func (f *Filter) TestAndAdd(url string) bool {
	return f.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Dedup returns urls with repeats removed, keeping first occurrences in
// order. A false positive drops a URL that was not a repeat, with
// probability DefaultFalsePositiveRate per URL.
func Dedup(urls []string) []string {
	f := NewFilter(uint(len(urls)), DefaultFalsePositiveRate)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if f.TestAndAdd(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}
