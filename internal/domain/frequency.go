package domain

import "k8s.io/apimachinery/pkg/util/sets"

// FrequencyTable counts, per hashtag, the number of lines it was seen in.
// It only grows; selecting the top entries never mutates it.
type FrequencyTable struct {
	counts map[string]int
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Accumulate records one line's worth of hashtags. Each call counts as a
// separate line, so passing the same set twice doubles the counts.
func (t *FrequencyTable) Accumulate(tokens sets.Set[string]) {
	for token := range tokens {
		t.counts[token]++
	}
}

// Count returns the count for token, zero if it was never seen.
func (t *FrequencyTable) Count(token string) int {
	return t.counts[token]
}

// Len returns the number of distinct hashtags.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Each calls fn for every hashtag in unspecified order.
func (t *FrequencyTable) Each(fn func(token string, count int)) {
	for token, count := range t.counts {
		fn(token, count)
	}
}
