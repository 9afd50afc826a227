package ranker

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"trending/internal/apperr"
	"trending/internal/domain"
)

// frontierLess orders the frontier so its root is the next entry to evict:
// lowest count first, and among equal counts the lexicographically greatest
// token.
func frontierLess(a, b domain.RankedEntry) bool {
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Token > b.Token
}

// resultLess orders the final result: highest count first, equal counts by
// ascending token.
func resultLess(a, b domain.RankedEntry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Token < b.Token
}

// frontier is a min-heap of candidates under frontierLess.
type frontier []domain.RankedEntry

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return frontierLess(f[i], f[j]) }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(domain.RankedEntry)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[0 : n-1]
	return x
}

// SelectTopK returns the k entries of table with the highest counts, highest
// first. Memory for the selection is O(k) and time O(n log k) for n distinct
// tokens. The table is not modified.
func SelectTopK(table *domain.FrequencyTable, k int) (domain.TopKResult, error) {
	if k <= 0 {
		return nil, apperr.NewInvalidArgument(fmt.Sprintf("k must be positive, got %d", k))
	}
	if table == nil || table.Len() == 0 {
		return domain.TopKResult{}, nil
	}

	capacity := k + 1
	if n := table.Len(); n < k {
		capacity = n + 1
	}
	f := make(frontier, 0, capacity)

	table.Each(func(token string, count int) {
		heap.Push(&f, domain.RankedEntry{Token: token, Count: count})
		if f.Len() > k {
			heap.Pop(&f)
		}
	})

	result := make(domain.TopKResult, len(f))
	copy(result, f)
	sort.Slice(result, func(i, j int) bool {
		return resultLess(result[i], result[j])
	})

	return result, nil
}

// HeapSelector adapts SelectTopK to port.TopKSelector.
type HeapSelector struct {
	logger *logrus.Entry
}

func NewHeapSelector(logger *logrus.Logger) *HeapSelector {
	return &HeapSelector{logger: logger.WithField("component", "ranker")}
}

func (s *HeapSelector) SelectTopK(table *domain.FrequencyTable, k int) (domain.TopKResult, error) {
	result, err := SelectTopK(table, k)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"k":        k,
		"distinct": table.Len(),
		"selected": len(result),
	}).Debug("selected top hashtags")
	return result, nil
}
