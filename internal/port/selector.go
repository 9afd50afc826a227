package port

import "trending/internal/domain"

// TopKSelector picks the k most frequent hashtags from a table.
type TopKSelector interface {
	SelectTopK(table *domain.FrequencyTable, k int) (domain.TopKResult, error)
}
