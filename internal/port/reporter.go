package port

import "trending/internal/domain"

// Reporter renders the final result for the user.
type Reporter interface {
	Report(result domain.TopKResult) error
}
