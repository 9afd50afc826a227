package domain

import "fmt"

// RankedEntry is one candidate for the top-k result: a hashtag and the
// number of lines it appeared in.
type RankedEntry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

func (e RankedEntry) String() string {
	return fmt.Sprintf("%s: %d", e.Token, e.Count)
}

// TopKResult holds at most k entries ordered by count, highest first.
type TopKResult []RankedEntry

// Tokens returns the hashtags in result order.
func (r TopKResult) Tokens() []string {
	tokens := make([]string, len(r))
	for i, e := range r {
		tokens[i] = e.Token
	}
	return tokens
}
