package analyzer

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"k8s.io/apimachinery/pkg/util/sets"
)

// DefaultMarker prefixes a word that should be counted.
const DefaultMarker = "#"

// Tokenizer extracts marked tokens (hashtags) from a line of text.
type Tokenizer struct {
	marker    string
	dropEmpty bool
	ignore    []string
}

// NewTokenizer creates a new Tokenizer. An empty marker falls back to
// DefaultMarker. Tokens matching any of the ignore glob patterns are skipped.
func NewTokenizer(marker string, dropEmpty bool, ignore []string) *Tokenizer {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Tokenizer{
		marker:    marker,
		dropEmpty: dropEmpty,
		ignore:    ignore,
	}
}

// ExtractTokens splits line on whitespace and returns the distinct words that
// start with the marker, with exactly one leading marker removed. A bare
// marker yields the empty token unless the tokenizer drops empties.
func (t *Tokenizer) ExtractTokens(line string) sets.Set[string] {
	tokens := sets.New[string]()

	for _, word := range strings.Fields(line) {
		if !strings.HasPrefix(word, t.marker) {
			continue
		}
		token := word[len(t.marker):]
		if token == "" && t.dropEmpty {
			continue
		}
		if t.shouldIgnore(token) {
			continue
		}
		tokens.Insert(token)
	}

	return tokens
}

func (t *Tokenizer) shouldIgnore(token string) bool {
	for _, pattern := range t.ignore {
		matched, err := doublestar.Match(pattern, token)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// ValidatePatterns reports the first malformed ignore pattern, if any.
func ValidatePatterns(patterns []string) (string, bool) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return p, false
		}
	}
	return "", true
}
