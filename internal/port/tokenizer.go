package port

import "k8s.io/apimachinery/pkg/util/sets"

type Tokenizer interface {
	// ExtractTokens returns the distinct marked tokens found in line.
	ExtractTokens(line string) sets.Set[string]
}
