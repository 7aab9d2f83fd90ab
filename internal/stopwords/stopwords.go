// Package stopwords holds the token exclusion list used by word-frequency
// queries. The list is loaded once and treated as immutable configuration.
package stopwords

import (
	"os"
	"strings"
)

// defaultWords is the built-in English/Hinglish list used when no external
// word list is configured.
var defaultWords = strings.Fields(`
the is are and or to in a an hai ke ka ki se aur par bhi nahi hi ok
`)

type Set map[string]struct{}

// Default returns the built-in stop-word set.
func Default() Set {
	return New(defaultWords)
}

func New(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Load reads a whitespace-separated word list from path. An empty path or a
// missing file falls back to the built-in default; that is recovery, not an
// error, so the pipeline never fails on absent configuration.
func Load(path string) (Set, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return New(strings.Fields(string(data))), nil
}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Strip lower-cases text, drops stop words and re-joins the survivors with
// single spaces. Applying it twice gives the same result as once.
func (s Set) Strip(text string) string {
	var kept []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if !s.Contains(w) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
