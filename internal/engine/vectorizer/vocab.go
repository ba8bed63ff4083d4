package vectorizer

import "sort"

// vocab maps terms to column indices. Indices follow lexicographic term
// order so that fitting the same documents always yields the same layout.
type vocab struct {
	termToID map[string]int
	idToTerm []string
}

// buildVocab collects every distinct token across docs.
func buildVocab(docs [][]string) *vocab {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, tok := range doc {
			seen[tok] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for tok := range seen {
		terms = append(terms, tok)
	}
	sort.Strings(terms)

	v := &vocab{
		termToID: make(map[string]int, len(terms)),
		idToTerm: terms,
	}
	for i, t := range terms {
		v.termToID[t] = i
	}
	return v
}

// lookup returns the column for term and whether it is in the vocabulary.
func (v *vocab) lookup(term string) (int, bool) {
	id, ok := v.termToID[term]
	return id, ok
}

// size returns the number of terms in the vocabulary.
func (v *vocab) size() int {
	return len(v.idToTerm)
}
