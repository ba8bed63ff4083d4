// Package vectorizer turns short texts into bag-of-words count vectors over
// a vocabulary learned from the training texts.
package vectorizer

import "errors"

// ErrEmptyVocabulary is returned when the training texts contain no tokens.
var ErrEmptyVocabulary = errors.New("vectorizer: empty vocabulary; texts contain no words")

// Vectorizer holds a frozen vocabulary.
type Vectorizer struct {
	vocab *vocab
}

// Fit learns the vocabulary of docs.
func Fit(docs []string) (*Vectorizer, error) {
	tokenized := make([][]string, len(docs))
	for i, d := range docs {
		tokenized[i] = Tokenize(d)
	}
	v := &Vectorizer{vocab: buildVocab(tokenized)}
	if v.vocab.size() == 0 {
		return nil, ErrEmptyVocabulary
	}
	return v, nil
}

// Transform returns one dense term-count row per doc. Tokens outside the
// vocabulary are ignored, so a doc with no known words yields a zero row.
func (v *Vectorizer) Transform(docs []string) [][]float64 {
	rows := make([][]float64, len(docs))
	for i, d := range docs {
		row := make([]float64, v.vocab.size())
		for _, tok := range Tokenize(d) {
			if id, ok := v.vocab.lookup(tok); ok {
				row[id]++
			}
		}
		rows[i] = row
	}
	return rows
}

// Size returns the vocabulary size, which is also the row width.
func (v *Vectorizer) Size() int {
	return v.vocab.size()
}

// Terms returns the vocabulary in column order.
func (v *Vectorizer) Terms() []string {
	out := make([]string, len(v.vocab.idToTerm))
	copy(out, v.vocab.idToTerm)
	return out
}
