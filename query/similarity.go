package query

import (
	"fmt"
	"net/url"

	"github.com/scholartools/maka/academic"
)

// SimilarityQuery computes the semantic similarity score between two
// strings. The endpoint answers with a bare floating-point scalar rather
// than a JSON envelope.
type SimilarityQuery struct {
	// S1 is the first string to compare.
	S1 string `validate:"required"`

	// S2 is the second string to compare.
	S2 string `validate:"required"`
}

// NewSimilarity creates a similarity query for the two strings.
func NewSimilarity(s1, s2 string) *SimilarityQuery {
	return &SimilarityQuery{S1: s1, S2: s2}
}

// Kind implements Query.
func (q *SimilarityQuery) Kind() academic.QueryKind {
	return academic.KindSimilarity
}

// URL implements Query.
func (q *SimilarityQuery) URL(baseURL string) string {
	return baseURL + "/similarity"
}

// Body implements Query.
func (q *SimilarityQuery) Body() (url.Values, error) {
	if err := validate.Struct(q); err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}
	v := url.Values{}
	v.Set("s1", q.S1)
	v.Set("s2", q.S2)
	return v, nil
}
