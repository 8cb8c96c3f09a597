package query

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/scholartools/maka/academic"
)

// InterpretQuery asks the API to interpret a natural language query string
// into structured query expressions suitable for evaluation.
type InterpretQuery struct {
	// Query is the natural language query to interpret.
	Query string `validate:"required"`

	// Complete enables autocompletion: 1 generates completion suggestions
	// based on the grammar and graph data, 0 disables them.
	Complete int `validate:"gte=0,lte=1"`

	// Count is the maximum number of interpretations to return.
	Count int `validate:"gte=0"`

	// Offset is the index of the first interpretation to return.
	Offset int `validate:"gte=0"`

	// TimeoutMS bounds the interpretation time in milliseconds.
	TimeoutMS int `validate:"gte=0"`

	// Model is the name of the model to query.
	Model string
}

// NewInterpret creates an interpret query with default paging, timeout, and
// model values.
func NewInterpret(queryText string) *InterpretQuery {
	return &InterpretQuery{
		Query:     queryText,
		Count:     MaxPageResults,
		TimeoutMS: DefaultInterpretTimeoutMS,
		Model:     DefaultModel,
	}
}

// Kind implements Query.
func (q *InterpretQuery) Kind() academic.QueryKind {
	return academic.KindInterpret
}

// URL implements Query.
func (q *InterpretQuery) URL(baseURL string) string {
	return baseURL + "/interpret"
}

// Body implements Query.
func (q *InterpretQuery) Body() (url.Values, error) {
	if err := validate.Struct(q); err != nil {
		return nil, fmt.Errorf("interpret query: %w", err)
	}
	v := url.Values{}
	v.Set("query", q.Query)
	v.Set("complete", strconv.Itoa(q.Complete))
	v.Set("count", strconv.Itoa(q.Count))
	v.Set("offset", strconv.Itoa(q.Offset))
	v.Set("timeout", strconv.Itoa(q.TimeoutMS))
	v.Set("model", q.Model)
	return v, nil
}
