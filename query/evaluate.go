package query

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/scholartools/maka/academic"
)

// EvaluateQuery evaluates a structured query expression and returns matching
// paper entities.
type EvaluateQuery struct {
	// Expr is the query expression to evaluate, typically produced by an
	// interpret query.
	Expr string `validate:"required"`

	// Attributes is the comma-separated list of wire codes to request for
	// each entity.
	Attributes string

	// Count is the maximum number of entities to return.
	Count int `validate:"gte=0"`

	// Offset is the index of the first entity to return.
	Offset int `validate:"gte=0"`

	// Model is the name of the model to query.
	Model string
}

// NewEvaluate creates an evaluate query with default attributes, paging, and
// model values.
func NewEvaluate(expr string) *EvaluateQuery {
	return &EvaluateQuery{
		Expr:       expr,
		Attributes: "Id",
		Count:      MaxPageResults,
		Model:      DefaultModel,
	}
}

// Kind implements Query.
func (q *EvaluateQuery) Kind() academic.QueryKind {
	return academic.KindEvaluate
}

// URL implements Query.
func (q *EvaluateQuery) URL(baseURL string) string {
	return baseURL + "/evaluate"
}

// Body implements Query.
func (q *EvaluateQuery) Body() (url.Values, error) {
	if err := validate.Struct(q); err != nil {
		return nil, fmt.Errorf("evaluate query: %w", err)
	}
	v := url.Values{}
	v.Set("expr", q.Expr)
	v.Set("attributes", q.Attributes)
	v.Set("count", strconv.Itoa(q.Count))
	v.Set("offset", strconv.Itoa(q.Offset))
	v.Set("model", q.Model)
	return v, nil
}
