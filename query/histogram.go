package query

import "github.com/scholartools/maka/academic"

// CalcHistogramQuery evaluates a query expression and returns the
// distribution of attribute values over the matching entities. It shares
// the evaluate parameter set and posts to the calchistogram endpoint.
type CalcHistogramQuery struct {
	EvaluateQuery
}

// NewCalcHistogram creates a histogram query with default attributes,
// paging, and model values.
func NewCalcHistogram(expr string) *CalcHistogramQuery {
	return &CalcHistogramQuery{EvaluateQuery: *NewEvaluate(expr)}
}

// Kind implements Query.
func (q *CalcHistogramQuery) Kind() academic.QueryKind {
	return academic.KindHistogram
}

// URL implements Query.
func (q *CalcHistogramQuery) URL(baseURL string) string {
	return baseURL + "/calchistogram"
}
