// Package query builds typed requests to the Academic Knowledge API and
// submits them through a transport, decoding the response envelopes into
// academic entities.
package query

import (
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/scholartools/maka/academic"
)

const (
	// DefaultBaseURL is the Academic Knowledge API v1.0 endpoint root.
	DefaultBaseURL = "https://westus.api.cognitive.microsoft.com/academic/v1.0"

	// MaxPageResults is the default and maximum number of results
	// requested per page.
	MaxPageResults = 50

	// DefaultModel is the model name queried when none is set.
	DefaultModel = "latest"

	// DefaultInterpretTimeoutMS is the default interpret timeout in
	// milliseconds. Only interpretations found before the timeout elapses
	// are returned.
	DefaultInterpretTimeoutMS = 1000
)

// Query is a typed request to one Academic Knowledge endpoint.
type Query interface {
	// Kind reports which result envelope the endpoint answers with.
	Kind() academic.QueryKind

	// URL returns the endpoint URL under the given base URL.
	URL(baseURL string) string

	// Body validates the query and returns its form-encoded parameters.
	Body() (url.Values, error)
}

// validate checks the struct tags on query types before a request is built.
var validate = validator.New(validator.WithRequiredStructEnabled())
