package academic

import (
	"encoding/json"
	"strconv"
	"strings"
)

// QueryKind identifies which API endpoint produced a response envelope.
type QueryKind int

// The query kinds supported by the API.
const (
	KindHistogram QueryKind = iota
	KindInterpret
	KindEvaluate
	KindSimilarity
	// KindGraphTraversal exists in the API surface but has no supported
	// decoding path.
	KindGraphTraversal
)

// String returns the lowercase name of the query kind.
func (k QueryKind) String() string {
	switch k {
	case KindHistogram:
		return "histogram"
	case KindInterpret:
		return "interpret"
	case KindEvaluate:
		return "evaluate"
	case KindSimilarity:
		return "similarity"
	case KindGraphTraversal:
		return "graph_traversal"
	default:
		return "unknown"
	}
}

// Result is the decoded outcome of one query. Entities carries the decoded
// entity list for interpret, evaluate, and histogram queries; Similarity
// carries the scalar score for similarity queries.
type Result struct {
	Entities   []*Entity
	Similarity float64
}

// envelopeField maps a query kind to the top-level field wrapping its result
// items.
var envelopeField = map[QueryKind]string{
	KindInterpret: "interpretations",
	KindEvaluate:  "entities",
	KindHistogram: "histograms",
}

// DecodeResponse decodes a raw response body for the given query kind.
// Output order equals input array order; no reordering is introduced.
//
// Callers must only pass successful (2xx) response bodies; transport
// failures are surfaced by the transport layer and never reach the decoder.
func DecodeResponse(kind QueryKind, body []byte) (*Result, error) {
	switch kind {
	case KindInterpret:
		return decodeEnvelope(kind, body, "Interpretation", ParseInterpretation)
	case KindEvaluate:
		return decodeEnvelope(kind, body, "Paper", ParsePaper)
	case KindHistogram:
		return decodeEnvelope(kind, body, "Histogram", ParseHistogram)
	case KindSimilarity:
		score, err := strconv.ParseFloat(strings.TrimSpace(string(body)), 64)
		if err != nil {
			return nil, newDecodeErrorf("Similarity", "body", "expected a floating-point scalar: %v", err)
		}
		return &Result{Similarity: score}, nil
	default:
		return nil, newDecodeErrorf(kind.String(), "", "unsupported query kind")
	}
}

// decodeEnvelope unmarshals a response envelope, extracts the query kind's
// envelope field, and decodes each element with the given parser.
func decodeEnvelope(kind QueryKind, body []byte, entity string, parse func(map[string]any) (*Entity, error)) (*Result, error) {
	field := envelopeField[kind]

	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, newDecodeErrorf(entity, field, "response body is not a JSON object: %v", err)
	}

	rawItems, ok := envelope[field]
	if !ok {
		return nil, NewDecodeError(entity, field)
	}
	items, ok := rawItems.([]any)
	if !ok {
		return nil, newDecodeErrorf(entity, field, "expected an array")
	}

	entities := make([]*Entity, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, newDecodeErrorf(entity, field, "array element is not an object")
		}
		decoded, err := parse(obj)
		if err != nil {
			return nil, err
		}
		entities = append(entities, decoded)
	}
	return &Result{Entities: entities}, nil
}
