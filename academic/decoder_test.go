package academic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse(t *testing.T) {
	t.Run("interpret envelope decodes interpretations in order", func(t *testing.T) {
		body := []byte(`{"interpretations": [
			{"parse": "first", "rules": []},
			{"parse": "second", "rules": []}
		]}`)

		result, err := DecodeResponse(KindInterpret, body)
		require.NoError(t, err)
		require.Len(t, result.Entities, 2)

		p0, _ := result.Entities[0].Get("parse")
		p1, _ := result.Entities[1].Get("parse")
		assert.Equal(t, "first", p0)
		assert.Equal(t, "second", p1)
		assert.Equal(t, "Interpretation", result.Entities[0].Type())
	})

	t.Run("evaluate envelope decodes papers", func(t *testing.T) {
		body := []byte(`{"expr": "Ti='x'", "entities": [{"Id": 42, "Ti": "A Study"}]}`)

		result, err := DecodeResponse(KindEvaluate, body)
		require.NoError(t, err)
		require.Len(t, result.Entities, 1)
		assert.Equal(t, "Paper", result.Entities[0].Type())
		title, _ := result.Entities[0].Get("title")
		assert.Equal(t, "A Study", title)
	})

	t.Run("histogram envelope decodes histograms", func(t *testing.T) {
		body := []byte(`{"histograms": [{
			"attribute": "Y",
			"distinct_values": 3,
			"total_count": 30,
			"histogram": [{"value": 2020, "prob": 1.0, "count": 30}]
		}]}`)

		result, err := DecodeResponse(KindHistogram, body)
		require.NoError(t, err)
		require.Len(t, result.Entities, 1)
		assert.Equal(t, "Histogram", result.Entities[0].Type())
	})

	t.Run("similarity body parses as a scalar", func(t *testing.T) {
		result, err := DecodeResponse(KindSimilarity, []byte(" 0.8743\n"))
		require.NoError(t, err)
		assert.InDelta(t, 0.8743, result.Similarity, 1e-9)
		assert.Empty(t, result.Entities)
	})

	t.Run("non-numeric similarity body fails", func(t *testing.T) {
		_, err := DecodeResponse(KindSimilarity, []byte(`{"error": "nope"}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("wrong envelope field fails instead of returning empty", func(t *testing.T) {
		// An interpret-shaped body decoded down the histogram path.
		body := []byte(`{"interpretations": []}`)

		_, err := DecodeResponse(KindHistogram, body)
		require.Error(t, err)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "histograms", decodeErr.Field)
	})

	t.Run("non-object body fails", func(t *testing.T) {
		_, err := DecodeResponse(KindEvaluate, []byte(`not json`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("non-array envelope field fails", func(t *testing.T) {
		_, err := DecodeResponse(KindEvaluate, []byte(`{"entities": 5}`))
		require.Error(t, err)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "entities", decodeErr.Field)
	})

	t.Run("element decode errors propagate", func(t *testing.T) {
		body := []byte(`{"interpretations": [{"parse": "p", "rules": [{"name": "r"}]}]}`)

		_, err := DecodeResponse(KindInterpret, body)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "output", decodeErr.Field)
	})

	t.Run("graph traversal kind is unsupported", func(t *testing.T) {
		_, err := DecodeResponse(KindGraphTraversal, []byte(`{}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecode)
	})
}

func TestQueryKindString(t *testing.T) {
	assert.Equal(t, "interpret", KindInterpret.String())
	assert.Equal(t, "evaluate", KindEvaluate.String())
	assert.Equal(t, "histogram", KindHistogram.String())
	assert.Equal(t, "similarity", KindSimilarity.String())
	assert.Equal(t, "graph_traversal", KindGraphTraversal.String())
	assert.Equal(t, "unknown", QueryKind(99).String())
}
