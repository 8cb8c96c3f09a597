package academic

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityGetSet(t *testing.T) {
	t.Run("new entity carries schema defaults", func(t *testing.T) {
		e := NewEntity(PaperSchema)

		id, ok := e.Get("id")
		require.True(t, ok)
		assert.Equal(t, 0, id)

		title, ok := e.Get("title")
		require.True(t, ok)
		assert.Nil(t, title)

		assert.Equal(t, PaperSchema.Len(), e.Len())
	})

	t.Run("canonical key and wire code share a storage slot", func(t *testing.T) {
		e := NewEntity(PaperSchema)

		e.Set("title", "A Study")
		byWire, _ := e.Get("Ti")
		assert.Equal(t, "A Study", byWire)

		e.Set("Ti", "Revised")
		byKey, _ := e.Get("title")
		assert.Equal(t, "Revised", byKey)
	})

	t.Run("dual access holds for every field in every schema", func(t *testing.T) {
		schemas := []*Schema{
			PaperSchema, PaperMetadataSchema,
			AuthorSchema, AuthorMetadataSchema,
			AffiliationSchema, AffiliationMetadataSchema,
			FieldOfStudySchema,
			ConferenceSeriesSchema, ConferenceInstanceSchema, ConferenceInstanceMetadataSchema,
			JournalSchema,
			InterpretationSchema, InterpretationRuleSchema,
			HistogramSchema, HistogramValueSchema,
		}
		for _, s := range schemas {
			e := NewEntity(s)
			for i, f := range s.Fields() {
				e.Set(f.Wire, i)
				got, ok := e.Get(f.Key)
				require.True(t, ok, "%s.%s", s.Entity(), f.Key)
				assert.Equal(t, i, got, "%s: write via %q not readable via %q", s.Entity(), f.Wire, f.Key)

				e.Set(f.Key, i+1)
				got, _ = e.Get(f.Wire)
				assert.Equal(t, i+1, got, "%s: write via %q not readable via %q", s.Entity(), f.Key, f.Wire)
			}
		}
	})

	t.Run("unknown key reads return absent", func(t *testing.T) {
		e := NewEntity(PaperSchema)
		v, ok := e.Get("doesNotExist")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("unknown key writes are silent no-ops", func(t *testing.T) {
		e := NewEntity(PaperSchema)
		e.Set("title", "kept")
		before := e.Pairs()

		e.Set("doesNotExist", "dropped")

		assert.Equal(t, before, e.Pairs())
		assert.Equal(t, PaperSchema.Len(), e.Len())
	})
}

func TestEntityDelete(t *testing.T) {
	t.Run("removes the slot under either name", func(t *testing.T) {
		e := NewEntity(JournalSchema)
		e.Delete("JN")

		assert.Equal(t, JournalSchema.Len()-1, e.Len())
		_, ok := e.Get("name")
		assert.False(t, ok)
		_, ok = e.Get("JN")
		assert.False(t, ok)

		// Remaining fields are still addressable both ways.
		e.Set("DJN", "Nature")
		v, _ := e.Get("display_name")
		assert.Equal(t, "Nature", v)
	})

	t.Run("unresolvable key is a no-op", func(t *testing.T) {
		e := NewEntity(JournalSchema)
		e.Delete("nope")
		assert.Equal(t, JournalSchema.Len(), e.Len())
	})
}

func TestEntityPairs(t *testing.T) {
	t.Run("pairs follow schema order, not insertion order", func(t *testing.T) {
		e := NewEntity(PaperSchema)
		e.Set("doi", "10.1000/x")
		e.Set("id", 7)
		e.Set("title", "Z")

		keys := make([]string, 0, e.Len())
		for _, p := range e.Pairs() {
			keys = append(keys, p.Key)
		}
		want := make([]string, 0, PaperSchema.Len())
		for _, f := range PaperSchema.Fields() {
			want = append(want, f.Key)
		}
		assert.Equal(t, want, keys)
	})
}

func TestEntityMarshalJSON(t *testing.T) {
	t.Run("serializes canonical keys in schema order with defaults", func(t *testing.T) {
		e := NewEntity(JournalSchema)
		e.Set("Id", 12)
		e.Set("JN", "nature")

		out, err := json.Marshal(e)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":12,"name":"nature","display_name":null,"num_citations":0}`, string(out))

		// Exact text pins the ordering.
		assert.Equal(t, `{"id":12,"name":"nature","display_name":null,"num_citations":0}`, string(out))
	})

	t.Run("nested entities serialize polymorphically", func(t *testing.T) {
		author := NewEntity(AuthorSchema)
		author.Set("AuId", 1)
		author.Set("AuN", "jane doe")

		paper := NewEntity(PaperSchema)
		paper.Set("Id", 42)
		paper.Set("AA", []*Entity{author})

		out, err := json.Marshal(paper)
		require.NoError(t, err)
		assert.Contains(t, string(out), `"authors":[{"id":1,"name":"jane doe","display_name":null,"num_citations":0,"metadata":null}]`)
	})
}

func TestEntityToJSON(t *testing.T) {
	t.Run("double serialization is stable", func(t *testing.T) {
		e := NewEntity(PaperSchema)
		e.Set("Ti", "A Study")
		first, err := e.ToJSON(JSONOptions{})
		require.NoError(t, err)
		second, err := e.ToJSON(JSONOptions{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("indent produces indented output", func(t *testing.T) {
		e := NewEntity(JournalSchema)
		out, err := e.ToJSON(JSONOptions{Indent: "  "})
		require.NoError(t, err)
		assert.Contains(t, out, "\n  \"id\"")
	})

	t.Run("sort keys overrides schema order recursively", func(t *testing.T) {
		meta := NewEntity(ConferenceInstanceMetadataSchema)
		meta.Set("FN", "Very Large Databases")

		e := NewEntity(ConferenceInstanceSchema)
		e.Set("Id", 5)
		e.Set("CIN", "vldb")
		e.Set("PCS", meta)

		out, err := e.ToJSON(JSONOptions{SortKeys: true})
		require.NoError(t, err)
		// Lexicographic, not schema order.
		assert.Less(t, strings.Index(out, `"conference_series"`), strings.Index(out, `"display_name"`))
		assert.Less(t, strings.Index(out, `"end_date"`), strings.Index(out, `"id"`))
		// The nested entity flattened into a plain object.
		assert.Contains(t, out, `"conference_series":{"full_name":"Very Large Databases"}`)
	})

	t.Run("ascii only escapes non-ascii runes", func(t *testing.T) {
		e := NewEntity(JournalSchema)
		e.Set("DJN", "Annalen der Physik über α")

		out, err := e.ToJSON(JSONOptions{ASCIIOnly: true})
		require.NoError(t, err)
		assert.NotContains(t, out, "ü")
		assert.Contains(t, out, `\u00fc`)
		assert.Contains(t, out, `\u03b1`)

		// The escaped form decodes back to the original text.
		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "Annalen der Physik über α", decoded["display_name"])
	})
}
