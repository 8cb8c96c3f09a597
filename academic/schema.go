// Package academic models the entities returned by the Microsoft Academic
// Knowledge API and decodes its response envelopes.
//
// Each entity type (paper, author, affiliation, journal, ...) is described by
// a static Schema mapping canonical field keys to the short wire codes the
// API uses, a display label, and a serialization order. Entities are
// schema-bound records addressable by either canonical key or wire code.
package academic

import (
	"fmt"
	"sort"
)

// Field describes one slot of an entity schema.
type Field struct {
	// Key is the library's stable, human-oriented field name (e.g. "title").
	Key string

	// Wire is the short field code used by the API (e.g. "Ti").
	Wire string

	// Label is a user-suitable display label for the field.
	Label string

	// Order is the position used for serialization and display.
	// Order values form a total order but need not be contiguous.
	Order int

	// Default is the value a new entity starts with for this field.
	Default any
}

// Schema is the immutable field table for one entity type. It is constructed
// once per type and safe for concurrent use.
type Schema struct {
	entity string
	fields []Field
	byKey  map[string]int
	byWire map[string]int
}

// NewSchema builds a schema from a field table. It returns a SchemaError if
// canonical keys, wire codes, or order indexes are not unique.
func NewSchema(entity string, fields []Field) (*Schema, error) {
	s := &Schema{
		entity: entity,
		fields: make([]Field, len(fields)),
		byKey:  make(map[string]int, len(fields)),
		byWire: make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)
	sort.SliceStable(s.fields, func(i, j int) bool {
		return s.fields[i].Order < s.fields[j].Order
	})

	seenOrder := make(map[int]string, len(fields))
	for i, f := range s.fields {
		if _, ok := s.byKey[f.Key]; ok {
			return nil, &SchemaError{Entity: entity, Message: fmt.Sprintf("duplicate key %q", f.Key)}
		}
		if _, ok := s.byWire[f.Wire]; ok {
			return nil, &SchemaError{Entity: entity, Message: fmt.Sprintf("duplicate wire code %q", f.Wire)}
		}
		if prev, ok := seenOrder[f.Order]; ok {
			return nil, &SchemaError{Entity: entity, Message: fmt.Sprintf("duplicate order %d for %q and %q", f.Order, prev, f.Key)}
		}
		s.byKey[f.Key] = i
		s.byWire[f.Wire] = i
		seenOrder[f.Order] = f.Key
	}
	return s, nil
}

// mustSchema builds a static schema table, panicking on error. Only used for
// the package-level tables below, where a failure is a programming error.
func mustSchema(entity string, fields []Field) *Schema {
	s, err := NewSchema(entity, fields)
	if err != nil {
		panic(err)
	}
	return s
}

// Entity returns the entity type name this schema describes.
func (s *Schema) Entity() string {
	return s.entity
}

// Lookup returns the field descriptor for a canonical key.
func (s *Schema) Lookup(key string) (Field, bool) {
	if i, ok := s.byKey[key]; ok {
		return s.fields[i], true
	}
	return Field{}, false
}

// LookupWire returns the field descriptor for a wire code.
func (s *Schema) LookupWire(code string) (Field, bool) {
	if i, ok := s.byWire[code]; ok {
		return s.fields[i], true
	}
	return Field{}, false
}

// Fields returns the field descriptors sorted by order index.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len returns the number of fields in the schema.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Static schemas, one per entity type exposed by the API.
var (
	// PaperSchema describes an article entity.
	PaperSchema = mustSchema("Paper", []Field{
		{Key: "id", Wire: "Id", Label: "ID", Order: 0, Default: 0},
		{Key: "title", Wire: "Ti", Label: "Title", Order: 1},
		{Key: "authors", Wire: "AA", Label: "Authors", Order: 2},
		{Key: "year", Wire: "Y", Label: "Year", Order: 3, Default: 0},
		{Key: "date", Wire: "D", Label: "Date", Order: 4},
		{Key: "num_citations", Wire: "CC", Label: "Nbr of Cites", Order: 5, Default: 0},
		{Key: "cites", Wire: "Ci", Label: "Cites", Order: 6, Default: []any{}},
		{Key: "field_of_study", Wire: "F", Label: "Field of Study", Order: 7},
		{Key: "journal", Wire: "J", Label: "Journal", Order: 8},
		{Key: "conference", Wire: "C", Label: "Conference", Order: 9},
		{Key: "references", Wire: "RId", Label: "References", Order: 10},
		{Key: "excerpt", Wire: "W", Label: "Excerpt", Order: 11},
		{Key: "metadata", Wire: "E", Label: "Metadata", Order: 12},
		{Key: "doi", Wire: "DOI", Label: "DOI", Order: 13},
		{Key: "display_name", Wire: "DN", Label: "Display Name", Order: 14},
	})

	// PaperMetadataSchema describes the extended metadata blob of a paper.
	PaperMetadataSchema = mustSchema("PaperMetadata", []Field{
		{Key: "name", Wire: "DN", Label: "Display Name", Order: 0},
		{Key: "sources", Wire: "S", Label: "Sources", Order: 1},
		{Key: "venue", Wire: "VFN", Label: "Venue", Order: 2},
		{Key: "volume", Wire: "V", Label: "Volume", Order: 3, Default: 0},
		{Key: "issue", Wire: "I", Label: "Issue", Order: 4, Default: 0},
		{Key: "first_page", Wire: "FP", Label: "First Page", Order: 5},
		{Key: "last_page", Wire: "LP", Label: "Last Page", Order: 6},
		{Key: "doi", Wire: "DOI", Label: "Digital Object Id", Order: 7},
		{Key: "citation_contexts", Wire: "CC", Label: "Citation Contexts", Order: 8},
		{Key: "inverted_abstract", Wire: "IA", Label: "Inverted Abstract", Order: 9},
	})

	// AuthorSchema describes an author entity.
	AuthorSchema = mustSchema("Author", []Field{
		{Key: "id", Wire: "AuId", Label: "ID", Order: 0, Default: 0},
		{Key: "name", Wire: "AuN", Label: "Normalized Name", Order: 1},
		{Key: "display_name", Wire: "DAuN", Label: "Name", Order: 2},
		{Key: "num_citations", Wire: "CC", Label: "Citations", Order: 3, Default: 0},
		{Key: "metadata", Wire: "E", Label: "Metadata", Order: 4},
	})

	// AuthorMetadataSchema describes the extended metadata blob of an author.
	AuthorMetadataSchema = mustSchema("AuthorMetadata", []Field{
		{Key: "affiliation", Wire: "LKA", Label: "Affiliation", Order: 0},
	})

	// AffiliationSchema describes an author affiliation entity.
	AffiliationSchema = mustSchema("Affiliation", []Field{
		{Key: "id", Wire: "AfId", Label: "ID", Order: 0, Default: 0},
		{Key: "name", Wire: "AfN", Label: "Normalized Name", Order: 1},
		{Key: "display_name", Wire: "DAfN", Label: "Name", Order: 2},
		{Key: "num_citations", Wire: "CC", Label: "Citations", Order: 3, Default: 0},
		{Key: "metadata", Wire: "E", Label: "Metadata", Order: 4},
	})

	// AffiliationMetadataSchema describes the metadata blob of an affiliation.
	AffiliationMetadataSchema = mustSchema("AffiliationMetadata", []Field{
		{Key: "paper_count", Wire: "PC", Label: "Paper Count", Order: 0},
	})

	// FieldOfStudySchema describes a field-of-study entity. Parent and
	// children arrive as raw id lists, not nested entities.
	FieldOfStudySchema = mustSchema("FieldOfStudy", []Field{
		{Key: "id", Wire: "FId", Label: "ID", Order: 0, Default: 0},
		{Key: "name", Wire: "FN", Label: "Normalized Name", Order: 1},
		{Key: "display_name", Wire: "DFN", Label: "Name", Order: 2},
		{Key: "num_citations", Wire: "CC", Label: "Citations", Order: 3, Default: 0},
		{Key: "hierarchy_level", Wire: "FL", Label: "Level in hierarchy", Order: 4, Default: 0},
		{Key: "parent", Wire: "FP", Label: "Parent", Order: 5},
		{Key: "children", Wire: "FC", Label: "Children", Order: 6},
	})

	// ConferenceSeriesSchema describes a conference series entity.
	ConferenceSeriesSchema = mustSchema("ConferenceSeries", []Field{
		{Key: "id", Wire: "Id", Label: "ID", Order: 0, Default: 0},
		{Key: "name", Wire: "CN", Label: "Normalized Name", Order: 1},
		{Key: "display_name", Wire: "DCN", Label: "Name", Order: 2},
		{Key: "num_citations", Wire: "CC", Label: "Citations", Order: 3, Default: 0},
		{Key: "field_of_study", Wire: "F", Label: "Field of Study", Order: 4},
	})

	// ConferenceInstanceSchema describes a single conference instance.
	ConferenceInstanceSchema = mustSchema("ConferenceInstance", []Field{
		{Key: "id", Wire: "Id", Label: "ID", Order: 0, Default: 0},
		{Key: "name", Wire: "CIN", Label: "Normalized Name", Order: 1},
		{Key: "display_name", Wire: "DCN", Label: "Name", Order: 2},
		{Key: "location", Wire: "CIL", Label: "Location", Order: 3},
		{Key: "start_date", Wire: "CISD", Label: "Start Date", Order: 4},
		{Key: "end_date", Wire: "CIED", Label: "End Date", Order: 5},
		{Key: "conference_series", Wire: "PCS", Label: "Conference Series", Order: 6},
		{Key: "num_citations", Wire: "CC", Label: "Citations", Order: 7, Default: 0},
	})

	// ConferenceInstanceMetadataSchema describes the metadata blob of a
	// conference instance.
	ConferenceInstanceMetadataSchema = mustSchema("ConferenceInstanceMetadata", []Field{
		{Key: "full_name", Wire: "FN", Label: "Full Name", Order: 0},
	})

	// JournalSchema describes a journal entity.
	JournalSchema = mustSchema("Journal", []Field{
		{Key: "id", Wire: "Id", Label: "ID", Order: 0, Default: 0},
		{Key: "name", Wire: "JN", Label: "Normalized Name", Order: 1},
		{Key: "display_name", Wire: "DJN", Label: "Name", Order: 2},
		{Key: "num_citations", Wire: "CC", Label: "Citations", Order: 3, Default: 0},
	})

	// InterpretationSchema describes one interpretation of a natural
	// language query. The interpret endpoint uses full field names, not
	// short wire codes.
	InterpretationSchema = mustSchema("Interpretation", []Field{
		{Key: "parse", Wire: "parse", Label: "Parsing Explanation", Order: 0},
		{Key: "rules", Wire: "rules", Label: "Rules", Order: 1},
	})

	// InterpretationRuleSchema describes a rule inside an interpretation.
	InterpretationRuleSchema = mustSchema("InterpretationRule", []Field{
		{Key: "name", Wire: "name", Label: "Name", Order: 0},
		{Key: "type", Wire: "type", Label: "Type", Order: 1},
		{Key: "value", Wire: "value", Label: "Value", Order: 2},
	})

	// HistogramSchema describes an attribute histogram. The calchistogram
	// endpoint uses snake_case field names, not short wire codes.
	HistogramSchema = mustSchema("Histogram", []Field{
		{Key: "attribute", Wire: "attribute", Label: "Attribute", Order: 0},
		{Key: "values", Wire: "distinct_values", Label: "Values", Order: 1},
		{Key: "count", Wire: "total_count", Label: "Count", Order: 2},
		{Key: "data", Wire: "data", Label: "Data", Order: 3},
	})

	// HistogramValueSchema describes one bucket of an attribute histogram.
	HistogramValueSchema = mustSchema("HistogramValue", []Field{
		{Key: "value", Wire: "value", Label: "Values", Order: 0},
		{Key: "probability", Wire: "prob", Label: "Probability", Order: 1},
		{Key: "count", Wire: "count", Label: "Count", Order: 2},
	})
)

// schemasByName indexes the static schemas by entity type name.
var schemasByName = map[string]*Schema{}

func init() {
	for _, s := range []*Schema{
		PaperSchema, PaperMetadataSchema,
		AuthorSchema, AuthorMetadataSchema,
		AffiliationSchema, AffiliationMetadataSchema,
		FieldOfStudySchema,
		ConferenceSeriesSchema, ConferenceInstanceSchema, ConferenceInstanceMetadataSchema,
		JournalSchema,
		InterpretationSchema, InterpretationRuleSchema,
		HistogramSchema, HistogramValueSchema,
	} {
		schemasByName[s.Entity()] = s
	}
}

// SchemaByName returns the static schema for an entity type name.
func SchemaByName(entity string) (*Schema, bool) {
	s, ok := schemasByName[entity]
	return s, ok
}
