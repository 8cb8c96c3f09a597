package academic

import "encoding/json"

// The parsers below turn generic JSON value trees (as produced by
// encoding/json into map[string]any) into schema-bound entities. They share
// a generic rule: each raw key is resolved through the entity's dual-key
// lookup, so both wire codes and canonical keys land in the right slot, and
// unknown keys are silently ignored. Field-specific rules override the
// generic copy for nested entity lists and stringified metadata blobs.

// parseInto performs the bare structural decode: each raw key is set
// directly on a fresh entity of the given schema through Entity.Set. This is
// a deliberately simpler path than the per-type parsers; it never recurses
// and never fails.
func parseInto(s *Schema, raw map[string]any) *Entity {
	e := NewEntity(s)
	for key, value := range raw {
		e.Set(key, value)
	}
	return e
}

// parseBareList decodes an array of objects with the bare structural decode.
// entity and field name the caller's position for error reporting.
func parseBareList(entity, field string, value any, s *Schema) ([]*Entity, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, newDecodeErrorf(entity, field, "expected an array of %s objects", s.Entity())
	}
	out := make([]*Entity, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, newDecodeErrorf(entity, field, "array element is not an object")
		}
		out = append(out, parseInto(s, obj))
	}
	return out, nil
}

// parseMetadata decodes a metadata sub-entity that may arrive either as an
// already-parsed object or as a JSON-encoded string. The string form is
// decoded before structural parsing.
func parseMetadata(entity, field string, value any, s *Schema) (*Entity, error) {
	if text, ok := value.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			return nil, newDecodeErrorf(entity, field, "stringified metadata is not valid JSON: %v", err)
		}
		value = decoded
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, newDecodeErrorf(entity, field, "expected a metadata object")
	}
	return parseInto(s, obj), nil
}

// ParsePaper decodes a paper entity from the evaluate endpoint.
//
// Field-specific rules: AA decodes each element with ParseAuthor; F decodes
// each element as a bare FieldOfStudy; E may be a JSON-encoded string and
// decodes as PaperMetadata; logprob is present on the wire but not part of
// the entity and is discarded.
func ParsePaper(raw map[string]any) (*Entity, error) {
	e := NewEntity(PaperSchema)
	for key, value := range raw {
		switch key {
		case "AA":
			list, ok := value.([]any)
			if !ok {
				return nil, newDecodeErrorf("Paper", "AA", "expected an array of authors")
			}
			authors := make([]*Entity, 0, len(list))
			for _, item := range list {
				obj, ok := item.(map[string]any)
				if !ok {
					return nil, newDecodeErrorf("Paper", "AA", "array element is not an object")
				}
				author, err := ParseAuthor(obj)
				if err != nil {
					return nil, err
				}
				authors = append(authors, author)
			}
			e.Set(key, authors)
		case "F":
			fields, err := parseBareList("Paper", "F", value, FieldOfStudySchema)
			if err != nil {
				return nil, err
			}
			e.Set(key, fields)
		case "E":
			meta, err := parseMetadata("Paper", "E", value, PaperMetadataSchema)
			if err != nil {
				return nil, err
			}
			e.Set(key, meta)
		case "logprob":
			// Wire-only ranking score, not an entity field.
		default:
			e.Set(key, value)
		}
	}
	return e, nil
}

// ParseAuthor decodes an author entity.
//
// The field-of-study list decode triggers on wire key FN, not F as in
// ParsePaper. FN elsewhere denotes a normalized display name, so this looks
// like a key collision inherited from the upstream library; the literal
// behavior is preserved. E likewise decodes with the paper metadata schema,
// exactly as upstream does.
func ParseAuthor(raw map[string]any) (*Entity, error) {
	e := NewEntity(AuthorSchema)
	for key, value := range raw {
		switch key {
		case "FN":
			fields, err := parseBareList("Author", "FN", value, FieldOfStudySchema)
			if err != nil {
				return nil, err
			}
			e.Set(key, fields)
		case "E":
			meta, err := parseMetadata("Author", "E", value, PaperMetadataSchema)
			if err != nil {
				return nil, err
			}
			e.Set(key, meta)
		case "logprob":
			// Wire-only ranking score, not an entity field.
		default:
			e.Set(key, value)
		}
	}
	return e, nil
}

// ParseInterpretation decodes one interpretation from the interpret
// endpoint. It is structural rather than key-driven: parse and rules are
// read from fixed field names and both are required.
func ParseInterpretation(raw map[string]any) (*Entity, error) {
	e := NewEntity(InterpretationSchema)

	parsed, ok := raw["parse"]
	if !ok {
		return nil, NewDecodeError("Interpretation", "parse")
	}
	e.Set("parse", parsed)

	rawRules, ok := raw["rules"]
	if !ok {
		return nil, NewDecodeError("Interpretation", "rules")
	}
	list, ok := rawRules.([]any)
	if !ok {
		return nil, newDecodeErrorf("Interpretation", "rules", "expected an array of rules")
	}
	rules := make([]*Entity, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, newDecodeErrorf("Interpretation", "rules", "array element is not an object")
		}
		rule, err := ParseInterpretationRule(obj)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	e.Set("rules", rules)
	return e, nil
}

// ParseInterpretationRule decodes one rule of an interpretation. name comes
// from the top level; type and value come from the nested output object,
// which is required.
func ParseInterpretationRule(raw map[string]any) (*Entity, error) {
	e := NewEntity(InterpretationRuleSchema)

	name, ok := raw["name"]
	if !ok {
		return nil, NewDecodeError("InterpretationRule", "name")
	}
	e.Set("name", name)

	rawOutput, ok := raw["output"]
	if !ok {
		return nil, NewDecodeError("InterpretationRule", "output")
	}
	output, ok := rawOutput.(map[string]any)
	if !ok {
		return nil, newDecodeErrorf("InterpretationRule", "output", "expected an object")
	}

	typ, ok := output["type"]
	if !ok {
		return nil, NewDecodeError("InterpretationRule", "output.type")
	}
	e.Set("type", typ)

	value, ok := output["value"]
	if !ok {
		return nil, NewDecodeError("InterpretationRule", "output.value")
	}
	e.Set("value", value)
	return e, nil
}

// ParseHistogram decodes one attribute histogram from the calchistogram
// endpoint. The endpoint uses snake_case field names mapped onto different
// canonical keys: distinct_values becomes values and total_count becomes
// count. The histogram array decodes as bare HistogramValue entities under
// data.
func ParseHistogram(raw map[string]any) (*Entity, error) {
	e := NewEntity(HistogramSchema)

	attribute, ok := raw["attribute"]
	if !ok {
		return nil, NewDecodeError("Histogram", "attribute")
	}
	e.Set("attribute", attribute)

	values, ok := raw["distinct_values"]
	if !ok {
		return nil, NewDecodeError("Histogram", "distinct_values")
	}
	e.Set("values", values)

	count, ok := raw["total_count"]
	if !ok {
		return nil, NewDecodeError("Histogram", "total_count")
	}
	e.Set("count", count)

	rawData, ok := raw["histogram"]
	if !ok {
		return nil, NewDecodeError("Histogram", "histogram")
	}
	data, err := parseBareList("Histogram", "histogram", rawData, HistogramValueSchema)
	if err != nil {
		return nil, err
	}
	e.Set("data", data)
	return e, nil
}
