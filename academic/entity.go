package academic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Entity is a schema-bound record produced by parsing an API response.
// Every field is addressable by either its canonical key or its wire code;
// both resolve to the same storage slot. Iteration and serialization follow
// schema order, not insertion order.
//
// Entities are mutated field by field during parsing and should be treated
// as read-only afterwards. An Entity is not safe for concurrent mutation.
type Entity struct {
	schema *Schema
	slots  []slot
	byKey  map[string]int
	byWire map[string]int
}

type slot struct {
	field Field
	value any
}

// Pair is one canonical-key/value element of an entity's ordered form.
type Pair struct {
	Key   string
	Value any
}

// NewEntity creates an empty entity bound to the given schema, with every
// slot populated with its schema default.
func NewEntity(s *Schema) *Entity {
	fields := s.Fields()
	e := &Entity{
		schema: s,
		slots:  make([]slot, len(fields)),
		byKey:  make(map[string]int, len(fields)),
		byWire: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		e.slots[i] = slot{field: f, value: f.Default}
		e.byKey[f.Key] = i
		e.byWire[f.Wire] = i
	}
	return e
}

// Schema returns the schema this entity is bound to.
func (e *Entity) Schema() *Schema {
	return e.schema
}

// Type returns the entity type name, e.g. "Paper".
func (e *Entity) Type() string {
	return e.schema.Entity()
}

// resolve maps a canonical key or wire code to a slot index. Canonical keys
// take precedence over wire codes.
func (e *Entity) resolve(key string) (int, bool) {
	if i, ok := e.byKey[key]; ok {
		return i, true
	}
	if i, ok := e.byWire[key]; ok {
		return i, true
	}
	return 0, false
}

// Get returns the value stored under a canonical key or wire code. The
// second return value is false when the key resolves to no field; unknown
// keys are never an error.
func (e *Entity) Get(key string) (any, bool) {
	i, ok := e.resolve(key)
	if !ok {
		return nil, false
	}
	return e.slots[i].value, true
}

// Set stores a value under a canonical key or wire code. Writing to a key
// that resolves to no field is a silent no-op; the upstream library behaved
// this way and callers rely on the permissive access surface.
func (e *Entity) Set(key string, value any) {
	if i, ok := e.resolve(key); ok {
		e.slots[i].value = value
	}
}

// Delete removes the slot addressed by a canonical key or wire code.
// Deleting an unresolvable key is a no-op. Deletion never happens during
// parsing; the capability exists for API parity with the attribute model.
func (e *Entity) Delete(key string) {
	i, ok := e.resolve(key)
	if !ok {
		return
	}
	e.slots = append(e.slots[:i], e.slots[i+1:]...)
	e.byKey = make(map[string]int, len(e.slots))
	e.byWire = make(map[string]int, len(e.slots))
	for j, s := range e.slots {
		e.byKey[s.field.Key] = j
		e.byWire[s.field.Wire] = j
	}
}

// Len returns the number of bound slots. It is constant per entity type
// unless slots are deleted, and independent of how many values were set.
func (e *Entity) Len() int {
	return len(e.slots)
}

// Pairs returns the entity's canonical-key/value pairs in schema order.
func (e *Entity) Pairs() []Pair {
	out := make([]Pair, len(e.slots))
	for i, s := range e.slots {
		out[i] = Pair{Key: s.field.Key, Value: s.value}
	}
	return out
}

// MarshalJSON serializes the entity as an object keyed by canonical field
// names in schema order. Nested entities serialize the same way regardless
// of their concrete type. Default values are emitted, never omitted.
func (e *Entity) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range e.slots {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.value)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s.%s: %w", e.Type(), s.field.Key, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JSONOptions controls ToJSON output.
type JSONOptions struct {
	// ASCIIOnly escapes all non-ASCII characters as \uXXXX sequences.
	ASCIIOnly bool

	// Indent is the per-level indentation string. Empty means compact.
	Indent string

	// SortKeys sorts object keys lexicographically instead of using
	// schema order. Applies recursively to nested entities.
	SortKeys bool
}

// ToJSON serializes the entity to canonical JSON text keyed by canonical
// field names. The output is label-normalized: it never echoes the API's
// wire codes.
func (e *Entity) ToJSON(opts JSONOptions) (string, error) {
	var v any = e
	if opts.SortKeys {
		// encoding/json sorts map keys, so the sorted form goes through a
		// recursive plain-map conversion.
		v = e.asMap()
	}

	var (
		data []byte
		err  error
	)
	if opts.Indent != "" {
		data, err = json.MarshalIndent(v, "", opts.Indent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	if opts.ASCIIOnly {
		data = escapeNonASCII(data)
	}
	return string(data), nil
}

// asMap converts the entity to a plain map, recursing into nested entities.
func (e *Entity) asMap() map[string]any {
	m := make(map[string]any, len(e.slots))
	for _, s := range e.slots {
		m[s.field.Key] = flatten(s.value)
	}
	return m
}

func flatten(v any) any {
	switch t := v.(type) {
	case *Entity:
		return t.asMap()
	case []*Entity:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e.asMap()
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = flatten(item)
		}
		return out
	default:
		return v
	}
}

// escapeNonASCII rewrites JSON text so every rune above U+007F becomes a
// \uXXXX escape, using surrogate pairs beyond the basic multilingual plane.
func escapeNonASCII(in []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(in))
	for _, r := range string(in) {
		switch {
		case r < utf8.RuneSelf:
			buf.WriteByte(byte(r))
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&buf, `\u%04x\u%04x`, hi, lo)
		default:
			fmt.Fprintf(&buf, `\u%04x`, r)
		}
	}
	return buf.Bytes()
}
