package groomkit

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/goccy/go-json"

	js "github.com/reoring/groomkit/jsonschema"
)

// ExtractField pulls key out of m and converts it structurally into T.
//
// The value is re-encoded and decoded into T, so conversion follows JSON
// rules: an integer target rejects fractions, out-of-range and wrongly signed
// numbers, and no tag is coerced into another (a string never becomes a
// number). A floating point value never converts to an integer target, even
// when it is whole, so 7.0 fails the same way whether it came from JSON,
// YAML or a Go caller. null is only accepted by pointer and interface
// targets. A top-level string must be valid UTF-8; strings nested in arrays or
// objects are not checked and invalid bytes there become U+FFFD.
func ExtractField[T any](m DynamicMap, key string) (T, error) {
	var out T
	v, ok := m.Get(key)
	if !ok {
		return out, missingField(key)
	}
	if err := checkShape(v, reflect.TypeOf((*T)(nil)).Elem()); err != nil {
		return out, invalidField(key, err)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return out, invalidField(key, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, invalidField(key, err)
	}
	return out, nil
}

// checkShape rejects the values JSON re-encoding would accept silently.
func checkShape(v any, t reflect.Type) error {
	switch x := v.(type) {
	case nil:
		if !nullable(t) {
			return fmt.Errorf("invalid type: null, expected %s", t)
		}
	case float32, float64:
		if isInteger(t) {
			return fmt.Errorf("invalid type: floating point %v, expected %s", x, t)
		}
	case string:
		if !utf8.ValidString(x) {
			return fmt.Errorf("invalid value: string is not valid UTF-8, expected %s", t)
		}
	}
	return nil
}

func isInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return true
	}
	return false
}

// Field is one declared entry of a Schema: a key bound to a location in R.
type Field[R any] interface {
	Key() string
	// extractInto converts the value under Key into its slot in dst.
	extractInto(m DynamicMap, dst *R) error
	jsonSchema() *js.Schema
}

// Bind declares that key is extracted as T and stored at the location field
// returns within the record.
func Bind[R, T any](key string, field func(*R) *T) Field[R] {
	return boundField[R, T]{key: key, field: field}
}

type boundField[R, T any] struct {
	key   string
	field func(*R) *T
}

func (f boundField[R, T]) Key() string { return f.key }

func (f boundField[R, T]) extractInto(m DynamicMap, dst *R) error {
	v, err := ExtractField[T](m, f.key)
	if err != nil {
		return err
	}
	*f.field(dst) = v
	return nil
}

func (f boundField[R, T]) jsonSchema() *js.Schema {
	return schemaForType(reflect.TypeOf((*T)(nil)).Elem())
}

// Schema is an ordered list of fields describing how to build R from a
// DynamicMap. Declaration order decides which error is reported when several
// fields are wrong.
type Schema[R any] struct {
	fields []Field[R]
}

// NewSchema declares a schema. Empty or duplicate keys panic: a schema is
// fixed at definition time, so a bad declaration is a programming error.
func NewSchema[R any](fields ...Field[R]) *Schema[R] {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		k := f.Key()
		if k == "" {
			panic("groomkit: schema field with empty key")
		}
		if _, dup := seen[k]; dup {
			panic("groomkit: duplicate schema field " + k)
		}
		seen[k] = struct{}{}
	}
	return &Schema[R]{fields: fields}
}

// Keys returns the field keys in declaration order.
func (s *Schema[R]) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key()
	}
	return keys
}

// Extract builds a fresh R from m. It stops at the first missing or invalid
// field in declaration order and returns the zero R with that error; m is
// never modified.
func (s *Schema[R]) Extract(m DynamicMap) (R, error) {
	var rec R
	for _, f := range s.fields {
		if err := f.extractInto(m, &rec); err != nil {
			var zero R
			return zero, err
		}
	}
	return rec, nil
}

// JSONSchema describes R as an object whose properties are the declared
// fields, all required.
func (s *Schema[R]) JSONSchema() *js.Schema {
	out := &js.Schema{
		Type:       "object",
		Properties: make(map[string]*js.Schema, len(s.fields)),
		Required:   s.Keys(),
	}
	for _, f := range s.fields {
		out.Properties[f.Key()] = f.jsonSchema()
	}
	return out
}

func schemaForType(t reflect.Type) *js.Schema {
	switch t.Kind() {
	case reflect.Bool:
		return &js.Schema{Type: "boolean"}
	case reflect.String:
		return &js.Schema{Type: "string"}
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		bits := t.Bits()
		return &js.Schema{
			Type:    "integer",
			Format:  fmt.Sprintf("int%d", bits),
			Minimum: js.Int(-1 << (bits - 1)),
			Maximum: js.Uint(1<<(bits-1) - 1),
		}
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		bits := t.Bits()
		return &js.Schema{
			Type:    "integer",
			Format:  fmt.Sprintf("uint%d", bits),
			Minimum: js.Int(0),
			Maximum: js.Uint(1<<bits - 1),
		}
	case reflect.Float32, reflect.Float64:
		return &js.Schema{Type: "number"}
	case reflect.Slice, reflect.Array:
		return &js.Schema{Type: "array", Items: schemaForType(t.Elem())}
	case reflect.Map, reflect.Struct:
		return &js.Schema{Type: "object"}
	case reflect.Pointer:
		return schemaForType(t.Elem())
	}
	return &js.Schema{}
}
