package groomkit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	js "github.com/reoring/groomkit/jsonschema"
)

// DynamicMap is a string-keyed map of JSON-like values: json.Number or Go
// numeric kinds, string, bool, nil, []any and map[string]any. Its JSON form is
// the map itself, with no envelope.
//
// A DynamicMap carries no synchronization. Callers sharing one across
// goroutines must guard Set against concurrent Get/extraction themselves.
type DynamicMap map[string]any

// NewDynamicMap returns an empty, writable map.
func NewDynamicMap() DynamicMap { return DynamicMap{} }

// Get returns the value stored under key and whether it was present.
// A present key may hold nil (JSON null).
func (m DynamicMap) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Set inserts or overwrites the value under key.
func (m DynamicMap) Set(key string, value any) { m[key] = value }

// Delete removes key; deleting an absent key is a no-op.
func (m DynamicMap) Delete(key string) { delete(m, key) }

// Clone returns a shallow copy. Nested arrays and objects are shared.
func (m DynamicMap) Clone() DynamicMap {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// Describe reports the map as an opaque string primitive. Its keys are open
// ended, so external type tooling must not see it as a structured object.
func (DynamicMap) Describe() Description {
	return Description{Kind: DescriptionOpaque, Schema: &js.Schema{Type: "string"}}
}

var errNotObject = errors.New("top-level value must be an object")

// DecodeJSON parses a JSON object into a DynamicMap. Numbers are kept as
// json.Number so integer fields convert without float rounding.
func DecodeJSON(data []byte) (DynamicMap, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode json: trailing data after object")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode json: %w", errNotObject)
	}
	return DynamicMap(obj), nil
}

// DecodeYAML parses a YAML mapping into a DynamicMap.
func DecodeYAML(data []byte) (DynamicMap, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, fmt.Errorf("decode yaml: %w", errNotObject)
	}
	var m DynamicMap
	if err := node.Content[0].Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// UnmarshalJSON implements json.Unmarshaler with json.Number preservation.
func (m *DynamicMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = nil
		return nil
	}
	dm, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*m = dm
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler; only mappings are accepted.
// Timestamp-looking scalars stay strings, since JSON has no time type.
func (m *DynamicMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("decode yaml: line %d: %w", value.Line, errNotObject)
	}
	keepTimestampsAsText(value)
	var raw map[string]any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	*m = DynamicMap(raw)
	return nil
}

// keepTimestampsAsText retags !!timestamp scalars as !!str so they decode to
// their source text instead of time.Time. Aliases are reached through their
// anchored node and are not followed.
func keepTimestampsAsText(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == "!!timestamp" {
		n.Tag = "!!str"
		return
	}
	for _, c := range n.Content {
		keepTimestampsAsText(c)
	}
}
