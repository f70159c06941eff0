package jsonschema

// Schema is a minimal JSON Schema representation used for type descriptions.
// Only the keywords groomkit emits are modeled.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Numeric bounds (pointers so zero bounds are still emitted)
	Minimum *int64  `json:"minimum,omitempty"`
	Maximum *uint64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}

// Int returns a pointer to v, for Minimum.
func Int(v int64) *int64 { return &v }

// Uint returns a pointer to v, for Maximum.
func Uint(v uint64) *uint64 { return &v }
