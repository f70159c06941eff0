package groomkit

import (
	js "github.com/reoring/groomkit/jsonschema"
)

// DescriptionKind tells external type tooling how much structure a type exposes.
type DescriptionKind int

const (
	DescriptionStructured DescriptionKind = iota // Full field-level typing.
	DescriptionOpaque                            // A primitive blob; contents are not typed.
)

func (k DescriptionKind) String() string {
	if k == DescriptionOpaque {
		return "opaque"
	}
	return "structured"
}

// Description is the type-description view of a Go type, rendered as JSON
// Schema for client stub generators.
type Description struct {
	Kind   DescriptionKind
	Schema *js.Schema
}

// Describer is implemented by every type exposed to external type tooling.
type Describer interface {
	Describe() Description
}

var (
	_ Describer = DynamicMap(nil)
	_ Describer = GroomingRecord{}
)
