package groomkit

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// GroomingRecord is the typed snapshot of a cat grooming session. It is only
// produced by extraction (or JSON decoding, which goes through extraction).
//
// SheddingScore is meant as a 0-10 rating but only its uint8 shape is checked.
type GroomingRecord struct {
	FurLengthCM   int32  `json:"fur_length_cm"`
	BrushType     string `json:"brush_type"` // e.g. "slicker", "pin", "metal"
	SheddingScore uint8  `json:"shedding_score"`
	NailTrimmed   bool   `json:"nail_trimmed"`
	FavoriteSpot  string `json:"favorite_spot"`
}

// GroomingSchema declares the GroomingRecord fields in extraction order.
var GroomingSchema = NewSchema(
	Bind("fur_length_cm", func(r *GroomingRecord) *int32 { return &r.FurLengthCM }),
	Bind("brush_type", func(r *GroomingRecord) *string { return &r.BrushType }),
	Bind("shedding_score", func(r *GroomingRecord) *uint8 { return &r.SheddingScore }),
	Bind("nail_trimmed", func(r *GroomingRecord) *bool { return &r.NailTrimmed }),
	Bind("favorite_spot", func(r *GroomingRecord) *string { return &r.FavoriteSpot }),
)

// NewGroomingStateMap returns a map populated with one value per grooming
// field.
func NewGroomingStateMap() DynamicMap {
	return DynamicMap{
		"fur_length_cm":  json.Number("2"),
		"brush_type":     "slicker",
		"shedding_score": json.Number("7"),
		"nail_trimmed":   true,
		"favorite_spot":  "chin",
	}
}

// ToTyped extracts a GroomingRecord from m using GroomingSchema.
func (m DynamicMap) ToTyped() (GroomingRecord, error) { return GroomingSchema.Extract(m) }

// Describe reports the record with full field-level typing.
func (GroomingRecord) Describe() Description {
	s := GroomingSchema.JSONSchema()
	s.Title = "GroomingRecord"
	return Description{Kind: DescriptionStructured, Schema: s}
}

// UnmarshalJSON decodes through extraction, so a record either decodes with
// all five fields or fails with the same error ToTyped would report. null is
// a no-op.
func (r *GroomingRecord) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	m, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	rec, err := m.ToTyped()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// FromRecord projects a record back into a DynamicMap keyed by its JSON
// field names.
func FromRecord(r GroomingRecord) (DynamicMap, error) {
	out := NewDynamicMap()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return nil, fmt.Errorf("from record: %w", err)
	}
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("from record: %w", err)
	}
	return out, nil
}
