// Package groomkit converts loosely-typed grooming state maps into validated,
// statically-typed records.
//
// - DynamicMap holds JSON-like values under string keys (transparent JSON, YAML input)
// - Schema declares an ordered list of typed fields; Extract fills a record or
//   reports the first missing/invalid field in declaration order
// - Describer exposes types to external tooling as structured or opaque JSON Schema
//
// Typical usage:
//
//	m := groomkit.NewGroomingStateMap()
//	m.Set("shedding_score", 4)
//	rec, err := m.ToTyped()
//	if errors.Is(err, groomkit.ErrMissing) { ... }
//
// Custom records declare their own schema:
//
//	var s = groomkit.NewSchema(
//		groomkit.Bind("name", func(r *Cat) *string { return &r.Name }),
//		groomkit.Bind("age", func(r *Cat) *uint8 { return &r.Age }),
//	)
//	cat, err := s.Extract(m)
package groomkit
