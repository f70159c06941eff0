package groomkit_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	groomkit "github.com/reoring/groomkit"
)

func TestNewGroomingStateMap_Defaults(t *testing.T) {
	rec, err := groomkit.NewGroomingStateMap().ToTyped()
	require.NoError(t, err)
	assert.Equal(t, groomkit.GroomingRecord{
		FurLengthCM:   2,
		BrushType:     "slicker",
		SheddingScore: 7,
		NailTrimmed:   true,
		FavoriteSpot:  "chin",
	}, rec)
}

func TestGroomingRecord_JSONRoundTrip(t *testing.T) {
	rec, err := groomkit.NewGroomingStateMap().ToTyped()
	require.NoError(t, err)

	wire, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fur_length_cm":2,"brush_type":"slicker","shedding_score":7,"nail_trimmed":true,"favorite_spot":"chin"}`, string(wire))

	var back groomkit.GroomingRecord
	require.NoError(t, json.Unmarshal(wire, &back))
	assert.Equal(t, rec, back)

	again, err := json.Marshal(back)
	require.NoError(t, err)
	assert.Equal(t, string(wire), string(again))
}

func TestGroomingRecord_UnmarshalJSONUsesExtraction(t *testing.T) {
	var rec groomkit.GroomingRecord
	err := json.Unmarshal([]byte(`{"fur_length_cm":2,"shedding_score":7,"nail_trimmed":true,"favorite_spot":"chin"}`), &rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, groomkit.ErrMissing)

	err = json.Unmarshal([]byte(`{"fur_length_cm":2,"brush_type":"pin","shedding_score":"high","nail_trimmed":true,"favorite_spot":"chin"}`), &rec)
	assert.ErrorIs(t, err, groomkit.ErrInvalid)

	err = json.Unmarshal([]byte(`{"fur_length_cm":2.5,"brush_type":"pin","shedding_score":1,"nail_trimmed":true,"favorite_spot":"chin"}`), &rec)
	assert.ErrorIs(t, err, groomkit.ErrInvalid)
}

func TestGroomingRecord_UnmarshalJSONNullIsNoop(t *testing.T) {
	var doc struct {
		Rec groomkit.GroomingRecord `json:"rec"`
	}
	doc.Rec.BrushType = "pin"
	require.NoError(t, json.Unmarshal([]byte(`{"rec": null}`), &doc))
	assert.Equal(t, "pin", doc.Rec.BrushType)
}

func TestFromRecord_RoundTrip(t *testing.T) {
	rec := groomkit.GroomingRecord{FurLengthCM: 5, BrushType: "metal", SheddingScore: 3, FavoriteSpot: "back"}
	m, err := groomkit.FromRecord(rec)
	require.NoError(t, err)
	assert.ElementsMatch(t, groomkit.GroomingSchema.Keys(), keys(m))

	back, err := m.ToTyped()
	require.NoError(t, err)
	assert.Equal(t, rec, back)
}

func TestDynamicMap_JSONIsTransparent(t *testing.T) {
	m := groomkit.NewGroomingStateMap()
	wire, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fur_length_cm":2,"brush_type":"slicker","shedding_score":7,"nail_trimmed":true,"favorite_spot":"chin"}`, string(wire))

	var back groomkit.DynamicMap
	require.NoError(t, json.Unmarshal(wire, &back))
	assert.Equal(t, m, back)
}

func TestDecodeJSON(t *testing.T) {
	m, err := groomkit.DecodeJSON([]byte(`{"fur_length_cm": 2, "nested": {"a": [1, null]}}`))
	require.NoError(t, err)
	v, ok := m.Get("fur_length_cm")
	require.True(t, ok)
	assert.Equal(t, json.Number("2"), v)

	_, err = groomkit.DecodeJSON([]byte(`[1,2]`))
	assert.Error(t, err)
	_, err = groomkit.DecodeJSON([]byte(`null`))
	assert.Error(t, err)
	_, err = groomkit.DecodeJSON([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)
	_, err = groomkit.DecodeJSON([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestDecodeYAML_MatchesJSON(t *testing.T) {
	fromYAML, err := groomkit.DecodeYAML([]byte(`
fur_length_cm: 2
brush_type: slicker
shedding_score: 7
nail_trimmed: true
favorite_spot: chin
`))
	require.NoError(t, err)
	fromJSON, err := groomkit.DecodeJSON([]byte(`{"fur_length_cm":2,"brush_type":"slicker","shedding_score":7,"nail_trimmed":true,"favorite_spot":"chin"}`))
	require.NoError(t, err)

	r1, err := fromYAML.ToTyped()
	require.NoError(t, err)
	r2, err := fromJSON.ToTyped()
	require.NoError(t, err)
	assert.Equal(t, r2, r1)

	_, err = groomkit.DecodeYAML([]byte("- a\n- b"))
	assert.Error(t, err)
	_, err = groomkit.DecodeYAML([]byte(``))
	assert.Error(t, err)
}

func TestDecodeYAML_FractionalIntegerMatchesJSON(t *testing.T) {
	fromYAML, err := groomkit.DecodeYAML([]byte("fur_length_cm: 2\nbrush_type: pin\nshedding_score: 7.0\nnail_trimmed: true\nfavorite_spot: chin\n"))
	require.NoError(t, err)
	fromJSON, err := groomkit.DecodeJSON([]byte(`{"fur_length_cm":2,"brush_type":"pin","shedding_score":7.0,"nail_trimmed":true,"favorite_spot":"chin"}`))
	require.NoError(t, err)

	for name, m := range map[string]groomkit.DynamicMap{"yaml": fromYAML, "json": fromJSON} {
		_, err := m.ToTyped()
		ee, ok := groomkit.AsExtractionError(err)
		require.True(t, ok, name)
		assert.Equal(t, groomkit.KindInvalid, ee.Kind, name)
		assert.Equal(t, "shedding_score", ee.Field, name)
	}
}

func TestDecodeYAML_DateShapedStringStaysText(t *testing.T) {
	m, err := groomkit.DecodeYAML([]byte("fur_length_cm: 2\nbrush_type: pin\nshedding_score: 7\nnail_trimmed: true\nfavorite_spot: 2024-05-01\nnested:\n  when: 2024-05-01T10:00:00Z\n"))
	require.NoError(t, err)

	v, _ := m.Get("favorite_spot")
	assert.Equal(t, "2024-05-01", v)
	nested, _ := m.Get("nested")
	assert.Equal(t, map[string]any{"when": "2024-05-01T10:00:00Z"}, nested)

	rec, err := m.ToTyped()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", rec.FavoriteSpot)
}

func TestDynamicMap_UnmarshalYAMLNested(t *testing.T) {
	var doc struct {
		State groomkit.DynamicMap `yaml:"state"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("state:\n  brush_type: pin\n"), &doc))
	v, ok := doc.State.Get("brush_type")
	require.True(t, ok)
	assert.Equal(t, "pin", v)

	assert.Error(t, yaml.Unmarshal([]byte("state: 3\n"), &doc))
}

func TestDynamicMap_GetSetClone(t *testing.T) {
	m := groomkit.NewDynamicMap()
	_, ok := m.Get("a")
	assert.False(t, ok)

	m.Set("a", nil)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Nil(t, v)

	c := m.Clone()
	c.Set("a", 1)
	v, _ = m.Get("a")
	assert.Nil(t, v)

	assert.Nil(t, groomkit.DynamicMap(nil).Clone())
}

func keys(m groomkit.DynamicMap) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
