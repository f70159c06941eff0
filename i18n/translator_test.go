package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	assert.Equal(t, "missing field brush_type", T("required", map[string]string{"field": "brush_type"}))
	assert.Equal(t, "invalid field shedding_score: bad", T("invalid_type", map[string]string{"field": "shedding_score", "detail": "bad"}))

	SetLanguage("ja")
	defer SetLanguage("en")
	msg := T("required", map[string]string{"field": "brush_type"})
	assert.NotEqual(t, "missing field brush_type", msg)
	assert.Contains(t, msg, "brush_type")
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string {
	return "X:" + code + ":" + data["field"]
}

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upperTranslator{})
	assert.Equal(t, "X:required:a", T("required", map[string]string{"field": "a"}))

	SetTranslator(nil)
	assert.Equal(t, "missing field a", T("required", map[string]string{"field": "a"}))
}

func TestTranslator_UnknownCode(t *testing.T) {
	assert.Equal(t, "weird f", T("weird", map[string]string{"field": "f"}))
	assert.Equal(t, "weird f: d", T("weird", map[string]string{"field": "f", "detail": "d"}))
}
