package i18n

// Translator retrieves localized messages for error codes.
// data provides optional values to embed in the message (for example,
// "field" or "detail").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	field := data["field"]
	detail := data["detail"]
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "必須フィールドがありません: " + field
		case "invalid_type":
			return withDetail("フィールドの型が不正です: "+field, detail)
		}
	default: // "en"
		switch code {
		case "required":
			return "missing field " + field
		case "invalid_type":
			return withDetail("invalid field "+field, detail)
		}
	}
	return withDetail(code+" "+field, detail)
}

func withDetail(msg, detail string) string {
	if detail == "" {
		return msg
	}
	return msg + ": " + detail
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
