package groomkit

import (
	"errors"
	"strings"

	"github.com/reoring/groomkit/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired    = "required"
	CodeInvalidType = "invalid_type"
)

// ErrorKind distinguishes the two ways an extraction can fail.
type ErrorKind int

const (
	KindMissing ErrorKind = iota // Declared field absent from the map.
	KindInvalid                  // Field present but not convertible to the declared type.
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against an *ExtractionError's kind.
var (
	ErrMissing = errors.New("groomkit: missing field")
	ErrInvalid = errors.New("groomkit: invalid field")
)

// ExtractionError reports the first field that stopped an extraction.
type ExtractionError struct {
	Kind  ErrorKind
	Field string
	// Message is the underlying conversion diagnostic (Invalid only).
	Message string
	// Cause is the decoder error behind Message, when there is one.
	Cause error
}

func missingField(field string) *ExtractionError {
	return &ExtractionError{Kind: KindMissing, Field: field}
}

func invalidField(field string, cause error) *ExtractionError {
	return &ExtractionError{Kind: KindInvalid, Field: field, Message: cause.Error(), Cause: cause}
}

// Error renders a localized message through the i18n catalog,
// e.g. "missing field brush_type".
func (e *ExtractionError) Error() string {
	data := map[string]string{"field": e.Field}
	if e.Message != "" {
		data["detail"] = e.Message
	}
	return i18n.T(e.Code(), data)
}

// Code returns the stable issue code for the error kind.
func (e *ExtractionError) Code() string {
	if e.Kind == KindMissing {
		return CodeRequired
	}
	return CodeInvalidType
}

// Path returns the JSON Pointer of the offending field (e.g. /brush_type).
func (e *ExtractionError) Path() string { return pointer(e.Field) }

func (e *ExtractionError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrMissing) and errors.Is(err, ErrInvalid) match by kind.
func (e *ExtractionError) Is(target error) bool {
	switch target {
	case ErrMissing:
		return e.Kind == KindMissing
	case ErrInvalid:
		return e.Kind == KindInvalid
	}
	return false
}

// AsExtractionError extracts an *ExtractionError from err using errors.As.
func AsExtractionError(err error) (*ExtractionError, bool) {
	if err == nil {
		return nil, false
	}
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// pointer renders a top-level key as a JSON Pointer.
func pointer(field string) string {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	return "/" + strings.ReplaceAll(strings.ReplaceAll(field, "~", "~0"), "/", "~1")
}
