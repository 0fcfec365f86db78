package pipeline

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags a pipeline failure with the stage it originated from. It is a
// closed enumeration; handlers derive HTTP status and user-safe message from
// the kind alone, never from error message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindFetch
	KindExtraction
	KindClassification
	KindDatabase
)

var statusByKind = map[Kind]int{
	KindFetch:          http.StatusNotFound,
	KindExtraction:     http.StatusUnprocessableEntity,
	KindClassification: http.StatusUnprocessableEntity,
	KindDatabase:       http.StatusInternalServerError,
	KindUnknown:        http.StatusInternalServerError,
}

var messageByKind = map[Kind]string{
	KindFetch:          "Failed to fetch web page",
	KindExtraction:     "Failed to extract readable content",
	KindClassification: "Failed to classify content",
	KindDatabase:       "Failed to save link",
	KindUnknown:        "An unexpected error occurred",
}

func (k Kind) HTTPStatus() int {
	if status, ok := statusByKind[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Message is the only error text that crosses the trust boundary; the
// underlying error stays in server-side logs.
func (k Kind) Message() string {
	if msg, ok := messageByKind[k]; ok {
		return msg
	}
	return messageByKind[KindUnknown]
}

func (k Kind) String() string {
	switch k {
	case KindFetch:
		return "fetch"
	case KindExtraction:
		return "extraction"
	case KindClassification:
		return "classification"
	case KindDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// Error wraps a stage failure with its kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the stage kind from an error, defaulting to KindUnknown
// for anything the pipeline did not tag.
func KindOf(err error) Kind {
	var pipelineErr *Error
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Kind
	}
	return KindUnknown
}
