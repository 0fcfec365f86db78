package pipeline

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindFetch, http.StatusNotFound},
		{KindExtraction, http.StatusUnprocessableEntity},
		{KindClassification, http.StatusUnprocessableEntity},
		{KindDatabase, http.StatusInternalServerError},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := tt.kind.HTTPStatus(); got != tt.status {
			t.Errorf("Kind %s: expected status %d, got %d", tt.kind, tt.status, got)
		}
	}
}

func TestKindMessage(t *testing.T) {
	tests := []struct {
		kind    Kind
		message string
	}{
		{KindFetch, "Failed to fetch web page"},
		{KindExtraction, "Failed to extract readable content"},
		{KindClassification, "Failed to classify content"},
		{KindDatabase, "Failed to save link"},
		{KindUnknown, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		if got := tt.kind.Message(); got != tt.message {
			t.Errorf("Kind %s: expected message '%s', got '%s'", tt.kind, tt.message, got)
		}
	}
}

func TestKindMessageDoesNotLeakInternals(t *testing.T) {
	wrapped := &Error{Kind: KindDatabase, Err: fmt.Errorf("pq: connection refused at 10.0.0.5")}

	if msg := KindOf(wrapped).Message(); msg != "Failed to save link" {
		t.Errorf("Expected user-safe message, got '%s'", msg)
	}
}

func TestKindOf(t *testing.T) {
	fetchErr := &Error{Kind: KindFetch, Err: errors.New("HTTP error: status 503")}
	if got := KindOf(fetchErr); got != KindFetch {
		t.Errorf("Expected KindFetch, got %s", got)
	}

	wrapped := fmt.Errorf("handler: %w", fetchErr)
	if got := KindOf(wrapped); got != KindFetch {
		t.Errorf("Expected KindFetch through wrapping, got %s", got)
	}

	if got := KindOf(errors.New("something else")); got != KindUnknown {
		t.Errorf("Expected KindUnknown for untagged error, got %s", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	underlying := errors.New("no readable content found")
	err := &Error{Kind: KindExtraction, Err: underlying}

	if !errors.Is(err, underlying) {
		t.Error("Expected errors.Is to reach the underlying error")
	}

	if err.Error() == "" {
		t.Error("Expected non-empty error string")
	}
}
