package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetcher_Run_Success(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>page</body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(server.Client(), "LinkSense/test")

	data, err := fetcher.Run(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if string(data) != "<html><body>page</body></html>" {
		t.Errorf("Unexpected body '%s'", string(data))
	}
	if gotUserAgent != "LinkSense/test" {
		t.Errorf("Expected configured user agent, got '%s'", gotUserAgent)
	}
	if gotAccept != "text/html" {
		t.Errorf("Expected Accept: text/html, got '%s'", gotAccept)
	}
}

func TestFetcher_Run_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		fetcher := NewFetcher(server.Client(), "LinkSense/test")

		_, err := fetcher.Run(context.Background(), server.URL)
		server.Close()

		if err == nil {
			t.Fatalf("Status %d: expected error", status)
		}

		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("Status %d: expected FetchError, got %T", status, err)
		}
		if fetchErr.StatusCode != status {
			t.Errorf("Expected status %d in FetchError, got %d", status, fetchErr.StatusCode)
		}
	}
}

func TestFetcher_Run_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed before the request, so the connection fails

	fetcher := NewFetcher(http.DefaultClient, "LinkSense/test")

	_, err := fetcher.Run(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected FetchError, got %T", err)
	}
	if fetchErr.StatusCode != 0 {
		t.Errorf("Expected status 0 for transport failure, got %d", fetchErr.StatusCode)
	}
}

func TestFetcher_Run_InvalidURL(t *testing.T) {
	fetcher := NewFetcher(http.DefaultClient, "LinkSense/test")

	_, err := fetcher.Run(context.Background(), "://not-a-url")
	if err == nil {
		t.Fatal("Expected error for invalid URL")
	}
}
