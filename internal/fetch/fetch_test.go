// ABOUTME: Tests for the catalog HTTP fetcher
// ABOUTME: Verifies success, non-200 handling, and the response size cap

package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "gamedex/") {
			t.Errorf("unexpected User-Agent: %q", ua)
		}
		w.Write([]byte(`[{"name":"Test Game"}]`))
	}))
	defer server.Close()

	body, err := Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(body) != `[{"name":"Test Game"}]` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !errors.Is(err, ErrBadStatus) {
		t.Errorf("expected ErrBadStatus, got %v", err)
	}
}

func TestFetchNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately closed so the connection is refused

	if _, err := Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for refused connection")
	}
}

func TestFetchResponseTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunk := strings.Repeat("x", 1024*1024)
		for i := 0; i < 11; i++ {
			if _, err := w.Write([]byte(chunk)); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for oversized response")
	}
}
