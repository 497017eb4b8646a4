package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"feedwatch/domain"
)

func TestNotifyEmptyBatchMakesNoCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL)
	if err := n.Notify(context.Background(), nil); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no HTTP call, got %d", calls)
	}
}

func TestNotifyFormatsMessage(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	entries := []domain.NewEntry{
		{Feed: "Example", Title: "Hello", Link: "https://example.com/1"},
		{Feed: "Other", Title: "World", Link: "https://example.com/2"},
	}

	n := NewNotifier(srv.URL)
	if err := n.Notify(context.Background(), entries); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	want := strings.Join([]string{
		"**New RSS Feed Entries Found:**",
		"**Example**: [Hello](https://example.com/1)",
		"**Other**: [World](https://example.com/2)",
	}, "\n")
	if got.Content != want {
		t.Errorf("content = %q, want %q", got.Content, want)
	}
}

func TestNotifyTruncatesToLimit(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	long := strings.Repeat("x", 200)
	var entries []domain.NewEntry
	for i := 0; i < 30; i++ {
		entries = append(entries, domain.NewEntry{Feed: "F", Title: long, Link: "https://example.com"})
	}

	n := NewNotifier(srv.URL)
	if err := n.Notify(context.Background(), entries); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if l := utf8.RuneCountInString(got.Content); l != messageLimit {
		t.Errorf("content length = %d, want %d", l, messageLimit)
	}
}

func TestNotifyReportsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL)
	err := n.Notify(context.Background(), []domain.NewEntry{{Feed: "F", Title: "T", Link: "L"}})
	if err == nil {
		t.Fatal("expected an error for HTTP 429")
	}
}

func TestNotifyReportsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	n := NewNotifier(srv.URL)
	err := n.Notify(context.Background(), []domain.NewEntry{{Feed: "F", Title: "T", Link: "L"}})
	if err == nil {
		t.Fatal("expected a transport error")
	}
}
