package mcp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/liftnotes/internal/export"
	"github.com/claude/liftnotes/internal/ingest"
	"github.com/claude/liftnotes/internal/ingest/notes"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestHTTPClientConvert verifies the client posts the raw text with the right
// query params and API key and decodes the response.
func TestHTTPClientConvert(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/convert": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if got := r.Header.Get("X-API-Key"); got != "k" {
				t.Errorf("X-API-Key = %q, want k", got)
			}
			q := r.URL.Query()
			if got := q.Get("skip_dates"); got != "01/21/26,01/20/26" {
				t.Errorf("skip_dates = %q", got)
			}
			if got := q.Get("consolidate"); got != "false" {
				t.Errorf("consolidate = %q, want false", got)
			}
			body, _ := io.ReadAll(r.Body)
			if !strings.HasPrefix(string(body), "01/26/26") {
				t.Errorf("body = %q", body)
			}
			writeTestJSON(t, w, Conversion{
				Result:  &ingest.Result{RecordsConsolidated: 1},
				Records: []export.Row{{Date: "2026-01-26", Exercise: "Bench press", Weight: "60kg", Reps: 8, Sets: 1}},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL+"/", "k")
	conv, err := client.Convert(context.Background(), "01/26/26\nBench press 8x60kg\n", []string{"01/21/26", "01/20/26"}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(conv.Records) != 1 || conv.Records[0].Weight != "60kg" {
		t.Errorf("records = %+v", conv.Records)
	}
}

// TestHTTPClientConvertKeepsServerSkipDates verifies a nil list sends no override.
func TestHTTPClientConvertKeepsServerSkipDates(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/convert": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Has("skip_dates") {
				t.Error("skip_dates sent for nil list")
			}
			writeTestJSON(t, w, Conversion{Result: &ingest.Result{}, Records: []export.Row{}})
		},
	})
	defer ts.Close()

	if _, err := NewHTTPClient(ts.URL, "").Convert(context.Background(), "x", nil, true); err != nil {
		t.Fatal(err)
	}
}

// TestHTTPClientSettings verifies the parser settings are decoded.
func TestHTTPClientSettings(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/parser": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, notes.Settings{SkipDates: []string{"01/21/26"}, Markers: []string{"sauna"}})
		},
	})
	defer ts.Close()

	settings, err := NewHTTPClient(ts.URL, "").Settings(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(settings.SkipDates) != 1 || settings.Markers[0] != "sauna" {
		t.Errorf("settings = %+v", settings)
	}
}

// TestHTTPClientErrorStatus verifies non-200 responses surface as errors.
func TestHTTPClientErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/convert": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"invalid API key"}`, http.StatusForbidden)
		},
	})
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL, "bad").Convert(context.Background(), "x", nil, true)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("error = %v, want status code", err)
	}
}
