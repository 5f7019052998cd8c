package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		contentType string
		statusCode  int
		wantError   bool
		wantText    string
	}{
		{
			name:        "successful fetch",
			htmlContent: `<html><body><p class="date">Dec 26, 2025</p></body></html>`,
			contentType: "text/html; charset=utf-8",
			statusCode:  http.StatusOK,
			wantText:    "Dec 26, 2025",
		},
		{
			name:        "latin-1 page is decoded",
			htmlContent: "<html><body><p class=\"date\">Caf\xe9 night</p></body></html>",
			contentType: "text/html; charset=iso-8859-1",
			statusCode:  http.StatusOK,
			wantText:    "Café night",
		},
		{
			name:        "no content type",
			htmlContent: `<html><body><p class="date">Jan 2</p></body></html>`,
			statusCode:  http.StatusOK,
			wantText:    "Jan 2",
		},
		{
			name:       "HTTP error",
			statusCode: http.StatusNotFound,
			wantError:  true,
		},
		{
			name:       "forbidden",
			statusCode: http.StatusForbidden,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify browser-like headers are set
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "Mozilla/5.0") {
					t.Errorf("User-Agent = %q, should look like a browser", userAgent)
				}
				if accept := r.Header.Get("Accept"); !strings.Contains(accept, "text/html") {
					t.Errorf("Accept = %q, should contain text/html", accept)
				}
				if lang := r.Header.Get("Accept-Language"); lang != AcceptLanguage {
					t.Errorf("Accept-Language = %q, want %q", lang, AcceptLanguage)
				}

				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			doc, err := NewFetcher().Fetch(context.Background(), server.URL)

			if tt.wantError {
				if err == nil {
					t.Fatal("Fetch() expected error, got nil")
				}
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("Fetch() error = %v, want *StatusError", err)
				}
				if statusErr.StatusCode != tt.statusCode {
					t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.statusCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if got := strings.TrimSpace(doc.Find(".date").Text()); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestFetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	if _, err := NewFetcher().Fetch(context.Background(), url); err == nil {
		t.Error("Fetch() expected error for closed server, got nil")
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	if _, err := NewFetcher().Fetch(context.Background(), "://not a url"); err == nil {
		t.Error("Fetch() expected error for invalid URL, got nil")
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{URL: "https://arena.example.com/events", StatusCode: 503}
	want := "unexpected status code 503 from https://arena.example.com/events"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
