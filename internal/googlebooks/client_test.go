package googlebooks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const volumeJSON = `{
  "id": "zyTCAlFPjgYC",
  "volumeInfo": {
    "title": "The Google Story",
    "authors": ["David A. Vise", "Mark Malseed"],
    "publishedDate": "2005-11-15",
    "description": "Here is the story behind one of the most remarkable Internet successes of our time.",
    "pageCount": 207,
    "categories": ["Browsers (Computer programs)"],
    "imageLinks": {
      "smallThumbnail": "http://books.google.com/books/content?id=zyTCAlFPjgYC&zoom=5",
      "thumbnail": "http://books.google.com/books/content?id=zyTCAlFPjgYC&zoom=1"
    }
  }
}`

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient("")
	c.BaseURL = srv.URL
	c.RetryBackoff = time.Millisecond
	return c
}

func TestExtractVolumeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{name: "raw id", input: "zyTCAlFPjgYC", wantID: "zyTCAlFPjgYC"},
		{name: "raw id with spaces", input: "  zyTCAlFPjgYC\n", wantID: "zyTCAlFPjgYC"},
		{name: "books link", input: "https://books.google.com/books?id=zyTCAlFPjgYC&printsec=frontcover", wantID: "zyTCAlFPjgYC"},
		{name: "edition link", input: "https://www.google.fr/books/edition/The_Google_Story/zyTCAlFPjgYC?hl=fr", wantID: "zyTCAlFPjgYC"},
		{name: "other site", input: "https://example.com/foo/bar", wantErr: true},
		{name: "other site with id param", input: "https://example.com/books?id=zyTCAlFPjgYC", wantErr: true},
		{name: "free text", input: "Le Petit Prince", wantErr: true},
		{name: "short id", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVolumeID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractVolumeID() error = %v, wantErr=%v", err, tt.wantErr)
			}
			if got != tt.wantID {
				t.Fatalf("ExtractVolumeID() = %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestExtractVolumeIDFromURL_RejectsBareWords(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"Bonjourhello", "zyTCAlFPjgYC", "merci-beauco"} {
		if id, err := ExtractVolumeIDFromURL(text); err == nil {
			t.Fatalf("ExtractVolumeIDFromURL(%q) = %q, want error", text, id)
		}
	}

	id, err := ExtractVolumeIDFromURL("https://books.google.fr/books?id=zyTCAlFPjgYC")
	if err != nil || id != "zyTCAlFPjgYC" {
		t.Fatalf("ExtractVolumeIDFromURL(link) = %q, %v", id, err)
	}
}

func TestGetVolume_UsesBaseURLAndHeaders(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/volumes/zyTCAlFPjgYC" {
			t.Errorf("path = %q, want /volumes/zyTCAlFPjgYC", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "PileALire") {
			t.Errorf("User-Agent = %q, want contains PileALire", ua)
		}
		if key := r.URL.Query().Get("key"); key != "secret" {
			t.Errorf("key = %q, want secret", key)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(volumeJSON))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)
	c.APIKey = "secret"

	v, err := c.GetVolume(context.Background(), "zyTCAlFPjgYC")
	if err != nil {
		t.Fatalf("GetVolume(): %v", err)
	}
	if v.VolumeInfo.Title != "The Google Story" || v.VolumeInfo.PageCount != 207 {
		t.Fatalf("GetVolume() = %+v", v.VolumeInfo)
	}
}

func TestGetVolume_NotFoundIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, `{"error":{"code":404}}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient(srv).GetVolume(context.Background(), "missingXXXXX")
	if !errors.Is(err, ErrVolumeNotFound) {
		t.Fatalf("GetVolume() err=%v, want ErrVolumeNotFound", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("calls=%d, want 1", n)
	}
}

func TestGetVolume_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(volumeJSON))
	}))
	t.Cleanup(srv.Close)

	v, err := newTestClient(srv).GetVolume(context.Background(), "zyTCAlFPjgYC")
	if err != nil {
		t.Fatalf("GetVolume(): %v", err)
	}
	if v.ID != "zyTCAlFPjgYC" {
		t.Fatalf("ID=%q", v.ID)
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Fatalf("calls=%d, want 3", n)
	}
}

func TestGetVolume_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(srv)
	c.MaxRetries = 2
	if _, err := c.GetVolume(context.Background(), "zyTCAlFPjgYC"); err == nil {
		t.Fatal("GetVolume() want error after retries")
	}
}

func TestVolumeToBook(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	v := Volume{
		ID: "zyTCAlFPjgYC",
		VolumeInfo: VolumeInfo{
			Title:      "Sapiens",
			Subtitle:   "Une brève histoire de l'humanité",
			Authors:    []string{"Yuval Noah Harari"},
			PageCount:  512,
			Categories: []string{"Histoire"},
			ImageLinks: ImageLinks{SmallThumbnail: "http://books.google.com/cover"},
		},
	}

	b := v.ToBook(now, "Titre non disponible")
	if b.Title != "Sapiens: Une brève histoire de l'humanité" {
		t.Fatalf("Title=%q", b.Title)
	}
	if b.GoogleBookID != "zyTCAlFPjgYC" || b.Status != "to_read" {
		t.Fatalf("book=%+v", b)
	}
	if b.PageCount == nil || *b.PageCount != 512 {
		t.Fatalf("PageCount=%v, want 512", b.PageCount)
	}
	if b.Thumbnail != "https://books.google.com/cover" {
		t.Fatalf("Thumbnail=%q, want https small thumbnail", b.Thumbnail)
	}
	if b.CreatedAt != "2025-01-02T03:04:05.000Z" {
		t.Fatalf("CreatedAt=%q", b.CreatedAt)
	}

	untitled := Volume{ID: "abcdefghijkl"}.ToBook(now, "Titre non disponible")
	if untitled.Title != "Titre non disponible" || untitled.PageCount != nil {
		t.Fatalf("untitled=%+v", untitled)
	}
}
