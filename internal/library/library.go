// Package library owns the persisted reading-list schema and the pure
// transformations applied to it: seeding, JSON import/export and the
// incremental edits made from the user interfaces.
package library

import (
	"errors"
	"time"
)

// StorageKey names the durable slot holding the serialized AppData.
const StorageKey = "pile-a-lire-data"

// Status is the reading state of a book.
type Status string

const (
	StatusToRead  Status = "to_read"
	StatusReading Status = "reading"
	StatusRead    Status = "read"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusToRead, StatusReading, StatusRead}

func (s Status) Valid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusRead:
		return true
	default:
		return false
	}
}

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrMalformedImport = errors.New("invalid JSON format")
	ErrBookNotFound    = errors.New("book not found")
	ErrDuplicateBook   = errors.New("book already in library")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidBook     = errors.New("invalid book")
	ErrEmptyComment    = errors.New("comment is empty")
)

// Book is one library entry. Optional fields that are empty are left out of
// the JSON, so an imported "authors": [] or "description": "" exports without
// the key.
type Book struct {
	ID            string   `json:"id"`
	GoogleBookID  string   `json:"google_book_id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Description   string   `json:"description,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	PageCount     *int     `json:"page_count,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Status        Status   `json:"status" validate:"oneof=to_read reading read"`
	Rating        *int     `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type Comment struct {
	ID        string `json:"id"`
	BookID    string `json:"book_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ReadingStats is a denormalized per-category counter. Nothing keeps it in
// sync with Books; see RecomputeStats.
type ReadingStats struct {
	Category  string `json:"category"`
	BooksRead int    `json:"books_read"`
}

// AppData is the unit of persistence and of import/export.
type AppData struct {
	Books    []Book         `json:"books"`
	Comments []Comment      `json:"comments"`
	Stats    []ReadingStats `json:"stats"`
}

// Normalize returns d with nil top-level lists replaced by empty ones and
// empty optional lists dropped, which is the shape ImportData produces.
func (d AppData) Normalize() AppData {
	out := AppData{
		Books:    make([]Book, len(d.Books)),
		Comments: make([]Comment, len(d.Comments)),
		Stats:    make([]ReadingStats, len(d.Stats)),
	}
	for i, b := range d.Books {
		if len(b.Authors) == 0 {
			b.Authors = nil
		}
		if len(b.Categories) == 0 {
			b.Categories = nil
		}
		out.Books[i] = b
	}
	copy(out.Comments, d.Comments)
	copy(out.Stats, d.Stats)
	return out
}

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t the way every created_at/updated_at field is stored.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func intPtr(n int) *int {
	return &n
}
