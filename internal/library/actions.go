package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewBook builds a to_read book with fresh identifiers and timestamps.
func NewBook(googleBookID, title string, now time.Time) Book {
	ts := Timestamp(now)
	return Book{
		ID:           uuid.NewString(),
		GoogleBookID: googleBookID,
		Title:        title,
		Status:       StatusToRead,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

// Book returns a pointer into d.Books so callers can edit in place.
func (d *AppData) Book(id string) (*Book, bool) {
	for i := range d.Books {
		if d.Books[i].ID == id {
			return &d.Books[i], true
		}
	}
	return nil, false
}

func (d *AppData) AddBook(b Book) error {
	if strings.TrimSpace(b.Title) == "" || b.ID == "" {
		return fmt.Errorf("%w: id and title are required", ErrInvalidBook)
	}
	if err := ValidateBook(b); err != nil {
		return err
	}
	for _, existing := range d.Books {
		if existing.ID == b.ID {
			return fmt.Errorf("%w: id %q", ErrDuplicateBook, b.ID)
		}
		if b.GoogleBookID != "" && existing.GoogleBookID == b.GoogleBookID {
			return fmt.Errorf("%w: %q", ErrDuplicateBook, existing.Title)
		}
	}
	d.Books = append(d.Books, b)
	return nil
}

// RemoveBook deletes the book and every comment attached to it.
func (d *AppData) RemoveBook(id string) (Book, error) {
	idx := -1
	for i := range d.Books {
		if d.Books[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Book{}, fmt.Errorf("%w: %q", ErrBookNotFound, id)
	}

	removed := d.Books[idx]
	d.Books = append(d.Books[:idx:idx], d.Books[idx+1:]...)

	kept := make([]Comment, 0, len(d.Comments))
	for _, c := range d.Comments {
		if c.BookID != id {
			kept = append(kept, c)
		}
	}
	d.Comments = kept
	return removed, nil
}

func (d *AppData) SetStatus(id string, status Status, now time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(status))
	}
	b, ok := d.Book(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBookNotFound, id)
	}
	b.Status = status
	b.UpdatedAt = Timestamp(now)
	return nil
}

func (d *AppData) Rate(id string, rating int, now time.Time) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	b, ok := d.Book(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBookNotFound, id)
	}
	b.Rating = intPtr(rating)
	b.UpdatedAt = Timestamp(now)
	return nil
}

func (d *AppData) ClearRating(id string, now time.Time) error {
	b, ok := d.Book(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBookNotFound, id)
	}
	b.Rating = nil
	b.UpdatedAt = Timestamp(now)
	return nil
}

// AddComment appends a comment. The book reference is not checked here,
// matching the stored schema where book_id is a loose reference.
func (d *AppData) AddComment(bookID, content string, now time.Time) (Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, ErrEmptyComment
	}
	ts := Timestamp(now)
	c := Comment{
		ID:        uuid.NewString(),
		BookID:    bookID,
		Content:   content,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	d.Comments = append(d.Comments, c)
	return c, nil
}

func (d *AppData) CommentsFor(bookID string) []Comment {
	var out []Comment
	for _, c := range d.Comments {
		if c.BookID == bookID {
			out = append(out, c)
		}
	}
	return out
}
