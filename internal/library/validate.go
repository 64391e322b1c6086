package library

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateBook checks the status and rating invariants of a single book.
func ValidateBook(b Book) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].StructField() {
	case "Status":
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(b.Status))
	case "Rating":
		return fmt.Errorf("%w: got %d", ErrInvalidRating, *b.Rating)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidBook, verrs[0])
	}
}

// Validate checks every book in data.
func Validate(data AppData) error {
	for i, b := range data.Books {
		if err := ValidateBook(b); err != nil {
			return fmt.Errorf("books[%d] (id %q): %w", i, b.ID, err)
		}
	}
	return nil
}
