package library

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)

func TestInitialData_Variants(t *testing.T) {
	demo := InitialData(SeedDemo)
	if len(demo.Books) != 6 || len(demo.Comments) != 2 || len(demo.Stats) != 5 {
		t.Fatalf("demo seed sizes = %d/%d/%d, want 6/2/5", len(demo.Books), len(demo.Comments), len(demo.Stats))
	}
	if err := Validate(demo); err != nil {
		t.Fatalf("demo seed invalid: %v", err)
	}

	empty := InitialData(SeedEmpty)
	if len(empty.Books) != 0 || empty.Books == nil {
		t.Fatalf("empty seed = %+v, want empty non-nil lists", empty)
	}
}

func TestGetInitialData_ReturnsFreshValues(t *testing.T) {
	a := GetInitialData()
	a.Books[0].Title = "changed"
	*a.Books[0].Rating = 1

	b := GetInitialData()
	if b.Books[0].Title != "L'Étranger" || *b.Books[0].Rating != 5 {
		t.Fatalf("GetInitialData() shares state between calls: %+v", b.Books[0])
	}
}

func TestParseSeedVariant(t *testing.T) {
	for in, want := range map[string]SeedVariant{"": SeedDemo, "demo": SeedDemo, " EMPTY ": SeedEmpty} {
		got, err := ParseSeedVariant(in)
		if err != nil || got != want {
			t.Fatalf("ParseSeedVariant(%q) = (%q, %v), want %q", in, got, err, want)
		}
	}
	if _, err := ParseSeedVariant("supabase"); err == nil {
		t.Fatal("ParseSeedVariant(supabase) want error")
	}
}

func TestCountByStatus_PartitionsBooks(t *testing.T) {
	data := GetInitialData()

	c := CountByStatus(data.Books)
	if c.Read != 2 || c.Reading != 2 || c.ToRead != 2 {
		t.Fatalf("CountByStatus() = %+v, want 2/2/2", c)
	}
	if c.Total() != len(data.Books) {
		t.Fatalf("Total()=%d, want %d", c.Total(), len(data.Books))
	}
}

func TestAddBook_RejectsDuplicatesAndInvalidBooks(t *testing.T) {
	data := GetInitialData()

	dup := NewBook("fict_1", "L'Étranger (poche)", testNow)
	if err := data.AddBook(dup); !errors.Is(err, ErrDuplicateBook) {
		t.Fatalf("AddBook(dup google id) err=%v, want ErrDuplicateBook", err)
	}

	untitled := NewBook("g-1", "  ", testNow)
	if err := data.AddBook(untitled); !errors.Is(err, ErrInvalidBook) {
		t.Fatalf("AddBook(untitled) err=%v, want ErrInvalidBook", err)
	}

	bad := NewBook("g-2", "Titre", testNow)
	bad.Status = "abandoned"
	if err := data.AddBook(bad); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("AddBook(bad status) err=%v, want ErrInvalidStatus", err)
	}

	ok := NewBook("g-3", "Germinal", testNow)
	if err := data.AddBook(ok); err != nil {
		t.Fatalf("AddBook(): %v", err)
	}
	if len(data.Books) != 7 {
		t.Fatalf("books=%d, want 7", len(data.Books))
	}
	if ok.CreatedAt != "2025-04-02T08:00:00.000Z" || ok.Status != StatusToRead {
		t.Fatalf("NewBook() = %+v, want to_read with ISO timestamps", ok)
	}
}

func TestSetStatusAndRate(t *testing.T) {
	data := GetInitialData()

	if err := data.SetStatus("3", StatusReading, testNow); err != nil {
		t.Fatalf("SetStatus(): %v", err)
	}
	b, _ := data.Book("3")
	if b.Status != StatusReading || b.UpdatedAt != Timestamp(testNow) {
		t.Fatalf("book after SetStatus = %+v", b)
	}

	if err := data.SetStatus("3", "done", testNow); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("SetStatus(done) err=%v, want ErrInvalidStatus", err)
	}
	if err := data.SetStatus("missing", StatusRead, testNow); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("SetStatus(missing) err=%v, want ErrBookNotFound", err)
	}

	if err := data.Rate("3", 4, testNow); err != nil {
		t.Fatalf("Rate(): %v", err)
	}
	if *b.Rating != 4 {
		t.Fatalf("rating=%d, want 4", *b.Rating)
	}
	for _, r := range []int{0, 6, -1} {
		if err := data.Rate("3", r, testNow); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("Rate(%d) err=%v, want ErrInvalidRating", r, err)
		}
	}

	if err := data.ClearRating("3", testNow); err != nil {
		t.Fatalf("ClearRating(): %v", err)
	}
	if b.Rating != nil {
		t.Fatalf("rating=%v, want nil", *b.Rating)
	}
}

func TestRemoveBook_DropsComments(t *testing.T) {
	data := GetInitialData()

	removed, err := data.RemoveBook("1")
	if err != nil {
		t.Fatalf("RemoveBook(): %v", err)
	}
	if removed.Title != "L'Étranger" {
		t.Fatalf("removed=%q", removed.Title)
	}
	if len(data.Books) != 5 {
		t.Fatalf("books=%d, want 5", len(data.Books))
	}
	if len(data.CommentsFor("1")) != 0 || len(data.Comments) != 1 {
		t.Fatalf("comments=%+v, want only c2", data.Comments)
	}
	if _, err := data.RemoveBook("1"); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("second RemoveBook() err=%v, want ErrBookNotFound", err)
	}
}

func TestAddComment(t *testing.T) {
	data := EmptyData()

	if _, err := data.AddComment("1", "   ", testNow); !errors.Is(err, ErrEmptyComment) {
		t.Fatalf("AddComment(blank) err=%v, want ErrEmptyComment", err)
	}
	c, err := data.AddComment("1", "  Superbe.  ", testNow)
	if err != nil {
		t.Fatalf("AddComment(): %v", err)
	}
	if c.Content != "Superbe." || c.ID == "" || c.BookID != "1" {
		t.Fatalf("comment=%+v", c)
	}
}

func TestRecomputeStats_CountsReadCategories(t *testing.T) {
	data := GetInitialData()
	data.RecomputeStats()

	want := []ReadingStats{
		{Category: "Classique", BooksRead: 1},
		{Category: "Essai", BooksRead: 1},
		{Category: "Fiction", BooksRead: 1},
		{Category: "Histoire", BooksRead: 1},
		{Category: "Philosophie", BooksRead: 1},
		{Category: "Science", BooksRead: 1},
	}
	if len(data.Stats) != len(want) {
		t.Fatalf("stats=%+v, want %+v", data.Stats, want)
	}
	for i := range want {
		if data.Stats[i] != want[i] {
			t.Fatalf("stats[%d]=%+v, want %+v", i, data.Stats[i], want[i])
		}
	}
}
