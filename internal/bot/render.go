package bot

import (
	"fmt"
	"html"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"pilealire/internal/appcopy"
	"pilealire/internal/library"
)

const (
	buttonLabelMax = 40
	listTitleMax   = 80
	booksPerPage   = 20
)

// bookRefSpace namespaces the name-based UUIDs used as book references.
var bookRefSpace = uuid.MustParse("6f1c7b52-3d0e-4a8e-9a57-2f3c1b9e4d10")

// bookRef is the fixed-length handle a book gets in callback data. Imported
// IDs are free-form and Telegram caps callback data at 64 bytes.
func bookRef(bookID string) string {
	return uuid.NewSHA1(bookRefSpace, []byte(bookID)).String()
}

// bookIDForRef finds the book whose ID maps to ref.
func bookIDForRef(books []library.Book, ref string) (string, bool) {
	for _, book := range books {
		if bookRef(book.ID) == ref {
			return book.ID, true
		}
	}
	return "", false
}

func pageCount(total int) int {
	if total == 0 {
		return 1
	}
	return (total + booksPerPage - 1) / booksPerPage
}

// pageRange clamps page and returns it with the bounds of its books.
func pageRange(total, page int) (int, int, int) {
	page = min(max(page, 0), pageCount(total)-1)
	start := page * booksPerPage
	return page, start, min(start+booksPerPage, total)
}

func statusLabel(s library.Status) string {
	switch s {
	case library.StatusToRead:
		return appcopy.Copy.Labels.StatusToRead
	case library.StatusReading:
		return appcopy.Copy.Labels.StatusReading
	case library.StatusRead:
		return appcopy.Copy.Labels.StatusRead
	default:
		return string(s)
	}
}

func stars(rating int) string {
	if rating < library.MinRating || rating > library.MaxRating {
		return ""
	}
	return strings.Repeat(appcopy.Copy.Labels.StarFull, rating) +
		strings.Repeat(appcopy.Copy.Labels.StarEmpty, library.MaxRating-rating)
}

func formatBookList(books []library.Book, page int) string {
	if len(books) == 0 {
		return appcopy.Copy.Info.ListEmpty
	}

	page, start, end := pageRange(len(books), page)

	var bld strings.Builder
	bld.WriteString(appcopy.Copy.Info.ListHeader)
	for i := start; i < end; i++ {
		book := books[i]
		title := html.EscapeString(truncateLabel(book.Title, listTitleMax))
		line := fmt.Sprintf(appcopy.Copy.Labels.ListItemFormat, i+1, "<b>"+title+"</b>")
		bld.WriteString(line)
		bld.WriteString(" - " + statusLabel(book.Status))
		if book.Rating != nil {
			bld.WriteString(" " + stars(*book.Rating))
		}
		bld.WriteString("\n")
	}
	bld.WriteString(fmt.Sprintf(appcopy.Copy.Info.ListTotal, len(books)))
	if pages := pageCount(len(books)); pages > 1 {
		bld.WriteString(fmt.Sprintf(appcopy.Copy.Info.ListPage, page+1, pages))
	}
	return bld.String()
}

func formatBookDetails(book library.Book, comments []library.Comment) string {
	info := appcopy.Copy.Info

	var bld strings.Builder
	bld.WriteString("📖 <b>" + html.EscapeString(book.Title) + "</b>\n")
	if len(book.Authors) > 0 {
		bld.WriteString(fmt.Sprintf(info.DetailsAuthors, html.EscapeString(strings.Join(book.Authors, ", "))))
	}
	if book.PublishedDate != "" {
		bld.WriteString(fmt.Sprintf(info.DetailsPublished, html.EscapeString(book.PublishedDate)))
	}
	if book.PageCount != nil {
		bld.WriteString(fmt.Sprintf(info.DetailsPages, *book.PageCount))
	}

	bld.WriteString(fmt.Sprintf(info.DetailsStatus, statusLabel(book.Status)))
	if book.Rating != nil {
		bld.WriteString(fmt.Sprintf(info.DetailsRating, stars(*book.Rating)))
	} else {
		bld.WriteString(info.DetailsNoRating)
	}

	if len(comments) > 0 {
		bld.WriteString(info.DetailsComments)
		for _, c := range comments {
			bld.WriteString(fmt.Sprintf(info.DetailsComment, html.EscapeString(c.Content), commentDate(c.CreatedAt)))
		}
	}
	return bld.String()
}

func commentDate(ts string) string {
	t, err := time.Parse("2006-01-02T15:04:05.000Z", ts)
	if err != nil {
		return html.EscapeString(ts)
	}
	return t.Format("02/01/2006")
}

func formatStats(data library.AppData) string {
	labels := appcopy.Copy.Labels
	counts := library.CountByStatus(data.Books)

	var bld strings.Builder
	bld.WriteString(appcopy.Copy.Info.StatsTitle)
	bld.WriteString(fmt.Sprintf("%s : <b>%d</b>\n", labels.StatsRead, counts.Read))
	bld.WriteString(fmt.Sprintf("%s : <b>%d</b>\n", labels.StatsReading, counts.Reading))
	bld.WriteString(fmt.Sprintf("%s : <b>%d</b>\n", labels.StatsToRead, counts.ToRead))

	if len(data.Stats) > 0 {
		bld.WriteString(appcopy.Copy.Info.StatsCategories)
		for _, s := range data.Stats {
			bld.WriteString(fmt.Sprintf(labels.CategoryLine, html.EscapeString(s.Category), s.BooksRead))
		}
	}
	return bld.String()
}

func bookListKeyboard(books []library.Book, page int) tgbotapi.InlineKeyboardMarkup {
	page, start, end := pageRange(len(books), page)

	buttons := make([]tgbotapi.InlineKeyboardButton, 0, end-start)
	for i := start; i < end; i++ {
		label := fmt.Sprintf(appcopy.Copy.Labels.ListItemFormat, i+1, truncateLabel(books[i].Title, buttonLabelMax))
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(label, "book:"+bookRef(books[i].ID)))
	}
	rows := appendButtonsInRows(nil, buttons, 1)

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(appcopy.Copy.Buttons.PrevPage, fmt.Sprintf("list_books:%d", page-1)))
	}
	if page < pageCount(len(books))-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(appcopy.Copy.Buttons.NextPage, fmt.Sprintf("list_books:%d", page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(appcopy.Copy.Buttons.AddBook, "add_book"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func bookKeyboard(book library.Book) tgbotapi.InlineKeyboardMarkup {
	btn := appcopy.Copy.Buttons
	ref := bookRef(book.ID)

	var statusButtons []tgbotapi.InlineKeyboardButton
	for _, s := range library.Statuses {
		if s == book.Status {
			continue
		}
		statusButtons = append(statusButtons,
			tgbotapi.NewInlineKeyboardButtonData(btn.StatusPrefix+statusLabel(s), fmt.Sprintf("status:%s:%s", ref, s)))
	}

	var rateButtons []tgbotapi.InlineKeyboardButton
	for r := library.MinRating; r <= library.MaxRating; r++ {
		rateButtons = append(rateButtons,
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf(btn.Rate, r), fmt.Sprintf("rate:%s:%d", ref, r)))
	}

	rows := [][]tgbotapi.InlineKeyboardButton{statusButtons, rateButtons}
	if book.Rating != nil {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.ClearRating, "unrate:"+ref),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.Comment, "comment:"+ref),
			tgbotapi.NewInlineKeyboardButtonData(btn.Remove, "remove:"+ref),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.BackToList, "list_books"),
		),
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// commentTarget extracts the book reference tagged on the last line of a comment prompt.
func commentTarget(prompt string) (string, bool) {
	if !strings.Contains(prompt, appcopy.Copy.Prompts.CommentPlain) {
		return "", false
	}
	lines := strings.Split(strings.TrimSpace(prompt), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if !strings.HasPrefix(last, "#") || len(last) < 2 {
		return "", false
	}
	return last[1:], true
}
