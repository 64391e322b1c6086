package bot

import (
	"errors"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pilealire/internal/appcopy"
	"pilealire/internal/library"
	"pilealire/internal/logger"
)

func (b *Bot) handleListBooks(chatID int64, page int) {
	b.logAction(chatID, "List books", fmt.Sprintf("page=%d", page))

	data, err := b.data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotLoadLibrary)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatBookList(data.Books, page))
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = bookListKeyboard(data.Books, page)
	b.sendMessageWithMainMenuButton(msg)
}

func (b *Bot) sendBookDetails(chatID int64, bookID string) {
	data, err := b.data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotLoadLibrary)
		return
	}
	book, ok := data.Book(bookID)
	if !ok {
		b.sendHTML(chatID, appcopy.Copy.Errors.BookNotFound)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatBookDetails(*book, data.CommentsFor(bookID)))
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = bookKeyboard(*book)
	b.sendMessageWithMainMenuButton(msg)
}

func (b *Bot) handleStats(chatID int64) {
	b.logAction(chatID, "Stats", "")

	data, err := b.data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotLoadLibrary)
		return
	}
	b.sendHTML(chatID, formatStats(data))
}

// updateBook applies fn, reports the failure to the chat and returns false
// when it did not go through.
func (b *Bot) updateBook(chatID int64, bookID string, fn func(*library.AppData) error) bool {
	_, err := b.data.Update(fn)
	if err == nil {
		return true
	}
	logger.LogMsg(logger.LogError, "Error updating book %s: %v", bookID, err)
	if errors.Is(err, library.ErrBookNotFound) {
		b.sendHTML(chatID, appcopy.Copy.Errors.BookNotFound)
	} else {
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotUpdateBook)
	}
	return false
}

func (b *Bot) handleSetStatus(chatID int64, bookID string, status library.Status) string {
	b.logAction(chatID, "Set status", fmt.Sprintf("%s -> %s", bookID, status))

	ok := b.updateBook(chatID, bookID, func(d *library.AppData) error {
		return d.SetStatus(bookID, status, b.now())
	})
	if !ok {
		return ""
	}
	b.sendBookDetails(chatID, bookID)
	return fmt.Sprintf(appcopy.Copy.Info.StatusChanged, statusLabel(status))
}

func (b *Bot) handleRate(chatID int64, bookID string, rating int) string {
	b.logAction(chatID, "Rate", fmt.Sprintf("%s -> %d", bookID, rating))

	ok := b.updateBook(chatID, bookID, func(d *library.AppData) error {
		return d.Rate(bookID, rating, b.now())
	})
	if !ok {
		return ""
	}
	b.sendBookDetails(chatID, bookID)
	return fmt.Sprintf(appcopy.Copy.Info.Rated, stars(rating))
}

func (b *Bot) handleClearRating(chatID int64, bookID string) string {
	b.logAction(chatID, "Clear rating", bookID)

	ok := b.updateBook(chatID, bookID, func(d *library.AppData) error {
		return d.ClearRating(bookID, b.now())
	})
	if !ok {
		return ""
	}
	b.sendBookDetails(chatID, bookID)
	return appcopy.Copy.Info.RatingCleared
}

func (b *Bot) promptComment(chatID int64, bookID string) {
	data, err := b.data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotLoadLibrary)
		return
	}
	book, ok := data.Book(bookID)
	if !ok {
		b.sendHTML(chatID, appcopy.Copy.Errors.BookNotFound)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(appcopy.Copy.Prompts.CommentTitle, html.EscapeString(book.Title), bookRef(book.ID)))
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true, InputFieldPlaceholder: appcopy.Copy.Prompts.CommentHolder}
	b.send(msg)
}

func (b *Bot) handleAddComment(chatID int64, bookID, content string) {
	b.logAction(chatID, "Add comment", fmt.Sprintf("book=%s len=%d", bookID, len(content)))

	var title string
	_, err := b.data.Update(func(d *library.AppData) error {
		book, ok := d.Book(bookID)
		if !ok {
			return fmt.Errorf("%w: %q", library.ErrBookNotFound, bookID)
		}
		title = book.Title
		_, err := d.AddComment(bookID, content, b.now())
		return err
	})
	switch {
	case errors.Is(err, library.ErrEmptyComment):
		b.sendHTML(chatID, appcopy.Copy.Errors.EmptyComment)
	case errors.Is(err, library.ErrBookNotFound):
		b.sendHTML(chatID, appcopy.Copy.Errors.BookNotFound)
	case err != nil:
		logger.LogMsg(logger.LogError, "Error adding comment: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotUpdateBook)
	default:
		b.sendHTML(chatID, fmt.Sprintf(appcopy.Copy.Info.CommentAdded, html.EscapeString(title)))
	}
}

func (b *Bot) confirmRemoveBook(chatID int64, bookID string) {
	data, err := b.data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotLoadLibrary)
		return
	}
	book, ok := data.Book(bookID)
	if !ok {
		b.sendHTML(chatID, appcopy.Copy.Errors.BookNotFound)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(appcopy.Copy.Buttons.YesDelete, "remove_yes:"+bookRef(bookID)),
			tgbotapi.NewInlineKeyboardButtonData(appcopy.Copy.Buttons.Cancel, "book:"+bookRef(bookID)),
		),
	)
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(appcopy.Copy.Prompts.ConfirmDelete, html.EscapeString(book.Title)))
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = keyboard
	b.sendMessageWithMainMenuButton(msg)
}

func (b *Bot) handleRemoveBook(chatID int64, bookID string) {
	b.logAction(chatID, "Remove book", bookID)

	var removed library.Book
	ok := b.updateBook(chatID, bookID, func(d *library.AppData) error {
		var err error
		removed, err = d.RemoveBook(bookID)
		return err
	})
	if !ok {
		return
	}
	b.sendHTML(chatID, fmt.Sprintf(appcopy.Copy.Info.BookRemoved, html.EscapeString(removed.Title)))
}
