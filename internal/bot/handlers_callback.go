package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pilealire/internal/appcopy"
	"pilealire/internal/library"
	"pilealire/internal/logger"
)

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	b.logAction(query.From.ID, "Received callback query", query.Data)

	chatID := query.Message.Chat.ID
	action, args := parseCallback(query.Data)
	toast := ""

	switch action {
	case "main_menu":
		b.sendMainMenu(chatID)
	case "list_books":
		page := 0
		if len(args) > 0 {
			if n, err := strconv.Atoi(args[0]); err == nil {
				page = n
			}
		}
		b.handleListBooks(chatID, page)
	case "add_book":
		b.promptAddBook(chatID)
	case "stats":
		b.handleStats(chatID)
	case "export":
		b.handleExport(chatID)
	case "import":
		b.promptImport(chatID)
	case "book", "status", "rate", "unrate", "comment", "remove", "remove_yes":
		toast = b.handleBookCallback(chatID, action, args, query.Data)
	default:
		logger.LogMsg(logger.LogWarning, "Unknown callback action: %s", query.Data)
	}

	callback := tgbotapi.NewCallback(query.ID, toast)
	if _, err := b.api.Request(callback); err != nil {
		logger.LogMsg(logger.LogError, "Error answering callback query: %v", err)
	}
}

// handleBookCallback dispatches the actions whose first argument is a book
// reference and returns the toast to show.
func (b *Bot) handleBookCallback(chatID int64, action string, args []string, raw string) string {
	want := 1
	if action == "status" || action == "rate" {
		want = 2
	}
	if len(args) != want {
		logger.LogMsg(logger.LogError, "Invalid callback data for %s: %s", action, raw)
		return ""
	}

	bookID, ok := b.resolveBookRef(chatID, args[0])
	if !ok {
		return ""
	}

	switch action {
	case "book":
		b.sendBookDetails(chatID, bookID)
	case "status":
		return b.handleSetStatus(chatID, bookID, library.Status(args[1]))
	case "rate":
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			logger.LogMsg(logger.LogError, "Error converting rating: %v", err)
			return ""
		}
		return b.handleRate(chatID, bookID, rating)
	case "unrate":
		return b.handleClearRating(chatID, bookID)
	case "comment":
		b.promptComment(chatID, bookID)
	case "remove":
		b.confirmRemoveBook(chatID, bookID)
	case "remove_yes":
		b.handleRemoveBook(chatID, bookID)
	}
	return ""
}

// resolveBookRef maps a callback book reference back to the book ID,
// telling the chat when the book is gone.
func (b *Bot) resolveBookRef(chatID int64, ref string) (string, bool) {
	data, err := b.data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotLoadLibrary)
		return "", false
	}
	bookID, ok := bookIDForRef(data.Books, ref)
	if !ok {
		b.sendHTML(chatID, appcopy.Copy.Errors.BookNotFound)
	}
	return bookID, ok
}

// parseCallback splits "action:arg1:arg2" callback data. The action ends at
// the first colon.
func parseCallback(data string) (string, []string) {
	action, rest, found := strings.Cut(data, ":")
	if !found || rest == "" {
		return action, nil
	}
	return action, strings.Split(rest, ":")
}
