package bot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pilealire/internal/appcopy"
	"pilealire/internal/googlebooks"
	"pilealire/internal/library"
	"pilealire/internal/logger"
)

func (b *Bot) promptAddBook(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, appcopy.Copy.Prompts.AddBookTitle)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = tgbotapi.ForceReply{ForceReply: true, InputFieldPlaceholder: appcopy.Copy.Prompts.AddBookHolder}
	b.send(msg)
}

func (b *Bot) handleAddBook(chatID int64, text string) {
	b.logAction(chatID, "Add book", text)

	volumeID, err := googlebooks.ExtractVolumeID(text)
	if err != nil {
		logger.LogMsg(logger.LogWarning, "Rejected book reference: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CouldNotRetrieveBook)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	volume, err := b.books.GetVolume(ctx, volumeID)
	if err != nil {
		logger.LogMsg(logger.LogError, "Error fetching volume %s: %v", volumeID, err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CouldNotRetrieveBook)
		return
	}

	book, err := b.addBook(*volume)
	switch {
	case errors.Is(err, library.ErrDuplicateBook):
		b.sendHTML(chatID, appcopy.Copy.Errors.AlreadyInLibrary)
		return
	case err != nil:
		logger.LogMsg(logger.LogError, "Error adding book %s: %v", volumeID, err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CouldNotAddBook)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(appcopy.Copy.Info.BookAdded, html.EscapeString(book.Title)))
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(truncateLabel(book.Title, buttonLabelMax), "book:"+bookRef(book.ID)),
		),
	)
	b.sendMessageWithMainMenuButton(msg)
}

// addBook stores the volume as a new to_read book.
func (b *Bot) addBook(volume googlebooks.Volume) (library.Book, error) {
	book := volume.ToBook(b.now(), appcopy.Copy.Prompts.TitleNotAvailable)
	_, err := b.data.Update(func(d *library.AppData) error {
		return d.AddBook(book)
	})
	if err != nil {
		return library.Book{}, err
	}
	return book, nil
}
