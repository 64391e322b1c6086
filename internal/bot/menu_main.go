package bot

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pilealire/internal/appcopy"
	"pilealire/internal/library"
	"pilealire/internal/logger"
)

func (b *Bot) sendMainMenu(chatID int64) {
	b.logAction(chatID, "Sent main menu", "")

	btn := appcopy.Copy.Buttons
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.ListBooks, "list_books"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.AddBook, "add_book"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.Stats, "stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btn.Export, "export"),
			tgbotapi.NewInlineKeyboardButtonData(btn.Import, "import"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, appcopy.Copy.Info.WelcomeTitle)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

func (b *Bot) sendMessageWithMainMenuButton(msg tgbotapi.MessageConfig) {
	mainMenuButton := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(appcopy.Copy.Buttons.MainMenu, "main_menu"),
		),
	)

	if msg.ReplyMarkup != nil {
		if keyboard, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); ok {
			keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, mainMenuButton.InlineKeyboard...)
			msg.ReplyMarkup = keyboard
		}
	} else {
		msg.ReplyMarkup = mainMenuButton
	}

	b.send(msg)
}

func (b *Bot) sendHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML"
	b.sendMessageWithMainMenuButton(msg)
}

func (b *Bot) sendHelpMessage(chatID int64) {
	b.logAction(chatID, "Sent help message", "")
	b.sendHTML(chatID, appcopy.Copy.Info.HelpText)
}

func (b *Bot) sendStatusMessage(chatID int64) {
	b.logAction(chatID, "Sent status", "")
	info := appcopy.Copy.Info

	status, err := b.db.GetStatus()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error getting status: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotRetrieveStatus)
		return
	}
	slot, hasSlot, err := b.db.GetSlotInfo(library.StorageKey)
	if err != nil {
		logger.LogMsg(logger.LogError, "Error getting slot info: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotRetrieveStatus)
		return
	}
	data, err := b.data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.CannotRetrieveStatus)
		return
	}

	text := info.StatusTitle
	text += fmt.Sprintf(info.StatusBooks, len(data.Books), len(data.Comments))
	if hasSlot {
		text += fmt.Sprintf(info.StatusSlotSize, slot.Size)
		if slot.HasUpdatedAt {
			text += fmt.Sprintf(info.StatusSlotSaved, slot.UpdatedAt.Local().Format(time.RFC1123))
		}
	} else {
		text += info.StatusSlotEmpty
	}
	if status.HasBackupLastRun {
		text += fmt.Sprintf(info.StatusLastRun, status.BackupLastRun.Local().Format(time.RFC1123))
	} else {
		text += info.StatusCronNever
	}
	text += fmt.Sprintf(info.StatusSchedule, b.config.BackupSchedule, b.config.BackupKeep)

	b.sendHTML(chatID, text)
}
