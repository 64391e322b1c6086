package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pilealire/internal/appcopy"
	"pilealire/internal/googlebooks"
)

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	details := fmt.Sprintf("chat_id=%d is_command=%t len=%d", message.Chat.ID, message.IsCommand(), len(message.Text))
	if message.IsCommand() {
		details += fmt.Sprintf(" cmd=%s", message.Command())
	}
	b.logAction(message.From.ID, "Received message", details)

	chatID := message.Chat.ID
	cmds := appcopy.Copy.Commands

	if message.Document != nil {
		b.handleDocument(message)
		return
	}

	if message.IsCommand() {
		switch message.Command() {
		case cmds.Start:
			b.sendMainMenu(chatID)
		case cmds.Help:
			b.sendHelpMessage(chatID)
		case cmds.Books:
			b.handleListBooks(chatID, 0)
		case cmds.Stats:
			b.handleStats(chatID)
		case cmds.Export:
			b.handleExport(chatID)
		case cmds.Import:
			b.promptImport(chatID)
		case cmds.Add:
			if arg := strings.TrimSpace(message.CommandArguments()); arg != "" {
				b.handleAddBook(chatID, arg)
			} else {
				b.promptAddBook(chatID)
			}
		case cmds.Status:
			b.sendStatusMessage(chatID)
		default:
			b.send(tgbotapi.NewMessage(chatID, appcopy.Copy.Prompts.UnknownCommand))
		}
		return
	}

	if message.ReplyToMessage != nil && message.ReplyToMessage.Text != "" {
		b.handleReply(message)
		return
	}

	if _, err := googlebooks.ExtractVolumeIDFromURL(message.Text); err == nil {
		b.handleAddBook(chatID, message.Text)
		return
	}

	b.send(tgbotapi.NewMessage(chatID, appcopy.Copy.Prompts.UnknownMessage))
}

func (b *Bot) handleReply(message *tgbotapi.Message) {
	b.logAction(message.From.ID, "Received reply", fmt.Sprintf("chat_id=%d len=%d", message.Chat.ID, len(message.Text)))

	replyTo := message.ReplyToMessage.Text
	replyText := strings.TrimSpace(message.Text)

	if strings.Contains(replyTo, appcopy.Copy.Prompts.AddBookPlain) {
		b.handleAddBook(message.Chat.ID, replyText)
		return
	}
	if ref, ok := commentTarget(replyTo); ok {
		if bookID, found := b.resolveBookRef(message.Chat.ID, ref); found {
			b.handleAddComment(message.Chat.ID, bookID, replyText)
		}
		return
	}

	b.send(tgbotapi.NewMessage(message.Chat.ID, appcopy.Copy.Prompts.UnknownReply))
}
