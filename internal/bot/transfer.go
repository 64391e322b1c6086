package bot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pilealire/internal/appcopy"
	"pilealire/internal/library"
	"pilealire/internal/logger"
)

// maxImportSize bounds uploaded documents; exports of a personal library stay far below it.
const maxImportSize = 5 << 20

var utf8BOM = []byte("\xef\xbb\xbf")

func (b *Bot) handleExport(chatID int64) {
	b.logAction(chatID, "Export", "")

	data, err := b.data.Get()
	if err != nil {
		logger.LogMsg(logger.LogError, "Error loading library for export: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.ExportFailed)
		return
	}

	name := library.BackupFileName(b.now())
	if err := b.notifier.SendDocument(chatID, name, []byte(library.ExportData(data))); err != nil {
		logger.LogMsg(logger.LogError, "Error sending export to chat ID %d: %v", chatID, err)
		b.sendHTML(chatID, appcopy.Copy.Errors.ExportFailed)
		return
	}
	b.sendHTML(chatID, appcopy.Copy.Info.ExportDone)
}

func (b *Bot) promptImport(chatID int64) {
	b.setPendingImport(chatID, true)

	msg := tgbotapi.NewMessage(chatID, appcopy.Copy.Prompts.ImportTitle)
	msg.ParseMode = "HTML"
	b.sendMessageWithMainMenuButton(msg)
}

func (b *Bot) handleDocument(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	doc := message.Document
	b.logAction(message.From.ID, "Received document", fmt.Sprintf("name=%s size=%d", doc.FileName, doc.FileSize))

	if !b.takePendingImport(chatID) {
		b.send(tgbotapi.NewMessage(chatID, appcopy.Copy.Prompts.UnknownMessage))
		return
	}
	if doc.FileSize > maxImportSize {
		b.sendHTML(chatID, appcopy.Copy.Errors.ImportTooLarge)
		return
	}

	raw, err := b.downloadDocument(doc.FileID)
	if err != nil {
		logger.LogMsg(logger.LogError, "Error downloading import file: %v", err)
		b.sendHTML(chatID, appcopy.Copy.Errors.ImportFailed)
		return
	}

	data, err := b.importDocument(raw)
	if err != nil {
		logger.LogMsg(logger.LogError, "Error importing %s: %v", doc.FileName, err)
		b.sendHTML(chatID, appcopy.Copy.Errors.ImportFailed)
		return
	}
	b.sendHTML(chatID, fmt.Sprintf(appcopy.Copy.Info.ImportDone, len(data.Books), len(data.Comments)))
}

func (b *Bot) downloadDocument(fileID string) ([]byte, error) {
	fileURL, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.files.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned status code %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxImportSize+1))
}

// importDocument replaces the stored library with the parsed document. The
// stored value is untouched when parsing or writing fails.
func (b *Bot) importDocument(raw []byte) (library.AppData, error) {
	if len(raw) > maxImportSize {
		return library.AppData{}, fmt.Errorf("%w: document larger than %d bytes", library.ErrMalformedImport, maxImportSize)
	}

	data, err := library.ImportData(string(bytes.TrimPrefix(raw, utf8BOM)))
	if err != nil {
		return library.AppData{}, err
	}
	if err := b.data.Set(data); err != nil {
		return library.AppData{}, err
	}
	return data, nil
}
