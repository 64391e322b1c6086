package bot

import (
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pilealire/internal/appcopy"
	"pilealire/internal/config"
	"pilealire/internal/db"
	"pilealire/internal/googlebooks"
	"pilealire/internal/library"
	"pilealire/internal/logger"
	"pilealire/internal/notify"
	"pilealire/internal/persist"
)

// Bot represents the Telegram bot.

type Bot struct {
	api      *tgbotapi.BotAPI
	notifier notify.Notifier
	data     *persist.Binding[library.AppData]
	db       *db.DB
	books    *googlebooks.Client
	config   *config.Config
	files    *http.Client
	now      func() time.Time

	mu             sync.Mutex
	pendingImports map[int64]bool
}

// New creates a new Bot.

func New(api *tgbotapi.BotAPI, notifier notify.Notifier, data *persist.Binding[library.AppData], database *db.DB, books *googlebooks.Client, cfg *config.Config) *Bot {
	return &Bot{
		api:            api,
		notifier:       notifier,
		data:           data,
		db:             database,
		books:          books,
		config:         cfg,
		files:          &http.Client{Timeout: 30 * time.Second},
		now:            time.Now,
		pendingImports: make(map[int64]bool),
	}
}

// Start starts the bot and listens for updates.

func (b *Bot) Start() {
	logger.LogMsg(logger.LogInfo, "Authorized on account %s", b.api.Self.UserName)

	cmds := appcopy.Copy.Commands
	commands := []tgbotapi.BotCommand{
		{Command: cmds.Start, Description: cmds.StartDesc},
		{Command: cmds.Books, Description: cmds.BooksDesc},
		{Command: cmds.Add, Description: cmds.AddDesc},
		{Command: cmds.Stats, Description: cmds.StatsDesc},
		{Command: cmds.Export, Description: cmds.ExportDesc},
		{Command: cmds.Import, Description: cmds.ImportDesc},
		{Command: cmds.Status, Description: cmds.StatusDesc},
		{Command: cmds.Help, Description: cmds.HelpDesc},
	}
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		logger.LogMsg(logger.LogWarning, "Failed to register bot commands: %v", err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.From == nil || !b.isAuthorized(update.Message.From.ID) {
				b.sendUnauthorizedMessage(update.Message.Chat.ID)
				continue
			}
			b.handleMessage(update.Message)
		} else if update.CallbackQuery != nil {
			if !b.isAuthorized(update.CallbackQuery.From.ID) {
				if update.CallbackQuery.Message != nil {
					b.sendUnauthorizedMessage(update.CallbackQuery.Message.Chat.ID)
				}
				continue
			}
			if update.CallbackQuery.Message == nil {
				continue
			}
			b.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

// Stop ends the update loop started by Start.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) isAuthorized(userID int64) bool {
	for _, allowedID := range b.config.AllowedUsers {
		if userID == allowedID {
			return true
		}
	}
	return false
}

func (b *Bot) sendUnauthorizedMessage(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, appcopy.Copy.Prompts.Unauthorized)
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		logger.LogMsg(logger.LogWarning, "Failed sending message: %v", err)
	}
}

func (b *Bot) setPendingImport(chatID int64, pending bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pending {
		b.pendingImports[chatID] = true
		return
	}
	delete(b.pendingImports, chatID)
}

// takePendingImport reports whether chatID asked for an import and clears the flag.
func (b *Bot) takePendingImport(chatID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	pending := b.pendingImports[chatID]
	delete(b.pendingImports, chatID)
	return pending
}
