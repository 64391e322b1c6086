package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func appendButtonsInRows(keyboard [][]tgbotapi.InlineKeyboardButton, buttons []tgbotapi.InlineKeyboardButton, perRow int) [][]tgbotapi.InlineKeyboardButton {
	if perRow <= 1 {
		for _, btn := range buttons {
			keyboard = append(keyboard, []tgbotapi.InlineKeyboardButton{btn})
		}
		return keyboard
	}

	for i := 0; i < len(buttons); i += perRow {
		end := i + perRow
		if end > len(buttons) {
			end = len(buttons)
		}
		keyboard = append(keyboard, buttons[i:end])
	}
	return keyboard
}

// truncateLabel keeps button labels short enough for small screens.
func truncateLabel(s string, limit int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= limit {
		return string(r)
	}
	return string(r[:limit-1]) + "…"
}
