package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fintrackbot/fintrack/internal/category"
	"github.com/fintrackbot/fintrack/internal/stats"
)

// Main menu reply-keyboard buttons. Incoming text is matched against
// these verbatim.
const (
	btnAddExpense = "➕ Add expense"
	btnAddIncome  = "💰 Add income"
	btnStats      = "📊 Statistics"
	btnHistory    = "📋 History"
	btnHelp       = "ℹ️ Help"
)

// Callback data prefixes for inline keyboards.
const (
	cbCategoryPrefix = "category_"
	cbStatsPrefix    = "stats_"
	cbBackToMain     = "back_to_main"
)

func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnAddExpense),
			tgbotapi.NewKeyboardButton(btnAddIncome),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnStats),
			tgbotapi.NewKeyboardButton(btnHistory),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHelp),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// categoryKeyboard lays category buttons out two per row, with a back
// button on its own row.
func categoryKeyboard(categories []category.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			c.Label(),
			fmt.Sprintf("%s%d", cbCategoryPrefix, c.ID),
		))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back", cbBackToMain),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func periodKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Today", cbStatsPrefix+string(stats.PeriodToday)),
			tgbotapi.NewInlineKeyboardButtonData("Week", cbStatsPrefix+string(stats.PeriodWeek)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Month", cbStatsPrefix+string(stats.PeriodMonth)),
			tgbotapi.NewInlineKeyboardButtonData("Year", cbStatsPrefix+string(stats.PeriodYear)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("All time", cbStatsPrefix+string(stats.PeriodAll)),
		),
	)
}
