package bot

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fintrackbot/fintrack/internal"
	"github.com/fintrackbot/fintrack/internal/stats"
	"github.com/fintrackbot/fintrack/internal/transaction"
	"github.com/fintrackbot/fintrack/internal/user"
)

const historyLimit = 10

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	log := b.logger.With(
		"trace_id", internal.TraceIDFromContext(ctx),
		"chat_id", msg.Chat.ID,
		"telegram_id", msg.From.ID,
	)

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	switch msg.Text {
	case btnAddExpense:
		b.startAddFlow(ctx, msg, transaction.TypeExpense)
	case btnAddIncome:
		b.startAddFlow(ctx, msg, transaction.TypeIncome)
	case btnStats:
		b.promptStatsPeriod(msg.Chat.ID)
	case btnHistory:
		b.sendHistory(ctx, msg)
	case btnHelp:
		b.sendHelp(msg.Chat.ID)
	default:
		session := b.sessions.Get(msg.Chat.ID)
		if session == nil {
			b.replyWithKeyboard(msg.Chat.ID, "Use the menu below or /help to see what I can do.", mainKeyboard())
			return
		}
		switch session.State {
		case StateEnteringAmount:
			b.handleAmountInput(session, msg)
		case StateEnteringDescription:
			b.handleDescriptionInput(ctx, session, msg)
		default:
			log.Debug("ignoring free text in state", "state", session.State.String())
			b.reply(msg.Chat.ID, "Please pick a category from the keyboard, or /cancel.")
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.sendHelp(msg.Chat.ID)
	case "stats":
		b.promptStatsPeriod(msg.Chat.ID)
	case "history":
		b.sendHistory(ctx, msg)
	case "cancel":
		b.handleCancel(msg.Chat.ID)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Try /help.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	account, err := b.identify(ctx, msg.From)
	if err != nil {
		b.reply(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}
	b.replyWithKeyboard(msg.Chat.ID, formatWelcome(account), mainKeyboard())
}

func (b *Bot) handleCancel(chatID int64) {
	if b.sessions.Get(chatID) == nil {
		b.reply(chatID, "Nothing to cancel.")
		return
	}
	b.sessions.End(chatID)
	b.replyWithKeyboard(chatID, "Cancelled.", mainKeyboard())
}

func (b *Bot) sendHelp(chatID int64) {
	b.replyWithKeyboard(chatID, helpText, mainKeyboard())
}

func (b *Bot) promptStatsPeriod(chatID int64) {
	b.replyWithKeyboard(chatID, "Pick a period:", periodKeyboard())
}

func (b *Bot) sendHistory(ctx context.Context, msg *tgbotapi.Message) {
	log := b.logger.With("trace_id", internal.TraceIDFromContext(ctx), "chat_id", msg.Chat.ID)

	account, err := b.identify(ctx, msg.From)
	if err != nil {
		b.reply(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	entries, err := b.svc.Transactions.List(account.ID, historyLimit, transaction.Window{})
	if err != nil {
		log.Error("failed to list history", "error", err)
		b.reply(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}
	b.reply(msg.Chat.ID, formatHistory(entries, account.Currency))
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Always answer so the client stops its spinner, even on bad data.
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			b.logger.Error("failed to answer callback", "error", err)
		}
	}()

	if cb.Message == nil {
		return
	}

	data := cb.Data
	chatID := cb.Message.Chat.ID

	switch {
	case data == cbBackToMain:
		b.sessions.End(chatID)
		b.replyWithKeyboard(chatID, "What next?", mainKeyboard())
	case strings.HasPrefix(data, cbCategoryPrefix):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, cbCategoryPrefix), 10, 64)
		if err != nil {
			b.logger.Warn("malformed category callback", "data", data)
			return
		}
		b.handleCategorySelected(ctx, chatID, id)
	case strings.HasPrefix(data, cbStatsPrefix):
		b.handleStatsPeriod(ctx, cb, stats.Period(strings.TrimPrefix(data, cbStatsPrefix)))
	}
}

func (b *Bot) handleStatsPeriod(ctx context.Context, cb *tgbotapi.CallbackQuery, period stats.Period) {
	log := b.logger.With("trace_id", internal.TraceIDFromContext(ctx), "chat_id", cb.Message.Chat.ID)

	if !period.Valid() {
		log.Warn("malformed stats callback", "data", cb.Data)
		return
	}

	account, err := b.identify(ctx, cb.From)
	if err != nil {
		b.reply(cb.Message.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	report, err := b.svc.Stats.Report(account.ID, stats.WindowFor(period, timeNow()))
	if err != nil {
		log.Error("failed to build report", "period", period, "error", err)
		b.reply(cb.Message.Chat.ID, "Something went wrong, please try again later.")
		return
	}
	b.reply(cb.Message.Chat.ID, formatReport(period, report, account.Currency))
}

// identify resolves the Telegram sender to a stored profile, registering
// it lazily on first contact.
func (b *Bot) identify(ctx context.Context, from *tgbotapi.User) (*user.User, error) {
	account, err := b.svc.Users.GetOrCreate(from.ID, from.UserName, from.FirstName)
	if err != nil {
		b.logger.Error("failed to identify user",
			"trace_id", internal.TraceIDFromContext(ctx),
			"telegram_id", from.ID,
			"error", err,
		)
		return nil, err
	}
	return account, nil
}
