package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/fintrackbot/fintrack/internal"
	"github.com/fintrackbot/fintrack/internal/category"
	"github.com/fintrackbot/fintrack/internal/stats"
	"github.com/fintrackbot/fintrack/internal/transaction"
	"github.com/fintrackbot/fintrack/internal/user"
	"github.com/fintrackbot/fintrack/pkg/logger"
)

// Services bundles the domain services the conversation driver routes
// into.
type Services struct {
	Users        *user.Service
	Categories   *category.Service
	Transactions *transaction.Service
	Stats        *stats.Service
}

// Bot is the long-polling conversation driver. All flow state lives in
// the session store; nothing touches storage until a flow completes.
type Bot struct {
	api      *tgbotapi.BotAPI
	svc      Services
	sessions *SessionStore
	logger   *slog.Logger
}

func New(api *tgbotapi.BotAPI, svc Services, sessions *SessionStore) *Bot {
	return &Bot{
		api:      api,
		svc:      svc,
		sessions: sessions,
		logger:   logger.L(),
	}
}

// Connect authenticates against the Bot API and returns the client.
func Connect(token string, debug bool) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	api.Debug = debug
	return api, nil
}

// Start runs the long-polling loop until the context is cancelled. Each
// update is handled on its own goroutine with a fresh trace id.
func (b *Bot) Start(ctx context.Context, pollTimeout int) error {
	b.logger.Info("bot authorized", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			go b.handleUpdate(internal.ContextWithTraceID(ctx, uuid.NewString()), update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic while handling update",
				"trace_id", internal.TraceIDFromContext(ctx),
				"panic", r,
			)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Error("failed to send message", "error", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, keyboard interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	b.send(msg)
}
