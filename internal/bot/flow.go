package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fintrackbot/fintrack/internal"
	"github.com/fintrackbot/fintrack/internal/transaction"
)

// skipDescription is the sentinel the user sends to record a
// transaction without a description.
const skipDescription = "-"

var timeNow = time.Now

func (b *Bot) startAddFlow(ctx context.Context, msg *tgbotapi.Message, txType transaction.Type) {
	log := b.logger.With("trace_id", internal.TraceIDFromContext(ctx), "chat_id", msg.Chat.ID)

	account, err := b.identify(ctx, msg.From)
	if err != nil {
		b.reply(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	ownerID := account.ID
	categories, err := b.svc.Categories.List(&ownerID, &txType)
	if err != nil {
		log.Error("failed to list categories", "type", txType, "error", err)
		b.reply(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	b.sessions.Begin(msg.Chat.ID, account.ID, txType)

	prompt := "Pick an expense category:"
	if txType == transaction.TypeIncome {
		prompt = "Pick an income category:"
	}
	b.replyWithKeyboard(msg.Chat.ID, prompt, categoryKeyboard(categories))
}

func (b *Bot) handleCategorySelected(ctx context.Context, chatID, categoryID int64) {
	log := b.logger.With("trace_id", internal.TraceIDFromContext(ctx), "chat_id", chatID)

	session := b.sessions.Get(chatID)
	if session == nil || session.State != StateSelectingCategory {
		b.reply(chatID, "That flow has expired. Start again from the menu.")
		return
	}

	picked, err := b.svc.Categories.GetByID(categoryID)
	if err != nil {
		log.Error("failed to load category", "category_id", categoryID, "error", err)
		b.reply(chatID, "Something went wrong, please try again later.")
		return
	}
	if picked == nil || picked.Type != session.TxType {
		b.reply(chatID, "That category is not available here. Pick one from the keyboard.")
		return
	}

	b.sessions.Update(chatID, func(s *Session) {
		s.CategoryID = categoryID
		s.State = StateEnteringAmount
	})
	b.reply(chatID, fmt.Sprintf("Category: %s\nNow enter the amount (e.g. `250` or `99,90`):", picked.Label()))
}

// handleAmountInput validates the amount without leaving the
// entering-amount state, so the user can simply retry.
func (b *Bot) handleAmountInput(session *Session, msg *tgbotapi.Message) {
	amount, err := parseAmount(msg.Text)
	if err != nil {
		b.reply(msg.Chat.ID, "That doesn't look like a positive amount. Try again, e.g. `250` or `99,90`.")
		return
	}

	b.sessions.Update(msg.Chat.ID, func(s *Session) {
		s.Amount = amount
		s.State = StateEnteringDescription
	})
	b.reply(msg.Chat.ID, "Add a description, or send `-` to skip:")
}

func (b *Bot) handleDescriptionInput(ctx context.Context, session *Session, msg *tgbotapi.Message) {
	log := b.logger.With("trace_id", internal.TraceIDFromContext(ctx), "chat_id", msg.Chat.ID)

	description := strings.TrimSpace(msg.Text)
	if description == skipDescription {
		description = ""
	}

	id, err := b.svc.Transactions.Add(transaction.CreateTransactionDTO{
		UserID:      session.UserID,
		CategoryID:  session.CategoryID,
		Amount:      session.Amount,
		Description: description,
		Type:        session.TxType,
	})
	if err != nil {
		log.Error("failed to record transaction", "error", err)
		if appErr, ok := internal.IsAppError(err); ok && appErr.IsCorrectable() {
			b.reply(msg.Chat.ID, appErr.Message+" Try again or /cancel.")
			return
		}
		b.sessions.End(msg.Chat.ID)
		b.replyWithKeyboard(msg.Chat.ID, "Something went wrong, please try again later.", mainKeyboard())
		return
	}

	b.sessions.End(msg.Chat.ID)

	noun := "Expense"
	if session.TxType == transaction.TypeIncome {
		noun = "Income"
	}
	b.replyWithKeyboard(msg.Chat.ID,
		fmt.Sprintf("✅ %s #%d recorded: %.2f", noun, id, session.Amount),
		mainKeyboard(),
	)
}

// parseAmount accepts either a comma or a dot as the decimal separator
// and rejects non-positive values.
func parseAmount(text string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, internal.ErrInvalidAmount
	}
	if amount <= 0 {
		return 0, internal.ErrInvalidAmount
	}
	return amount, nil
}
