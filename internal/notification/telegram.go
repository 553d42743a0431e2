package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

// TelegramNotifier delivers best-effort notifications to users with a linked
// chat. Delivery failures are logged and never returned.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

// NewTelegramNotifier with an empty token returns a notifier that only logs.
func NewTelegramNotifier(token string, log logger.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{logger: log}
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot
	log.Info("telegram notifier enabled", logger.String("bot", bot.Self.UserName))

	return n, nil
}

func (n *TelegramNotifier) NotifyRegistered(ctx context.Context, user *domain.User, event *domain.EventSummary) {
	n.send(ctx, user, registeredText(event))
}

func (n *TelegramNotifier) NotifySubmissionReceived(
	ctx context.Context,
	user *domain.User,
	event *domain.EventSummary,
	sub *domain.Submission,
) {
	n.send(ctx, user, render("Заявка получена",
		"Мероприятие: "+escape(event.Title),
		"Статус: "+statusText(sub),
	))
}

func (n *TelegramNotifier) NotifySubmissionStatus(
	ctx context.Context,
	user *domain.User,
	event *domain.EventSummary,
	sub *domain.Submission,
) {
	n.send(ctx, user, submissionStatusText(event, sub))
}

func (n *TelegramNotifier) NotifyEventCancelled(ctx context.Context, user *domain.User, event *domain.EventSummary) {
	n.send(ctx, user, render("Мероприятие отменено",
		"Мероприятие: "+escape(event.Title),
		"Дата (UTC): "+event.StartDate.UTC().Format(dateLayout),
	))
}

func registeredText(event *domain.EventSummary) string {
	lines := []string{
		"Мероприятие: " + escape(event.Title),
		"Начало (UTC): " + event.StartDate.UTC().Format(dateLayout),
	}
	if event.RegistrationDeadline != nil {
		lines = append(lines, "Регистрация до (UTC): "+event.RegistrationDeadline.UTC().Format(dateLayout))
	}
	return render("Вы зарегистрированы!", lines...)
}

func submissionStatusText(event *domain.EventSummary, sub *domain.Submission) string {
	lines := []string{
		"Мероприятие: " + escape(event.Title),
		"Статус: " + statusText(sub),
	}
	if sub.Status == domain.SubmissionStatusRejected && sub.RejectionReason != nil {
		lines = append(lines, "Причина: "+escape(*sub.RejectionReason))
	}
	return render("Статус заявки изменён", lines...)
}

func render(heading string, lines ...string) string {
	var b strings.Builder
	b.WriteString("*" + heading + "*\n")
	for _, l := range lines {
		b.WriteString("\n" + l)
	}
	return b.String()
}

// escape экранирует пользовательский текст для Markdown.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func statusText(sub *domain.Submission) string {
	switch sub.Status {
	case domain.SubmissionStatusApproved:
		return "одобрена"
	case domain.SubmissionStatusRejected:
		return "отклонена"
	case domain.SubmissionStatusWaitlisted:
		return "в листе ожидания"
	default:
		return "на рассмотрении"
	}
}

func (n *TelegramNotifier) send(ctx context.Context, user *domain.User, text string) {
	switch {
	case n.bot == nil:
		n.logger.Debug("notification skipped, bot disabled", logger.String("user_id", user.ID))
		return
	case user.TelegramChatID == nil:
		n.logger.Debug("notification skipped, no chat linked", logger.String("user_id", user.ID))
		return
	case ctx.Err() != nil:
		n.logger.Debug("notification skipped, context done", logger.String("user_id", user.ID))
		return
	}

	chatID := *user.TelegramChatID
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("user_id", user.ID),
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}
