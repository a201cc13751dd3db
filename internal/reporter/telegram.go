// Package reporter pushes run outcomes to Telegram. A nil *Reporter is a
// valid no-op, so callers never branch on whether reporting is configured.
package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Barkat444/HireMeMaybe/internal/jobs"
)

type Reporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *zap.SugaredLogger
}

func New(token string, chatID int64, log *zap.SugaredLogger) (*Reporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &Reporter{
		bot:    bot,
		chatID: chatID,
		log:    log,
	}, nil
}

func (r *Reporter) send(text string) {
	if r == nil {
		return
	}
	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ParseMode = "HTML"
	if _, err := r.bot.Send(msg); err != nil {
		r.log.Warnf("Failed to send telegram message: %v", err)
	}
}

// SendSummary posts the per-iteration run summary.
func (r *Reporter) SendSummary(s jobs.Summary) {
	text := fmt.Sprintf(
		"🤖 <b>Naukri Bot Run Complete</b>\n"+
			"✅ Applied: %d\n"+
			"⏭ Skipped: %d\n"+
			"❌ Failed: %d\n"+
			"📝 Headline rotated: %t\n"+
			"📄 Resume updated: %t\n"+
			"🤝 Early access shared: %d",
		s.AppliedCount,
		s.SkippedCount,
		s.FailedCount,
		s.HeadlineRotated,
		s.ResumeUpdated,
		s.EarlyAccessShared,
	)
	r.send(text)
}

func (r *Reporter) SendError(errReq error) {
	r.send(fmt.Sprintf("⚠️ <b>Naukri Bot Error</b>:\n%v", errReq))
}
