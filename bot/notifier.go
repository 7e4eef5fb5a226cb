package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/lotterybot/lotterybot/service/draw"
)

// Notifier delivers winner notices through a tenant's bot.
type Notifier struct {
	api API
}

var _ draw.Notifier = &Notifier{}

// NewNotifier ...
func NewNotifier(api API) *Notifier {
	return &Notifier{api: api}
}

// NotifyWinner ...
func (n *Notifier) NotifyWinner(_ context.Context, notice draw.WinnerNotice) error {
	if notice.TelegramID == 0 {
		return fmt.Errorf("no telegram chat for user %d", notice.UserID)
	}

	var b strings.Builder
	b.WriteString("🎉 Congratulations, you won!\n\n")
	fmt.Fprintf(&b, "Lottery: %s\n", notice.LotteryTitle)
	fmt.Fprintf(&b, "Prize: %s %s\n", levelEmoji(notice.PrizeLevel), notice.PrizeName)
	if notice.PrizeDesc != "" {
		fmt.Fprintf(&b, "%s\n", notice.PrizeDesc)
	}
	b.WriteString("\nPlease contact the administrator to claim your prize.")

	_, err := n.api.Send(tgbotapi.NewMessage(notice.TelegramID, b.String()))
	return err
}
