package bot

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/lotterybot/lotterybot/model"
	"github.com/lotterybot/lotterybot/repository"
	"github.com/lotterybot/lotterybot/service/draw"
)

const divider = "━━━━━━━━━━━━━━━━━━━\n"

func menuText(user model.TelegramUser) string {
	var b strings.Builder
	b.WriteString("🎉 Welcome to the lottery bot!\n\n")
	fmt.Fprintf(&b, "Hello %s!\n\n", user.DisplayName())
	b.WriteString("Pick an option:\n")
	b.WriteString("🎟️ Join lottery - browse and join running lotteries\n")
	b.WriteString("📊 My lotteries - your entries and wins\n")
	b.WriteString("❓ Help - how this works\n")
	return b.String()
}

func menuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎟️ Join lottery", callbackJoinLottery),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 My lotteries", callbackMyLotteries),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Help", callbackHelp),
		),
	)
}

func helpText() string {
	var b strings.Builder
	b.WriteString("❓ Help\n\n")
	b.WriteString("🎟️ Joining:\n")
	b.WriteString("1. Tap \"Join lottery\"\n")
	b.WriteString("2. Pick a running lottery\n")
	b.WriteString("3. Tap its join button\n")
	b.WriteString("4. Wait for the draw notification\n\n")
	b.WriteString("📊 My lotteries shows your entries and wins.\n\n")
	b.WriteString("💡 Notes:\n")
	b.WriteString("• You can join each lottery only once\n")
	b.WriteString("• Winners are notified automatically after the draw\n")
	b.WriteString("• Mind the start and end times of each lottery\n")
	return b.String()
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", callbackMainMenu),
		),
	)
}

func joinKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎟️ Back to lotteries", callbackJoinLottery),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", callbackMainMenu),
		),
	)
}

func levelEmoji(level int64) string {
	switch level {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", level)
	}
}

func renderListing(summaries []draw.LotterySummary, p page) (string, tgbotapi.InlineKeyboardMarkup) {
	var b strings.Builder
	b.WriteString(divider)
	b.WriteString("🎟️ Running lotteries\n")
	b.WriteString(divider)
	b.WriteString("\n")

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, summary := range summaries[p.start:p.end] {
		lottery := summary.Lottery

		fmt.Fprintf(&b, "🎁 %s\n", lottery.Title)
		if len(summary.Prizes) > 0 {
			b.WriteString("🏆 Prizes:\n")
			for _, prize := range summary.Prizes {
				fmt.Fprintf(&b, "   %s %s x%d\n",
					levelEmoji(prize.Level), prize.Name, prize.WinnerCount)
			}
		}
		if lottery.MaxParticipants > 0 {
			fmt.Fprintf(&b, "👥 Entries: %d/%d\n\n",
				summary.ParticipantCount, lottery.MaxParticipants)
		} else {
			fmt.Fprintf(&b, "👥 Entries: %d (unlimited)\n\n", summary.ParticipantCount)
		}

		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🎯 Join \"%s\"", lottery.Title),
				fmt.Sprintf("%s%d", callbackPrefixParticipate, lottery.ID),
			),
		})
	}

	if p.totalPages > 1 {
		fmt.Fprintf(&b, "📄 Page %d/%d\n", p.number, p.totalPages)
	}

	rows = append(rows, paginationRows(p, callbackPrefixPage)...)
	return b.String(), tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func renderDrawResult(winners []model.Winner, names map[int64]string) string {
	var b strings.Builder
	b.WriteString("🎊 Draw results\n\n")
	b.WriteString("🏆 Winners:\n")
	for _, winner := range winners {
		name := names[winner.UserID]
		if name == "" {
			name = fmt.Sprintf("User %d", winner.UserID)
		}
		fmt.Fprintf(&b, "• %s - %s\n", name, winner.PrizeName)
	}
	return b.String()
}

func renderMyLotteries(
	participations []repository.ParticipationDetail, wins []repository.WinnerDetail,
) string {
	pendingCount := 0
	for _, p := range participations {
		if p.LotteryStatus == model.LotteryStatusActive {
			pendingCount++
		}
	}

	var b strings.Builder
	b.WriteString(divider)
	b.WriteString("📊 My lottery stats\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "🎟️ Entered: %d\n", len(participations))
	fmt.Fprintf(&b, "⏳ Awaiting draw: %d\n", pendingCount)
	fmt.Fprintf(&b, "🏆 Wins: %d\n", len(wins))
	b.WriteString(divider)
	b.WriteString("\n")

	if len(participations) > 0 {
		b.WriteString("📋 Recent entries\n\n")
		shown := participations
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, p := range shown {
			marker := "✅"
			if p.LotteryStatus == model.LotteryStatusActive {
				marker = "⏳"
			}
			fmt.Fprintf(&b, "%s %s\n", marker, p.LotteryTitle)
		}
		if rest := len(participations) - len(shown); rest > 0 {
			fmt.Fprintf(&b, "\n... and %d more\n", rest)
		}
		b.WriteString("\n")
	}

	if len(wins) > 0 {
		b.WriteString("🎉 Wins\n")
		shown := wins
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, win := range shown {
			fmt.Fprintf(&b, "🏆 %s\n", win.LotteryTitle)
			fmt.Fprintf(&b, "   Prize: %s\n", win.PrizeName)
		}
		if rest := len(wins) - len(shown); rest > 0 {
			fmt.Fprintf(&b, "\n... and %d more\n", rest)
		}
	}
	return b.String()
}

func participateFailure(err error) string {
	switch {
	case errors.Is(err, draw.ErrAlreadyParticipated):
		return "You have already joined this lottery"
	case errors.Is(err, draw.ErrLotteryFull):
		return "This lottery is already full"
	case errors.Is(err, draw.ErrLotteryNotOpen), errors.Is(err, draw.ErrLotteryNotFound):
		return "This lottery is no longer open"
	default:
		return "Joining failed, please try again later"
	}
}

func drawFailure(err error) string {
	switch {
	case errors.Is(err, draw.ErrAlreadyDrawing):
		return "A draw is already in progress"
	case errors.Is(err, draw.ErrNoPrizesConfigured):
		return "This lottery has no prizes configured"
	case errors.Is(err, draw.ErrInvalidTransition):
		return "This lottery has already been drawn"
	case errors.Is(err, draw.ErrLotteryNotFound):
		return "Lottery not found"
	default:
		return "Drawing failed, please try again later"
	}
}
