package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

type page struct {
	start      int
	end        int
	number     int
	totalPages int
}

// paginate clamps the requested page into range and returns the slice
// bounds for it. Page numbers start at 1.
func paginate(total int, number int, pageSize int) page {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return page{
		start:      start,
		end:        end,
		number:     number,
		totalPages: totalPages,
	}
}

func paginationRows(p page, callbackPrefix string) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton

	if p.totalPages > 1 {
		var nav []tgbotapi.InlineKeyboardButton
		if p.number > 1 {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
				"⬅️ Previous", fmt.Sprintf("%s%d", callbackPrefix, p.number-1)))
		}
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("📄 %d/%d", p.number, p.totalPages), callbackPageInfo))
		if p.number < p.totalPages {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
				"➡️ Next", fmt.Sprintf("%s%d", callbackPrefix, p.number+1)))
		}
		rows = append(rows, nav)
	}

	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", callbackMainMenu),
	})
	return rows
}
