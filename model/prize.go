package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prize ...
type Prize struct {
	ID        int64 `db:"id"`
	LotteryID int64 `db:"lottery_id"`

	Name        string              `db:"name"`
	Description string              `db:"description"`
	Image       string              `db:"image"`
	Value       decimal.NullDecimal `db:"value"`

	WinnerCount int64 `db:"winner_count"`

	// Level orders the tiers, lower means higher precedence.
	Level int64 `db:"level"`

	CreatedAt time.Time `db:"created_at"`
}
