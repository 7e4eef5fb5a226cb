package model

import "time"

// Winner ...
type Winner struct {
	ID        int64 `db:"id"`
	LotteryID int64 `db:"lottery_id"`
	PrizeID   int64 `db:"prize_id"`
	UserID    int64 `db:"user_id"`

	// PrizeName is denormalized for listing without a join.
	PrizeName string `db:"prize_name"`

	Claimed bool      `db:"claimed"`
	WonAt   time.Time `db:"won_at"`
}
