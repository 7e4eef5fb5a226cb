package model

import "time"

// Participation records one user opting into one lottery. A user has at
// most one entry per lottery.
type Participation struct {
	ID        int64 `db:"id"`
	LotteryID int64 `db:"lottery_id"`
	UserID    int64 `db:"user_id"`

	ParticipatedAt time.Time `db:"participated_at"`
}
