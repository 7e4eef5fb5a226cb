package model

import (
	"time"
)

// Lottery ...
type Lottery struct {
	ID          int64  `db:"id"`
	AdminUserID int64  `db:"admin_user_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	PrizeImage  string `db:"prize_image"`

	MaxParticipants int64 `db:"max_participants"`

	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`

	Status        LotteryStatus `db:"status"`
	ManuallyDrawn bool          `db:"manually_drawn"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// LotteryStatus ...
type LotteryStatus int

const (
	// LotteryStatusPending ...
	LotteryStatusPending LotteryStatus = 1

	// LotteryStatusActive ...
	LotteryStatusActive LotteryStatus = 2

	// LotteryStatusFinished ...
	LotteryStatusFinished LotteryStatus = 3

	// LotteryStatusCancelled ...
	LotteryStatusCancelled LotteryStatus = 4
)

// String ...
func (s LotteryStatus) String() string {
	switch s {
	case LotteryStatusPending:
		return "pending"
	case LotteryStatusActive:
		return "active"
	case LotteryStatusFinished:
		return "finished"
	case LotteryStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal ...
func (s LotteryStatus) IsTerminal() bool {
	return s == LotteryStatusFinished || s == LotteryStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving to the given
// status. Finished and cancelled are terminal.
func (s LotteryStatus) CanTransitionTo(next LotteryStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch s {
	case LotteryStatusPending:
		return next == LotteryStatusActive
	case LotteryStatusActive:
		return next == LotteryStatusFinished || next == LotteryStatusCancelled
	default:
		return false
	}
}

// IsActive ...
func (l Lottery) IsActive(now time.Time) bool {
	if l.Status != LotteryStatusActive {
		return false
	}
	return !now.Before(l.StartTime) && !now.After(l.EndTime)
}

// CanParticipate reports whether a new entry is accepted given the current
// participant count.
func (l Lottery) CanParticipate(now time.Time, participantCount int64) bool {
	if !l.IsActive(now) {
		return false
	}
	if l.MaxParticipants > 0 && participantCount >= l.MaxParticipants {
		return false
	}
	return true
}
