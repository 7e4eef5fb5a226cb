package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lotterybot/lotterybot/model"
)

// NullLottery ...
type NullLottery struct {
	Valid   bool
	Lottery model.Lottery
}

// LotteryStats ...
type LotteryStats struct {
	TotalLotteries    int64 `db:"total_lotteries"`
	ActiveLotteries   int64 `db:"active_lotteries"`
	FinishedLotteries int64 `db:"finished_lotteries"`
	TotalParticipants int64 `db:"total_participants"`
	TotalWinners      int64 `db:"total_winners"`
}

// Lottery ...
type Lottery interface {
	Insert(ctx context.Context, lottery model.Lottery) (int64, error)
	Get(ctx context.Context, adminUserID int64, lotteryID int64) (NullLottery, error)
	GetForUpdate(ctx context.Context, adminUserID int64, lotteryID int64) (NullLottery, error)
	ListActive(ctx context.Context, adminUserID int64, now time.Time) ([]model.Lottery, error)
	ListDue(ctx context.Context, now time.Time) ([]model.Lottery, error)
	UpdateStatus(ctx context.Context, lotteryID int64, status model.LotteryStatus, manuallyDrawn bool) error
	GetStats(ctx context.Context, adminUserID int64) (LotteryStats, error)
}

type lotteryRepo struct {
}

// NewLottery ...
func NewLottery() Lottery {
	return &lotteryRepo{}
}

const lotteryColumns = `
id, admin_user_id, title, description, prize_image, max_participants,
start_time, end_time, status, manually_drawn, created_at, updated_at
`

// Insert ...
func (r *lotteryRepo) Insert(ctx context.Context, lottery model.Lottery) (int64, error) {
	query := `
INSERT INTO lotteries (
	admin_user_id, title, description, prize_image, max_participants,
	start_time, end_time, status, manually_drawn
) VALUES (
	:admin_user_id, :title, :description, :prize_image, :max_participants,
	:start_time, :end_time, :status, :manually_drawn
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, lottery)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Get ...
func (r *lotteryRepo) Get(ctx context.Context, adminUserID int64, lotteryID int64) (NullLottery, error) {
	query := `SELECT` + lotteryColumns + `FROM lotteries WHERE admin_user_id = ? AND id = ?`

	var lottery model.Lottery
	err := getQuery(ctx).GetContext(ctx, &lottery, query, adminUserID, lotteryID)
	if errors.Is(err, sql.ErrNoRows) {
		return NullLottery{}, nil
	}
	if err != nil {
		return NullLottery{}, err
	}
	return NullLottery{Valid: true, Lottery: lottery}, nil
}

// GetForUpdate ...
func (r *lotteryRepo) GetForUpdate(ctx context.Context, adminUserID int64, lotteryID int64) (NullLottery, error) {
	query := `SELECT` + lotteryColumns + `FROM lotteries WHERE admin_user_id = ? AND id = ? FOR UPDATE`

	var lottery model.Lottery
	err := GetTx(ctx).GetContext(ctx, &lottery, query, adminUserID, lotteryID)
	if errors.Is(err, sql.ErrNoRows) {
		return NullLottery{}, nil
	}
	if err != nil {
		return NullLottery{}, err
	}
	return NullLottery{Valid: true, Lottery: lottery}, nil
}

// ListActive ...
func (r *lotteryRepo) ListActive(
	ctx context.Context, adminUserID int64, now time.Time,
) ([]model.Lottery, error) {
	query := `
SELECT` + lotteryColumns + `
FROM lotteries
WHERE admin_user_id = ? AND status = ? AND start_time <= ? AND ? <= end_time
ORDER BY end_time ASC
`
	var result []model.Lottery
	err := getQuery(ctx).SelectContext(ctx, &result, query,
		adminUserID, model.LotteryStatusActive, now, now)
	return result, err
}

// ListDue returns active, not manually drawn lotteries across all tenants
// whose end time has passed. The minute truncation of the comparison is
// done by the caller, so the cutoff passed in is already truncated.
func (r *lotteryRepo) ListDue(ctx context.Context, now time.Time) ([]model.Lottery, error) {
	query := `
SELECT` + lotteryColumns + `
FROM lotteries
WHERE status = ? AND manually_drawn = FALSE AND end_time < ?
ORDER BY end_time ASC
`
	var result []model.Lottery
	err := getQuery(ctx).SelectContext(ctx, &result, query,
		model.LotteryStatusActive, now)
	return result, err
}

// UpdateStatus ...
func (r *lotteryRepo) UpdateStatus(
	ctx context.Context, lotteryID int64, status model.LotteryStatus, manuallyDrawn bool,
) error {
	query := `UPDATE lotteries SET status = ?, manually_drawn = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, manuallyDrawn, lotteryID)
	return err
}

// GetStats ...
func (r *lotteryRepo) GetStats(ctx context.Context, adminUserID int64) (LotteryStats, error) {
	query := `
SELECT
	COUNT(*) AS total_lotteries,
	COALESCE(SUM(status = ?), 0) AS active_lotteries,
	COALESCE(SUM(status = ?), 0) AS finished_lotteries,
	(SELECT COUNT(*) FROM participations p
		JOIN lotteries l ON l.id = p.lottery_id
		WHERE l.admin_user_id = ?) AS total_participants,
	(SELECT COUNT(*) FROM winners w
		JOIN lotteries l ON l.id = w.lottery_id
		WHERE l.admin_user_id = ?) AS total_winners
FROM lotteries
WHERE admin_user_id = ?
`
	var stats LotteryStats
	err := getQuery(ctx).GetContext(ctx, &stats, query,
		model.LotteryStatusActive, model.LotteryStatusFinished,
		adminUserID, adminUserID, adminUserID)
	return stats, err
}
