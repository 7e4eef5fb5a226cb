package repository

import (
	"context"

	"github.com/lotterybot/lotterybot/model"
)

// WinnerDetail is a winner row joined with the title of its lottery.
type WinnerDetail struct {
	model.Winner
	LotteryTitle string `db:"lottery_title"`
}

// Winner ...
type Winner interface {
	InsertMulti(ctx context.Context, winners []model.Winner) error
	DeleteByLottery(ctx context.Context, lotteryID int64) error
	ListByLottery(ctx context.Context, adminUserID int64, lotteryID int64) ([]model.Winner, error)
	ListByUser(ctx context.Context, adminUserID int64, userID int64) ([]WinnerDetail, error)
	SetClaimed(ctx context.Context, adminUserID int64, winnerID int64, claimed bool) error
}

type winnerRepo struct {
}

// NewWinner ...
func NewWinner() Winner {
	return &winnerRepo{}
}

// InsertMulti ...
func (r *winnerRepo) InsertMulti(ctx context.Context, winners []model.Winner) error {
	if len(winners) == 0 {
		return nil
	}
	query := `
INSERT INTO winners (lottery_id, prize_id, user_id, prize_name)
VALUES (:lottery_id, :prize_id, :user_id, :prize_name)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, winners)
	return err
}

// DeleteByLottery ...
func (r *winnerRepo) DeleteByLottery(ctx context.Context, lotteryID int64) error {
	query := `DELETE FROM winners WHERE lottery_id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, lotteryID)
	return err
}

// ListByLottery ...
func (r *winnerRepo) ListByLottery(
	ctx context.Context, adminUserID int64, lotteryID int64,
) ([]model.Winner, error) {
	query := `
SELECT w.id, w.lottery_id, w.prize_id, w.user_id, w.prize_name, w.claimed, w.won_at
FROM winners w
JOIN lotteries l ON l.id = w.lottery_id
WHERE l.admin_user_id = ? AND w.lottery_id = ?
ORDER BY w.id ASC
`
	var result []model.Winner
	err := getQuery(ctx).SelectContext(ctx, &result, query, adminUserID, lotteryID)
	return result, err
}

// ListByUser ...
func (r *winnerRepo) ListByUser(
	ctx context.Context, adminUserID int64, userID int64,
) ([]WinnerDetail, error) {
	query := `
SELECT w.id, w.lottery_id, w.prize_id, w.user_id, w.prize_name, w.claimed, w.won_at,
	l.title AS lottery_title
FROM winners w
JOIN lotteries l ON l.id = w.lottery_id
WHERE l.admin_user_id = ? AND w.user_id = ?
ORDER BY w.won_at DESC
`
	var result []WinnerDetail
	err := getQuery(ctx).SelectContext(ctx, &result, query, adminUserID, userID)
	return result, err
}

// SetClaimed ...
func (r *winnerRepo) SetClaimed(
	ctx context.Context, adminUserID int64, winnerID int64, claimed bool,
) error {
	query := `
UPDATE winners w
JOIN lotteries l ON l.id = w.lottery_id
SET w.claimed = ?
WHERE l.admin_user_id = ? AND w.id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, claimed, adminUserID, winnerID)
	return err
}
