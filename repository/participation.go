package repository

import (
	"context"

	"github.com/lotterybot/lotterybot/model"
)

// ParticipationDetail is a participation row joined with the fields of
// its lottery needed for listing.
type ParticipationDetail struct {
	model.Participation
	LotteryTitle  string              `db:"lottery_title"`
	LotteryStatus model.LotteryStatus `db:"lottery_status"`
}

// Participation ...
type Participation interface {
	Insert(ctx context.Context, participation model.Participation) (int64, error)
	ListByLottery(ctx context.Context, adminUserID int64, lotteryID int64) ([]model.Participation, error)
	ListByUser(ctx context.Context, adminUserID int64, userID int64) ([]ParticipationDetail, error)
	Exists(ctx context.Context, lotteryID int64, userID int64) (bool, error)
	Count(ctx context.Context, lotteryID int64) (int64, error)
}

type participationRepo struct {
}

// NewParticipation ...
func NewParticipation() Participation {
	return &participationRepo{}
}

// Insert ...
func (r *participationRepo) Insert(ctx context.Context, participation model.Participation) (int64, error) {
	query := `
INSERT INTO participations (lottery_id, user_id)
VALUES (:lottery_id, :user_id)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, participation)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListByLottery ...
func (r *participationRepo) ListByLottery(
	ctx context.Context, adminUserID int64, lotteryID int64,
) ([]model.Participation, error) {
	query := `
SELECT p.id, p.lottery_id, p.user_id, p.participated_at
FROM participations p
JOIN lotteries l ON l.id = p.lottery_id
WHERE l.admin_user_id = ? AND p.lottery_id = ?
ORDER BY p.id ASC
`
	var result []model.Participation
	err := getQuery(ctx).SelectContext(ctx, &result, query, adminUserID, lotteryID)
	return result, err
}

// ListByUser ...
func (r *participationRepo) ListByUser(
	ctx context.Context, adminUserID int64, userID int64,
) ([]ParticipationDetail, error) {
	query := `
SELECT p.id, p.lottery_id, p.user_id, p.participated_at,
	l.title AS lottery_title, l.status AS lottery_status
FROM participations p
JOIN lotteries l ON l.id = p.lottery_id
WHERE l.admin_user_id = ? AND p.user_id = ?
ORDER BY p.participated_at DESC
`
	var result []ParticipationDetail
	err := getQuery(ctx).SelectContext(ctx, &result, query, adminUserID, userID)
	return result, err
}

// Exists ...
func (r *participationRepo) Exists(ctx context.Context, lotteryID int64, userID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM participations WHERE lottery_id = ? AND user_id = ?`

	var count int64
	err := getQuery(ctx).GetContext(ctx, &count, query, lotteryID, userID)
	return count > 0, err
}

// Count ...
func (r *participationRepo) Count(ctx context.Context, lotteryID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM participations WHERE lottery_id = ?`

	var count int64
	err := getQuery(ctx).GetContext(ctx, &count, query, lotteryID)
	return count, err
}
