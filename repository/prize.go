package repository

import (
	"context"

	"github.com/lotterybot/lotterybot/model"
)

// Prize ...
type Prize interface {
	Insert(ctx context.Context, prize model.Prize) (int64, error)
	ListByLottery(ctx context.Context, adminUserID int64, lotteryID int64) ([]model.Prize, error)
}

type prizeRepo struct {
}

// NewPrize ...
func NewPrize() Prize {
	return &prizeRepo{}
}

// Insert ...
func (r *prizeRepo) Insert(ctx context.Context, prize model.Prize) (int64, error) {
	query := `
INSERT INTO prizes (lottery_id, name, description, image, value, winner_count, level)
VALUES (:lottery_id, :name, :description, :image, :value, :winner_count, :level)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, prize)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListByLottery returns the lottery's prizes in draw precedence order:
// level ascending, ties broken by insertion order.
func (r *prizeRepo) ListByLottery(
	ctx context.Context, adminUserID int64, lotteryID int64,
) ([]model.Prize, error) {
	query := `
SELECT p.id, p.lottery_id, p.name, p.description, p.image, p.value,
	p.winner_count, p.level, p.created_at
FROM prizes p
JOIN lotteries l ON l.id = p.lottery_id
WHERE l.admin_user_id = ? AND p.lottery_id = ?
ORDER BY p.level ASC, p.id ASC
`
	var result []model.Prize
	err := getQuery(ctx).SelectContext(ctx, &result, query, adminUserID, lotteryID)
	return result, err
}
