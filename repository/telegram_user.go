package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/lotterybot/lotterybot/model"
)

// NullTelegramUser ...
type NullTelegramUser struct {
	Valid bool
	User  model.TelegramUser
}

// TelegramUser ...
type TelegramUser interface {
	Upsert(ctx context.Context, user model.TelegramUser) error
	GetByTelegramID(ctx context.Context, telegramID int64) (NullTelegramUser, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.TelegramUser, error)
}

type telegramUserRepo struct {
}

// NewTelegramUser ...
func NewTelegramUser() TelegramUser {
	return &telegramUserRepo{}
}

// Upsert ...
func (r *telegramUserRepo) Upsert(ctx context.Context, user model.TelegramUser) error {
	query := `
INSERT INTO telegram_users (telegram_id, username, first_name, last_name)
VALUES (:telegram_id, :username, :first_name, :last_name) AS new
ON DUPLICATE KEY UPDATE
	username = new.username,
	first_name = new.first_name,
	last_name = new.last_name
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, user)
	return err
}

// GetByTelegramID ...
func (r *telegramUserRepo) GetByTelegramID(
	ctx context.Context, telegramID int64,
) (NullTelegramUser, error) {
	query := `
SELECT id, telegram_id, username, first_name, last_name, created_at, updated_at
FROM telegram_users
WHERE telegram_id = ?
`
	var user model.TelegramUser
	err := getQuery(ctx).GetContext(ctx, &user, query, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return NullTelegramUser{}, nil
	}
	if err != nil {
		return NullTelegramUser{}, err
	}
	return NullTelegramUser{Valid: true, User: user}, nil
}

// ListByIDs ...
func (r *telegramUserRepo) ListByIDs(ctx context.Context, ids []int64) ([]model.TelegramUser, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
SELECT id, telegram_id, username, first_name, last_name, created_at, updated_at
FROM telegram_users
WHERE id IN (?)
`
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return nil, err
	}

	var result []model.TelegramUser
	err = getQuery(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}
