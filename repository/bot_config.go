package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lotterybot/lotterybot/model"
)

// NullBotConfig ...
type NullBotConfig struct {
	Valid  bool
	Config model.BotConfig
}

// BotConfig ...
type BotConfig interface {
	ListActive(ctx context.Context) ([]model.BotConfig, error)
	Get(ctx context.Context, adminUserID int64) (NullBotConfig, error)
	Upsert(ctx context.Context, config model.BotConfig) error
}

type botConfigRepo struct {
}

// NewBotConfig ...
func NewBotConfig() BotConfig {
	return &botConfigRepo{}
}

// ListActive returns the credentials the supervisor should keep a worker
// alive for: active and with a non-empty token.
func (r *botConfigRepo) ListActive(ctx context.Context) ([]model.BotConfig, error) {
	query := `
SELECT admin_user_id, bot_token, bot_username, is_active, created_at, updated_at
FROM bot_configs
WHERE is_active = TRUE AND bot_token <> ''
ORDER BY admin_user_id ASC
`
	var result []model.BotConfig
	err := getQuery(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// Get ...
func (r *botConfigRepo) Get(ctx context.Context, adminUserID int64) (NullBotConfig, error) {
	query := `
SELECT admin_user_id, bot_token, bot_username, is_active, created_at, updated_at
FROM bot_configs
WHERE admin_user_id = ?
`
	var config model.BotConfig
	err := getQuery(ctx).GetContext(ctx, &config, query, adminUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return NullBotConfig{}, nil
	}
	if err != nil {
		return NullBotConfig{}, err
	}
	return NullBotConfig{Valid: true, Config: config}, nil
}

// Upsert ...
func (r *botConfigRepo) Upsert(ctx context.Context, config model.BotConfig) error {
	query := `
INSERT INTO bot_configs (admin_user_id, bot_token, bot_username, is_active)
VALUES (:admin_user_id, :bot_token, :bot_username, :is_active) AS new
ON DUPLICATE KEY UPDATE
	bot_token = new.bot_token,
	bot_username = new.bot_username,
	is_active = new.is_active
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, config)
	return err
}
