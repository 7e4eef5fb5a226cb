package model

import "time"

// BotConfig is the per-tenant bot credential. One row per admin user.
type BotConfig struct {
	AdminUserID int64  `db:"admin_user_id"`
	BotToken    string `db:"bot_token"`
	BotUsername string `db:"bot_username"`
	IsActive    bool   `db:"is_active"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
