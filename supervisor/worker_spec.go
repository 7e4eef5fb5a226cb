package supervisor

import (
	"github.com/twmb/murmur3"

	"github.com/lotterybot/lotterybot/model"
)

// ExitCodeCredentialRejected is returned by a worker whose bot token was
// rejected by Telegram. The supervisor does not restart such workers until
// the tenant's credentials change.
const ExitCodeCredentialRejected = 2

// WorkerSpec describes the worker a tenant should be running.
type WorkerSpec struct {
	AdminUserID int64
	BotToken    string
	BotUsername string
}

// SpecFromBotConfig ...
func SpecFromBotConfig(conf model.BotConfig) WorkerSpec {
	return WorkerSpec{
		AdminUserID: conf.AdminUserID,
		BotToken:    conf.BotToken,
		BotUsername: conf.BotUsername,
	}
}

// Fingerprint hashes the credential fields. A running worker is replaced
// when its spec's fingerprint no longer matches the desired one.
func (s WorkerSpec) Fingerprint() uint64 {
	hash := murmur3.New64()
	_, _ = hash.Write([]byte(s.BotToken))
	_, _ = hash.Write([]byte{0})
	_, _ = hash.Write([]byte(s.BotUsername))
	return hash.Sum64()
}
