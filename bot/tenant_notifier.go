package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/lotterybot/lotterybot/repository"
	"github.com/lotterybot/lotterybot/service/draw"
)

// TenantNotifier routes winner notices through the bot of the lottery's
// owning admin user. Bot clients are cached per tenant and rebuilt when
// the stored token changes.
type TenantNotifier struct {
	provider repository.Provider
	configs  repository.BotConfig
	newAPI   func(token string) (API, error)

	mut     sync.Mutex
	clients map[int64]*tenantClient
}

type tenantClient struct {
	token string
	api   API
}

var _ draw.Notifier = &TenantNotifier{}

// NewTenantNotifier ...
func NewTenantNotifier(
	provider repository.Provider,
	configs repository.BotConfig,
	newAPI func(token string) (API, error),
) *TenantNotifier {
	return &TenantNotifier{
		provider: provider,
		configs:  configs,
		newAPI:   newAPI,
		clients:  map[int64]*tenantClient{},
	}
}

// NotifyWinner ...
func (n *TenantNotifier) NotifyWinner(ctx context.Context, notice draw.WinnerNotice) error {
	api, err := n.clientFor(ctx, notice.AdminUserID)
	if err != nil {
		return err
	}
	return NewNotifier(api).NotifyWinner(ctx, notice)
}

func (n *TenantNotifier) clientFor(ctx context.Context, adminUserID int64) (API, error) {
	nullConfig, err := n.configs.Get(n.provider.Readonly(ctx), adminUserID)
	if err != nil {
		return nil, err
	}
	if !nullConfig.Valid || !nullConfig.Config.IsActive {
		return nil, fmt.Errorf("no active bot for admin user %d", adminUserID)
	}
	token := nullConfig.Config.BotToken

	n.mut.Lock()
	defer n.mut.Unlock()

	client, ok := n.clients[adminUserID]
	if ok && client.token == token {
		return client.api, nil
	}

	api, err := n.newAPI(token)
	if err != nil {
		return nil, err
	}
	n.clients[adminUserID] = &tenantClient{token: token, api: api}
	return api, nil
}
