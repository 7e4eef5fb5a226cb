package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lotterybot/lotterybot/bot"
	"github.com/lotterybot/lotterybot/config"
	"github.com/lotterybot/lotterybot/repository"
	"github.com/lotterybot/lotterybot/service/draw"
	"github.com/lotterybot/lotterybot/supervisor"
)

func workerCommand() *cobra.Command {
	var tenant int64

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "run the bot worker for a single tenant",
		Run: func(cmd *cobra.Command, args []string) {
			runWorker(tenant)
		},
	}
	cmd.Flags().Int64Var(&tenant, "tenant", 0, "admin user id of the tenant")
	err := cmd.MarkFlagRequired("tenant")
	if err != nil {
		panic(err)
	}
	return cmd
}

func runWorker(tenant int64) {
	conf := config.Load()
	logger := config.NewLogger(conf.Log).With(zap.Int64("admin_user_id", tenant))

	token := os.Getenv("LOTTERY_BOT_TOKEN")
	if token == "" {
		logger.Error("LOTTERY_BOT_TOKEN is not set")
		os.Exit(supervisor.ExitCodeCredentialRejected)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.Error("telegram rejected the bot token", zap.Error(err))
		os.Exit(supervisor.ExitCodeCredentialRejected)
	}
	logger.Info("bot authorized", zap.String("username", api.Self.UserName))

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	lotteryRepo := repository.NewLottery()
	prizeRepo := repository.NewPrize()
	participationRepo := repository.NewParticipation()
	winnerRepo := repository.NewWinner()
	userRepo := repository.NewTelegramUser()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	drawService := draw.NewService(
		provider, lotteryRepo, prizeRepo, participationRepo,
		winnerRepo, userRepo, bot.NewNotifier(api), rng, logger,
	)

	worker := bot.NewWorkerFromConfig(
		tenant, api, drawService,
		conf.Bot.ListingCacheSize,
		conf.Bot.ListingCacheTTL,
		conf.Bot.PageSize,
		logger,
	)

	updateConf := tgbotapi.NewUpdate(0)
	updateConf.Timeout = 60
	updates, err := api.GetUpdatesChan(updateConf)
	if err != nil {
		logger.Error("failed to open the update channel", zap.Error(err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	worker.Run(ctx, updates)
	logger.Info("worker stopped")
}
