package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lotterybot/lotterybot/bot"
	"github.com/lotterybot/lotterybot/config"
	"github.com/lotterybot/lotterybot/pkg/otellib"
	"github.com/lotterybot/lotterybot/repository"
	"github.com/lotterybot/lotterybot/server"
	"github.com/lotterybot/lotterybot/service/draw"
	"github.com/lotterybot/lotterybot/service/sweep"
)

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the admin api and the auto draw sweeper",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("lottery-api", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	lotteryRepo := repository.NewLottery()
	prizeRepo := repository.NewPrize()
	participationRepo := repository.NewParticipation()
	winnerRepo := repository.NewWinner()
	userRepo := repository.NewTelegramUser()
	configRepo := repository.NewBotConfig()

	notifier := bot.NewTenantNotifier(provider, configRepo, func(token string) (bot.API, error) {
		api, err := tgbotapi.NewBotAPI(token)
		if err != nil {
			return nil, err
		}
		return api, nil
	})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	drawService := draw.NewService(
		provider, lotteryRepo, prizeRepo, participationRepo,
		winnerRepo, userRepo, notifier, rng, logger,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sweeper := sweep.NewSweeper(provider, lotteryRepo, drawService, sweep.SystemClock(), logger)

	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(conf.Sweep.Interval).Do(func() {
		sweepErr := sweeper.RunOnce(ctx)
		if sweepErr != nil {
			logger.Error("sweep failed", zap.Error(sweepErr))
		}
	})
	if err != nil {
		panic(err)
	}
	scheduler.StartAsync()
	defer scheduler.Stop()

	srv := server.NewServer(drawService, provider, configRepo, logger)
	err = srv.Run(ctx, conf.Server.HTTP.ListenString())
	if err != nil && err != http.ErrServerClosed {
		panic(err)
	}
	fmt.Println("Shutdown HTTP server successfully")
}
