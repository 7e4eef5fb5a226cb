package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lotterybot/lotterybot/model"
	"github.com/lotterybot/lotterybot/pkg/otellib"
	"github.com/lotterybot/lotterybot/repository"
	"github.com/lotterybot/lotterybot/service/draw"
)

//go:generate moq -rm -out server_mocks_test.go . Service BotConfigStore

// tenantHeader carries the admin user the request acts for. Authentication
// is handled upstream of this service.
const tenantHeader = "X-Admin-User-ID"

// Service is the part of the draw service the API exposes.
type Service interface {
	CreateLottery(ctx context.Context, lottery model.Lottery) (int64, error)
	AddPrize(ctx context.Context, adminUserID int64, prize model.Prize) (int64, error)
	ListActiveDetails(ctx context.Context, adminUserID int64, now time.Time) ([]draw.LotterySummary, error)
	GetLotteryDetails(ctx context.Context, adminUserID int64, lotteryID int64) (draw.LotterySummary, bool, error)
	ListWinners(ctx context.Context, adminUserID int64, lotteryID int64) ([]model.Winner, error)
	Draw(ctx context.Context, adminUserID int64, lotteryID int64) (draw.Result, error)
	ManualDraw(ctx context.Context, adminUserID int64, lotteryID int64, userIDs []int64) (draw.Result, error)
	Cancel(ctx context.Context, adminUserID int64, lotteryID int64) error
	SetWinnerClaimed(ctx context.Context, adminUserID int64, winnerID int64, claimed bool) error
	GetStats(ctx context.Context, adminUserID int64) (repository.LotteryStats, error)
}

// BotConfigStore persists tenant bot credentials.
type BotConfigStore interface {
	Get(ctx context.Context, adminUserID int64) (repository.NullBotConfig, error)
	Upsert(ctx context.Context, config model.BotConfig) error
}

// Server is the admin JSON API.
type Server struct {
	service  Service
	provider repository.Provider
	configs  BotConfigStore
	logger   *zap.Logger
}

// NewServer ...
func NewServer(
	service Service,
	provider repository.Provider,
	configs BotConfigStore,
	logger *zap.Logger,
) *Server {
	return &Server{
		service:  service,
		provider: provider,
		configs:  configs,
		logger:   logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), otellib.SetLoggerMiddleware(s.logger))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api", s.requireTenant)
	{
		api.POST("/lotteries", s.createLottery)
		api.GET("/lotteries", s.listLotteries)
		api.GET("/lotteries/:id", s.getLottery)
		api.POST("/lotteries/:id/prizes", s.addPrize)
		api.POST("/lotteries/:id/draw", s.drawLottery)
		api.POST("/lotteries/:id/manual-draw", s.manualDraw)
		api.POST("/lotteries/:id/cancel", s.cancelLottery)
		api.POST("/winners/:id/claim", s.claimWinner)
		api.GET("/statistics", s.statistics)
		api.GET("/bot-config", s.getBotConfig)
		api.PUT("/bot-config", s.putBotConfig)
	}
	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	s.logger.Info("admin api listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
