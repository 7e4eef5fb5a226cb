package sweep

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lotterybot/lotterybot/model"
	"github.com/lotterybot/lotterybot/repository"
	"github.com/lotterybot/lotterybot/service/draw"
)

// Clock ...
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock ...
func SystemClock() Clock { return systemClock{} }

// Drawer runs a draw for a single lottery.
type Drawer interface {
	Draw(ctx context.Context, adminUserID int64, lotteryID int64) (draw.Result, error)
}

// Sweeper finishes lotteries whose end time has passed. Lotteries are
// compared at minute granularity, matching the cadence the sweeper runs
// at, so a lottery ending at 12:05:40 is drawn by the 12:05 pass.
type Sweeper struct {
	provider    repository.Provider
	lotteryRepo repository.Lottery
	drawer      Drawer
	clock       Clock
	logger      *zap.Logger
}

// NewSweeper ...
func NewSweeper(
	provider repository.Provider,
	lotteryRepo repository.Lottery,
	drawer Drawer,
	clock Clock,
	logger *zap.Logger,
) *Sweeper {
	return &Sweeper{
		provider:    provider,
		lotteryRepo: lotteryRepo,
		drawer:      drawer,
		clock:       clock,
		logger:      logger,
	}
}

// RunOnce draws every due lottery. A failed draw is logged and skipped so
// one broken lottery can not wedge the rest of the batch. Running twice in
// the same minute is harmless: finished lotteries no longer list as due,
// and a concurrent draw is rejected by the draw service itself.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	cutoff := s.clock.Now().Truncate(time.Minute).Add(time.Minute)

	var due []model.Lottery
	err := func() error {
		ctx := s.provider.Readonly(ctx)
		var err error
		due, err = s.lotteryRepo.ListDue(ctx, cutoff)
		return err
	}()
	if err != nil {
		return err
	}

	for _, lottery := range due {
		result, err := s.drawer.Draw(ctx, lottery.AdminUserID, lottery.ID)
		if err != nil {
			if errors.Is(err, draw.ErrAlreadyDrawing) ||
				errors.Is(err, draw.ErrInvalidTransition) {
				// drawn by someone else between listing and locking
				sweepDrawsTotal.WithLabelValues("skipped").Inc()
				continue
			}
			sweepDrawsTotal.WithLabelValues("error").Inc()
			s.logger.Error("sweep draw failed",
				zap.Int64("lottery_id", lottery.ID),
				zap.Int64("admin_user_id", lottery.AdminUserID),
				zap.Error(err),
			)
			continue
		}

		sweepDrawsTotal.WithLabelValues("ok").Inc()
		s.logger.Info("lottery drawn by sweeper",
			zap.Int64("lottery_id", lottery.ID),
			zap.Int64("admin_user_id", lottery.AdminUserID),
			zap.Int("num_winners", len(result.Winners)),
		)
	}

	sweepRunsTotal.Inc()
	return nil
}
