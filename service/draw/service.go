package draw

import (
	"context"
	"math/rand"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/lotterybot/lotterybot/model"
	"github.com/lotterybot/lotterybot/repository"
)

// Outcome ...
type Outcome int

const (
	// OutcomeWinners means the draw completed with at least one winner.
	OutcomeWinners Outcome = 1

	// OutcomeNoParticipants means the draw completed with an empty pool.
	// The lottery still finishes, this is not an error.
	OutcomeNoParticipants Outcome = 2
)

// Result ...
type Result struct {
	Outcome Outcome
	Winners []model.Winner
}

// WinnerNotice carries what the notifier needs to tell one winner.
type WinnerNotice struct {
	AdminUserID  int64
	UserID       int64
	TelegramID   int64
	LotteryTitle string
	PrizeName    string
	PrizeLevel   int64
	PrizeDesc    string
}

// Notifier delivers winner notices. Delivery is best effort, failures are
// logged by the caller and never fail a draw.
type Notifier interface {
	NotifyWinner(ctx context.Context, notice WinnerNotice) error
}

// Service is the draw engine. All lottery mutations go through it, scoped
// by the owning admin user.
type Service struct {
	provider          repository.Provider
	lotteryRepo       repository.Lottery
	prizeRepo         repository.Prize
	participationRepo repository.Participation
	winnerRepo        repository.Winner
	userRepo          repository.TelegramUser
	notifier          Notifier
	logger            *zap.Logger

	locks *lockTable

	randMu sync.Mutex
	rng    *rand.Rand
}

// NewService creates the draw engine. The random source is injected so
// draws are reproducible under test.
func NewService(
	provider repository.Provider,
	lotteryRepo repository.Lottery,
	prizeRepo repository.Prize,
	participationRepo repository.Participation,
	winnerRepo repository.Winner,
	userRepo repository.TelegramUser,
	notifier Notifier,
	rng *rand.Rand,
	logger *zap.Logger,
) *Service {
	return &Service{
		provider:          provider,
		lotteryRepo:       lotteryRepo,
		prizeRepo:         prizeRepo,
		participationRepo: participationRepo,
		winnerRepo:        winnerRepo,
		userRepo:          userRepo,
		notifier:          notifier,
		logger:            logger,
		locks:             newLockTable(),
		rng:               rng,
	}
}

// Draw runs a random draw on an active lottery: tiers in precedence order,
// uniform sampling without replacement, each participant wins at most once.
// The winner records and the finished status commit as one transaction.
func (s *Service) Draw(ctx context.Context, adminUserID int64, lotteryID int64) (Result, error) {
	if !s.locks.tryAcquire(lotteryID) {
		drawsTotal.WithLabelValues("random", "rejected").Inc()
		return Result{}, ErrAlreadyDrawing
	}
	defer s.locks.release(lotteryID)

	ctx, span := otel.Tracer("draw").Start(ctx, "draw.Draw")
	span.SetAttributes(attribute.Int64("lottery.id", lotteryID))
	defer span.End()

	var result Result
	var notices []WinnerNotice

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		lottery, prizes, err := s.lockActiveLottery(ctx, adminUserID, lotteryID)
		if err != nil {
			return err
		}

		pool, err := s.participationRepo.ListByLottery(ctx, adminUserID, lotteryID)
		if err != nil {
			return err
		}
		if len(pool) == 0 {
			result = Result{Outcome: OutcomeNoParticipants}
			return s.lotteryRepo.UpdateStatus(ctx, lotteryID, model.LotteryStatusFinished, false)
		}

		// shuffling once and filling quotas in tier order is the same
		// distribution as a fresh uniform sample per tier
		s.shuffle(pool)

		winners, winnerNotices := assignPrizes(lottery, prizes, pool)
		err = s.winnerRepo.InsertMulti(ctx, winners)
		if err != nil {
			return err
		}

		err = s.lotteryRepo.UpdateStatus(ctx, lotteryID, model.LotteryStatusFinished, false)
		if err != nil {
			return err
		}

		result = Result{Outcome: OutcomeWinners, Winners: winners}
		notices = winnerNotices
		return nil
	})
	if err != nil {
		drawsTotal.WithLabelValues("random", "rejected").Inc()
		return Result{}, err
	}

	drawsTotal.WithLabelValues("random", outcomeLabel(result.Outcome)).Inc()
	s.notifyWinners(ctx, notices)
	return result, nil
}

// ManualDraw assigns an administrator supplied, ordered winner list to the
// prize tiers, in the same allocation shape as a random draw but without
// randomness. Pre-existing winner records for the lottery are discarded.
func (s *Service) ManualDraw(
	ctx context.Context, adminUserID int64, lotteryID int64, userIDs []int64,
) (Result, error) {
	if !s.locks.tryAcquire(lotteryID) {
		drawsTotal.WithLabelValues("manual", "rejected").Inc()
		return Result{}, ErrAlreadyDrawing
	}
	defer s.locks.release(lotteryID)

	ctx, span := otel.Tracer("draw").Start(ctx, "draw.ManualDraw")
	span.SetAttributes(attribute.Int64("lottery.id", lotteryID))
	defer span.End()

	var result Result
	var notices []WinnerNotice

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		lottery, prizes, err := s.lockActiveLottery(ctx, adminUserID, lotteryID)
		if err != nil {
			return err
		}

		var capacity int64
		for _, prize := range prizes {
			capacity += prize.WinnerCount
		}
		if int64(len(userIDs)) > capacity {
			return ErrTooManyWinners
		}

		pool, err := s.participationRepo.ListByLottery(ctx, adminUserID, lotteryID)
		if err != nil {
			return err
		}
		participants := map[int64]struct{}{}
		for _, p := range pool {
			participants[p.UserID] = struct{}{}
		}

		ordered := make([]model.Participation, 0, len(userIDs))
		chosen := map[int64]struct{}{}
		for _, userID := range userIDs {
			if _, ok := participants[userID]; !ok {
				return ErrNotAParticipant
			}
			if _, ok := chosen[userID]; ok {
				return ErrDuplicateWinner
			}
			chosen[userID] = struct{}{}
			ordered = append(ordered, model.Participation{LotteryID: lotteryID, UserID: userID})
		}

		err = s.winnerRepo.DeleteByLottery(ctx, lotteryID)
		if err != nil {
			return err
		}

		winners, winnerNotices := assignPrizes(lottery, prizes, ordered)
		err = s.winnerRepo.InsertMulti(ctx, winners)
		if err != nil {
			return err
		}

		err = s.lotteryRepo.UpdateStatus(ctx, lotteryID, model.LotteryStatusFinished, true)
		if err != nil {
			return err
		}

		result = Result{Outcome: OutcomeWinners, Winners: winners}
		if len(winners) == 0 {
			result.Outcome = OutcomeNoParticipants
		}
		notices = winnerNotices
		return nil
	})
	if err != nil {
		drawsTotal.WithLabelValues("manual", "rejected").Inc()
		return Result{}, err
	}

	drawsTotal.WithLabelValues("manual", outcomeLabel(result.Outcome)).Inc()
	s.notifyWinners(ctx, notices)
	return result, nil
}

// lockActiveLottery row-locks the lottery and checks the draw
// preconditions shared by both draw modes.
func (s *Service) lockActiveLottery(
	ctx context.Context, adminUserID int64, lotteryID int64,
) (model.Lottery, []model.Prize, error) {
	nullLottery, err := s.lotteryRepo.GetForUpdate(ctx, adminUserID, lotteryID)
	if err != nil {
		return model.Lottery{}, nil, err
	}
	if !nullLottery.Valid {
		return model.Lottery{}, nil, ErrLotteryNotFound
	}
	lottery := nullLottery.Lottery

	if lottery.Status != model.LotteryStatusActive {
		return model.Lottery{}, nil, ErrInvalidTransition
	}

	prizes, err := s.prizeRepo.ListByLottery(ctx, adminUserID, lotteryID)
	if err != nil {
		return model.Lottery{}, nil, err
	}
	if len(prizes) == 0 {
		return model.Lottery{}, nil, ErrNoPrizesConfigured
	}
	return lottery, prizes, nil
}

// assignPrizes fills each tier's quota from the ordered pool, removing
// assigned entries so nobody wins twice. Prizes arrive already ordered by
// (level, id). Tiers past the end of the pool stay unfulfilled.
func assignPrizes(
	lottery model.Lottery, prizes []model.Prize, pool []model.Participation,
) ([]model.Winner, []WinnerNotice) {
	var winners []model.Winner
	var notices []WinnerNotice

	next := 0
	for _, prize := range prizes {
		if next >= len(pool) {
			break
		}
		count := int(prize.WinnerCount)
		if remaining := len(pool) - next; count > remaining {
			count = remaining
		}
		for i := 0; i < count; i++ {
			entry := pool[next]
			next++

			winners = append(winners, model.Winner{
				LotteryID: lottery.ID,
				PrizeID:   prize.ID,
				UserID:    entry.UserID,
				PrizeName: prize.Name,
			})
			notices = append(notices, WinnerNotice{
				AdminUserID:  lottery.AdminUserID,
				UserID:       entry.UserID,
				LotteryTitle: lottery.Title,
				PrizeName:    prize.Name,
				PrizeLevel:   prize.Level,
				PrizeDesc:    prize.Description,
			})
		}
	}
	return winners, notices
}

func (s *Service) shuffle(pool []model.Participation) {
	s.randMu.Lock()
	defer s.randMu.Unlock()

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

func (s *Service) notifyWinners(ctx context.Context, notices []WinnerNotice) {
	if s.notifier == nil || len(notices) == 0 {
		return
	}

	ids := make([]int64, 0, len(notices))
	for _, notice := range notices {
		ids = append(ids, notice.UserID)
	}
	users, err := s.userRepo.ListByIDs(s.provider.Readonly(ctx), ids)
	if err != nil {
		notifyFailuresTotal.Add(float64(len(notices)))
		s.logger.Error("failed to resolve winner chats", zap.Error(err))
		return
	}
	telegramIDs := map[int64]int64{}
	for _, user := range users {
		telegramIDs[user.ID] = user.TelegramID
	}

	for _, notice := range notices {
		notice.TelegramID = telegramIDs[notice.UserID]
		err := s.notifier.NotifyWinner(ctx, notice)
		if err != nil {
			notifyFailuresTotal.Inc()
			s.logger.Error("failed to notify winner",
				zap.Int64("user_id", notice.UserID),
				zap.String("prize", notice.PrizeName),
				zap.Error(err))
		}
	}
}

func outcomeLabel(outcome Outcome) string {
	if outcome == OutcomeNoParticipants {
		return "no_participants"
	}
	return "winners"
}

// String ...
func (o Outcome) String() string {
	return outcomeLabel(o)
}
