package draw

import (
	"context"
	"time"

	"github.com/lotterybot/lotterybot/model"
	"github.com/lotterybot/lotterybot/repository"
)

// CreateLottery inserts a new lottery. Lotteries are created already
// active, there is no separate activation step.
func (s *Service) CreateLottery(ctx context.Context, lottery model.Lottery) (int64, error) {
	if !lottery.StartTime.Before(lottery.EndTime) {
		return 0, ErrInvalidTimeRange
	}
	lottery.Status = model.LotteryStatusActive
	lottery.ManuallyDrawn = false

	var lotteryID int64
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		id, err := s.lotteryRepo.Insert(ctx, lottery)
		if err != nil {
			return err
		}
		lotteryID = id
		return nil
	})
	return lotteryID, err
}

// AddPrize ...
func (s *Service) AddPrize(ctx context.Context, adminUserID int64, prize model.Prize) (int64, error) {
	var prizeID int64
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		nullLottery, err := s.lotteryRepo.GetForUpdate(ctx, adminUserID, prize.LotteryID)
		if err != nil {
			return err
		}
		if !nullLottery.Valid {
			return ErrLotteryNotFound
		}
		if nullLottery.Lottery.Status != model.LotteryStatusActive {
			return ErrInvalidTransition
		}

		id, err := s.prizeRepo.Insert(ctx, prize)
		if err != nil {
			return err
		}
		prizeID = id
		return nil
	})
	return prizeID, err
}

// Participate records one user's entry into a lottery. It enforces the
// participation window, the participant cap and the one entry per user
// invariant.
func (s *Service) Participate(
	ctx context.Context, adminUserID int64, lotteryID int64, user model.TelegramUser,
) error {
	now := time.Now()

	return s.provider.Transact(ctx, func(ctx context.Context) error {
		nullLottery, err := s.lotteryRepo.GetForUpdate(ctx, adminUserID, lotteryID)
		if err != nil {
			return err
		}
		if !nullLottery.Valid {
			return ErrLotteryNotFound
		}
		lottery := nullLottery.Lottery

		if !lottery.IsActive(now) {
			return ErrLotteryNotOpen
		}

		count, err := s.participationRepo.Count(ctx, lotteryID)
		if err != nil {
			return err
		}
		if !lottery.CanParticipate(now, count) {
			return ErrLotteryFull
		}

		err = s.userRepo.Upsert(ctx, user)
		if err != nil {
			return err
		}
		nullUser, err := s.userRepo.GetByTelegramID(ctx, user.TelegramID)
		if err != nil {
			return err
		}
		if !nullUser.Valid {
			return ErrLotteryNotFound
		}

		exists, err := s.participationRepo.Exists(ctx, lotteryID, nullUser.User.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyParticipated
		}

		// the unique key on (lottery_id, user_id) backs up the check above
		// against concurrent entries
		_, err = s.participationRepo.Insert(ctx, model.Participation{
			LotteryID: lotteryID,
			UserID:    nullUser.User.ID,
		})
		if repository.IsDuplicateEntry(err) {
			return ErrAlreadyParticipated
		}
		return err
	})
}

// Cancel moves an active lottery to cancelled. Terminal states reject the
// transition, in particular a finished lottery can never become cancelled.
func (s *Service) Cancel(ctx context.Context, adminUserID int64, lotteryID int64) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		nullLottery, err := s.lotteryRepo.GetForUpdate(ctx, adminUserID, lotteryID)
		if err != nil {
			return err
		}
		if !nullLottery.Valid {
			return ErrLotteryNotFound
		}
		lottery := nullLottery.Lottery

		if !lottery.Status.CanTransitionTo(model.LotteryStatusCancelled) {
			return ErrInvalidTransition
		}
		return s.lotteryRepo.UpdateStatus(ctx, lotteryID, model.LotteryStatusCancelled, lottery.ManuallyDrawn)
	})
}

// ListActive ...
func (s *Service) ListActive(ctx context.Context, adminUserID int64, now time.Time) ([]model.Lottery, error) {
	ctx = s.provider.Readonly(ctx)
	return s.lotteryRepo.ListActive(ctx, adminUserID, now)
}

// LotterySummary bundles a lottery with what a listing shows about it.
type LotterySummary struct {
	Lottery          model.Lottery
	Prizes           []model.Prize
	ParticipantCount int64
}

// ListActiveDetails ...
func (s *Service) ListActiveDetails(
	ctx context.Context, adminUserID int64, now time.Time,
) ([]LotterySummary, error) {
	ctx = s.provider.Readonly(ctx)

	lotteries, err := s.lotteryRepo.ListActive(ctx, adminUserID, now)
	if err != nil {
		return nil, err
	}

	summaries := make([]LotterySummary, 0, len(lotteries))
	for _, lottery := range lotteries {
		prizes, err := s.prizeRepo.ListByLottery(ctx, adminUserID, lottery.ID)
		if err != nil {
			return nil, err
		}
		count, err := s.participationRepo.Count(ctx, lottery.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, LotterySummary{
			Lottery:          lottery,
			Prizes:           prizes,
			ParticipantCount: count,
		})
	}
	return summaries, nil
}

// GetLottery ...
func (s *Service) GetLottery(ctx context.Context, adminUserID int64, lotteryID int64) (repository.NullLottery, error) {
	ctx = s.provider.Readonly(ctx)
	return s.lotteryRepo.Get(ctx, adminUserID, lotteryID)
}

// GetLotteryDetails returns one lottery with its prizes and entry count.
// The second return value reports whether the lottery exists.
func (s *Service) GetLotteryDetails(
	ctx context.Context, adminUserID int64, lotteryID int64,
) (LotterySummary, bool, error) {
	ctx = s.provider.Readonly(ctx)

	nullLottery, err := s.lotteryRepo.Get(ctx, adminUserID, lotteryID)
	if err != nil || !nullLottery.Valid {
		return LotterySummary{}, false, err
	}

	prizes, err := s.prizeRepo.ListByLottery(ctx, adminUserID, lotteryID)
	if err != nil {
		return LotterySummary{}, false, err
	}
	count, err := s.participationRepo.Count(ctx, lotteryID)
	if err != nil {
		return LotterySummary{}, false, err
	}
	return LotterySummary{
		Lottery:          nullLottery.Lottery,
		Prizes:           prizes,
		ParticipantCount: count,
	}, true, nil
}

// ListWinners ...
func (s *Service) ListWinners(ctx context.Context, adminUserID int64, lotteryID int64) ([]model.Winner, error) {
	ctx = s.provider.Readonly(ctx)
	return s.winnerRepo.ListByLottery(ctx, adminUserID, lotteryID)
}

// MyParticipations ...
func (s *Service) MyParticipations(
	ctx context.Context, adminUserID int64, telegramID int64,
) ([]repository.ParticipationDetail, error) {
	ctx = s.provider.Readonly(ctx)

	nullUser, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil || !nullUser.Valid {
		return nil, err
	}
	return s.participationRepo.ListByUser(ctx, adminUserID, nullUser.User.ID)
}

// MyWins ...
func (s *Service) MyWins(
	ctx context.Context, adminUserID int64, telegramID int64,
) ([]repository.WinnerDetail, error) {
	ctx = s.provider.Readonly(ctx)

	nullUser, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil || !nullUser.Valid {
		return nil, err
	}
	return s.winnerRepo.ListByUser(ctx, adminUserID, nullUser.User.ID)
}

// ResolveUsers looks up user profiles by internal id.
func (s *Service) ResolveUsers(ctx context.Context, ids []int64) ([]model.TelegramUser, error) {
	ctx = s.provider.Readonly(ctx)
	return s.userRepo.ListByIDs(ctx, ids)
}

// RegisterUser records or refreshes a telegram user's profile.
func (s *Service) RegisterUser(ctx context.Context, user model.TelegramUser) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.userRepo.Upsert(ctx, user)
	})
}

// SetWinnerClaimed ...
func (s *Service) SetWinnerClaimed(ctx context.Context, adminUserID int64, winnerID int64, claimed bool) error {
	return s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.winnerRepo.SetClaimed(ctx, adminUserID, winnerID, claimed)
	})
}

// GetStats ...
func (s *Service) GetStats(ctx context.Context, adminUserID int64) (repository.LotteryStats, error) {
	ctx = s.provider.Readonly(ctx)
	return s.lotteryRepo.GetStats(ctx, adminUserID)
}
