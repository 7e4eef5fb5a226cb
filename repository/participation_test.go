package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lotterybot/lotterybot/model"
)

func TestParticipation_Insert_Duplicate(t *testing.T) {
	rt := newRepoTest()
	repo := NewParticipation()

	lotteryID := rt.insertLottery(t, activeLottery(11, "Spring"))

	rt.transact(t, func(ctx context.Context) error {
		_, err := repo.Insert(ctx, model.Participation{LotteryID: lotteryID, UserID: 101})
		return err
	})

	err := rt.provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := repo.Insert(ctx, model.Participation{LotteryID: lotteryID, UserID: 101})
		return err
	})
	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, IsDuplicateEntry(err))
}

func TestParticipation_Exists_Count(t *testing.T) {
	rt := newRepoTest()
	repo := NewParticipation()

	lotteryID := rt.insertLottery(t, activeLottery(11, "Spring"))

	rt.transact(t, func(ctx context.Context) error {
		_, err := repo.Insert(ctx, model.Participation{LotteryID: lotteryID, UserID: 101})
		if err != nil {
			return err
		}
		_, err = repo.Insert(ctx, model.Participation{LotteryID: lotteryID, UserID: 102})
		return err
	})

	readCtx := rt.provider.Readonly(newContext())

	exists, err := repo.Exists(readCtx, lotteryID, 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, exists)

	exists, err = repo.Exists(readCtx, lotteryID, 103)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, exists)

	count, err := repo.Count(readCtx, lotteryID)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)
}

func TestParticipation_ListByLottery(t *testing.T) {
	rt := newRepoTest()
	repo := NewParticipation()

	lotteryID := rt.insertLottery(t, activeLottery(11, "Spring"))

	rt.transact(t, func(ctx context.Context) error {
		_, err := repo.Insert(ctx, model.Participation{LotteryID: lotteryID, UserID: 102})
		if err != nil {
			return err
		}
		_, err = repo.Insert(ctx, model.Participation{LotteryID: lotteryID, UserID: 101})
		return err
	})

	readCtx := rt.provider.Readonly(newContext())

	entries, err := repo.ListByLottery(readCtx, 11, lotteryID)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, int64(102), entries[0].UserID)
	assert.Equal(t, int64(101), entries[1].UserID)

	// scoped by admin user
	entries, err = repo.ListByLottery(readCtx, 12, lotteryID)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(entries))
}

func TestParticipation_ListByUser(t *testing.T) {
	rt := newRepoTest()
	repo := NewParticipation()

	springID := rt.insertLottery(t, activeLottery(11, "Spring"))

	summer := activeLottery(11, "Summer")
	summer.Status = model.LotteryStatusFinished
	summerID := rt.insertLottery(t, summer)

	otherID := rt.insertLottery(t, activeLottery(12, "Other Tenant"))

	rt.transact(t, func(ctx context.Context) error {
		for _, lotteryID := range []int64{springID, summerID, otherID} {
			_, err := repo.Insert(ctx, model.Participation{LotteryID: lotteryID, UserID: 101})
			if err != nil {
				return err
			}
		}
		return nil
	})

	readCtx := rt.provider.Readonly(newContext())

	details, err := repo.ListByUser(readCtx, 11, 101)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(details))

	titles := map[string]model.LotteryStatus{}
	for _, detail := range details {
		titles[detail.LotteryTitle] = detail.LotteryStatus
	}
	assert.Equal(t, map[string]model.LotteryStatus{
		"Spring": model.LotteryStatusActive,
		"Summer": model.LotteryStatusFinished,
	}, titles)
}
