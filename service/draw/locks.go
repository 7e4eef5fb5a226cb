package draw

import "sync"

// lockTable holds the exclusive per-lottery draw markers. A marker is held
// for the whole duration of a draw and released unconditionally, success or
// failure.
type lockTable struct {
	mu   sync.Mutex
	held map[int64]struct{}
}

func newLockTable() *lockTable {
	return &lockTable{
		held: map[int64]struct{}{},
	}
}

// tryAcquire returns false when the lottery is already being drawn.
func (t *lockTable) tryAcquire(lotteryID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, ok := t.held[lotteryID]
	if ok {
		return false
	}
	t.held[lotteryID] = struct{}{}
	return true
}

func (t *lockTable) release(lotteryID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.held, lotteryID)
}
