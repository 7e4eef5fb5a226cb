package draw

import "errors"

// ErrLotteryNotFound ...
var ErrLotteryNotFound = errors.New("lottery not found")

// ErrInvalidTransition ...
var ErrInvalidTransition = errors.New("invalid lottery status transition")

// ErrNoPrizesConfigured ...
var ErrNoPrizesConfigured = errors.New("lottery has no prizes configured")

// ErrAlreadyDrawing is returned when a second draw is attempted while one
// is already in flight for the same lottery.
var ErrAlreadyDrawing = errors.New("a draw is already in progress for this lottery")

// ErrNotAParticipant ...
var ErrNotAParticipant = errors.New("user is not a participant of this lottery")

// ErrTooManyWinners ...
var ErrTooManyWinners = errors.New("winner count exceeds total prize capacity")

// ErrDuplicateWinner is returned when a manual winner list names the same
// user more than once. A user can win at most one prize per lottery.
var ErrDuplicateWinner = errors.New("winner list names the same user twice")

// ErrLotteryNotOpen ...
var ErrLotteryNotOpen = errors.New("lottery is not open for participation")

// ErrLotteryFull ...
var ErrLotteryFull = errors.New("lottery reached its participant cap")

// ErrAlreadyParticipated ...
var ErrAlreadyParticipated = errors.New("user already participates in this lottery")

// ErrInvalidTimeRange ...
var ErrInvalidTimeRange = errors.New("lottery start time must be before end time")
