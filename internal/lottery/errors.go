package lottery

import "errors"

// Ошибки состояния лотереи. Текст совпадает с сообщениями контракта
var (
	ErrInsufficientTickets = errors.New("NO TICKETS AVAILABLE")
	ErrInsufficientPayment = errors.New("INVALID AMOUNT")
	ErrRoundAlreadyStarted = errors.New("GAME HAS ALREADY STARTED")
	ErrNoChangeRequested   = errors.New("NO CHANGE REQUESTED")
	ErrNotAuthorized       = errors.New("NOT_AUTHORISED")
	ErrGameNotYetEnded     = errors.New("GAME IS YET TO END")
	ErrWinnerLookupFailed  = errors.New("WINNER NOT FOUND")
	ErrOperationNotAllowed = errors.New("NOT ALLOWED")
	ErrBalanceOverflow     = errors.New("BALANCE OVERFLOW")

	errNoChangeInCost       = noChangeError("NO CHANGE IN COST")
	errNoChangeInMaxTickets = noChangeError("NO CHANGE IN MAX TICKETS")
)

// noChangeError - конкретное сообщение для ErrNoChangeRequested
type noChangeError string

func (e noChangeError) Error() string {
	return string(e)
}

func (e noChangeError) Is(target error) bool {
	return target == ErrNoChangeRequested
}
