package lottery

import "errors"

var codes = []struct {
	err  error
	code string
}{
	{ErrInsufficientTickets, "insufficient_tickets"},
	{ErrInsufficientPayment, "insufficient_payment"},
	{ErrRoundAlreadyStarted, "round_already_started"},
	{ErrNoChangeRequested, "no_change_requested"},
	{ErrNotAuthorized, "not_authorized"},
	{ErrGameNotYetEnded, "game_not_yet_ended"},
	{ErrWinnerLookupFailed, "winner_lookup_failed"},
	{ErrOperationNotAllowed, "operation_not_allowed"},
	{ErrBalanceOverflow, "balance_overflow"},
}

// Code возвращает машинный код ошибки лотереи. Для прочих ошибок - пустая строка
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
