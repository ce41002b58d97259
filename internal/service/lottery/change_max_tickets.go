package lottery

import (
	"context"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
)

// ChangeMaxTickets Сменить количество билетов до начала раунда
func (s *serv) ChangeMaxTickets(ctx context.Context, req model.ChangeMaxTickets) (*model.CallResult, error) {
	return s.apply(ctx, lottery.EntrypointChangeMaxTickets, req.Amount, req.NewMax,
		func(round *lottery.Round, call lottery.Call) ([]lottery.Transfer, error) {
			return nil, round.ChangeMaxTickets(call, req.NewMax)
		})
}
