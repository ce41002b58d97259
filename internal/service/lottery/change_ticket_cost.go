package lottery

import (
	"context"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
)

// ChangeTicketCost Сменить цену билета до начала раунда
func (s *serv) ChangeTicketCost(ctx context.Context, req model.ChangeTicketCost) (*model.CallResult, error) {
	return s.apply(ctx, lottery.EntrypointChangeTicketCost, req.Amount, uint64(req.NewCost),
		func(round *lottery.Round, call lottery.Call) ([]lottery.Transfer, error) {
			return nil, round.ChangeTicketCost(call, req.NewCost)
		})
}
