package lottery

import (
	"context"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
)

// BuyTicket Купить билеты. Сдача возвращается переводом вызывающему
func (s *serv) BuyTicket(ctx context.Context, req model.BuyTicket) (*model.CallResult, error) {
	res, err := s.apply(ctx, lottery.EntrypointBuyTicket, req.Amount, req.NumTickets,
		func(round *lottery.Round, call lottery.Call) ([]lottery.Transfer, error) {
			return round.BuyTicket(call, req.NumTickets)
		})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveTicketsSold(req.NumTickets)
	return res, nil
}
