package lottery

import (
	"context"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
)

// EndGame Розыгрыш. Вызывает только админ, когда проданы все билеты.
// Случайное число приходит снаружи
func (s *serv) EndGame(ctx context.Context, req model.EndGame) (*model.CallResult, error) {
	return s.apply(ctx, lottery.EntrypointEndGame, req.Amount, req.RandomNumber,
		func(round *lottery.Round, call lottery.Call) ([]lottery.Transfer, error) {
			return round.EndGame(call, req.RandomNumber)
		})
}
