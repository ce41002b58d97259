package lottery

import (
	"context"
	"lottery_backend/internal/lottery"
)

// Reject Неизвестный вызов или перевод без точки входа. Всегда ошибка
func (s *serv) Reject(ctx context.Context, amount lottery.Mutez) error {
	_, err := s.apply(ctx, lottery.EntrypointDefault, amount, 0,
		func(round *lottery.Round, call lottery.Call) ([]lottery.Transfer, error) {
			return nil, round.Default(call)
		})
	return err
}
