package lottery

import (
	"context"
	"errors"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
)

// Init Создать раунд с дефолтными значениями, если его еще нет
func (s *serv) Init(ctx context.Context, admin lottery.Address) error {
	if admin == "" {
		return errors.New("admin address is empty")
	}

	err := s.roundRepo.CreateRound(ctx, lottery.NewRound(admin))
	if err != nil {
		return err
	}

	round, err := s.roundRepo.GetRound(ctx)
	if err != nil {
		return err
	}
	if round.Admin != admin {
		s.logger.WarnContext(ctx, "stored lottery admin differs from config",
			"stored", string(round.Admin), "configured", string(admin))
	}
	s.metrics.ObserveRound(round)

	return nil
}

// State Текущее состояние раунда
func (s *serv) State(ctx context.Context) (*lottery.Round, error) {
	return s.roundRepo.GetRound(ctx)
}

// Transfers Последние инструкции переводов
func (s *serv) Transfers(ctx context.Context, limit uint64) ([]model.TransferRecord, error) {
	return s.transferRepo.ListTransfers(ctx, limit)
}

// Stats Статистика с момента запуска
func (s *serv) Stats() model.Stats {
	return s.statsRepo.Stats()
}
