package lottery

import (
	"log/slog"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/service"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	roundRepo    repository.RoundRepository
	transferRepo repository.TransferRepository
	statsRepo    repository.StatsRepository
	txManager    trm.Manager
	metrics      *metrics.Lottery
	logger       *slog.Logger
	now          func() time.Time
}

// NewLotteryService Создать сервис лотереи
func NewLotteryService(
	roundRepo repository.RoundRepository,
	transferRepo repository.TransferRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	metrics *metrics.Lottery,
	logger *slog.Logger,
) service.LotteryService {
	return &serv{
		roundRepo:    roundRepo,
		transferRepo: transferRepo,
		statsRepo:    statsRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}
