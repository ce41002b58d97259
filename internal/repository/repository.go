package repository

import (
	"context"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
)

type RoundRepository interface {
	CreateRound(ctx context.Context, round *lottery.Round) error
	GetRound(ctx context.Context) (*lottery.Round, error)
	GetRoundForUpdate(ctx context.Context) (*lottery.Round, error)
	UpdateRound(ctx context.Context, round *lottery.Round) error
}

type TransferRepository interface {
	CreateTransfer(ctx context.Context, transfer *model.TransferRecord) error
	ListTransfers(ctx context.Context, limit uint64) ([]model.TransferRecord, error)
}

type StatsRepository interface {
	Stats() model.Stats
	UpdateState(call model.CallLog)
}
