package service

import (
	"context"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
)

type LotteryService interface {
	Init(ctx context.Context, admin lottery.Address) error

	BuyTicket(ctx context.Context, req model.BuyTicket) (*model.CallResult, error)
	ChangeTicketCost(ctx context.Context, req model.ChangeTicketCost) (*model.CallResult, error)
	ChangeMaxTickets(ctx context.Context, req model.ChangeMaxTickets) (*model.CallResult, error)
	EndGame(ctx context.Context, req model.EndGame) (*model.CallResult, error)
	Reject(ctx context.Context, amount lottery.Mutez) error

	State(ctx context.Context) (*lottery.Round, error)
	Transfers(ctx context.Context, limit uint64) ([]model.TransferRecord, error)
	Stats() model.Stats
}
