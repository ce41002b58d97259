package lottery

import (
	"context"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// FakeRoundRepo - раунд в памяти
type FakeRoundRepo struct {
	round     *lottery.Round
	GetErr    error
	UpdateErr error
	locked    int
}

func (f *FakeRoundRepo) CreateRound(ctx context.Context, round *lottery.Round) error {
	if f.round == nil {
		f.round = round.Clone()
	}
	return nil
}

func (f *FakeRoundRepo) GetRound(ctx context.Context) (*lottery.Round, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.round.Clone(), nil
}

func (f *FakeRoundRepo) GetRoundForUpdate(ctx context.Context) (*lottery.Round, error) {
	f.locked++
	return f.GetRound(ctx)
}

func (f *FakeRoundRepo) UpdateRound(ctx context.Context, round *lottery.Round) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.round = round.Clone()
	return nil
}

// FakeTransferRepo - журнал переводов в памяти
type FakeTransferRepo struct {
	transfers []model.TransferRecord
	CreateErr error
}

func (f *FakeTransferRepo) CreateTransfer(ctx context.Context, transfer *model.TransferRecord) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.transfers = append(f.transfers, *transfer)
	return nil
}

func (f *FakeTransferRepo) ListTransfers(ctx context.Context, limit uint64) ([]model.TransferRecord, error) {
	if uint64(len(f.transfers)) < limit {
		limit = uint64(len(f.transfers))
	}
	return f.transfers[:limit], nil
}

// FakeTxManager откатывает состояние фейковых репозиториев при ошибке
type FakeTxManager struct {
	rounds    *FakeRoundRepo
	transfers *FakeTransferRepo
}

func (m *FakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var round *lottery.Round
	if m.rounds.round != nil {
		round = m.rounds.round.Clone()
	}
	transfers := append([]model.TransferRecord(nil), m.transfers.transfers...)

	err := fn(ctx)
	if err != nil {
		m.rounds.round = round
		m.transfers.transfers = transfers
	}
	return err
}

func (m *FakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
