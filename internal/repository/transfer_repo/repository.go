package transfer_repo

import (
	"context"
	"fmt"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "lottery_transfers"
	colID        = "id"
	colOperation = "operation"
	colTo        = "destination"
	colAmount    = "amount"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTransferRepository(dbc *pgxpool.Pool) repository.TransferRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateTransfer - записывает инструкцию перевода в журнал.
// Запись идет в той же транзакции, что и изменение раунда
func (r *repo) CreateTransfer(ctx context.Context, transfer *model.TransferRecord) error {
	if uint64(transfer.Amount) > math.MaxInt64 {
		return fmt.Errorf("transfer amount %d does not fit into bigint", transfer.Amount)
	}

	query := sq.Insert(table).
		Columns(colID, colOperation, colTo, colAmount, colCreatedAt).
		Values(transfer.ID, transfer.Operation, string(transfer.To), int64(transfer.Amount), transfer.CreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}

	return nil
}

// ListTransfers - последние limit переводов, новые первыми
func (r *repo) ListTransfers(ctx context.Context, limit uint64) ([]model.TransferRecord, error) {
	query := sq.Select(colID, colOperation, colTo, colAmount, colCreatedAt).
		From(table).
		OrderBy(colCreatedAt+" DESC", colID).
		Limit(limit).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	transfers := make([]model.TransferRecord, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			operation string
			to        string
			amount    int64
			createdAt time.Time
		)
		if err := rows.Scan(&id, &operation, &to, &amount, &createdAt); err != nil {
			return nil, err
		}
		transfers = append(transfers, model.TransferRecord{
			ID:        id,
			Operation: operation,
			To:        lottery.Address(to),
			Amount:    lottery.Mutez(amount),
			CreatedAt: createdAt,
		})
	}

	return transfers, rows.Err()
}
