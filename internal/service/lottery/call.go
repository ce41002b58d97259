package lottery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/middleware"
	"lottery_backend/internal/model"

	"github.com/google/uuid"
)

// ErrNoCaller - в контексте нет адреса вызывающего
var ErrNoCaller = errors.New("caller address not found in context")

// operation - применение одной точки входа к раунду
type operation func(round *lottery.Round, call lottery.Call) ([]lottery.Transfer, error)

// apply выполняет вызов атомарно: блокировка раунда, операция, сохранение
// раунда и журнала переводов в одной транзакции. При ошибке ничего не меняется
func (s *serv) apply(ctx context.Context, name string, amount lottery.Mutez, arg uint64, op operation) (*model.CallResult, error) {
	// Получаем адрес вызывающего
	sender, ok := middleware.AddressFromContext(ctx)
	if !ok {
		return nil, ErrNoCaller
	}
	call := lottery.Call{Sender: lottery.Address(sender), Amount: amount}

	var res *model.CallResult

	// Начало транзакции, где выполняется вызов
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		round, err := s.roundRepo.GetRoundForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("get round: %w", err)
		}

		transfers, err := op(round, call)
		if err != nil {
			return err
		}

		err = s.roundRepo.UpdateRound(txCtx, round)
		if err != nil {
			return fmt.Errorf("update round: %w", err)
		}

		// Записываем инструкции переводов, их выполняет хост
		records := make([]model.TransferRecord, 0, len(transfers))
		for _, t := range transfers {
			record := model.TransferRecord{
				ID:        uuid.New(),
				Operation: name,
				To:        t.To,
				Amount:    t.Amount,
				CreatedAt: s.now(),
			}
			err = s.transferRepo.CreateTransfer(txCtx, &record)
			if err != nil {
				return fmt.Errorf("create transfer: %w", err)
			}
			records = append(records, record)
		}

		res = &model.CallResult{Round: *round, Transfers: records}
		return nil
	})
	if err != nil {
		res = nil
	}

	s.observe(ctx, model.CallLog{
		Operation: name,
		Sender:    call.Sender,
		Amount:    amount,
		Arg:       arg,
		Result:    res,
		Err:       err,
	})

	return res, err
}

// observe - статистика, метрики и лог после вызова
func (s *serv) observe(ctx context.Context, call model.CallLog) {
	s.statsRepo.UpdateState(call)
	s.metrics.ObserveCall(call.Operation, call.Err)

	attrs := []any{
		slog.String("operation", call.Operation),
		slog.String("sender", string(call.Sender)),
		slog.Uint64("amount", uint64(call.Amount)),
		slog.Uint64("arg", call.Arg),
	}

	if call.Err != nil {
		code := lottery.Code(call.Err)
		if code == "" {
			s.logger.ErrorContext(ctx, "lottery call failed", append(attrs, slog.Any("error", call.Err))...)
			return
		}
		s.logger.InfoContext(ctx, "lottery call rejected", append(attrs, slog.String("code", code))...)
		return
	}

	s.metrics.ObserveRound(&call.Result.Round)
	for _, t := range call.Result.Transfers {
		s.metrics.ObserveTransfer(call.Operation, t.Amount)
	}
	s.logger.InfoContext(ctx, "lottery call applied",
		append(attrs, slog.Int("transfers", len(call.Result.Transfers)))...)
}
