package stats_repo

import (
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/model"
	"sync"
	"time"
)

const (
	// windowSize Сколько последних розыгрышей хранить
	windowSize = 100
)

// Реализация репозитория для хранения статистики лотереи в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	state model.Stats
	now   func() time.Time
}

// NewStatsRepository Конструктор репозитория с пустой статистикой
func NewStatsRepository() *StatsRepo {
	return &StatsRepo{
		state: model.Stats{
			RejectedCalls: make(map[string]int),
			Draws:         make([]model.DrawLog, 0),
			WindowSize:    windowSize,
		},
		now: time.Now,
	}
}

// Stats Получение текущей статистики
// Возвращает копию, которую можно читать без блокировки
func (r *StatsRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := r.state
	stats.RejectedCalls = make(map[string]int, len(r.state.RejectedCalls))
	for k, v := range r.state.RejectedCalls {
		stats.RejectedCalls[k] = v
	}
	stats.Draws = append([]model.DrawLog(nil), r.state.Draws...)
	return stats
}

// UpdateState Обновление статистики после вызова
func (r *StatsRepo) UpdateState(call model.CallLog) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalCalls++

	if call.Err != nil {
		code := lottery.Code(call.Err)
		if code == "" {
			code = "internal"
		}
		r.state.RejectedCalls[code]++
		return
	}

	r.state.TotalPaid += call.Amount

	switch call.Operation {
	case lottery.EntrypointBuyTicket:
		r.state.TicketsSold += call.Arg
		if call.Result != nil {
			for _, t := range call.Result.Transfers {
				r.state.TotalRefunded += t.Amount
			}
		}
	case lottery.EntrypointEndGame:
		if call.Result == nil || len(call.Result.Transfers) == 0 {
			return
		}
		payout := call.Result.Transfers[0]
		r.state.TotalPayout += payout.Amount
		r.state.Draws = append(r.state.Draws, model.DrawLog{
			Timestamp:    r.now(),
			RandomNumber: call.Arg,
			Winner:       payout.To,
			Payout:       payout.Amount,
		})

		// Поддерживаем размер окна
		if len(r.state.Draws) > r.state.WindowSize {
			r.state.Draws = r.state.Draws[1:]
		}
	}
}
