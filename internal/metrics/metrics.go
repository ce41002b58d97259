package metrics

import (
	"lottery_backend/internal/lottery"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lottery"

// Lottery - метрики лотереи
type Lottery struct {
	calls            *prometheus.CounterVec
	ticketsSold      prometheus.Counter
	transferred      *prometheus.CounterVec
	ticketsAvailable prometheus.Gauge
	pool             prometheus.Gauge
	players          prometheus.Gauge
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *Lottery {
	f := promauto.With(reg)
	return &Lottery{
		calls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Calls by operation and result code.",
		}, []string{"operation", "result"}),
		ticketsSold: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_sold_total",
			Help:      "Tickets sold across all rounds.",
		}),
		transferred: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transferred_mutez_total",
			Help:      "Mutez instructed for transfer, by operation.",
		}, []string{"operation"}),
		ticketsAvailable: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tickets_available",
			Help:      "Tickets left in the current round.",
		}),
		pool: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_mutez",
			Help:      "Balance held by the lottery.",
		}),
		players: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "players",
			Help:      "Tickets sold in the current round.",
		}),
	}
}

// ObserveCall - учет вызова. result: ok, код ошибки лотереи или internal
func (m *Lottery) ObserveCall(operation string, err error) {
	result := "ok"
	if err != nil {
		result = lottery.Code(err)
		if result == "" {
			result = "internal"
		}
	}
	m.calls.WithLabelValues(operation, result).Inc()
}

func (m *Lottery) ObserveTicketsSold(n uint64) {
	m.ticketsSold.Add(float64(n))
}

func (m *Lottery) ObserveTransfer(operation string, amount lottery.Mutez) {
	m.transferred.WithLabelValues(operation).Add(float64(amount))
}

// ObserveRound - снимок состояния раунда после успешного вызова
func (m *Lottery) ObserveRound(round *lottery.Round) {
	m.ticketsAvailable.Set(float64(round.TicketsAvailable))
	m.pool.Set(float64(round.Balance))
	m.players.Set(float64(len(round.Players)))
}
