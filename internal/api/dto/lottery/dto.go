package lottery

type BuyTicketRequest struct {
	NumTickets uint64 `json:"num_tickets"` // Количество билетов
	Amount     uint64 `json:"amount"`      // Приложенная сумма в mutez
}

type ChangeTicketCostRequest struct {
	NewCost uint64 `json:"new_cost"` // Новая цена билета в mutez
	Amount  uint64 `json:"amount"`
}

type ChangeMaxTicketsRequest struct {
	NewMax uint64 `json:"new_max"` // Новое количество билетов
	Amount uint64 `json:"amount"`
}

type EndGameRequest struct {
	RandomNumber uint64 `json:"random_number"` // Случайное число для выбора победителя
	Amount       uint64 `json:"amount"`
}

type DefaultRequest struct {
	Amount uint64 `json:"amount"`
}

type RoundResponse struct {
	Players          []string `json:"players"`           // Индекс в массиве - номер билета
	TicketCost       uint64   `json:"ticket_cost"`       // Цена билета
	TicketsAvailable uint64   `json:"tickets_available"` // Осталось билетов
	StartingTickets  uint64   `json:"starting_tickets"`  // Билетов на старте раунда
	MaxTickets       uint64   `json:"max_tickets"`       // Максимум билетов
	Admin            string   `json:"admin"`
	Balance          uint64   `json:"balance"` // Пул
}

type TransferResponse struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	To        string `json:"to"`
	Amount    uint64 `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type CallResponse struct {
	Round     RoundResponse      `json:"round"`     // Состояние после вызова
	Transfers []TransferResponse `json:"transfers"` // Переводы, которые должен выполнить хост
}

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

type DrawResponse struct {
	Timestamp    string `json:"timestamp"`
	RandomNumber uint64 `json:"random_number"`
	Winner       string `json:"winner"`
	Payout       uint64 `json:"payout"`
}

type StatsResponse struct {
	TotalCalls    int            `json:"total_calls"`
	RejectedCalls map[string]int `json:"rejected_calls"`
	TicketsSold   uint64         `json:"tickets_sold"`
	TotalPaid     uint64         `json:"total_paid"`
	TotalRefunded uint64         `json:"total_refunded"`
	TotalPayout   uint64         `json:"total_payout"`
	Draws         []DrawResponse `json:"draws"`
}
