package lottery

// Точки входа, которые может вызвать хост
const (
	EntrypointBuyTicket        = "buy_ticket"
	EntrypointChangeTicketCost = "change_ticket_cost"
	EntrypointChangeMaxTickets = "change_max_tickets"
	EntrypointEndGame          = "end_game"
	EntrypointDefault          = "default"
)

// Invoke вызывает точку входа по имени. arg - единственный аргумент операции
// (количество билетов, цена, максимум билетов или случайное число).
// Неизвестное имя уходит в Default
func (r *Round) Invoke(entrypoint string, call Call, arg uint64) ([]Transfer, error) {
	switch entrypoint {
	case EntrypointBuyTicket:
		return r.BuyTicket(call, arg)
	case EntrypointChangeTicketCost:
		return nil, r.ChangeTicketCost(call, Mutez(arg))
	case EntrypointChangeMaxTickets:
		return nil, r.ChangeMaxTickets(call, arg)
	case EntrypointEndGame:
		return r.EndGame(call, arg)
	default:
		return nil, r.Default(call)
	}
}
