package lottery

import (
	"fmt"
	"math/bits"
)

const (
	// Значения раунда при создании
	defaultTicketCost       Mutez  = 1_000_000 // 1 tez
	defaultTicketsAvailable uint64 = 6
	defaultStartingTickets  uint64 = 6
	defaultMaxTickets       uint64 = 5
)

// Address - адрес участника
type Address string

// Mutez - денежная сумма в минимальных единицах
type Mutez uint64

// Transfer - инструкция хосту перевести Amount на адрес To
type Transfer struct {
	To     Address
	Amount Mutez
}

// Call - данные вызова, которые передает хост: кто вызвал и сколько приложил
type Call struct {
	Sender Address
	Amount Mutez
}

// Round - состояние лотереи. Один экземпляр живет все время и переиспользуется между розыгрышами
type Round struct {
	// Players - индекс билета -> адрес покупателя. Индексы плотные: 0..len-1
	Players          []Address
	TicketCost       Mutez
	TicketsAvailable uint64
	StartingTickets  uint64
	MaxTickets       uint64
	Admin            Address
	// Balance - пул, который удерживает лотерея
	Balance Mutez
}

// NewRound создает раунд с дефолтными значениями.
// MaxTickets=5 при 6 доступных билетах сохранено как есть
func NewRound(admin Address) *Round {
	return &Round{
		Players:          []Address{},
		TicketCost:       defaultTicketCost,
		TicketsAvailable: defaultTicketsAvailable,
		StartingTickets:  defaultStartingTickets,
		MaxTickets:       defaultMaxTickets,
		Admin:            admin,
	}
}

// Started - продан ли в раунде хотя бы один билет
func (r *Round) Started() bool {
	return r.TicketsAvailable != r.StartingTickets
}

// Clone возвращает глубокую копию раунда
func (r *Round) Clone() *Round {
	c := *r
	c.Players = append([]Address(nil), r.Players...)
	if c.Players == nil {
		c.Players = []Address{}
	}
	return &c
}

// BuyTicket - покупка numTickets билетов.
// Проверяется только цена одного билета, недоплата за несколько билетов принимается
func (r *Round) BuyTicket(call Call, numTickets uint64) ([]Transfer, error) {
	if r.TicketsAvailable < numTickets {
		return nil, ErrInsufficientTickets
	}
	if call.Amount < r.TicketCost {
		return nil, ErrInsufficientPayment
	}

	balance, err := r.credit(call.Amount)
	if err != nil {
		return nil, err
	}

	// Сдача возвращается, только если заплачено больше стоимости всех билетов
	var transfers []Transfer
	if extra, ok := r.overpayment(call.Amount, numTickets); ok {
		balance -= extra
		transfers = append(transfers, Transfer{To: call.Sender, Amount: extra})
	}

	for i := uint64(0); i < numTickets; i++ {
		r.Players = append(r.Players, call.Sender)
	}
	r.TicketsAvailable -= numTickets
	r.Balance = balance

	return transfers, nil
}

// ChangeTicketCost - смена цены билета до начала раунда. Проверки вызывающего нет
func (r *Round) ChangeTicketCost(call Call, newCost Mutez) error {
	if r.Started() {
		return ErrRoundAlreadyStarted
	}
	if newCost == r.TicketCost {
		return errNoChangeInCost
	}

	balance, err := r.credit(call.Amount)
	if err != nil {
		return err
	}

	r.TicketCost = newCost
	r.Balance = balance
	return nil
}

// ChangeMaxTickets - смена количества билетов до начала раунда.
// StartingTickets и TicketsAvailable не меняются, новое значение применится после розыгрыша
func (r *Round) ChangeMaxTickets(call Call, newMax uint64) error {
	if r.Started() {
		return ErrRoundAlreadyStarted
	}
	if newMax == r.MaxTickets {
		return errNoChangeInMaxTickets
	}

	balance, err := r.credit(call.Amount)
	if err != nil {
		return err
	}

	r.MaxTickets = newMax
	r.Balance = balance
	return nil
}

// EndGame - розыгрыш. Победитель players[randomNumber % MaxTickets] получает весь пул, раунд сбрасывается
func (r *Round) EndGame(call Call, randomNumber uint64) ([]Transfer, error) {
	if call.Sender != r.Admin {
		return nil, ErrNotAuthorized
	}
	if r.TicketsAvailable != 0 {
		return nil, ErrGameNotYetEnded
	}

	winner, err := r.winner(randomNumber)
	if err != nil {
		return nil, err
	}

	pool, err := r.credit(call.Amount)
	if err != nil {
		return nil, err
	}

	r.Players = []Address{}
	r.TicketsAvailable = r.MaxTickets
	r.Balance = 0

	return []Transfer{{To: winner, Amount: pool}}, nil
}

// Default - любой вызов, не подходящий под точки входа, отклоняется
func (r *Round) Default(Call) error {
	return ErrOperationNotAllowed
}

func (r *Round) winner(randomNumber uint64) (Address, error) {
	if r.MaxTickets == 0 {
		return "", fmt.Errorf("%w: max tickets is zero", ErrWinnerLookupFailed)
	}
	idx := randomNumber % r.MaxTickets
	if idx >= uint64(len(r.Players)) {
		return "", fmt.Errorf("%w: no ticket %d (sold %d)", ErrWinnerLookupFailed, idx, len(r.Players))
	}
	return r.Players[idx], nil
}

// credit возвращает баланс с учетом приложенной суммы, не меняя состояние
func (r *Round) credit(amount Mutez) (Mutez, error) {
	sum, carry := bits.Add64(uint64(r.Balance), uint64(amount), 0)
	if carry != 0 {
		return 0, ErrBalanceOverflow
	}
	return Mutez(sum), nil
}

// overpayment - сколько вернуть покупателю. ok=false, если возвращать нечего
func (r *Round) overpayment(amount Mutez, numTickets uint64) (Mutez, bool) {
	hi, total := bits.Mul64(uint64(r.TicketCost), numTickets)
	if hi != 0 || Mutez(total) >= amount {
		return 0, false
	}
	return amount - Mutez(total), true
}
