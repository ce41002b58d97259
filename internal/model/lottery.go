package model

import (
	"lottery_backend/internal/lottery"
	"time"

	"github.com/google/uuid"
)

type BuyTicket struct {
	NumTickets uint64
	Amount     lottery.Mutez
}

type ChangeTicketCost struct {
	NewCost lottery.Mutez
	Amount  lottery.Mutez
}

type ChangeMaxTickets struct {
	NewMax uint64
	Amount lottery.Mutez
}

type EndGame struct {
	RandomNumber uint64
	Amount       lottery.Mutez
}

// TransferRecord - инструкция перевода, записанная в журнал
type TransferRecord struct {
	ID        uuid.UUID
	Operation string
	To        lottery.Address
	Amount    lottery.Mutez
	CreatedAt time.Time
}

// CallResult - состояние после вызова и переводы, которые он породил
type CallResult struct {
	Round     lottery.Round
	Transfers []TransferRecord
}

// CallLog - данные вызова для статистики
type CallLog struct {
	Operation string
	Sender    lottery.Address
	Amount    lottery.Mutez
	Arg       uint64
	Result    *CallResult
	Err       error
}
