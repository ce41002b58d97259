package model

import (
	"lottery_backend/internal/lottery"
	"time"
)

// Статистика лотереи
type Stats struct {
	TotalCalls    int            // Сколько всего вызовов
	RejectedCalls map[string]int // Отклоненные вызовы по коду ошибки
	TicketsSold   uint64         // Продано билетов за все раунды
	TotalPaid     lottery.Mutez  // Сумма, приложенная к успешным вызовам
	TotalRefunded lottery.Mutez  // Сумма возвращенной сдачи
	TotalPayout   lottery.Mutez  // Сумма выплат победителям

	Draws      []DrawLog // Последние розыгрыши
	WindowSize int       // Сколько розыгрышей хранить
}

// Лог розыгрыша
type DrawLog struct {
	Timestamp    time.Time
	RandomNumber uint64
	Winner       lottery.Address
	Payout       lottery.Mutez
}
