package round_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lottery_backend/internal/lottery"
	"lottery_backend/internal/repository"
	"math"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table               = "lottery_round"
	colID               = "id"
	colAdmin            = "admin"
	colPlayers          = "players"
	colTicketCost       = "ticket_cost"
	colTicketsAvailable = "tickets_available"
	colStartingTickets  = "starting_tickets"
	colMaxTickets       = "max_tickets"
	colBalance          = "balance"
	colUpdatedAt        = "updated_at"

	// Раунд в системе один
	roundID = 1
)

// ErrRoundNotFound - раунд еще не создан
var ErrRoundNotFound = errors.New("lottery round not found")

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewRoundRepository(dbc *pgxpool.Pool) repository.RoundRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateRound - создает раунд, если его еще нет. Существующий раунд не трогается
func (r *repo) CreateRound(ctx context.Context, round *lottery.Round) error {
	values, err := roundValues(round)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colID, colAdmin, colPlayers, colTicketCost, colTicketsAvailable, colStartingTickets, colMaxTickets, colBalance).
		Values(append([]interface{}{roundID, string(round.Admin)}, values...)...).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("create round: %w", err)
	}

	return nil
}

// GetRound - чтение раунда без блокировки
func (r *repo) GetRound(ctx context.Context) (*lottery.Round, error) {
	return r.getRound(ctx, selectRound())
}

// GetRoundForUpdate - чтение раунда с блокировкой строки до конца транзакции.
// Так вызовы к лотерее выполняются строго по одному
func (r *repo) GetRoundForUpdate(ctx context.Context) (*lottery.Round, error) {
	return r.getRound(ctx, selectRound().Suffix("FOR UPDATE"))
}

// UpdateRound - сохраняет состояние раунда целиком
func (r *repo) UpdateRound(ctx context.Context, round *lottery.Round) error {
	values, err := roundValues(round)
	if err != nil {
		return err
	}

	query := sq.Update(table).
		Set(colPlayers, values[0]).
		Set(colTicketCost, values[1]).
		Set(colTicketsAvailable, values[2]).
		Set(colStartingTickets, values[3]).
		Set(colMaxTickets, values[4]).
		Set(colBalance, values[5]).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colID: roundID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("update round: %w", err)
	}

	if res.RowsAffected() == 0 {
		return ErrRoundNotFound
	}

	return nil
}

func selectRound() sq.SelectBuilder {
	return sq.Select(colAdmin, colPlayers, colTicketCost, colTicketsAvailable, colStartingTickets, colMaxTickets, colBalance).
		From(table).
		Where(sq.Eq{colID: roundID}).
		PlaceholderFormat(sq.Dollar)
}

func (r *repo) getRound(ctx context.Context, query sq.SelectBuilder) (*lottery.Round, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var admin string
	var playersJSON []byte
	var ticketCost, available, starting, maxTickets, balance int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&admin, &playersJSON, &ticketCost, &available, &starting, &maxTickets, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("get round: %w", err)
	}

	// Игроки хранятся jsonb массивом адресов, индекс в массиве - номер билета
	var players []string
	err = json.Unmarshal(playersJSON, &players)
	if err != nil {
		return nil, fmt.Errorf("decode players: %w", err)
	}

	round := &lottery.Round{
		Players:          make([]lottery.Address, len(players)),
		TicketCost:       lottery.Mutez(ticketCost),
		TicketsAvailable: uint64(available),
		StartingTickets:  uint64(starting),
		MaxTickets:       uint64(maxTickets),
		Admin:            lottery.Address(admin),
		Balance:          lottery.Mutez(balance),
	}
	for i, p := range players {
		round.Players[i] = lottery.Address(p)
	}

	return round, nil
}

// roundValues - значения изменяемых колонок в порядке:
// players, ticket_cost, tickets_available, starting_tickets, max_tickets, balance
func roundValues(round *lottery.Round) ([]interface{}, error) {
	players := make([]string, len(round.Players))
	for i, p := range round.Players {
		players[i] = string(p)
	}
	playersJSON, err := json.Marshal(players)
	if err != nil {
		return nil, err
	}

	values := []interface{}{playersJSON}
	for _, v := range []uint64{
		uint64(round.TicketCost),
		round.TicketsAvailable,
		round.StartingTickets,
		round.MaxTickets,
		uint64(round.Balance),
	} {
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("value %d does not fit into bigint", v)
		}
		values = append(values, int64(v))
	}

	return values, nil
}
