package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	admin Address = "tz1admin"
	alice Address = "tz1alice"
	bob   Address = "tz1bob"
	mike  Address = "tz1mike"
)

func tez(n uint64) Mutez {
	return Mutez(n * 1_000_000)
}

// freshRound - раунд на maxTickets билетов, где starting совпадает с cap
func freshRound(cost Mutez, maxTickets uint64) *Round {
	r := NewRound(admin)
	r.TicketCost = cost
	r.MaxTickets = maxTickets
	r.TicketsAvailable = maxTickets
	r.StartingTickets = maxTickets
	return r
}

func TestNewRoundDefaults(t *testing.T) {
	r := NewRound(admin)

	assert.Equal(t, admin, r.Admin)
	assert.Empty(t, r.Players)
	assert.Equal(t, tez(1), r.TicketCost)
	assert.Equal(t, uint64(6), r.TicketsAvailable)
	assert.Equal(t, uint64(6), r.StartingTickets)
	assert.Equal(t, uint64(5), r.MaxTickets)
	assert.Equal(t, Mutez(0), r.Balance)
	assert.False(t, r.Started())
}

func TestBuyTicket(t *testing.T) {
	tests := []struct {
		name          string
		available     uint64
		numTickets    uint64
		amount        Mutez
		wantErr       error
		wantTransfers []Transfer
		wantBalance   Mutez
	}{
		{
			name:        "exact payment",
			available:   3,
			numTickets:  2,
			amount:      tez(4),
			wantBalance: tez(4),
		},
		{
			name:          "overpayment is refunded",
			available:     3,
			numTickets:    1,
			amount:        tez(5),
			wantTransfers: []Transfer{{To: alice, Amount: tez(3)}},
			wantBalance:   tez(2),
		},
		{
			name:        "underpayment for several tickets passes the single ticket floor",
			available:   3,
			numTickets:  3,
			amount:      tez(2),
			wantBalance: tez(2),
		},
		{
			name:       "not enough tickets",
			available:  1,
			numTickets: 2,
			amount:     tez(4),
			wantErr:    ErrInsufficientTickets,
		},
		{
			name:       "below single ticket price",
			available:  3,
			numTickets: 1,
			amount:     tez(1),
			wantErr:    ErrInsufficientPayment,
		},
		{
			name:       "ticket check comes before payment check",
			available:  0,
			numTickets: 1,
			amount:     0,
			wantErr:    ErrInsufficientTickets,
		},
		{
			name:          "zero tickets refunds everything",
			available:     3,
			numTickets:    0,
			amount:        tez(2),
			wantTransfers: []Transfer{{To: alice, Amount: tez(2)}},
			wantBalance:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := freshRound(tez(2), tt.available)
			before := r.Clone()

			transfers, err := r.BuyTicket(Call{Sender: alice, Amount: tt.amount}, tt.numTickets)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, transfers)
				assert.Equal(t, before, r)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTransfers, transfers)
			assert.Equal(t, tt.wantBalance, r.Balance)
			assert.Len(t, r.Players, int(tt.numTickets))
			assert.Equal(t, tt.available-tt.numTickets, r.TicketsAvailable)
			assert.Equal(t, r.StartingTickets, r.TicketsAvailable+uint64(len(r.Players)))
			for _, p := range r.Players {
				assert.Equal(t, alice, p)
			}
		})
	}
}

func TestBuyTicketAssignsConsecutiveIndexes(t *testing.T) {
	r := freshRound(tez(1), 5)

	_, err := r.BuyTicket(Call{Sender: alice, Amount: tez(2)}, 2)
	require.NoError(t, err)
	_, err = r.BuyTicket(Call{Sender: bob, Amount: tez(1)}, 1)
	require.NoError(t, err)
	_, err = r.BuyTicket(Call{Sender: mike, Amount: tez(2)}, 2)
	require.NoError(t, err)

	assert.Equal(t, []Address{alice, alice, bob, mike, mike}, r.Players)
	assert.Equal(t, uint64(0), r.TicketsAvailable)
	assert.Equal(t, tez(5), r.Balance)
}

func TestBuyTicketHugeCountDoesNotRefund(t *testing.T) {
	r := freshRound(Mutez(^uint64(0)/2), 3)

	transfers, err := r.BuyTicket(Call{Sender: alice, Amount: Mutez(^uint64(0) / 2)}, 3)

	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestBuyTicketBalanceOverflow(t *testing.T) {
	r := freshRound(1, 3)
	r.Balance = Mutez(^uint64(0))
	before := r.Clone()

	_, err := r.BuyTicket(Call{Sender: alice, Amount: 1}, 1)

	require.ErrorIs(t, err, ErrBalanceOverflow)
	assert.Equal(t, before, r)
}

func TestChangeTicketCost(t *testing.T) {
	t.Run("before round start", func(t *testing.T) {
		r := NewRound(admin)

		require.NoError(t, r.ChangeTicketCost(Call{Sender: bob}, tez(2)))
		assert.Equal(t, tez(2), r.TicketCost)
	})

	t.Run("same value twice", func(t *testing.T) {
		r := NewRound(admin)

		require.NoError(t, r.ChangeTicketCost(Call{Sender: admin}, tez(2)))
		err := r.ChangeTicketCost(Call{Sender: admin}, tez(2))

		require.ErrorIs(t, err, ErrNoChangeRequested)
		assert.EqualError(t, err, "NO CHANGE IN COST")
	})

	t.Run("after a sale", func(t *testing.T) {
		r := NewRound(admin)
		_, err := r.BuyTicket(Call{Sender: alice, Amount: tez(1)}, 1)
		require.NoError(t, err)

		err = r.ChangeTicketCost(Call{Sender: admin}, tez(3))

		require.ErrorIs(t, err, ErrRoundAlreadyStarted)
		assert.Equal(t, tez(1), r.TicketCost)
	})

	t.Run("attached amount joins the pool", func(t *testing.T) {
		r := NewRound(admin)

		require.NoError(t, r.ChangeTicketCost(Call{Sender: bob, Amount: 7}, tez(2)))
		assert.Equal(t, Mutez(7), r.Balance)
	})
}

func TestChangeMaxTickets(t *testing.T) {
	t.Run("keeps the stale ticket counters", func(t *testing.T) {
		r := NewRound(admin)

		require.NoError(t, r.ChangeMaxTickets(Call{Sender: bob}, 3))

		assert.Equal(t, uint64(3), r.MaxTickets)
		assert.Equal(t, uint64(6), r.TicketsAvailable)
		assert.Equal(t, uint64(6), r.StartingTickets)
	})

	t.Run("same value", func(t *testing.T) {
		r := NewRound(admin)

		err := r.ChangeMaxTickets(Call{Sender: admin}, 5)

		require.ErrorIs(t, err, ErrNoChangeRequested)
		assert.EqualError(t, err, "NO CHANGE IN MAX TICKETS")
	})

	t.Run("after a sale", func(t *testing.T) {
		r := NewRound(admin)
		_, err := r.BuyTicket(Call{Sender: alice, Amount: tez(1)}, 1)
		require.NoError(t, err)

		require.ErrorIs(t, r.ChangeMaxTickets(Call{Sender: admin}, 9), ErrRoundAlreadyStarted)
	})
}

func TestEndGame(t *testing.T) {
	soldOut := func() *Round {
		r := freshRound(tez(2), 3)
		_, err := r.BuyTicket(Call{Sender: bob, Amount: tez(4)}, 2)
		require.NoError(t, err)
		_, err = r.BuyTicket(Call{Sender: mike, Amount: tez(2)}, 1)
		require.NoError(t, err)
		return r
	}

	t.Run("pays the whole pool and resets", func(t *testing.T) {
		r := soldOut()

		transfers, err := r.EndGame(Call{Sender: admin}, 21)

		require.NoError(t, err)
		assert.Equal(t, []Transfer{{To: bob, Amount: tez(6)}}, transfers)
		assert.Empty(t, r.Players)
		assert.Equal(t, uint64(3), r.TicketsAvailable)
		assert.Equal(t, Mutez(0), r.Balance)
	})

	t.Run("winner index wraps around max tickets", func(t *testing.T) {
		r := soldOut()

		transfers, err := r.EndGame(Call{Sender: admin}, 5)

		require.NoError(t, err)
		assert.Equal(t, mike, transfers[0].To)
	})

	t.Run("amount attached to the draw is paid out too", func(t *testing.T) {
		r := soldOut()

		transfers, err := r.EndGame(Call{Sender: admin, Amount: 10}, 0)

		require.NoError(t, err)
		assert.Equal(t, tez(6)+10, transfers[0].Amount)
	})

	t.Run("non admin", func(t *testing.T) {
		r := soldOut()
		before := r.Clone()

		_, err := r.EndGame(Call{Sender: bob}, 21)

		require.ErrorIs(t, err, ErrNotAuthorized)
		assert.Equal(t, before, r)
	})

	t.Run("tickets left", func(t *testing.T) {
		r := freshRound(tez(2), 3)
		_, err := r.BuyTicket(Call{Sender: bob, Amount: tez(2)}, 1)
		require.NoError(t, err)

		_, err = r.EndGame(Call{Sender: admin}, 21)

		require.ErrorIs(t, err, ErrGameNotYetEnded)
	})

	t.Run("authorization is checked first", func(t *testing.T) {
		r := NewRound(admin)

		_, err := r.EndGame(Call{Sender: bob}, 1)

		require.ErrorIs(t, err, ErrNotAuthorized)
	})
}

func TestEndGameWinnerLookupFailed(t *testing.T) {
	t.Run("cap raised above sold tickets", func(t *testing.T) {
		r := NewRound(admin)
		require.NoError(t, r.ChangeMaxTickets(Call{Sender: admin}, 10))
		_, err := r.BuyTicket(Call{Sender: alice, Amount: tez(6)}, 6)
		require.NoError(t, err)
		before := r.Clone()

		_, err = r.EndGame(Call{Sender: admin}, 7)

		require.ErrorIs(t, err, ErrWinnerLookupFailed)
		assert.Equal(t, before, r)
	})

	t.Run("zero max tickets", func(t *testing.T) {
		r := NewRound(admin)
		require.NoError(t, r.ChangeMaxTickets(Call{Sender: admin}, 0))
		_, err := r.BuyTicket(Call{Sender: alice, Amount: tez(6)}, 6)
		require.NoError(t, err)

		_, err = r.EndGame(Call{Sender: admin}, 7)

		require.ErrorIs(t, err, ErrWinnerLookupFailed)
	})
}

func TestDefaultAlwaysRejects(t *testing.T) {
	r := NewRound(admin)
	before := r.Clone()

	for _, call := range []Call{{Sender: alice}, {Sender: admin, Amount: tez(5)}} {
		require.ErrorIs(t, r.Default(call), ErrOperationNotAllowed)
	}
	assert.Equal(t, before, r)
}

// Сценарий из исходного контракта: дефолтный раунд, 6 билетов, cap понижен до 3
func TestFullScenario(t *testing.T) {
	r := NewRound(admin)

	require.NoError(t, r.ChangeTicketCost(Call{Sender: admin}, tez(2)))
	require.NoError(t, r.ChangeMaxTickets(Call{Sender: admin}, 3))

	_, err := r.BuyTicket(Call{Sender: alice, Amount: tez(4)}, 2)
	require.NoError(t, err)
	_, err = r.BuyTicket(Call{Sender: bob, Amount: tez(2)}, 1)
	require.NoError(t, err)
	_, err = r.BuyTicket(Call{Sender: mike, Amount: tez(6)}, 3)
	require.NoError(t, err)

	require.ErrorIs(t, r.ChangeTicketCost(Call{Sender: admin}, tez(1)), ErrRoundAlreadyStarted)
	require.ErrorIs(t, r.ChangeMaxTickets(Call{Sender: admin}, 5), ErrRoundAlreadyStarted)
	_, err = r.BuyTicket(Call{Sender: alice, Amount: tez(2)}, 1)
	require.ErrorIs(t, err, ErrInsufficientTickets)

	transfers, err := r.EndGame(Call{Sender: admin}, 21)
	require.NoError(t, err)
	assert.Equal(t, []Transfer{{To: alice, Amount: tez(12)}}, transfers)
	assert.Empty(t, r.Players)
	assert.Equal(t, uint64(3), r.TicketsAvailable)

	// После сброса раунд считается "начатым": starting остался 6
	assert.True(t, r.Started())
	require.ErrorIs(t, r.ChangeTicketCost(Call{Sender: admin}, tez(1)), ErrRoundAlreadyStarted)
}

func TestCloneIsDeep(t *testing.T) {
	r := freshRound(1, 3)
	_, err := r.BuyTicket(Call{Sender: alice, Amount: 1}, 1)
	require.NoError(t, err)

	c := r.Clone()
	c.Players[0] = bob

	assert.Equal(t, alice, r.Players[0])
}
