package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoke(t *testing.T) {
	r := freshRound(tez(1), 2)

	_, err := r.Invoke(EntrypointChangeTicketCost, Call{Sender: admin}, uint64(tez(2)))
	require.NoError(t, err)
	assert.Equal(t, tez(2), r.TicketCost)

	_, err = r.Invoke(EntrypointChangeMaxTickets, Call{Sender: admin}, 4)
	require.NoError(t, err)

	transfers, err := r.Invoke(EntrypointBuyTicket, Call{Sender: alice, Amount: tez(5)}, 2)
	require.NoError(t, err)
	assert.Equal(t, []Transfer{{To: alice, Amount: tez(1)}}, transfers)

	transfers, err = r.Invoke(EntrypointEndGame, Call{Sender: admin}, 1)
	require.NoError(t, err)
	assert.Equal(t, []Transfer{{To: alice, Amount: tez(4)}}, transfers)
	assert.Equal(t, uint64(4), r.TicketsAvailable)
}

func TestInvokeUnknownEntrypoint(t *testing.T) {
	for _, name := range []string{EntrypointDefault, "", "withdraw", "BUY_TICKET"} {
		t.Run(name, func(t *testing.T) {
			r := NewRound(admin)
			before := r.Clone()

			transfers, err := r.Invoke(name, Call{Sender: alice, Amount: tez(3)}, 1)

			require.ErrorIs(t, err, ErrOperationNotAllowed)
			assert.Nil(t, transfers)
			assert.Equal(t, before, r)
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, "no_change_requested", Code(errNoChangeInCost))
	assert.Equal(t, "winner_lookup_failed", Code(ErrWinnerLookupFailed))
	assert.Equal(t, "operation_not_allowed", Code(ErrOperationNotAllowed))
	assert.Equal(t, "", Code(nil))
	assert.Equal(t, "", Code(assert.AnError))
}
