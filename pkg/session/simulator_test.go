package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"ultimate-holdem-server/internal/rng"
	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/playable/ultimate"
	"ultimate-holdem-server/pkg/strategy"
)

func newTestSimulator(t *testing.T, s strategy.Strategy, seed int64, opts ...func(o *ultimate.Options)) *Simulator {
	t.Helper()

	o := ultimate.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	sim, err := New(nil, o, s, rng.NewSeeded(seed))
	if err != nil {
		t.Fatal(err)
	}

	return sim
}

type recorder struct {
	sessions map[uuid.UUID]int
	err      error
}

func (r *recorder) Record(_ context.Context, sessionID uuid.UUID, _ *ultimate.RoundResult) error {
	if r.err != nil {
		return r.err
	}

	if r.sessions == nil {
		r.sessions = make(map[uuid.UUID]int)
	}

	r.sessions[sessionID]++
	return nil
}

func TestSimulator_PlayHandWithCards(t *testing.T) {
	a := assert.New(t)
	sim := newTestSimulator(t, strategy.Always{}, 1)
	ctx := context.Background()

	result, err := sim.PlayHandWithCards(ctx, 10, 5,
		deck.CardsFromString("AS,AH"),
		deck.CardsFromString("2C,3D"),
		deck.CardsFromString("AC,4H,5S,9D,KC"))
	a.NoError(err)

	a.Equal(40, result.ActionBet)
	a.Equal(10, result.BlindBet)
	a.Equal(ultimate.OutcomeDealerWins, result.Outcome)
	a.Equal(20, result.TripsWin)
	a.Equal(-45, result.NetWin)

	stats := sim.Stats()
	a.Equal(1, stats.HandsPlayed)
	a.Equal(0, stats.HandsWon)
	a.Equal(-45, stats.Profit)
	a.Equal(955, stats.FinalStack)
	a.Equal(Totals{Net: -45, Trips: 20}, stats.Totals)
}

func TestSimulator_PlayHandWithCards_basic(t *testing.T) {
	a := assert.New(t)
	sim := newTestSimulator(t, strategy.Basic{}, 1)
	ctx := context.Background()

	// 9-4 offsuit checks twice, then bets the river with a pair of nines
	result, err := sim.PlayHandWithCards(ctx, 10, 0,
		deck.CardsFromString("9S,4H"),
		deck.CardsFromString("QC,2D"),
		deck.CardsFromString("9C,KH,7S,3D,2C"))
	a.NoError(err)
	a.Equal(10, result.ActionBet)
	a.Equal(ultimate.OutcomePlayerWins, result.Outcome)
	a.True(result.DealerQualified)
	a.Equal(40, result.MainPotWin)
	a.Equal(10, result.BlindWin)
	a.Equal(20, result.NetWin)
	a.Equal(1, sim.Stats().HandsWon)

	// nothing at the river folds
	result, err = sim.PlayHandWithCards(ctx, 10, 5,
		deck.CardsFromString("8S,4H"),
		deck.CardsFromString("QC,2D"),
		deck.CardsFromString("9C,KH,7S,3D,JC"))
	a.NoError(err)
	a.True(result.Folded())
	a.Equal(-25, result.NetWin)

	stats := sim.Stats()
	a.Equal(2, stats.HandsPlayed)
	a.Equal(1, stats.HandsFolded)
	a.Equal(0.5, stats.WinRate())
	a.Equal(-2.5, stats.AverageProfit())
	a.NoError(sim.Game().Verify())
}

func TestSimulator_PlayHand_insufficientFundsFallsThrough(t *testing.T) {
	a := assert.New(t)
	sim := newTestSimulator(t, strategy.Always{}, 1, func(o *ultimate.Options) {
		o.StartingBankroll = 60
	})

	// ante 20 + blind 20 leaves 20: only the river bet can be funded
	result, err := sim.PlayHand(context.Background(), 20, 0)
	a.NoError(err)
	a.Equal(20, result.ActionBet)
	a.Equal(60, result.TotalStaked)
}

func TestSimulator_Run(t *testing.T) {
	a := assert.New(t)
	sim := newTestSimulator(t, strategy.Basic{}, 42, func(o *ultimate.Options) {
		o.StartingBankroll = 100000
	})
	r := &recorder{}
	sim.SetRecorder(r)
	sim.SetAudit(true)

	stats, err := sim.Run(context.Background(), 300, 10, 5)
	a.NoError(err)
	a.Equal(300, stats.HandsPlayed)
	a.Equal(300, r.sessions[sim.ID])
	a.Equal(sim.ID, stats.SessionID)
	a.Equal("basic", stats.Strategy)
	a.Equal(0, stats.AuditMismatches)
	a.LessOrEqual(stats.HandsWon+stats.HandsTied+stats.HandsFolded, stats.HandsPlayed)
	a.Greater(stats.HandsFolded, 0)
	a.Equal(stats.Profit, stats.Totals.Net)
	a.Equal(100000+stats.Profit, stats.FinalStack)
	a.False(stats.Bankrupt)
	a.Len(sim.Game().History(), 300)
	a.NoError(sim.Game().Verify())
}

func TestSimulator_Run_reproducible(t *testing.T) {
	a := assert.New(t)

	run := func() Stats {
		sim := newTestSimulator(t, strategy.Basic{}, 7)
		stats, err := sim.Run(context.Background(), 50, 10, 0)
		a.NoError(err)
		return stats
	}

	s1, s2 := run(), run()
	a.Equal(s1.Profit, s2.Profit)
	a.Equal(s1.HandsWon, s2.HandsWon)
	a.Equal(s1.Totals, s2.Totals)
}

func TestSimulator_Run_bankrupt(t *testing.T) {
	a := assert.New(t)
	sim := newTestSimulator(t, strategy.Never{}, 1, func(o *ultimate.Options) {
		o.StartingBankroll = 100
	})

	stats, err := sim.Run(context.Background(), 100, 10, 0)
	a.NoError(err)
	a.Equal(5, stats.HandsPlayed)
	a.Equal(5, stats.HandsFolded)
	a.True(stats.Bankrupt)
	a.Equal(0, stats.FinalStack)
	a.Equal(-100, stats.Profit)
	a.Equal(0.0, stats.WinRate())
}

func TestSimulator_Run_invalidBets(t *testing.T) {
	a := assert.New(t)
	sim := newTestSimulator(t, strategy.Basic{}, 1)

	stats, err := sim.Run(context.Background(), 10, 5, 0)
	a.NoError(err)
	a.Equal(0, stats.HandsPlayed)

	stats, err = sim.Run(context.Background(), 10, 10, 1)
	a.NoError(err)
	a.Equal(0, stats.HandsPlayed)
	a.Equal(ultimate.StateAwaitingAnte, sim.Game().State())
	a.Equal(1000, stats.FinalStack)
}

func TestSimulator_Run_cancelled(t *testing.T) {
	a := assert.New(t)
	sim := newTestSimulator(t, strategy.Basic{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := sim.Run(ctx, 10, 10, 0)
	a.ErrorIs(err, context.Canceled)
	a.Equal(0, stats.HandsPlayed)
}

func TestSimulator_recorderError(t *testing.T) {
	a := assert.New(t)
	sim := newTestSimulator(t, strategy.Basic{}, 1)
	sim.SetRecorder(&recorder{err: errors.New("connection refused")})

	stats, err := sim.Run(context.Background(), 10, 10, 0)
	a.EqualError(err, "could not record round: connection refused")
	a.Equal(1, stats.HandsPlayed)
}
