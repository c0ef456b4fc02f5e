package ultimate

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"ultimate-holdem-server/pkg/handanalyzer"
)

// Game is the betting state machine for a single player against the house
// Stakes reset after every round; the bankroll persists across rounds.
// A Game is not safe for concurrent use
type Game struct {
	options  Options
	logger   logrus.FieldLogger
	state    RoundState
	stake    Stake
	bankroll Bankroll
	history  []*RoundResult
	roundID  uuid.UUID
}

// NewGame returns a new game waiting for the first ante
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		logger = l
	}

	return &Game{
		options: opts,
		logger:  logger,
		state:   StateAwaitingAnte,
		bankroll: Bankroll{
			PlayerStack:   opts.StartingBankroll,
			StartingStack: opts.StartingBankroll,
		},
	}, nil
}

// Options returns the table limits
func (g *Game) Options() Options {
	return g.options
}

// State returns the current round state
func (g *Game) State() RoundState {
	return g.state
}

// Stake returns the bets placed in the current round
func (g *Game) Stake() Stake {
	return g.stake
}

// Bankroll returns the player's bankroll
func (g *Game) Bankroll() Bankroll {
	return g.bankroll
}

// RoundID returns the ID of the round in progress, or uuid.Nil between rounds
func (g *Game) RoundID() uuid.UUID {
	return g.roundID
}

// History returns every round result, oldest first
func (g *Game) History() []*RoundResult {
	history := make([]*RoundResult, len(g.history))
	copy(history, g.history)
	return history
}

// LastResult returns the most recent round result, or nil if no round has finished
func (g *Game) LastResult() *RoundResult {
	if len(g.history) == 0 {
		return nil
	}

	return g.history[len(g.history)-1]
}

// Profit returns the player's stack minus the starting stack
func (g *Game) Profit() int {
	return g.bankroll.Profit()
}

// IsBankrupt returns true when the bankroll is at or below the minimum ante
func (g *Game) IsBankrupt() bool {
	return g.bankroll.PlayerStack <= g.options.MinAnte
}

// Verify checks that the net of every recorded round, less the chips staked in the
// current round, accounts for the whole profit
func (g *Game) Verify() error {
	net := 0
	for _, r := range g.history {
		net += r.NetWin
	}

	if expected := g.Profit(); net-g.stake.Total() != expected {
		return fmt.Errorf("%w: rounds net %d with %d staked, profit is %d", ErrLedgerMismatch, net, g.stake.Total(), expected)
	}

	return nil
}

func (g *Game) canFund(amount int) bool {
	return amount <= g.bankroll.PlayerStack
}

func (g *Game) fund(amount int) error {
	if !g.canFund(amount) {
		return fmt.Errorf("%w: bet of %d exceeds bankroll of %d", ErrInsufficientFunds, amount, g.bankroll.PlayerStack)
	}

	return nil
}

func (g *Game) roundLogger() logrus.FieldLogger {
	return g.logger.WithFields(logrus.Fields{
		"roundId":  g.roundID.String(),
		"bankroll": g.bankroll.PlayerStack,
	})
}

// PlaceAnte starts a round
func (g *Game) PlaceAnte(amount int) error {
	if g.state != StateAwaitingAnte {
		return IllegalStateError{Action: ActionAnte, State: g.state}
	}

	if amount < g.options.MinAnte || amount > g.options.MaxAnte {
		return fmt.Errorf("%w: ante must be between %d and %d, got %d", ErrInvalidBetAmount, g.options.MinAnte, g.options.MaxAnte, amount)
	}

	if err := g.fund(amount); err != nil {
		return err
	}

	g.bankroll.debit(amount)
	g.stake.Ante = amount
	g.roundID = uuid.New()
	g.state = StateAwaitingBlindAndTrips

	g.roundLogger().WithField("ante", amount).Debug("ante placed")
	return nil
}

// PlaceBlind places the optional blind, which is always equal to the ante
func (g *Game) PlaceBlind() error {
	if g.state != StateAwaitingBlindAndTrips || g.stake.Blind > 0 {
		return IllegalStateError{Action: ActionBlind, State: g.state}
	}

	if err := g.fund(g.stake.Ante); err != nil {
		return err
	}

	g.bankroll.debit(g.stake.Ante)
	g.stake.Blind = g.stake.Ante

	g.roundLogger().WithField("blind", g.stake.Blind).Debug("blind placed")
	return nil
}

// PlaceTrips places the optional trips side bet
func (g *Game) PlaceTrips(amount int) error {
	if g.state != StateAwaitingBlindAndTrips || g.stake.Trips > 0 {
		return IllegalStateError{Action: ActionTrips, State: g.state}
	}

	if amount < g.options.MinTrips || amount > g.options.MaxTrips {
		return fmt.Errorf("%w: trips must be between %d and %d, got %d", ErrInvalidBetAmount, g.options.MinTrips, g.options.MaxTrips, amount)
	}

	if err := g.fund(amount); err != nil {
		return err
	}

	g.bankroll.debit(amount)
	g.stake.Trips = amount

	g.roundLogger().WithField("trips", amount).Debug("trips placed")
	return nil
}

// CloseOpeningBets ends the blind and trips window and moves to the pre-flop decision
func (g *Game) CloseOpeningBets() error {
	if g.state != StateAwaitingBlindAndTrips {
		return IllegalStateError{Action: ActionDeal, State: g.state}
	}

	g.state = StatePreFlopDecision
	return nil
}

// actionBetAmount returns the amount of the action bet for the stage
func (g *Game) actionBetAmount(action Action) int {
	switch action {
	case ActionBetPreFlop:
		return 4 * g.stake.Ante
	case ActionBetFlop:
		return 2 * g.stake.Ante
	case ActionBetRiver:
		return g.stake.Ante
	}

	panic(fmt.Sprintf("not an action bet: %s", action))
}

func (g *Game) placeActionBet(action Action, from RoundState) error {
	if g.state != from {
		return IllegalStateError{Action: action, State: g.state}
	}

	amount := g.actionBetAmount(action)
	if err := g.fund(amount); err != nil {
		return err
	}

	g.bankroll.debit(amount)
	g.stake.Action = amount
	g.state = StateShowdown

	g.roundLogger().WithFields(logrus.Fields{
		"stage":  from,
		"amount": amount,
	}).Debug("action bet placed")
	return nil
}

// PlacePreFlopBet bets 4x the ante before the flop
// If the bankroll cannot cover it, an error is returned and the state is unchanged
func (g *Game) PlacePreFlopBet() error {
	return g.placeActionBet(ActionBetPreFlop, StatePreFlopDecision)
}

// PlaceFlopBet bets 2x the ante after the flop
func (g *Game) PlaceFlopBet() error {
	return g.placeActionBet(ActionBetFlop, StateFlopDecision)
}

// PlaceRiverBet bets 1x the ante after the river
func (g *Game) PlaceRiverBet() error {
	return g.placeActionBet(ActionBetRiver, StateRiverDecision)
}

// Check declines the current action bet and moves to the next decision point
// There is no check at the river: the player must bet or fold
func (g *Game) Check() error {
	switch g.state {
	case StatePreFlopDecision:
		g.state = StateFlopDecision
	case StateFlopDecision:
		g.state = StateRiverDecision
	default:
		return IllegalStateError{Action: ActionCheck, State: g.state}
	}

	g.roundLogger().WithField("state", g.state).Debug("checked")
	return nil
}

// Fold forfeits every bet in the round
// It is only allowed once the pre-flop, flop and river bets have all been declined
func (g *Game) Fold() (*RoundResult, error) {
	if g.state != StateRiverDecision {
		return nil, IllegalStateError{Action: ActionFold, State: g.state}
	}

	return g.finish(OutcomeFolded, nil, nil, false, 0, 0, 0), nil
}

// Resolve pays out the round from the showdown
// Trips pays on the player's category regardless of the outcome. On a player win the
// blind pays from BlindPayTable and the ante pushes if the dealer did not qualify.
// A tie pushes the ante, blind and action bet
func (g *Game) Resolve(playerCategory, dealerCategory handanalyzer.Category, outcome Outcome) (*RoundResult, error) {
	if g.state != StateShowdown {
		return nil, IllegalStateError{Action: ActionShowdown, State: g.state}
	}

	if !playerCategory.IsValid() || !dealerCategory.IsValid() {
		return nil, fmt.Errorf("%w: player %d, dealer %d", ErrInvalidCategory, playerCategory, dealerCategory)
	}

	if !outcome.isShowdown() {
		return nil, fmt.Errorf("cannot resolve a showdown with outcome: %s", outcome)
	}

	s := g.stake
	tripsWin := 0
	if s.Trips > 0 {
		tripsWin = s.Trips + TripsPayTable.Multiplier(playerCategory).Apply(s.Trips)
	}

	qualified := dealerCategory >= g.options.DealerQualifier
	var mainPotWin, blindWin int
	switch outcome {
	case OutcomePlayerWins:
		blindWin = s.Blind + BlindPayTable.Multiplier(playerCategory).Apply(s.Blind)
		if qualified {
			mainPotWin = 2 * (s.Action + s.Ante)
		} else {
			mainPotWin = 2*s.Action + s.Ante
		}
	case OutcomeTie:
		blindWin = s.Blind
		mainPotWin = s.Action + s.Ante
	}

	return g.finish(outcome, &playerCategory, &dealerCategory, qualified, mainPotWin, blindWin, tripsWin), nil
}

// finish credits the winnings, records the result and resets the stake
func (g *Game) finish(outcome Outcome, player, dealer *handanalyzer.Category, qualified bool, mainPotWin, blindWin, tripsWin int) *RoundResult {
	s := g.stake
	credited := mainPotWin + blindWin + tripsWin
	g.bankroll.credit(credited)

	result := &RoundResult{
		ID:              g.roundID,
		AnteBet:         s.Ante,
		TripsBet:        s.Trips,
		BlindBet:        s.Blind,
		ActionBet:       s.Action,
		TotalStaked:     s.Total(),
		NetWin:          credited - s.Total(),
		MainPotWin:      mainPotWin,
		TripsWin:        tripsWin,
		BlindWin:        blindWin,
		BankrollAfter:   g.bankroll.PlayerStack,
		Outcome:         outcome,
		PlayerCategory:  player,
		DealerCategory:  dealer,
		DealerQualified: qualified,
		Time:            time.Now(),
	}

	g.history = append(g.history, result)

	g.roundLogger().WithFields(logrus.Fields{
		"outcome": outcome,
		"ante":    s.Ante,
		"staked":  result.TotalStaked,
		"net":     result.NetWin,
	}).Info("round resolved")

	g.stake = Stake{}
	g.roundID = uuid.Nil
	g.state = StateAwaitingAnte
	return result
}
