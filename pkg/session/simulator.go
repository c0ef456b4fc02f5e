// Package session plays a strategy through many rounds of Ultimate Texas Hold'em
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"ultimate-holdem-server/internal/rng"
	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/handanalyzer"
	"ultimate-holdem-server/pkg/playable/ultimate"
	"ultimate-holdem-server/pkg/strategy"
)

// Recorder receives every finished round
type Recorder interface {
	Record(ctx context.Context, sessionID uuid.UUID, result *ultimate.RoundResult) error
}

// Simulator plays hands for a single player
// Every simulator owns its own deck and game, and must not be shared between goroutines
type Simulator struct {
	ID uuid.UUID

	game     *ultimate.Game
	deck     *deck.Deck
	strategy strategy.Strategy
	logger   logrus.FieldLogger
	recorder Recorder
	audit    bool
	stats    Stats
	started  time.Time
}

// New returns a new simulator
// A nil generator shuffles with crypto/rand
func New(logger logrus.FieldLogger, opts ultimate.Options, s strategy.Strategy, gen rng.Generator) (*Simulator, error) {
	id := uuid.New()
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	logger = logger.WithField("sessionId", id.String())
	game, err := ultimate.NewGame(logger, opts)
	if err != nil {
		return nil, err
	}

	return &Simulator{
		ID:       id,
		game:     game,
		deck:     deck.New(gen),
		strategy: s,
		logger:   logger,
		stats: Stats{
			SessionID: id,
			Strategy:  s.Name(),
		},
		started: time.Now(),
	}, nil
}

// SetRecorder sets a recorder that receives every finished round
func (s *Simulator) SetRecorder(r Recorder) {
	s.recorder = r
}

// SetAudit enables checking every showdown against the reference evaluator
func (s *Simulator) SetAudit(audit bool) {
	s.audit = audit
}

// Game returns the underlying game
func (s *Simulator) Game() *ultimate.Game {
	return s.game
}

// PlayHand plays a single hand with a freshly shuffled deck
func (s *Simulator) PlayHand(ctx context.Context, ante, trips int) (*ultimate.RoundResult, error) {
	if err := s.openRound(ante, trips); err != nil {
		return nil, err
	}

	round, err := ultimate.Deal(s.game, s.deck)
	if err != nil {
		return nil, err
	}

	return s.play(ctx, round)
}

// PlayHandWithCards plays a single hand with the cards given
func (s *Simulator) PlayHandWithCards(ctx context.Context, ante, trips int, player, dealer, board deck.Hand) (*ultimate.RoundResult, error) {
	if err := s.openRound(ante, trips); err != nil {
		return nil, err
	}

	round, err := ultimate.DealCards(s.game, player, dealer, board)
	if err != nil {
		return nil, err
	}

	return s.play(ctx, round)
}

// Run plays up to hands rounds, stopping early if the player goes bankrupt,
// an ante cannot be placed, or the context is cancelled
func (s *Simulator) Run(ctx context.Context, hands, ante, trips int) (Stats, error) {
	for i := 0; i < hands; i++ {
		if err := ctx.Err(); err != nil {
			return s.Stats(), err
		}

		if s.game.IsBankrupt() {
			s.logger.WithField("hands", s.stats.HandsPlayed).Info("player is bankrupt")
			break
		}

		if _, err := s.PlayHand(ctx, ante, trips); err != nil {
			if errors.Is(err, ultimate.ErrInvalidBetAmount) {
				s.logger.WithError(err).Info("could not open round")
				break
			}

			return s.Stats(), err
		}
	}

	return s.Stats(), nil
}

// Stats returns the statistics so far
func (s *Simulator) Stats() Stats {
	stats := s.stats
	stats.Profit = s.game.Profit()
	stats.FinalStack = s.game.Bankroll().PlayerStack
	stats.Bankrupt = s.game.IsBankrupt()
	stats.Duration = time.Since(s.started)
	stats.Totals = s.Totals()
	return stats
}

// Totals sums the winnings of every round played
func (s *Simulator) Totals() Totals {
	return SumTotals(s.game.History())
}

// openRound places the ante, the blind if it can be funded, and trips if requested
// Nothing is placed if the ante or trips amount is outside the table limits
func (s *Simulator) openRound(ante, trips int) error {
	opts := s.game.Options()
	if trips != 0 && (trips < opts.MinTrips || trips > opts.MaxTrips) {
		return fmt.Errorf("%w: trips must be between %d and %d, got %d", ultimate.ErrInvalidBetAmount, opts.MinTrips, opts.MaxTrips, trips)
	}

	if err := s.game.PlaceAnte(ante); err != nil {
		return err
	}

	if err := s.game.PlaceBlind(); err != nil {
		if !errors.Is(err, ultimate.ErrInsufficientFunds) {
			return err
		}

		s.logger.WithError(err).Debug("skipping blind")
	}

	if trips > 0 {
		if err := s.game.PlaceTrips(trips); err != nil {
			if !errors.Is(err, ultimate.ErrInsufficientFunds) {
				return err
			}

			s.logger.WithError(err).Debug("skipping trips")
		}
	}

	return nil
}

// play asks the strategy for a decision at every stage, falling through to the
// next stage if it declines or the bet cannot be funded
func (s *Simulator) play(ctx context.Context, round *ultimate.Round) (*ultimate.RoundResult, error) {
	decisions := []struct {
		bet    func() bool
		place  func() error
		finish bool
	}{
		{
			bet:   func() bool { return s.strategy.PreFlop(round.PlayerHole) },
			place: s.game.PlacePreFlopBet,
		},
		{
			bet:   func() bool { return s.strategy.Flop(round.PlayerHole, round.VisibleBoard()) },
			place: s.game.PlaceFlopBet,
		},
		{
			bet:    func() bool { return s.strategy.River(round.PlayerHole, round.VisibleBoard()) },
			place:  s.game.PlaceRiverBet,
			finish: true,
		},
	}

	for _, d := range decisions {
		if d.bet() {
			err := d.place()
			if err == nil {
				return s.showdown(ctx, round)
			}

			if !errors.Is(err, ultimate.ErrInsufficientFunds) {
				return nil, err
			}
		}

		if d.finish {
			break
		}

		if err := s.game.Check(); err != nil {
			return nil, err
		}
	}

	result, err := s.game.Fold()
	if err != nil {
		return nil, err
	}

	s.stats.HandsFolded++
	return s.finish(ctx, result)
}

func (s *Simulator) showdown(ctx context.Context, round *ultimate.Round) (*ultimate.RoundResult, error) {
	result, err := round.Showdown()
	if err != nil {
		return nil, err
	}

	if s.audit {
		s.auditShowdown(round)
	}

	switch result.Outcome {
	case ultimate.OutcomePlayerWins:
		s.stats.HandsWon++
	case ultimate.OutcomeTie:
		s.stats.HandsTied++
	}

	return s.finish(ctx, result)
}

func (s *Simulator) auditShowdown(round *ultimate.Round) {
	expects, err := handanalyzer.ReferenceCompare(round.PlayerHole, round.DealerHole, round.Board())
	if err != nil {
		s.logger.WithError(err).Error("could not audit showdown")
		return
	}

	if got := round.Hands().Result; got != expects {
		s.stats.AuditMismatches++
		s.logger.WithFields(logrus.Fields{
			"player":   round.PlayerHole.String(),
			"dealer":   round.DealerHole.String(),
			"board":    round.Board().String(),
			"result":   got.String(),
			"expected": expects.String(),
		}).Warn("showdown does not match reference evaluator")
	}
}

func (s *Simulator) finish(ctx context.Context, result *ultimate.RoundResult) (*ultimate.RoundResult, error) {
	s.stats.HandsPlayed++

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, s.ID, result); err != nil {
			return result, fmt.Errorf("could not record round: %w", err)
		}
	}

	return result, nil
}
