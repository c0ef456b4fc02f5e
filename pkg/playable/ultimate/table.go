package ultimate

import (
	"fmt"

	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/handanalyzer"
)

// Table drives a Game from client actions, dealing every round from its own deck
type Table struct {
	game  *Game
	deck  *deck.Deck
	round *Round
}

// NewTable returns a table for the game
func NewTable(game *Game, d *deck.Deck) *Table {
	return &Table{
		game: game,
		deck: d,
	}
}

// Game returns the game being played
func (t *Table) Game() *Game {
	return t.game
}

// Perform applies a client action
// amount is only used for the ante and trips
func (t *Table) Perform(action Action, amount int) error {
	switch action {
	case ActionAnte:
		if err := t.game.PlaceAnte(amount); err != nil {
			return err
		}

		t.round = nil
		return nil
	case ActionBlind:
		return t.game.PlaceBlind()
	case ActionTrips:
		return t.game.PlaceTrips(amount)
	case ActionDeal:
		round, err := Deal(t.game, t.deck)
		if err != nil {
			return err
		}

		t.round = round
		return nil
	case ActionBetPreFlop:
		return t.game.PlacePreFlopBet()
	case ActionBetFlop:
		return t.game.PlaceFlopBet()
	case ActionBetRiver:
		return t.game.PlaceRiverBet()
	case ActionCheck:
		return t.game.Check()
	case ActionFold:
		_, err := t.game.Fold()
		return err
	case ActionShowdown:
		if t.round == nil {
			return IllegalStateError{Action: action, State: t.game.State()}
		}

		_, err := t.round.Showdown()
		return err
	}

	return fmt.Errorf("invalid action: %d", action)
}

// Snapshot is the state of the table as shown to the player
type Snapshot struct {
	State            RoundState             `json:"state"`
	Stake            Stake                  `json:"stake"`
	Bankroll         Bankroll               `json:"bankroll"`
	PlayerHole       deck.Hand              `json:"playerHole"`
	DealerHole       deck.Hand              `json:"dealerHole"`
	Board            deck.Hand              `json:"board"`
	Showdown         *handanalyzer.Showdown `json:"showdown,omitempty"`
	AvailableActions []Action               `json:"availableActions"`
	LastResult       *RoundResult           `json:"lastResult,omitempty"`
}

// Snapshot returns what the player can see
// The dealer's cards are hidden until the round is over
func (t *Table) Snapshot() *Snapshot {
	s := &Snapshot{
		State:            t.game.State(),
		Stake:            t.game.Stake(),
		Bankroll:         t.game.Bankroll(),
		PlayerHole:       deck.Hand{},
		DealerHole:       deck.Hand{},
		Board:            deck.Hand{},
		AvailableActions: t.game.AvailableActions(),
		LastResult:       t.game.LastResult(),
	}

	if t.round == nil {
		return s
	}

	s.PlayerHole = t.round.PlayerHole
	s.Board = t.round.VisibleBoard()
	if s.State == StateAwaitingAnte {
		s.DealerHole = t.round.DealerHole
		s.Showdown = t.round.Hands()
	}

	return s
}
