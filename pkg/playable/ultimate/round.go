package ultimate

import (
	"fmt"

	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/handanalyzer"
)

const (
	flopSize  = 3
	boardSize = 5
)

// Round binds the cards of a single deal to a Game
// The whole board is dealt up front and revealed as the game moves through its decisions
type Round struct {
	PlayerHole deck.Hand
	DealerHole deck.Hand

	board    deck.Hand
	game     *Game
	showdown *handanalyzer.Showdown
}

// Deal shuffles the deck, deals both hands and the board, and closes the opening bets
func Deal(game *Game, d *deck.Deck) (*Round, error) {
	if game.State() != StateAwaitingBlindAndTrips {
		return nil, IllegalStateError{Action: ActionDeal, State: game.State()}
	}

	d.Shuffle()

	player, err := d.DealPlayer()
	if err != nil {
		return nil, err
	}

	dealer, err := d.DealOpponent()
	if err != nil {
		return nil, err
	}

	board, err := d.DealFlop()
	if err != nil {
		return nil, err
	}

	turn, err := d.DealTurn()
	if err != nil {
		return nil, err
	}

	river, err := d.DealRiver()
	if err != nil {
		return nil, err
	}

	board.AddCard(turn)
	board.AddCard(river)

	return DealCards(game, player, dealer, board)
}

// DealCards starts a round with known cards
func DealCards(game *Game, player, dealer, board deck.Hand) (*Round, error) {
	if game.State() != StateAwaitingBlindAndTrips {
		return nil, IllegalStateError{Action: ActionDeal, State: game.State()}
	}

	if len(player) != 2 || len(dealer) != 2 || len(board) != boardSize {
		return nil, fmt.Errorf("%w: need 2 player, 2 dealer and %d board cards", handanalyzer.ErrInvalidHandSize, boardSize)
	}

	if all := deck.Concat(player, dealer, board); all.HasDuplicates() {
		return nil, fmt.Errorf("%w: %s", handanalyzer.ErrDuplicateCard, all.String())
	}

	if err := game.CloseOpeningBets(); err != nil {
		return nil, err
	}

	return &Round{
		PlayerHole: player.Clone(),
		DealerHole: dealer.Clone(),
		board:      board.Clone(),
		game:       game,
	}, nil
}

// VisibleBoard returns the board cards the player can see at the current decision
func (r *Round) VisibleBoard() deck.Hand {
	switch r.game.State() {
	case StatePreFlopDecision:
		return deck.Hand{}
	case StateFlopDecision:
		return r.board[:flopSize].Clone()
	}

	return r.board.Clone()
}

// Board returns the full board
func (r *Round) Board() deck.Hand {
	return r.board.Clone()
}

// Showdown evaluates both hands against the board and resolves the game
func (r *Round) Showdown() (*RoundResult, error) {
	if r.game.State() != StateShowdown {
		return nil, IllegalStateError{Action: ActionShowdown, State: r.game.State()}
	}

	showdown, err := handanalyzer.DetermineWinner(r.PlayerHole, r.DealerHole, r.board)
	if err != nil {
		return nil, err
	}

	result, err := r.game.Resolve(showdown.Player.Category, showdown.Dealer.Category, OutcomeFromResult(showdown.Result))
	if err != nil {
		return nil, err
	}

	r.showdown = showdown
	return result, nil
}

// Hands returns both evaluated hands, or nil before the showdown
func (r *Round) Hands() *handanalyzer.Showdown {
	return r.showdown
}
