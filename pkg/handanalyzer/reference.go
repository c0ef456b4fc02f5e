package handanalyzer

import (
	"fmt"

	"github.com/paulhankin/poker"
	"ultimate-holdem-server/pkg/deck"
)

// toReferenceCard converts a card into the representation used by the reference evaluator
// The reference library ranks aces as 1 and kings as 13
func toReferenceCard(c deck.Card) (poker.Card, error) {
	var suit poker.Suit
	switch c.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	case deck.Spades:
		suit = poker.Spade
	default:
		var invalid poker.Card
		return invalid, fmt.Errorf("%w: %+v", deck.ErrInvalidCard, c)
	}

	rank := c.Rank
	if rank == deck.Ace {
		rank = 1
	}

	return poker.MakeCard(suit, poker.Rank(rank))
}

// referenceScore scores exactly seven cards with the reference evaluator (higher is better)
func referenceScore(hole, board deck.Hand) (int16, error) {
	if len(hole) != holeSize || len(board) != maxBoardSize {
		return 0, fmt.Errorf("%w: reference evaluation needs %d hole and %d board cards", ErrInvalidHandSize, holeSize, maxBoardSize)
	}

	var cards [7]poker.Card
	for i, c := range deck.Concat(hole, board) {
		pc, err := toReferenceCard(c)
		if err != nil {
			return 0, err
		}

		cards[i] = pc
	}

	return poker.Eval7(&cards), nil
}

// ReferenceCompare decides a showdown with an independent seven-card evaluator
// It is used to audit Compare() and only supports full five-card boards
func ReferenceCompare(playerHole, dealerHole, board deck.Hand) (Result, error) {
	player, err := referenceScore(playerHole, board)
	if err != nil {
		return 0, err
	}

	dealer, err := referenceScore(dealerHole, board)
	if err != nil {
		return 0, err
	}

	switch {
	case player > dealer:
		return First, nil
	case player < dealer:
		return Second, nil
	}

	return Tie, nil
}

// ReferenceDescribe returns the reference evaluator's description of the best hand
func ReferenceDescribe(hole, board deck.Hand) (string, error) {
	all := deck.Concat(hole, board)
	cards := make([]poker.Card, len(all))
	for i, c := range all {
		pc, err := toReferenceCard(c)
		if err != nil {
			return "", err
		}

		cards[i] = pc
	}

	return poker.Describe(cards)
}
