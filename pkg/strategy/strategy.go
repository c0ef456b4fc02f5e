// Package strategy contains rule-based players that decide when to make the action bet
package strategy

import (
	"fmt"
	"sort"
	"strings"

	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/handanalyzer"
)

// Strategy decides whether to bet at each decision point
// Returning false pre-flop or on the flop checks; returning false at the river folds
type Strategy interface {
	Name() string
	PreFlop(hole deck.Hand) bool
	Flop(hole, flop deck.Hand) bool
	River(hole, board deck.Hand) bool
}

var strategies = map[string]func() Strategy{
	"basic":  func() Strategy { return Basic{} },
	"always": func() Strategy { return Always{} },
	"never":  func() Strategy { return Never{} },
}

// FromString returns the strategy with the name
func FromString(name string) (Strategy, error) {
	if fn, ok := strategies[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn(), nil
	}

	return nil, fmt.Errorf("unknown strategy: %s (expected one of %s)", name, strings.Join(Names(), ", "))
}

// Names returns the names of every strategy
func Names() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Basic bets 4x on a pocket pair or two cards ten or higher, 2x with two pair or better
// on the flop, and 1x with a pair or better at the river
type Basic struct{}

// Name returns "basic"
func (Basic) Name() string {
	return "basic"
}

// PreFlop bets on a pocket pair or when both cards are ten or higher
func (Basic) PreFlop(hole deck.Hand) bool {
	if len(hole) != 2 {
		return false
	}

	if hole[0].Rank == hole[1].Rank {
		return true
	}

	return hole[0].Rank >= 10 && hole[1].Rank >= 10
}

// Flop bets with two pair or better
func (Basic) Flop(hole, flop deck.Hand) bool {
	return atLeast(hole, flop, handanalyzer.TwoPair)
}

// River bets with a pair or better
func (Basic) River(hole, board deck.Hand) bool {
	return atLeast(hole, board, handanalyzer.OnePair)
}

func atLeast(hole, board deck.Hand, category handanalyzer.Category) bool {
	score, err := handanalyzer.Evaluate(hole, board)
	if err != nil {
		return false
	}

	return score.Category >= category
}

// Always bets 4x before the flop
type Always struct{}

// Name returns "always"
func (Always) Name() string {
	return "always"
}

// PreFlop always bets
func (Always) PreFlop(deck.Hand) bool {
	return true
}

// Flop always bets
func (Always) Flop(deck.Hand, deck.Hand) bool {
	return true
}

// River always bets
func (Always) River(deck.Hand, deck.Hand) bool {
	return true
}

// Never checks every decision and folds at the river
type Never struct{}

// Name returns "never"
func (Never) Name() string {
	return "never"
}

// PreFlop checks
func (Never) PreFlop(deck.Hand) bool {
	return false
}

// Flop checks
func (Never) Flop(deck.Hand, deck.Hand) bool {
	return false
}

// River folds
func (Never) River(deck.Hand, deck.Hand) bool {
	return false
}
