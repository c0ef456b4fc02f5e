package ultimate

import (
	"fmt"

	"ultimate-holdem-server/pkg/handanalyzer"
)

// Outcome is how a round ended for the player
type Outcome string

// Outcome constants
const (
	OutcomePlayerWins Outcome = "player-wins"
	OutcomeDealerWins Outcome = "dealer-wins"
	OutcomeTie        Outcome = "tie"
	OutcomeFolded     Outcome = "folded"
)

// OutcomeFromResult converts a showdown result where the player's hand was compared first
func OutcomeFromResult(r handanalyzer.Result) Outcome {
	switch r {
	case handanalyzer.First:
		return OutcomePlayerWins
	case handanalyzer.Second:
		return OutcomeDealerWins
	case handanalyzer.Tie:
		return OutcomeTie
	}

	panic(fmt.Sprintf("unknown result: %d", r))
}

func (o Outcome) isShowdown() bool {
	return o == OutcomePlayerWins || o == OutcomeDealerWins || o == OutcomeTie
}
