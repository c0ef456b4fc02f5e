package ultimate

import (
	"fmt"

	"ultimate-holdem-server/pkg/handanalyzer"
)

// Multiplier is a payout ratio of Numerator:Denominator
// A multiplier of -1 loses the stake, 0 pushes it
type Multiplier struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

// Apply returns the winnings for a stake, truncated toward zero
func (m Multiplier) Apply(stake int) int {
	denominator := m.Denominator
	if denominator == 0 {
		denominator = 1
	}

	return stake * m.Numerator / denominator
}

func (m Multiplier) String() string {
	if m.Denominator <= 1 {
		return fmt.Sprintf("%d:1", m.Numerator)
	}

	return fmt.Sprintf("%d:%d", m.Numerator, m.Denominator)
}

func ratio(n int) Multiplier {
	return Multiplier{Numerator: n, Denominator: 1}
}

// PayTable holds a multiplier for every hand category
// Index 0 is unused so a Category can index it directly
type PayTable [handanalyzer.RoyalFlush + 1]Multiplier

// Multiplier returns the multiplier for the category
func (p *PayTable) Multiplier(category handanalyzer.Category) Multiplier {
	if !category.IsValid() {
		panic(fmt.Sprintf("no multiplier for category: %d", category))
	}

	return p[category]
}

// TripsPayTable pays the trips side bet on the player's category alone
// Anything below three of a kind loses
var TripsPayTable = PayTable{
	handanalyzer.HighCard:      ratio(-1),
	handanalyzer.OnePair:       ratio(-1),
	handanalyzer.TwoPair:       ratio(-1),
	handanalyzer.ThreeOfAKind:  ratio(3),
	handanalyzer.Straight:      ratio(4),
	handanalyzer.Flush:         ratio(7),
	handanalyzer.FullHouse:     ratio(8),
	handanalyzer.FourOfAKind:   ratio(30),
	handanalyzer.StraightFlush: ratio(40),
	handanalyzer.RoyalFlush:    ratio(50),
}

// BlindPayTable pays the blind when the player beats the dealer
// Anything below a straight pushes
var BlindPayTable = PayTable{
	handanalyzer.HighCard:      ratio(0),
	handanalyzer.OnePair:       ratio(0),
	handanalyzer.TwoPair:       ratio(0),
	handanalyzer.ThreeOfAKind:  ratio(0),
	handanalyzer.Straight:      ratio(1),
	handanalyzer.Flush:         {Numerator: 3, Denominator: 2},
	handanalyzer.FullHouse:     ratio(3),
	handanalyzer.FourOfAKind:   ratio(10),
	handanalyzer.StraightFlush: ratio(50),
	handanalyzer.RoyalFlush:    ratio(500),
}
