package handanalyzer

import (
	"fmt"
	"sort"

	"ultimate-holdem-server/pkg/deck"
)

// Result is the outcome of comparing two hands
type Result int

// Result constants
const (
	First Result = iota + 1
	Second
	Tie
)

func (r Result) String() string {
	switch r {
	case First:
		return "first"
	case Second:
		return "second"
	case Tie:
		return "tie"
	}

	panic(fmt.Sprintf("unknown result: %d", r))
}

// Invert swaps First and Second
func (r Result) Invert() Result {
	switch r {
	case First:
		return Second
	case Second:
		return First
	}

	return r
}

// Compare orders two hands of any category: category first, then CompareEqualCategory
func Compare(a, b *HandScore) Result {
	if a.Category > b.Category {
		return First
	} else if a.Category < b.Category {
		return Second
	}

	return CompareEqualCategory(a, b)
}

// CompareEqualCategory breaks a tie between two hands of the same category
// If the categories differ, the higher category wins
func CompareEqualCategory(a, b *HandScore) Result {
	if a.Category != b.Category {
		return Compare(a, b)
	}

	switch a.Category {
	case RoyalFlush:
		return Tie

	case StraightFlush, Straight:
		// Values already have the wheel ace demoted
		return compareInts(a.Values[0], b.Values[0])

	case FourOfAKind:
		return compareGroups(a, b, 4, 1)

	case FullHouse:
		return compareGroups(a, b, 3, 2)

	case ThreeOfAKind:
		return compareGroups(a, b, 3, 1)

	case TwoPair:
		return compareGroups(a, b, 2, 1)

	case OnePair:
		return compareGroups(a, b, 2, 1)
	}

	// Flush and high card
	return compareSlices(a.Values, b.Values)
}

// compareGroups compares every rank appearing exactly `primary` times (highest first),
// then every rank appearing exactly `kicker` times (highest first)
func compareGroups(a, b *HandScore, primary, kicker int) Result {
	if r := compareSlices(ranksWithCount(a.Values, primary), ranksWithCount(b.Values, primary)); r != Tie {
		return r
	}

	return compareSlices(ranksWithCount(a.Values, kicker), ranksWithCount(b.Values, kicker))
}

func ranksWithCount(values []int, count int) []int {
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	ranks := make([]int, 0, len(counts))
	for rank, n := range counts {
		if n == count {
			ranks = append(ranks, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
	return ranks
}

func compareSlices(a, b []int) Result {
	for i := 0; i < len(a) && i < len(b); i++ {
		if r := compareInts(a[i], b[i]); r != Tie {
			return r
		}
	}

	return Tie
}

func compareInts(a, b int) Result {
	if a > b {
		return First
	} else if a < b {
		return Second
	}

	return Tie
}

// Showdown contains both evaluated hands and the winner
type Showdown struct {
	Player *HandScore `json:"player"`
	Dealer *HandScore `json:"dealer"`
	// Result is First if the player wins, Second if the dealer wins
	Result Result `json:"result"`
}

// DetermineWinner evaluates the player's and the dealer's hole cards against the same board
func DetermineWinner(playerHole, dealerHole, board deck.Hand) (*Showdown, error) {
	if all := deck.Concat(playerHole, dealerHole, board); all.HasDuplicates() {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, all.String())
	}

	player, err := Evaluate(playerHole, board)
	if err != nil {
		return nil, err
	}

	dealer, err := Evaluate(dealerHole, board)
	if err != nil {
		return nil, err
	}

	return &Showdown{
		Player: player,
		Dealer: dealer,
		Result: Compare(player, dealer),
	}, nil
}
