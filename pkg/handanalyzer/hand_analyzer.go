package handanalyzer

import (
	"errors"
	"fmt"
	"sort"

	"ultimate-holdem-server/pkg/deck"
)

// ErrInvalidHandSize is returned when the evaluator is not given exactly two hole cards,
// or is given more than five board cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// ErrDuplicateCard is returned when the same card appears twice in an evaluation
var ErrDuplicateCard = errors.New("duplicate card in hand")

const (
	holeSize     = 2
	maxBoardSize = 5
	handSize     = 5
)

// HandScore is the best five-card hand found for a set of cards
type HandScore struct {
	Category Category `json:"category"`
	// Values are the card values of the best hand in descending order
	// A wheel straight is reported as 5,4,3,2,1
	Values []int `json:"values"`
	// Cards is the best five-card subset
	Cards deck.Hand `json:"cards"`

	// tieBreak are the values grouped by multiplicity (quads before kicker, etc.)
	tieBreak []int
	strength int
}

// Name returns a human-readable description, i.e., Three of a kind
func (h *HandScore) Name() string {
	return h.Category.String()
}

// Strength is a single sortable key: a stronger hand always has a larger strength,
// and two hands tie exactly when their strengths are equal
func (h *HandScore) Strength() int {
	return h.strength
}

// TieBreakValues returns the values ordered for comparison within the category
func (h *HandScore) TieBreakValues() []int {
	v := make([]int, len(h.tieBreak))
	copy(v, h.tieBreak)
	return v
}

func (h *HandScore) String() string {
	return fmt.Sprintf("%s (%s)", h.Name(), h.Cards.String())
}

// Evaluate finds the best five-card hand from two hole cards and up to five board cards
// Every five-card subset is scored and the one with the highest strength is kept.
// With fewer than five cards in total, the cards are scored as a partial hand
// (only pairs, trips and quads are possible)
func Evaluate(hole, board deck.Hand) (*HandScore, error) {
	if len(hole) != holeSize {
		return nil, fmt.Errorf("%w: expected %d hole cards, got %d", ErrInvalidHandSize, holeSize, len(hole))
	}

	if len(board) > maxBoardSize {
		return nil, fmt.Errorf("%w: expected at most %d board cards, got %d", ErrInvalidHandSize, maxBoardSize, len(board))
	}

	cards := deck.Concat(hole, board)
	if cards.HasDuplicates() {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, cards.String())
	}

	for _, c := range cards {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: %+v", deck.ErrInvalidCard, c)
		}
	}

	size := handSize
	if len(cards) < size {
		size = len(cards)
	}

	var best *HandScore
	eachCombination(len(cards), size, func(indexes []int) {
		subset := make(deck.Hand, len(indexes))
		for i, idx := range indexes {
			subset[i] = cards[idx]
		}

		score := classify(subset)
		if best == nil || score.strength > best.strength {
			best = score
		}
	})

	return best, nil
}

// MustEvaluate is like Evaluate, but panics on invalid input
func MustEvaluate(hole, board deck.Hand) *HandScore {
	score, err := Evaluate(hole, board)
	if err != nil {
		panic(err)
	}

	return score
}

// eachCombination calls fn with every k-sized set of indexes out of n, in lexicographic order
// The slice passed to fn is reused between calls
func eachCombination(n, k int, fn func([]int)) {
	if k > n || k < 0 {
		return
	}

	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}

// classify scores a single subset of at most five cards
// Categories are checked from strongest to weakest and the first match wins
func classify(cards deck.Hand) *HandScore {
	sorted := cards.Clone()
	sort.Sort(sort.Reverse(sorted))

	values := make([]int, len(sorted))
	for i, c := range sorted {
		values[i] = c.Rank
	}

	groups := groupByRank(values)
	flush := isFlush(sorted)
	straightHigh, isStraight := straightHighCard(values)

	var category Category
	switch {
	case flush && isStraight && straightHigh == deck.Ace:
		category = RoyalFlush
	case flush && isStraight:
		category = StraightFlush
	case groups[0].count == 4:
		category = FourOfAKind
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count == 2:
		category = FullHouse
	case flush:
		category = Flush
	case isStraight:
		category = Straight
	case groups[0].count == 3:
		category = ThreeOfAKind
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		category = TwoPair
	case groups[0].count == 2:
		category = OnePair
	default:
		category = HighCard
	}

	if isStraight && straightHigh == 5 {
		// wheel: the ace plays low
		values = []int{5, 4, 3, 2, deck.LowAce}
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AceLowRank() > sorted[j].AceLowRank()
		})
	}

	tieBreak := make([]int, 0, len(values))
	if isStraight {
		tieBreak = append(tieBreak, values...)
	} else {
		for _, g := range groups {
			for i := 0; i < g.count; i++ {
				tieBreak = append(tieBreak, g.rank)
			}
		}
	}

	return &HandScore{
		Category: category,
		Values:   values,
		Cards:    sorted,
		tieBreak: tieBreak,
		strength: calculateStrength(category, tieBreak),
	}
}

type rankGroup struct {
	rank  int
	count int
}

// groupByRank groups values by rank, ordered by count and then by rank, both descending
func groupByRank(values []int) []rankGroup {
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

func isFlush(cards deck.Hand) bool {
	if len(cards) != handSize {
		return false
	}

	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// straightHighCard returns the top card of a straight made by exactly five values sorted descending
// The wheel (A,5,4,3,2) is reported with a top card of 5
func straightHighCard(values []int) (int, bool) {
	if len(values) != handSize {
		return 0, false
	}

	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return 0, false
		}
	}

	if values[0]-values[4] == 4 {
		return values[0], true
	}

	if values[0] == deck.Ace && values[1] == 5 && values[4] == 2 {
		return 5, true
	}

	return 0, false
}

// calculateStrength packs the category and up to five tie-break values into one integer
// Each value is < 15, so a base-15 encoding preserves lexicographic order
func calculateStrength(category Category, values []int) int {
	strength := int(category)
	for i := 0; i < handSize; i++ {
		strength *= 15
		if i < len(values) {
			strength += values[i]
		}
	}

	return strength
}
