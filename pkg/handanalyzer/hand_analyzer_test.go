package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ultimate-holdem-server/pkg/deck"
)

func evaluate(t *testing.T, hole, board string) *HandScore {
	t.Helper()

	score, err := Evaluate(deck.CardsFromString(hole), deck.CardsFromString(board))
	if err != nil {
		t.Fatalf("could not evaluate %s + %s: %v", hole, board, err)
	}

	return score
}

func TestEvaluate_RoyalFlush(t *testing.T) {
	a := assert.New(t)
	s := evaluate(t, "AS,KS", "QS,JS,10S,2H,3D")
	a.Equal(RoyalFlush, s.Category)
	a.Equal([]int{14, 13, 12, 11, 10}, s.Values)
	a.Equal("AS,KS,QS,JS,10S", s.Cards.String())
}

func TestEvaluate_FourOfAKind(t *testing.T) {
	a := assert.New(t)
	s := evaluate(t, "2H,2D", "2S,2C,9H,4D,5C")
	a.Equal(FourOfAKind, s.Category)
	a.Equal([]int{2, 2, 2, 2, 9}, s.TieBreakValues())
}

func TestEvaluate_Wheel(t *testing.T) {
	a := assert.New(t)
	s := evaluate(t, "AS,5D", "2C,3H,4S,9D,KH")
	a.Equal(Straight, s.Category)
	a.Equal([]int{5, 4, 3, 2, 1}, s.Values)
	a.Equal("5D,4S,3H,2C,AS", s.Cards.String())

	// a six-high straight beats the wheel
	six := evaluate(t, "AS,6D", "2C,3H,4S,5D,KH")
	a.Equal(Straight, six.Category)
	a.Equal(6, six.Values[0])
	a.Equal(First, Compare(six, s))

	// steel wheel
	sf := evaluate(t, "AH,5H", "2H,3H,4H,9D,KH")
	a.Equal(StraightFlush, sf.Category)
	a.Equal([]int{5, 4, 3, 2, 1}, sf.Values)
}

func TestEvaluate_AceHighStraightIsNotWheel(t *testing.T) {
	a := assert.New(t)
	s := evaluate(t, "AS,KD", "QC,JH,10S,2D,3H")
	a.Equal(Straight, s.Category)
	a.Equal([]int{14, 13, 12, 11, 10}, s.Values)
}

func TestEvaluate_FullHouse(t *testing.T) {
	a := assert.New(t)

	// two sets of trips, the lower plays as the pair
	s := evaluate(t, "3C,3D", "3H,4C,4D,4H,5C")
	a.Equal(FullHouse, s.Category)
	a.Equal([]int{4, 4, 4, 3, 3}, s.TieBreakValues())

	// trips plus two pairs, best pair plays
	s = evaluate(t, "7C,7D", "7H,5C,5D,9C,9D")
	a.Equal(FullHouse, s.Category)
	a.Equal([]int{7, 7, 7, 9, 9}, s.TieBreakValues())
}

func TestEvaluate_Flush(t *testing.T) {
	a := assert.New(t)
	s := evaluate(t, "AH,2H", "9H,7H,5H,3H,KD")
	a.Equal(Flush, s.Category)
	a.Equal([]int{14, 9, 7, 5, 3}, s.Values)
}

func TestEvaluate_TwoPair(t *testing.T) {
	a := assert.New(t)

	// three pairs on board: best two pairs and the best remaining kicker
	s := evaluate(t, "AS,AD", "KS,KD,QS,QD,2C")
	a.Equal(TwoPair, s.Category)
	a.Equal([]int{14, 14, 13, 13, 12}, s.TieBreakValues())
}

func TestEvaluate_ThreeOfAKindAndPairs(t *testing.T) {
	a := assert.New(t)

	s := evaluate(t, "AS,AH", "AC,4H,5S,9D,KC")
	a.Equal(ThreeOfAKind, s.Category)
	a.Equal([]int{14, 14, 14, 13, 9}, s.TieBreakValues())

	s = evaluate(t, "JS,JH", "AC,4H,5S,9D,KC")
	a.Equal(OnePair, s.Category)
	a.Equal([]int{11, 11, 14, 13, 9}, s.TieBreakValues())

	s = evaluate(t, "JS,2H", "AC,4H,6S,9D,KC")
	a.Equal(HighCard, s.Category)
	a.Equal([]int{14, 13, 11, 9, 6}, s.Values)
}

func TestEvaluate_PartialBoard(t *testing.T) {
	a := assert.New(t)

	s := evaluate(t, "AS,AD", "")
	a.Equal(OnePair, s.Category)
	a.Len(s.Cards, 2)

	s = evaluate(t, "KS,QD", "")
	a.Equal(HighCard, s.Category)

	s = evaluate(t, "AS,AD", "AC,2D,2H")
	a.Equal(FullHouse, s.Category)

	s = evaluate(t, "9S,8S", "7S,6S,5S,2D")
	a.Equal(StraightFlush, s.Category)
	a.Equal(9, s.Values[0])

	s = evaluate(t, "9S,9D", "9C")
	a.Equal(ThreeOfAKind, s.Category)
}

func TestEvaluate_Errors(t *testing.T) {
	a := assert.New(t)

	_, err := Evaluate(deck.CardsFromString("AS"), deck.CardsFromString("2C,3C,4C"))
	a.ErrorIs(err, ErrInvalidHandSize)

	_, err = Evaluate(deck.CardsFromString("AS,KS,QS"), nil)
	a.ErrorIs(err, ErrInvalidHandSize)

	_, err = Evaluate(deck.CardsFromString("AS,KS"), deck.CardsFromString("2C,3C,4C,5C,6C,7C"))
	a.ErrorIs(err, ErrInvalidHandSize)

	_, err = Evaluate(deck.CardsFromString("AS,KS"), deck.CardsFromString("AS,3C,4C"))
	a.ErrorIs(err, ErrDuplicateCard)

	_, err = Evaluate(deck.Hand{{Rank: 15, Suit: deck.Spades}, deck.CardFromString("2C")}, nil)
	a.ErrorIs(err, deck.ErrInvalidCard)

	a.Panics(func() {
		MustEvaluate(deck.CardsFromString("AS"), nil)
	})
}

func TestEachCombination(t *testing.T) {
	a := assert.New(t)

	seen := make(map[[5]int]bool)
	eachCombination(7, 5, func(indexes []int) {
		var key [5]int
		copy(key[:], indexes)
		seen[key] = true
	})
	a.Len(seen, 21)

	count := 0
	eachCombination(3, 5, func([]int) { count++ })
	a.Equal(0, count)

	eachCombination(5, 5, func([]int) { count++ })
	a.Equal(1, count)
}

func TestCalculateStrength(t *testing.T) {
	a := assert.New(t)

	royal := calculateStrength(RoyalFlush, []int{14, 13, 12, 11, 10})
	sf := calculateStrength(StraightFlush, []int{13, 12, 11, 10, 9})
	worstPair := calculateStrength(OnePair, []int{2, 2, 5, 4, 3})
	bestHigh := calculateStrength(HighCard, []int{14, 13, 12, 11, 9})

	a.Greater(royal, sf)
	a.Greater(worstPair, bestHigh)
	a.Greater(calculateStrength(OnePair, []int{2, 2, 5, 4}), calculateStrength(OnePair, []int{2, 2, 5}))
}

func TestCategory(t *testing.T) {
	a := assert.New(t)

	a.Equal(1, int(HighCard))
	a.Equal(10, int(RoyalFlush))
	a.Len(Categories(), 10)
	a.False(Category(0).IsValid())
	a.True(Flush.IsValid())
	a.Panics(func() {
		_ = Category(11).String()
	})

	c, err := CategoryFromString("Three of a kind")
	a.NoError(err)
	a.Equal(ThreeOfAKind, c)

	c, err = CategoryFromString("pair")
	a.NoError(err)
	a.Equal(OnePair, c)

	_, err = CategoryFromString("nothing")
	a.Error(err)

	b, err := Flush.MarshalJSON()
	a.NoError(err)
	a.JSONEq(`{"id":6,"name":"Flush"}`, string(b))
}
