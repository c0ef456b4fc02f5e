package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ultimate-holdem-server/internal/rng"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	deck := New(rng.NewSeeded(1))

	a.Equal(52, deck.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Spades}, deck.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Clubs}, deck.Cards[51])
	a.Equal("e02d2fc3522e68b4c82ec19967642eb04ee9e9a4", deck.HashCode())

	deck.Shuffle()
	a.Equal(52, deck.CardsLeft())
	a.NotEqual("e02d2fc3522e68b4c82ec19967642eb04ee9e9a4", deck.HashCode())
	a.False(Hand(deck.Cards).HasDuplicates())
}

func TestDeck_ShuffleIsReproducible(t *testing.T) {
	a := assert.New(t)

	d1 := NewShuffled(rng.NewSeeded(99))
	d2 := NewShuffled(rng.NewSeeded(99))
	a.Equal(d1.HashCode(), d2.HashCode())

	d3 := NewShuffled(rng.NewSeeded(100))
	a.NotEqual(d1.HashCode(), d3.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	deck := New(nil)

	a.True(deck.CanDraw(52))
	a.False(deck.CanDraw(53))

	for i := 0; i < 52; i++ {
		_, err := deck.Draw()
		a.NoError(err)
	}

	a.False(deck.CanDraw(1))

	card, err := deck.Draw()
	a.Equal(Card{}, card)
	a.Equal(ErrEndOfDeck, err)

	deck.Shuffle()
	a.True(deck.CanDraw(52), "expected Shuffle() to reset the deck")
	a.Equal(0, len(deck.Dealt()))
}

func TestDeck_DealUnique(t *testing.T) {
	a := assert.New(t)
	d := New(nil)
	d.Cards = CardsFromString("AS,KS,QS,JS,10S")

	cards, err := d.DealUnique(2, CardsFromString("AS"))
	a.NoError(err)
	a.Equal("KS,QS", cards.String())
	a.Equal("AS,JS,10S", Hand(d.Cards).String())
	a.True(d.IsDealt(CardFromString("KS")))
	a.False(d.IsDealt(CardFromString("AS")))

	// not enough eligible cards, deck must be unchanged
	cards, err = d.DealUnique(3, CardsFromString("JS"))
	a.ErrorIs(err, ErrExhaustedDeck)
	a.Nil(cards)
	a.Equal(3, d.CardsLeft())

	cards, err = d.DealUnique(3, nil)
	a.NoError(err)
	a.Equal("AS,JS,10S", cards.String())
	a.Equal(0, d.CardsLeft())

	_, err = d.DealUnique(-1, nil)
	a.Error(err)
}

func TestDeck_DealUniqueSkipsDealtCards(t *testing.T) {
	a := assert.New(t)
	d := New(nil)
	d.Cards = CardsFromString("AS,KS,QS")
	d.dealt[CardFromString("AS")] = true

	cards, err := d.DealUnique(1, nil)
	a.NoError(err)
	a.Equal("KS", cards.String())
}

func TestDeck_RoundPartition(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(3))

	for round := 0; round < 200; round++ {
		d.Shuffle()

		player, err := d.DealPlayer()
		a.NoError(err)
		opponent, err := d.DealOpponent()
		a.NoError(err)
		flop, err := d.DealFlop()
		a.NoError(err)
		turn, err := d.DealTurn()
		a.NoError(err)
		river, err := d.DealRiver()
		a.NoError(err)

		dealt := Concat(player, opponent, flop, Hand{turn, river})
		a.Len(dealt, 9)
		a.False(dealt.HasDuplicates())
		a.Len(d.Dealt(), 9)

		universe := Concat(dealt, d.Cards)
		a.Len(universe, 52)
		a.False(universe.HasDuplicates())
	}
}

func TestDeck_DealFrequency(t *testing.T) {
	a := assert.New(t)
	d := New(rng.NewSeeded(11))

	const rounds = 5200
	counts := make(map[Card]int)
	for i := 0; i < rounds; i++ {
		d.Shuffle()
		cards, err := d.DealUnique(9, nil)
		a.NoError(err)
		for _, c := range cards {
			counts[c]++
		}
	}

	// each card is expected in 9/52 of the rounds
	a.Len(counts, 52)
	expected := rounds * 9 / 52
	for card, n := range counts {
		a.InDelta(expected, n, float64(expected)/4, "card %s", card)
	}
}
