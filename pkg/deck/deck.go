package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"ultimate-holdem-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrExhaustedDeck is returned when a deal asks for more unique cards than the deck can provide
// Under correct round sizing this is unreachable and indicates a caller defect
var ErrExhaustedDeck = errors.New("not enough unique cards left in the deck")

// Deck represents a playing deck
// A Deck is owned by a single session and must not be shared between goroutines
type Deck struct {
	Cards []Card `json:"cards"`

	dealt map[Card]bool
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
// If gen is nil, crypto/rand is used when shuffling
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{
		rng: gen,
	}

	d.buildDeck()
	return d
}

// NewShuffled returns a freshly built and shuffled deck
func NewShuffled(gen rng.Generator) *Deck {
	d := New(gen)
	d.Shuffle()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits() {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
	d.dealt = make(map[Card]bool, len(cards))
}

// Shuffle rebuilds the full 52-card deck, applies a uniform random permutation,
// and clears the record of dealt cards
func (d *Deck) Shuffle() {
	// we always want to shuffle from an unshuffled deck.
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	cards, err := d.DealUnique(1, nil)
	if err != nil {
		if errors.Is(err, ErrExhaustedDeck) {
			return Card{}, ErrEndOfDeck
		}

		return Card{}, err
	}

	return cards[0], nil
}

// DealUnique removes and returns n cards that are not in excluding and have not
// already been dealt, in the order they are found while scanning the deck.
// If fewer than n eligible cards remain, ErrExhaustedDeck is returned and the deck is unchanged
func (d *Deck) DealUnique(n int, excluding Hand) (Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	excluded := excluding.Set()
	picked := make([]int, 0, n)
	for i, card := range d.Cards {
		if len(picked) == n {
			break
		}

		if d.dealt[card] || excluded[card] {
			continue
		}

		picked = append(picked, i)
	}

	if len(picked) < n {
		return nil, fmt.Errorf("%w: wanted %d, found %d", ErrExhaustedDeck, n, len(picked))
	}

	cards := make(Hand, 0, n)
	remaining := make([]Card, 0, len(d.Cards)-n)
	next := 0
	for i, card := range d.Cards {
		if next < len(picked) && picked[next] == i {
			cards = append(cards, card)
			d.dealt[card] = true
			next++
			continue
		}

		remaining = append(remaining, card)
	}

	d.Cards = remaining
	return cards, nil
}

// DealPlayer deals the player's two hole cards
func (d *Deck) DealPlayer(excluding ...Card) (Hand, error) {
	return d.DealUnique(2, excluding)
}

// DealOpponent deals the opponent's (dealer's) two hole cards
func (d *Deck) DealOpponent(excluding ...Card) (Hand, error) {
	return d.DealUnique(2, excluding)
}

// DealFlop deals the first three community cards
func (d *Deck) DealFlop(excluding ...Card) (Hand, error) {
	return d.DealUnique(3, excluding)
}

// DealTurn deals the fourth community card
func (d *Deck) DealTurn(excluding ...Card) (Card, error) {
	return d.dealOne(excluding)
}

// DealRiver deals the fifth community card
func (d *Deck) DealRiver(excluding ...Card) (Card, error) {
	return d.dealOne(excluding)
}

func (d *Deck) dealOne(excluding Hand) (Card, error) {
	cards, err := d.DealUnique(1, excluding)
	if err != nil {
		return Card{}, err
	}

	return cards[0], nil
}

// Dealt returns the cards dealt since the last shuffle
// The order of the returned cards is unspecified
func (d *Deck) Dealt() Hand {
	cards := make(Hand, 0, len(d.dealt))
	for card := range d.dealt {
		cards = append(cards, card)
	}

	return cards
}

// IsDealt returns true if the card has been dealt since the last shuffle
func (d *Deck) IsDealt(card Card) bool {
	return d.dealt[card]
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
