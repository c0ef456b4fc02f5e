package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits returns every suit in the order the unshuffled deck is built
func Suits() []Suit {
	return []Suit{Spades, Hearts, Diamonds, Clubs}
}

// Letter returns the single-letter form of the suit (S, H, D, C)
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

// Symbol returns the unicode symbol of the suit
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// Card is an individual playing card
// Cards are values: two cards are the same card if rank and suit match
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

func rankString(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace, LowAce:
		return "A"
	}

	return strconv.Itoa(rank)
}

// String returns the canonical display form, i.e., AS or 10H
func (c Card) String() string {
	return rankString(c.Rank) + c.Suit.Letter()
}

// Symbol returns the card with a unicode suit, i.e., A♠
func (c Card) Symbol() string {
	return rankString(c.Rank) + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// IsValid returns true if the rank and suit are within the 52-card universe
func (c Card) IsValid() bool {
	if c.Rank < 2 || c.Rank > Ace {
		return false
	}

	switch c.Suit {
	case Spades, Hearts, Diamonds, Clubs:
		return true
	}

	return false
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([cdhs])\z`)

// ParseCard returns a Card from the string
// Accepted forms are the display form (AS, 10H, TD) and the numeric form (14s, 10h)
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank int
	switch strings.ToUpper(match[1]) {
	case "T":
		rank = 10
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		r, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
		}

		rank = r
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardFromString returns a Card from the string
// It panics if the card cannot be parsed. Use ParseCard() for untrusted input
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// ParseCards parses a comma-separated list of cards
func ParseCards(s string) (Hand, error) {
	if strings.TrimSpace(s) == "" {
		return Hand{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make(Hand, len(parts))
	for i, part := range parts {
		card, err := ParseCard(part)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString will returns a slice of cards
// It panics on any invalid card
func CardsFromString(s string) Hand {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of AS,10H,2C
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
