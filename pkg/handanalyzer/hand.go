package handanalyzer

import (
	"encoding/json"
	"fmt"
)

// Category is a poker hand category, i.e., royal flush
// Values run from HighCard (1) to RoyalFlush (10) so they can index payout tables directly
type Category int

// Constants for hand categories
const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories returns every category from lowest to highest
func Categories() []Category {
	return []Category{
		HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
		Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
	}
}

// IsValid returns true if the category is between HighCard and RoyalFlush
func (c Category) IsValid() bool {
	return c >= HighCard && c <= RoyalFlush
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown hand category: %d", c))
	}
}

// MarshalJSON encodes the category with its name
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(c),
		Name: c.String(),
	})
}

// UnmarshalJSON accepts the object written by MarshalJSON or a bare integer
func (c *Category) UnmarshalJSON(b []byte) error {
	var id int
	if err := json.Unmarshal(b, &id); err != nil {
		var obj struct {
			ID int `json:"id"`
		}

		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		id = obj.ID
	}

	cat := Category(id)
	if !cat.IsValid() {
		return fmt.Errorf("unknown hand category: %d", id)
	}

	*c = cat
	return nil
}

// CategoryFromString returns the category matching the name (case-insensitive),
// accepting the String() form as well as short aliases like "pair" or "quads"
func CategoryFromString(s string) (Category, error) {
	switch normalize(s) {
	case "highcard", "high":
		return HighCard, nil
	case "pair", "onepair":
		return OnePair, nil
	case "twopair":
		return TwoPair, nil
	case "threeofakind", "trips", "set":
		return ThreeOfAKind, nil
	case "straight":
		return Straight, nil
	case "flush":
		return Flush, nil
	case "fullhouse", "boat":
		return FullHouse, nil
	case "fourofakind", "quads":
		return FourOfAKind, nil
	case "straightflush":
		return StraightFlush, nil
	case "royalflush", "royal":
		return RoyalFlush, nil
	}

	return 0, fmt.Errorf("unknown hand category: %s", s)
}

func normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r >= 'a' && r <= 'z':
			out = append(out, r)
		}
	}

	return string(out)
}
