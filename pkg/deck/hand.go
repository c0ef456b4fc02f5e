package deck

// Hand represents a collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

// Less orders by rank, then by suit
func (h Hand) Less(i, j int) bool {
	if h[i].Rank != h[j].Rank {
		return h[i].Rank < h[j].Rank
	}

	return h[i].Suit < h[j].Suit
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// HasDuplicates returns true if any card appears more than once
func (h Hand) HasDuplicates() bool {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return true
		}

		seen[c] = true
	}

	return false
}

// Set returns the cards as a set
func (h Hand) Set() map[Card]bool {
	set := make(map[Card]bool, len(h))
	for _, c := range h {
		set[c] = true
	}

	return set
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Concat returns a new hand containing the cards of every hand, in order
func Concat(hands ...Hand) Hand {
	n := 0
	for _, h := range hands {
		n += len(h)
	}

	all := make(Hand, 0, n)
	for _, h := range hands {
		all = append(all, h...)
	}

	return all
}
