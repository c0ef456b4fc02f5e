package ultimate

// Stake is what the player has wagered in the current round
type Stake struct {
	Ante  int `json:"ante"`
	Blind int `json:"blind"`
	Trips int `json:"trips"`
	// Action is the single pre-flop (4x), flop (2x) or river (1x) bet
	Action int `json:"action"`
}

// Total returns the sum of every bet
func (s Stake) Total() int {
	return s.Ante + s.Blind + s.Trips + s.Action
}

// Bankroll is the player's chips across rounds
type Bankroll struct {
	PlayerStack   int `json:"playerStack"`
	StartingStack int `json:"startingStack"`
}

// Profit returns how much the player is up (or down) since the session started
func (b Bankroll) Profit() int {
	return b.PlayerStack - b.StartingStack
}

func (b *Bankroll) debit(amount int) {
	b.PlayerStack -= amount
}

func (b *Bankroll) credit(amount int) {
	b.PlayerStack += amount
}
