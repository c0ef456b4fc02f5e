package ultimate

// RoundState is the betting state of the current round
type RoundState string

// RoundState constants
const (
	// StateAwaitingAnte is between rounds, waiting for the ante that starts the next one
	StateAwaitingAnte RoundState = "awaiting-ante"

	// StateAwaitingBlindAndTrips means the ante is in, and the blind and trips may be placed before the deal
	StateAwaitingBlindAndTrips RoundState = "awaiting-blind-and-trips"

	// StatePreFlopDecision means the hole cards are out and the player may bet 4x
	StatePreFlopDecision RoundState = "pre-flop-decision"

	// StateFlopDecision means the player checked pre-flop and may bet 2x
	StateFlopDecision RoundState = "flop-decision"

	// StateRiverDecision means the player checked the flop and must bet 1x or fold
	StateRiverDecision RoundState = "river-decision"

	// StateShowdown means the action bet is placed and the round is waiting to be resolved
	StateShowdown RoundState = "showdown"
)
