package session

import (
	"time"

	"github.com/google/uuid"
	"ultimate-holdem-server/pkg/playable/ultimate"
)

// Stats are the results of a simulated session
type Stats struct {
	SessionID   uuid.UUID `json:"sessionId"`
	Strategy    string    `json:"strategy"`
	HandsPlayed int       `json:"handsPlayed"`
	HandsWon    int       `json:"handsWon"`
	HandsTied   int       `json:"handsTied"`
	HandsFolded int       `json:"handsFolded"`
	Profit      int       `json:"profit"`
	FinalStack  int       `json:"finalStack"`
	Bankrupt    bool      `json:"bankrupt"`
	// AuditMismatches counts showdowns where the reference evaluator picked a different winner
	AuditMismatches int           `json:"auditMismatches"`
	Duration        time.Duration `json:"duration"`
	Totals          Totals        `json:"totals"`
}

// WinRate returns the fraction of hands won
func (s Stats) WinRate() float64 {
	if s.HandsPlayed == 0 {
		return 0
	}

	return float64(s.HandsWon) / float64(s.HandsPlayed)
}

// AverageProfit returns the profit per hand played
func (s Stats) AverageProfit() float64 {
	if s.HandsPlayed == 0 {
		return 0
	}

	return float64(s.Profit) / float64(s.HandsPlayed)
}

// Totals are the summed winnings of a set of rounds
type Totals struct {
	// Net is the summed net win or loss
	Net     int `json:"net"`
	MainPot int `json:"mainPot"`
	Blind   int `json:"blind"`
	Trips   int `json:"trips"`
}

// SumTotals adds up the winnings of every round
func SumTotals(results []*ultimate.RoundResult) Totals {
	var t Totals
	for _, r := range results {
		t.Net += r.NetWin
		t.MainPot += r.MainPotWin
		t.Blind += r.BlindWin
		t.Trips += r.TripsWin
	}

	return t
}

// Add returns the sum of both totals
func (t Totals) Add(other Totals) Totals {
	return Totals{
		Net:     t.Net + other.Net,
		MainPot: t.MainPot + other.MainPot,
		Blind:   t.Blind + other.Blind,
		Trips:   t.Trips + other.Trips,
	}
}
