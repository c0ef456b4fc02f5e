package ultimate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"ultimate-holdem-server/pkg/handanalyzer"
)

// RoundResult is the record of a resolved or folded round
type RoundResult struct {
	ID uuid.UUID `json:"id"`

	AnteBet   int `json:"anteBet"`
	TripsBet  int `json:"tripsBet"`
	BlindBet  int `json:"blindBet"`
	ActionBet int `json:"actionBet"`

	TotalStaked int `json:"totalStaked"`
	// NetWin is the amount credited minus TotalStaked
	NetWin int `json:"netWin"`

	MainPotWin int `json:"mainPotWin"`
	TripsWin   int `json:"tripsWin"`
	BlindWin   int `json:"blindWin"`

	BankrollAfter int `json:"bankrollAfter"`

	Outcome Outcome `json:"outcome"`
	// PlayerCategory and DealerCategory are nil when the player folded
	PlayerCategory  *handanalyzer.Category `json:"playerCategory,omitempty"`
	DealerCategory  *handanalyzer.Category `json:"dealerCategory,omitempty"`
	DealerQualified bool                   `json:"dealerQualified"`

	Time time.Time `json:"time"`
}

// Credited returns the total amount returned to the bankroll
func (r *RoundResult) Credited() int {
	return r.MainPotWin + r.TripsWin + r.BlindWin
}

// Folded returns true if the player folded at the river
func (r *RoundResult) Folded() bool {
	return r.Outcome == OutcomeFolded
}

func (r *RoundResult) String() string {
	return fmt.Sprintf("%s: staked %d, net %d, bankroll %d", r.Outcome, r.TotalStaked, r.NetWin, r.BankrollAfter)
}
