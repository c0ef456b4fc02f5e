package ultimate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Action is something the player can do at the table
type Action int

// Action constants
const (
	ActionAnte Action = iota
	ActionBlind
	ActionTrips
	ActionDeal
	ActionBetPreFlop
	ActionBetFlop
	ActionBetRiver
	ActionCheck
	ActionFold
	ActionShowdown
)

// MarshalJSON encodes the JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Key  string `json:"key"`
		Name string `json:"name"`
	}{
		ID:   int(a),
		Key:  a.Key(),
		Name: a.String(),
	})
}

func (a Action) String() string {
	switch a {
	case ActionAnte:
		return "Ante"
	case ActionBlind:
		return "Blind"
	case ActionTrips:
		return "Trips"
	case ActionDeal:
		return "Deal"
	case ActionBetPreFlop:
		return "Bet 4x"
	case ActionBetFlop:
		return "Bet 2x"
	case ActionBetRiver:
		return "Bet 1x"
	case ActionCheck:
		return "Check"
	case ActionFold:
		return "Fold"
	case ActionShowdown:
		return "Showdown"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// Key is the short name a client sends for the action
func (a Action) Key() string {
	switch a {
	case ActionBetPreFlop:
		return "bet-pre-flop"
	case ActionBetFlop:
		return "bet-flop"
	case ActionBetRiver:
		return "bet-river"
	}

	return strings.ToLower(a.String())
}

func (a Action) verb() string {
	switch a {
	case ActionAnte, ActionBlind, ActionTrips:
		return "place " + a.Key()
	case ActionBetPreFlop:
		return "place a pre-flop bet"
	case ActionBetFlop:
		return "place a flop bet"
	case ActionBetRiver:
		return "place a river bet"
	case ActionShowdown:
		return "resolve"
	}

	return a.Key()
}

// ActionFromString returns an action from a string integer or an action key
func ActionFromString(action string) (Action, error) {
	if actionInt, err := strconv.Atoi(action); err == nil {
		if actionInt >= 0 && actionInt <= int(ActionShowdown) {
			return Action(actionInt), nil
		}

		return -1, fmt.Errorf("invalid action: %s", action)
	}

	key := strings.ToLower(strings.TrimSpace(action))
	for a := ActionAnte; a <= ActionShowdown; a++ {
		if a.Key() == key {
			return a, nil
		}
	}

	return -1, fmt.Errorf("invalid action: %s", action)
}

// AvailableActions returns the actions the player can currently take
func (g *Game) AvailableActions() []Action {
	switch g.state {
	case StateAwaitingAnte:
		if g.bankroll.PlayerStack >= g.options.MinAnte {
			return []Action{ActionAnte}
		}

		return nil

	case StateAwaitingBlindAndTrips:
		actions := make([]Action, 0, 3)
		if g.stake.Blind == 0 && g.canFund(g.stake.Ante) {
			actions = append(actions, ActionBlind)
		}

		if g.stake.Trips == 0 && g.canFund(g.options.MinTrips) {
			actions = append(actions, ActionTrips)
		}

		return append(actions, ActionDeal)

	case StatePreFlopDecision:
		return g.actionBetOptions(ActionBetPreFlop, ActionCheck)

	case StateFlopDecision:
		return g.actionBetOptions(ActionBetFlop, ActionCheck)

	case StateRiverDecision:
		return g.actionBetOptions(ActionBetRiver, ActionFold)

	case StateShowdown:
		return []Action{ActionShowdown}
	}

	return nil
}

func (g *Game) actionBetOptions(bet Action, decline Action) []Action {
	if g.canFund(g.actionBetAmount(bet)) {
		return []Action{bet, decline}
	}

	return []Action{decline}
}
