package ultimate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	action, err := ActionFromString("4")
	a.NoError(err)
	a.Equal(ActionBetPreFlop, action)

	action, err = ActionFromString("bet-flop")
	a.NoError(err)
	a.Equal(ActionBetFlop, action)

	action, err = ActionFromString(" Fold ")
	a.NoError(err)
	a.Equal(ActionFold, action)

	_, err = ActionFromString("10")
	a.EqualError(err, "invalid action: 10")

	_, err = ActionFromString("raise")
	a.EqualError(err, "invalid action: raise")
}

func TestAction_MarshalJSON(t *testing.T) {
	a := assert.New(t)
	b, err := json.Marshal([]Action{ActionBetPreFlop, ActionCheck})
	a.NoError(err)
	a.JSONEq(`[{"id":4,"key":"bet-pre-flop","name":"Bet 4x"},{"id":7,"key":"check","name":"Check"}]`, string(b))

	a.Panics(func() {
		_ = Action(99).String()
	})
}

func TestGame_AvailableActions(t *testing.T) {
	a := assert.New(t)
	g := newTestGame(t)

	a.Equal([]Action{ActionAnte}, g.AvailableActions())

	a.NoError(g.PlaceAnte(10))
	a.Equal([]Action{ActionBlind, ActionTrips, ActionDeal}, g.AvailableActions())

	a.NoError(g.PlaceTrips(5))
	a.Equal([]Action{ActionBlind, ActionDeal}, g.AvailableActions())

	a.NoError(g.CloseOpeningBets())
	a.Equal([]Action{ActionBetPreFlop, ActionCheck}, g.AvailableActions())

	a.NoError(g.Check())
	a.Equal([]Action{ActionBetFlop, ActionCheck}, g.AvailableActions())

	a.NoError(g.Check())
	a.Equal([]Action{ActionBetRiver, ActionFold}, g.AvailableActions())

	a.NoError(g.PlaceRiverBet())
	a.Equal([]Action{ActionShowdown}, g.AvailableActions())
}
