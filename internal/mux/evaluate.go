package mux

import (
	"net/http"

	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/handanalyzer"
)

type evaluateRequest struct {
	PlayerHole string `json:"playerHole"`
	DealerHole string `json:"dealerHole"`
	Board      string `json:"board"`
}

type evaluateResponse struct {
	*handanalyzer.Showdown
	PlayerStrength int    `json:"playerStrength"`
	DealerStrength int    `json:"dealerStrength"`
	Winner         string `json:"winner"`
}

func winnerName(r handanalyzer.Result) string {
	switch r {
	case handanalyzer.First:
		return "player"
	case handanalyzer.Second:
		return "dealer"
	}

	return "tie"
}

func (m *Mux) postHandEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		var hands [3]deck.Hand
		for i, s := range []string{req.PlayerHole, req.DealerHole, req.Board} {
			h, err := deck.ParseCards(s)
			if err != nil {
				writeGameError(w, err)
				return
			}

			hands[i] = h
		}

		showdown, err := handanalyzer.DetermineWinner(hands[0], hands[1], hands[2])
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluateResponse{
			Showdown:       showdown,
			PlayerStrength: showdown.Player.Strength(),
			DealerStrength: showdown.Dealer.Strength(),
			Winner:         winnerName(showdown.Result),
		})
	}
}
