package mux

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"ultimate-holdem-server/internal/rng"
	"ultimate-holdem-server/pkg/playable/ultimate"
	"ultimate-holdem-server/pkg/session"
	"ultimate-holdem-server/pkg/strategy"
)

var errNoRoundStore = errors.New("rounds are not being recorded")

type simulationRequest struct {
	Hands    int    `json:"hands"`
	Ante     int    `json:"ante"`
	Trips    int    `json:"trips"`
	Seed     int64  `json:"seed"`
	Strategy string `json:"strategy"`
	Sessions int    `json:"sessions"`
	Audit    bool   `json:"audit"`
}

func (s *simulationRequest) validate(opts ultimate.Options, maxHands, maxSessions int) error {
	if s.Ante < opts.MinAnte || s.Ante > opts.MaxAnte {
		return fmt.Errorf("%w: ante must be between %d and %d", ultimate.ErrInvalidBetAmount, opts.MinAnte, opts.MaxAnte)
	}

	if s.Trips != 0 && (s.Trips < opts.MinTrips || s.Trips > opts.MaxTrips) {
		return fmt.Errorf("%w: trips must be between %d and %d", ultimate.ErrInvalidBetAmount, opts.MinTrips, opts.MaxTrips)
	}

	if s.Hands <= 0 || s.Hands > maxHands {
		return fmt.Errorf("hands must be between 1 and %d", maxHands)
	}

	if s.Sessions == 0 {
		s.Sessions = 1
	}

	if s.Sessions < 0 || s.Sessions > maxSessions {
		return fmt.Errorf("sessions must be between 1 and %d", maxSessions)
	}

	if s.Strategy == "" {
		s.Strategy = "basic"
	}

	return nil
}

type simulationResponse struct {
	Summary  session.Stats   `json:"summary"`
	WinRate  float64         `json:"winRate"`
	Sessions []session.Stats `json:"sessions"`
}

func (m *Mux) postSimulation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req simulationRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if err := req.validate(m.options, m.config.maxHands, m.config.maxSessions); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		// validate the strategy before starting any session
		if _, err := strategy.FromString(req.Strategy); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		factory := func(i int) (*session.Simulator, error) {
			strat, _ := strategy.FromString(req.Strategy)

			var gen rng.Generator
			if req.Seed != 0 {
				gen = rng.NewSeeded(req.Seed + int64(i))
			} else {
				gen = rng.Crypto{}
			}

			sim, err := session.New(logrus.StandardLogger(), m.options, strat, gen)
			if err != nil {
				return nil, err
			}

			sim.SetAudit(req.Audit)
			if m.store != nil {
				sim.SetRecorder(m.store)
			}

			return sim, nil
		}

		stats, err := session.RunConcurrent(r.Context(), req.Sessions, factory, req.Hands, req.Ante, req.Trips)
		if err != nil {
			writeGameError(w, err)
			return
		}

		summary := session.Summarize(stats)
		writeJSON(w, http.StatusOK, simulationResponse{
			Summary:  summary,
			WinRate:  summary.WinRate(),
			Sessions: stats,
		})
	}
}

func (m *Mux) getSimulationUUIDRounds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.store == nil {
			writeJSONError(w, http.StatusNotFound, errNoRoundStore)
			return
		}

		id, err := uuid.Parse(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		rounds, err := m.store.Rounds(r.Context(), id)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if len(rounds) == 0 {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, rounds)
	}
}
