package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"ultimate-holdem-server/pkg/playable/ultimate"
	"ultimate-holdem-server/pkg/session"
)

// RoundStore saves and loads the rounds of simulated sessions
type RoundStore interface {
	session.Recorder
	Rounds(ctx context.Context, sessionID uuid.UUID) ([]*ultimate.RoundResult, error)
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config
	version string
	options ultimate.Options
	store   RoundStore
}

type config struct {
	// maxHands is the most hands a single simulated session may play
	maxHands int
	// maxSessions is the most sessions a single simulation may run
	maxSessions int
}

// NewMux returns a new HTTP mux
// store may be nil, in which case simulated rounds are not persisted
func NewMux(version string, options ultimate.Options, store RoundStore) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		options: options,
		store:   store,
		config: config{
			maxHands:    100000,
			maxSessions: 16,
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/hand/evaluate").Handler(this.postHandEvaluate())
	r.Methods(http.MethodPost).Path("/simulation").Handler(this.postSimulation())
	r.Methods(http.MethodGet).Path("/simulation/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}/rounds").Handler(this.getSimulationUUIDRounds())
	r.Methods(http.MethodGet).Path("/session/ws").Handler(this.getSessionWS())

	return this
}
