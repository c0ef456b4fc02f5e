package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/handanalyzer"
	"ultimate-holdem-server/pkg/playable/ultimate"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// isUserError returns true if the error was caused by bad input rather than a server fault
func isUserError(err error) bool {
	for _, target := range []error{
		ultimate.ErrInvalidBetAmount,
		ultimate.ErrIllegalStateTransition,
		handanalyzer.ErrInvalidHandSize,
		handanalyzer.ErrDuplicateCard,
		deck.ErrInvalidCard,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// writeGameError writes user errors as a 400 and everything else as a 500
func writeGameError(w http.ResponseWriter, err error) {
	if isUserError(err) {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}
