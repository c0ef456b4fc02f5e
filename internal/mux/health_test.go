package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/bmizerany/assert"
	"ultimate-holdem-server/pkg/playable/ultimate"
)

func TestHealthHandler(t *testing.T) {
	ts := httptest.NewServer(NewMux("v1.2.3", ultimate.DefaultOptions(), nil))
	defer ts.Close()

	var expects healthResponse
	assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v1.2.3", expects.Version)
}
