package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/handanalyzer"
	"ultimate-holdem-server/pkg/playable/ultimate"
)

func newTestServer(store RoundStore) *httptest.Server {
	return httptest.NewServer(NewMux("test", ultimate.DefaultOptions(), store))
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}

func Test_isUserError(t *testing.T) {
	a := assert.New(t)

	a.True(isUserError(ultimate.ErrInsufficientFunds))
	a.True(isUserError(fmt.Errorf("wrapped: %w", ultimate.ErrInvalidBetAmount)))
	a.True(isUserError(ultimate.IllegalStateError{Action: ultimate.ActionFold, State: ultimate.StateAwaitingAnte}))
	a.True(isUserError(handanalyzer.ErrInvalidHandSize))
	a.True(isUserError(handanalyzer.ErrDuplicateCard))
	a.True(isUserError(deck.ErrInvalidCard))
	a.False(isUserError(errors.New("database is down")))
}

func Test_writeGameError(t *testing.T) {
	a := assert.New(t)

	w := httptest.NewRecorder()
	writeGameError(w, ultimate.ErrInsufficientFunds)
	a.Equal(http.StatusBadRequest, w.Code)

	var resp errorResponse
	a.NoError(json.NewDecoder(w.Body).Decode(&resp))
	a.Equal("invalid bet amount: insufficient funds", resp.Message)

	w = httptest.NewRecorder()
	writeGameError(w, errors.New("secret failure"))
	a.Equal(http.StatusInternalServerError, w.Code)
	resp = errorResponse{}
	a.NoError(json.NewDecoder(w.Body).Decode(&resp))
	a.Equal("Internal Server Error", resp.Message)
}

func Test_decodeRequest_contentType(t *testing.T) {
	ts := newTestServer(nil)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/hand/evaluate", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")
	assertDo(t, req, nil, http.StatusUnsupportedMediaType)

	assertPost(t, ts, "/hand/evaluate", "{not json", nil, http.StatusBadRequest)
}
