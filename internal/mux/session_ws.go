package mux

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"ultimate-holdem-server/internal/rng"
	"ultimate-holdem-server/pkg/deck"
	"ultimate-holdem-server/pkg/playable/ultimate"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// payloadIn is a message from the client
// Action is either an action key (i.e., "bet-pre-flop") or its integer id
type payloadIn struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// payloadOut is sent after every client message
type payloadOut struct {
	Snapshot *ultimate.Snapshot `json:"snapshot"`
	Error    string             `json:"error,omitempty"`
}

// wsSession is a single websocket connection playing its own game
type wsSession struct {
	id     uuid.UUID
	conn   *websocket.Conn
	table  *ultimate.Table
	logger logrus.FieldLogger
	send   chan *payloadOut
}

func (m *Mux) newWSSession(conn *websocket.Conn) (*wsSession, error) {
	id := uuid.New()
	logger := logrus.WithField("wsSession", id.String())

	game, err := ultimate.NewGame(logger, m.options)
	if err != nil {
		return nil, err
	}

	return &wsSession{
		id:     id,
		conn:   conn,
		table:  ultimate.NewTable(game, deck.New(rng.Crypto{})),
		logger: logger,
		send:   make(chan *payloadOut, 4),
	}, nil
}

func (m *Mux) getSessionWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		sess, err := m.newWSSession(conn)
		if err != nil {
			logrus.WithError(err).Error("could not create session")
			_ = conn.Close()
			return
		}

		sess.logger.Info("session connected")
		done := make(chan bool)
		defer func() {
			close(sess.send)
			<-done
			_ = conn.Close()
			sess.logger.Info("session disconnected")
		}()

		go m.webSocketWriteLoop(sess, done)

		// greet the client with the opening state
		sess.send <- &payloadOut{Snapshot: sess.table.Snapshot()}
		m.webSocketReadLoop(sess)
	}
}

func (m *Mux) webSocketWriteLoop(sess *wsSession, done chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = sess.conn.Close()
		close(done)

		// the read loop may still be sending until it notices the closed connection
		for range sess.send {
		}
	}()

	for {
		select {
		case <-ticker.C:
			_ = sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sess.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-sess.send:
			if !ok {
				_ = sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = sess.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sess.conn.WriteJSON(msg); err != nil {
				sess.logger.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(sess *wsSession) {
	for {
		var msg payloadIn
		if err := sess.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.logger.WithError(err).Error("could not read message")
			}

			return
		}

		sess.send <- m.handleMessage(sess, &msg)
	}
}

func (m *Mux) handleMessage(sess *wsSession, msg *payloadIn) *payloadOut {
	out := &payloadOut{}

	action, err := ultimate.ActionFromString(msg.Action)
	if err == nil {
		err = sess.table.Perform(action, msg.Amount)
	}

	if err != nil {
		sess.logger.WithError(err).WithField("action", msg.Action).Debug("action rejected")
		out.Error = err.Error()
	}

	out.Snapshot = sess.table.Snapshot()
	return out
}
