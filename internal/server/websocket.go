package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phrasplit/phrasplit/core/segment"
	"github.com/phrasplit/phrasplit/core/splitter"
	"github.com/phrasplit/phrasplit/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	readWait       = 60 * time.Second
	maxMessageSize = maxRequestBody
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamClients counts currently connected streaming clients.
var streamClients int64

// StreamMessage is a single message on the /ws/split stream.
type StreamMessage struct {
	Type    string           `json:"type"` // "segment", "complete", "error"
	Segment *segment.Segment `json:"segment,omitempty"`
	Count   int              `json:"count,omitempty"`
	Code    string           `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
}

// handleStream upgrades the connection and serves split requests over it.
// Each request message produces one "segment" message per unit, then a
// "complete" message; the client may send further requests on the same
// connection.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	n := atomic.AddInt64(&streamClients, 1)
	logging.WebSocketEvent("client_connected", int(n))
	defer func() {
		n := atomic.AddInt64(&streamClients, -1)
		logging.WebSocketEvent("client_disconnected", int(n))
	}()

	conn.SetReadLimit(maxMessageSize)

	for {
		conn.SetReadDeadline(time.Now().Add(readWait))

		var req SplitRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Error("websocket unexpected close", "error", err)
			}
			return
		}

		if !s.streamSplit(conn, req) {
			return
		}
	}
}

// streamSplit runs one split request on the connection. It returns false
// when the connection is no longer usable.
func (s *Server) streamSplit(conn *websocket.Conn, req SplitRequest) bool {
	it, err := splitter.NewIterator(req.Text, splitter.Options{
		Mode:     splitter.Mode(req.Mode),
		Backend:  splitter.Backend(req.Backend),
		MaxChars: req.MaxChars,
	})
	if err != nil {
		_, code := classifySplitError(err)
		return writeStream(conn, StreamMessage{Type: "error", Code: code, Message: err.Error()})
	}

	count := 0
	for {
		seg, ok := it.Next()
		if !ok {
			break
		}
		if !writeStream(conn, StreamMessage{Type: "segment", Segment: &seg}) {
			return false
		}
		count++
	}

	return writeStream(conn, StreamMessage{Type: "complete", Count: count})
}

func writeStream(conn *websocket.Conn, msg StreamMessage) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		logging.Error("websocket write failed", "error", err)
		return false
	}
	return true
}
