package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/notargets/oberth/nozzle"
)

// Msg is the websocket envelope in both directions
type Msg struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content,omitempty"`
}

// Hub serves one websocket connection. Requests are read by the connection
// loop, computed in order, and replies are written by a single writer.
type Hub struct {
	conn     *websocket.Conn
	requests chan Msg
	replies  chan Msg
	done     chan struct{}
}

func NewHub(conn *websocket.Conn) *Hub {
	return &Hub{
		conn:     conn,
		requests: make(chan Msg, 10),
		replies:  make(chan Msg, 10),
		done:     make(chan struct{}),
	}
}

func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}
	h := NewHub(conn)
	go h.handleRequest()
	go h.handleResponse()
	h.readLoop()
	<-h.done
	conn.Close()
}

func (h *Hub) readLoop() {
	defer close(h.requests)
	for {
		var msg Msg
		if err := h.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("websocket read")
			}
			return
		}
		h.requests <- msg
	}
}

func (h *Hub) handleRequest() {
	defer close(h.replies)
	for msg := range h.requests {
		h.replies <- reply(msg)
	}
}

func (h *Hub) handleResponse() {
	defer close(h.done)
	for msg := range h.replies {
		if err := h.conn.WriteJSON(&msg); err != nil {
			log.WithError(err).Warn("websocket write")
		}
	}
}

func reply(msg Msg) Msg {
	var (
		result interface{}
		err    error
	)
	switch msg.Type {
	case "nozzle":
		cfg := nozzle.DefaultConfig()
		if err = unmarshalContent(msg.Content, &cfg); err == nil {
			result, err = solveNozzle(cfg)
		}
	case "performance":
		req := NewPerformanceRequest()
		if err = unmarshalContent(msg.Content, &req); err == nil {
			result, err = scanPerformance(req)
		}
	default:
		err = fmt.Errorf("unknown message type %q", msg.Type)
	}
	if err != nil {
		return errorMsg(err)
	}
	content, err := json.Marshal(result)
	if err != nil {
		return errorMsg(err)
	}
	return Msg{Type: msg.Type + "Result", Content: content}
}

func unmarshalContent(content json.RawMessage, v interface{}) error {
	if len(content) == 0 {
		return nil
	}
	return json.Unmarshal(content, v)
}

func errorMsg(err error) Msg {
	content, _ := json.Marshal(map[string]string{"error": err.Error()})
	return Msg{Type: "error", Content: content}
}
