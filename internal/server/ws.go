package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"ptpal/internal/exercise"
	"ptpal/internal/pose"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// LiveHandler scores landmark frames over a WebSocket connection. Each
// message carries an exercise key and a frame; the reply is the full
// assessment result, so a capture client gets feedback per frame.
type LiveHandler struct {
	thresholds exercise.Thresholds
}

// NewLiveHandler creates a new LiveHandler with the given thresholds.
func NewLiveHandler(th exercise.Thresholds) *LiveHandler {
	return &LiveHandler{thresholds: th}
}

type liveRequest struct {
	Exercise  string     `json:"exercise"`
	Landmarks pose.Frame `json:"landmarks"`
}

type liveError struct {
	Error string `json:"error"`
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var req liveRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		ex, err := exercise.Parse(req.Exercise)
		if err != nil {
			if err := conn.WriteJSON(liveError{Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		result, err := exercise.Assess(ex, req.Landmarks, h.thresholds)
		if err != nil {
			if err := conn.WriteJSON(liveError{Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(result); err != nil {
			return
		}
	}
}
