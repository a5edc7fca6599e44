package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"ptpal/internal/exercise"
	"ptpal/internal/pose"
)

// dialLive connects a WebSocket client to a test server's live endpoint.
func dialLive(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestLiveHandler_ScoresFrames(t *testing.T) {
	ts := httptest.NewServer(New(Config{}))
	defer ts.Close()

	conn := dialLive(t, ts)

	req := liveRequest{Exercise: "tree_pose", Landmarks: pose.TreePoseFrame()}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}

	var result exercise.Result
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("failed to read result: %v", err)
	}

	if result.Score != 5 || !result.Pass {
		t.Errorf("got score %d pass %t, want 5 true", result.Score, result.Pass)
	}
	if result.Exercise != exercise.TreePose {
		t.Errorf("got exercise %v, want tree_pose", result.Exercise)
	}
}

func TestLiveHandler_ReportsErrorsAndStaysOpen(t *testing.T) {
	ts := httptest.NewServer(New(Config{}))
	defer ts.Close()

	conn := dialLive(t, ts)

	// Unknown exercise gets an error reply, not a dropped connection
	if err := conn.WriteJSON(liveRequest{Exercise: "cartwheel"}); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}

	var werr liveError
	if err := conn.ReadJSON(&werr); err != nil {
		t.Fatalf("failed to read error: %v", err)
	}
	if !strings.Contains(werr.Error, "cartwheel") {
		t.Errorf("expected error naming the exercise, got %q", werr.Error)
	}

	// Incomplete frames report missing metrics the same way
	short := pose.StandingFrame()[:5]
	if err := conn.WriteJSON(liveRequest{Exercise: "tree_pose", Landmarks: short}); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}
	if err := conn.ReadJSON(&werr); err != nil {
		t.Fatalf("failed to read error: %v", err)
	}
	if !strings.Contains(werr.Error, "missing metrics") {
		t.Errorf("expected missing metrics error, got %q", werr.Error)
	}

	// The connection still scores a valid frame afterwards
	if err := conn.WriteJSON(liveRequest{Exercise: "tree_pose", Landmarks: pose.TreePoseFrame()}); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}
	var result exercise.Result
	if err := conn.ReadJSON(&result); err != nil {
		t.Fatalf("failed to read result: %v", err)
	}
	if result.Score != 5 {
		t.Errorf("got score %d, want 5", result.Score)
	}
}
