package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ptpal/internal/exercise"
	"ptpal/internal/feedback"
	"ptpal/internal/pose"
)

// postJSON sends a POST request with a JSON body to the given handler.
func postJSON(t *testing.T, handler http.HandlerFunc, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// assessReply mirrors the wire shape of a scored assessment.
type assessReply struct {
	Pose       string             `json:"pose"`
	Score      int                `json:"score"`
	Pass       bool               `json:"pass"`
	Reasons    []string           `json:"reasons"`
	Metrics    map[string]float64 `json:"metrics"`
	Thresholds map[string]float64 `json:"thresholds"`
	Coaching   *feedback.Coaching `json:"coaching"`
}

func decodeReply(t *testing.T, rec *httptest.ResponseRecorder) assessReply {
	t.Helper()

	var reply assessReply
	if err := json.NewDecoder(rec.Body).Decode(&reply); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return reply
}

func TestAssessHandler_Assess(t *testing.T) {
	h := NewAssessHandler(exercise.DefaultThresholds(), nil)

	rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
		Exercise:  "tree_pose",
		Landmarks: pose.TreePoseFrame(),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	reply := decodeReply(t, rec)
	if reply.Pose != "tree_pose" {
		t.Errorf("expected pose tree_pose, got %q", reply.Pose)
	}
	if reply.Score != 5 || !reply.Pass {
		t.Errorf("got score %d pass %t, want 5 true", reply.Score, reply.Pass)
	}
	if len(reply.Reasons) != 1 || reply.Reasons[0] != "Centered and aligned." {
		t.Errorf("got reasons %v, want the compliant message", reply.Reasons)
	}
	if len(reply.Thresholds) != 22 {
		t.Errorf("expected 22 echoed thresholds, got %d", len(reply.Thresholds))
	}
	if reply.Coaching != nil {
		t.Error("expected no coaching without a feedback request")
	}
}

func TestAssessHandler_Assess_AliasKey(t *testing.T) {
	h := NewAssessHandler(exercise.DefaultThresholds(), nil)

	rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
		Exercise:  "balance",
		Landmarks: pose.SingleLegStanceFrame(),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	reply := decodeReply(t, rec)
	if reply.Pose != "single_leg_stance" {
		t.Errorf("expected canonical key single_leg_stance, got %q", reply.Pose)
	}
	if reply.Score != 5 {
		t.Errorf("got score %d, want 5", reply.Score)
	}
}

func TestAssessHandler_Assess_UnknownExercise(t *testing.T) {
	h := NewAssessHandler(exercise.DefaultThresholds(), nil)

	rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
		Exercise:  "cartwheel",
		Landmarks: pose.StandingFrame(),
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Error, "unknown exercise") {
		t.Errorf("expected unknown exercise error, got %q", resp.Error)
	}
}

func TestAssessHandler_Assess_IncompleteFrame(t *testing.T) {
	h := NewAssessHandler(exercise.DefaultThresholds(), nil)

	rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
		Exercise:  "partial_squat",
		Landmarks: pose.StandingFrame()[:10],
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Error, "missing metrics") {
		t.Errorf("expected missing metrics error, got %q", resp.Error)
	}
}

func TestAssessHandler_Assess_InvalidJSON(t *testing.T) {
	h := NewAssessHandler(exercise.DefaultThresholds(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/assess", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Assess(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestAssessHandler_Assess_ThresholdOverrides(t *testing.T) {
	h := NewAssessHandler(exercise.DefaultThresholds(), nil)

	t.Run("override tightens a check", func(t *testing.T) {
		rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
			Exercise:   "tree_pose",
			Landmarks:  pose.TreePoseFrame(),
			Thresholds: map[string]float64{"tree_min_leg_lift_cm": 50},
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
		}

		reply := decodeReply(t, rec)
		if reply.Score != 3 || reply.Pass {
			t.Errorf("got score %d pass %t, want 3 false", reply.Score, reply.Pass)
		}
		if len(reply.Reasons) != 1 || reply.Reasons[0] != "Lift your foot higher: 34.0 cm < 50.0 cm." {
			t.Errorf("got reasons %v, want the leg lift cue", reply.Reasons)
		}
		if reply.Thresholds["tree_min_leg_lift_cm"] != 50 {
			t.Errorf("expected echoed override 50, got %v", reply.Thresholds["tree_min_leg_lift_cm"])
		}
	})

	t.Run("unknown threshold name is rejected", func(t *testing.T) {
		rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
			Exercise:   "tree_pose",
			Landmarks:  pose.TreePoseFrame(),
			Thresholds: map[string]float64{"tree_lift": 50},
		})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}

		var resp errorResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if !strings.Contains(resp.Error, "unknown threshold") {
			t.Errorf("expected unknown threshold error, got %q", resp.Error)
		}
	})
}

// fakeEnhancer records the call and returns canned coaching.
type fakeEnhancer struct {
	coaching *feedback.Coaching
	err      error
	called   bool
	gotOpts  feedback.Options
}

func (f *fakeEnhancer) Enhance(ctx context.Context, result *exercise.Result, opts feedback.Options) (*feedback.Coaching, error) {
	f.called = true
	f.gotOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.coaching, nil
}

func TestAssessHandler_Assess_WithCoaching(t *testing.T) {
	enhancer := &fakeEnhancer{
		coaching: &feedback.Coaching{
			Pose:     "tree_pose",
			Severity: "ok",
			Cues:     []feedback.Cue{{Issue: "none", Action: "Keep doing what you are doing."}},
		},
	}
	h := NewAssessHandler(exercise.DefaultThresholds(), enhancer)

	rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
		Exercise:  "tree_pose",
		Landmarks: pose.TreePoseFrame(),
		Feedback:  &feedbackRequest{Tone: "clinical", ReadingLevel: "adult"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	reply := decodeReply(t, rec)
	if reply.Coaching == nil {
		t.Fatal("expected coaching in response")
	}
	if reply.Coaching.Severity != "ok" {
		t.Errorf("expected severity ok, got %q", reply.Coaching.Severity)
	}
	if enhancer.gotOpts.Tone != "clinical" {
		t.Errorf("expected tone passed through, got %q", enhancer.gotOpts.Tone)
	}
}

func TestAssessHandler_Assess_CoachingFailureIsNotFatal(t *testing.T) {
	enhancer := &fakeEnhancer{err: errors.New("model unavailable")}
	h := NewAssessHandler(exercise.DefaultThresholds(), enhancer)

	rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
		Exercise:  "tree_pose",
		Landmarks: pose.TreePoseFrame(),
		Feedback:  &feedbackRequest{},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	reply := decodeReply(t, rec)
	if reply.Coaching != nil {
		t.Error("expected no coaching on enhancer failure")
	}
	if reply.Score != 5 {
		t.Errorf("got score %d, want 5", reply.Score)
	}
}

func TestAssessHandler_Assess_CoachingNotRequested(t *testing.T) {
	enhancer := &fakeEnhancer{coaching: &feedback.Coaching{Severity: "ok"}}
	h := NewAssessHandler(exercise.DefaultThresholds(), enhancer)

	rec := postJSON(t, h.Assess, "/api/assess", assessRequest{
		Exercise:  "tree_pose",
		Landmarks: pose.TreePoseFrame(),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if enhancer.called {
		t.Error("enhancer should not run without a feedback request")
	}
}

func TestAssessHandler_Exercises(t *testing.T) {
	h := NewAssessHandler(exercise.DefaultThresholds(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/exercises", nil)
	rec := httptest.NewRecorder()
	h.Exercises(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp exercisesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Exercises) != 6 {
		t.Errorf("expected 6 exercises, got %d", len(resp.Exercises))
	}
	if resp.Exercises[0].Key != "partial_squat" || resp.Exercises[0].Name != "Partial Squat" {
		t.Errorf("got first exercise %+v, want partial_squat", resp.Exercises[0])
	}
	if resp.Aliases["squat"] != "partial_squat" {
		t.Errorf("expected squat alias, got %q", resp.Aliases["squat"])
	}
	if resp.Aliases["balance"] != "single_leg_stance" {
		t.Errorf("expected balance alias, got %q", resp.Aliases["balance"])
	}
	if len(resp.Thresholds) != 22 {
		t.Errorf("expected 22 thresholds, got %d", len(resp.Thresholds))
	}
}
