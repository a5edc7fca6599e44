// Package api provides HTTP API handlers for the pose assessment service.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ptpal/internal/exercise"
	"ptpal/internal/feedback"
	"ptpal/internal/pose"
)

// AssessHandler evaluates single landmark frames against exercise rules.
type AssessHandler struct {
	thresholds exercise.Thresholds
	enhancer   feedback.Enhancer
}

// NewAssessHandler creates a new AssessHandler. The enhancer may be nil,
// in which case coaching requests are ignored.
func NewAssessHandler(th exercise.Thresholds, enhancer feedback.Enhancer) *AssessHandler {
	return &AssessHandler{thresholds: th, enhancer: enhancer}
}

// Request and response types

type assessRequest struct {
	Exercise   string             `json:"exercise"`
	Landmarks  pose.Frame         `json:"landmarks"`
	Thresholds map[string]float64 `json:"thresholds,omitempty"`
	Feedback   *feedbackRequest   `json:"feedback,omitempty"`
}

type feedbackRequest struct {
	Tone         string `json:"tone"`
	ReadingLevel string `json:"reading_level"`
	Language     string `json:"language"`
}

type assessResponse struct {
	*exercise.Result
	Coaching *feedback.Coaching `json:"coaching,omitempty"`
}

type exerciseInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type exercisesResponse struct {
	Exercises  []exerciseInfo     `json:"exercises"`
	Aliases    map[string]string  `json:"aliases"`
	Thresholds map[string]float64 `json:"thresholds"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeEngineError maps evaluation errors to HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error) {
	var unknownErr *exercise.UnknownExerciseError
	if errors.As(err, &unknownErr) {
		writeError(w, http.StatusBadRequest, unknownErr.Error())
		return
	}
	var missingErr *exercise.MissingMetricError
	if errors.As(err, &missingErr) {
		writeError(w, http.StatusUnprocessableEntity, missingErr.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "Assessment failed")
}

// Assess handles POST /api/assess and scores a single frame.
func (h *AssessHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req assessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	ex, err := exercise.Parse(req.Exercise)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	th := h.thresholds
	if len(req.Thresholds) > 0 {
		th, err = th.WithOverrides(req.Thresholds)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	result, err := exercise.Assess(ex, req.Landmarks, th)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	resp := assessResponse{Result: result}
	if req.Feedback != nil && h.enhancer != nil {
		opts := feedback.Options{
			Tone:         req.Feedback.Tone,
			ReadingLevel: req.Feedback.ReadingLevel,
			Language:     req.Feedback.Language,
		}
		coaching, err := h.enhancer.Enhance(r.Context(), result, opts)
		if err != nil {
			// Coaching is optional; the assessment stands on its own.
			log.Printf("feedback enhancer error: %v", err)
		} else {
			resp.Coaching = coaching
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Exercises handles GET /api/exercises and lists the supported exercises
// with their aliases and active thresholds.
func (h *AssessHandler) Exercises(w http.ResponseWriter, r *http.Request) {
	exercises := exercise.Exercises()
	infos := make([]exerciseInfo, 0, len(exercises))
	for _, ex := range exercises {
		infos = append(infos, exerciseInfo{Key: ex.Key(), Name: ex.Name()})
	}

	writeJSON(w, http.StatusOK, exercisesResponse{
		Exercises:  infos,
		Aliases:    exercise.Aliases(),
		Thresholds: h.thresholds.Map(),
	})
}
