package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ptpal/internal/exercise"
	"ptpal/internal/pose"
	"ptpal/internal/store"
)

// SessionsHandler manages capture sessions and their recorded frames
// and assessment results.
type SessionsHandler struct {
	store      *store.Store
	thresholds exercise.Thresholds
}

// NewSessionsHandler creates a new SessionsHandler with the given store.
func NewSessionsHandler(s *store.Store, th exercise.Thresholds) *SessionsHandler {
	return &SessionsHandler{store: s, thresholds: th}
}

// Request and response types

type createSessionRequest struct {
	Exercise string `json:"exercise"`
}

type sessionResponse struct {
	ID        string `json:"id"`
	Exercise  string `json:"exercise,omitempty"`
	CreatedAt string `json:"created_at"`
}

type poseDataRequest struct {
	SessionID string     `json:"session_id"`
	Exercise  string     `json:"exercise,omitempty"`
	Timestamp float64    `json:"timestamp"`
	Landmarks pose.Frame `json:"landmarks"`
}

type poseDataResponse struct {
	Status string             `json:"status"`
	Angles map[string]float64 `json:"angles"`
	Result *exercise.Result   `json:"result,omitempty"`
}

type resultRow struct {
	Timestamp float64            `json:"timestamp"`
	Exercise  string             `json:"pose"`
	Score     int                `json:"score"`
	Pass      bool               `json:"pass"`
	Reasons   []string           `json:"reasons"`
	Metrics   map[string]float64 `json:"metrics"`
	CreatedAt string             `json:"created_at"`
}

type resultsResponse struct {
	SessionID string      `json:"session_id"`
	Results   []resultRow `json:"results"`
}

type exportResponse struct {
	SessionID    string      `json:"session_id"`
	TotalRecords int         `json:"total_records"`
	Results      []resultRow `json:"results"`
}

// toRow converts a stored result record back to its wire form.
func toRow(rec *store.ResultRecord) resultRow {
	row := resultRow{
		Timestamp: rec.CapturedAt,
		Exercise:  rec.Exercise,
		Score:     rec.Score,
		Pass:      rec.Pass,
		Reasons:   []string{},
		Metrics:   map[string]float64{},
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if err := json.Unmarshal([]byte(rec.Reasons), &row.Reasons); err != nil {
		row.Reasons = []string{rec.Reasons}
	}
	if err := json.Unmarshal([]byte(rec.Metrics), &row.Metrics); err != nil {
		row.Metrics = map[string]float64{}
	}
	return row
}

// Create handles POST /api/sessions and starts a new capture session.
// The body may name an exercise to evaluate every frame against.
func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess := &store.Session{ID: uuid.New().String()}
	if req.Exercise != "" {
		ex, err := exercise.Parse(req.Exercise)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		sess.Exercise = ex.Key()
	}

	if err := h.store.Sessions().Create(sess); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{
		ID:        sess.ID,
		Exercise:  sess.Exercise,
		CreatedAt: sess.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// IngestFrame handles POST /api/pose-data. The frame is always stored;
// when the request or the session names an exercise, it is also scored
// and the result recorded.
func (h *SessionsHandler) IngestFrame(w http.ResponseWriter, r *http.Request) {
	var req poseDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	sess, err := h.store.Sessions().GetByID(req.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	angles := pose.JointAngles(req.Landmarks)

	landmarksJSON, _ := json.Marshal(req.Landmarks)
	anglesJSON, _ := json.Marshal(angles)
	frame := &store.FrameRecord{
		SessionID:  sess.ID,
		CapturedAt: req.Timestamp,
		Landmarks:  string(landmarksJSON),
		Angles:     string(anglesJSON),
	}
	if err := h.store.Frames().Create(frame); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store frame")
		return
	}

	resp := poseDataResponse{Status: "success", Angles: angles}

	key := req.Exercise
	if key == "" {
		key = sess.Exercise
	}
	if key != "" {
		ex, err := exercise.Parse(key)
		if err != nil {
			writeEngineError(w, err)
			return
		}
		result, err := exercise.Assess(ex, req.Landmarks, h.thresholds)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		reasonsJSON, _ := json.Marshal(result.Reasons)
		metricsJSON, _ := json.Marshal(result.Metrics)
		rec := &store.ResultRecord{
			SessionID:  sess.ID,
			CapturedAt: req.Timestamp,
			Exercise:   result.Exercise.Key(),
			Score:      result.Score,
			Pass:       result.Pass,
			Reasons:    string(reasonsJSON),
			Metrics:    string(metricsJSON),
		}
		if err := h.store.Results().Create(rec); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to store result")
			return
		}
		resp.Result = result
	}

	writeJSON(w, http.StatusOK, resp)
}

// Results handles GET /api/sessions/{id}/results, newest first.
func (h *SessionsHandler) Results(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.store.Sessions().GetByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	records, err := h.store.Results().ListBySession(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list results")
		return
	}

	rows := make([]resultRow, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rows = append(rows, toRow(records[i]))
	}

	writeJSON(w, http.StatusOK, resultsResponse{SessionID: id, Results: rows})
}

// Export handles GET /api/sessions/{id}/export and returns the full
// session history in capture order.
func (h *SessionsHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.store.Sessions().GetByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	records, err := h.store.Results().ListBySession(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list results")
		return
	}

	rows := make([]resultRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, toRow(rec))
	}

	writeJSON(w, http.StatusOK, exportResponse{
		SessionID:    id,
		TotalRecords: len(rows),
		Results:      rows,
	})
}
