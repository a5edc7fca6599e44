package store

import (
	"database/sql"
	"errors"
	"time"
)

// ResultRecord is one stored engine evaluation. Reasons and Metrics hold the
// JSON encoded forms of the result's cue list and consumed metrics.
type ResultRecord struct {
	ID         int64
	SessionID  string
	CapturedAt float64
	Exercise   string
	Score      int
	Pass       bool
	Reasons    string
	Metrics    string
	CreatedAt  time.Time
}

// SessionSummary aggregates the stored results of one session.
type SessionSummary struct {
	SessionID string
	Records   int
	AvgScore  float64
	Passes    int
}

// ResultRepository provides access to stored evaluation results.
type ResultRepository struct {
	db *sql.DB
}

// Results returns the result repository for this store.
func (s *Store) Results() *ResultRepository {
	return &ResultRepository{db: s.db}
}

// Create inserts a new result record into the database.
func (r *ResultRepository) Create(rec *ResultRecord) error {
	rec.CreatedAt = time.Now()

	result, err := r.db.Exec(
		`INSERT INTO results (session_id, captured_at, exercise, score, pass, reasons, metrics, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.CapturedAt, rec.Exercise, rec.Score, rec.Pass, rec.Reasons, rec.Metrics, rec.CreatedAt,
	)
	if err != nil {
		return err
	}

	rec.ID, err = result.LastInsertId()
	return err
}

// ListBySession retrieves a session's results in capture order.
func (r *ResultRepository) ListBySession(sessionID string) ([]*ResultRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, captured_at, exercise, score, pass, reasons, metrics, created_at
		 FROM results WHERE session_id = ? ORDER BY captured_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResults(rows)
}

// Recent retrieves the newest results across all sessions, newest first.
func (r *ResultRepository) Recent(limit int) ([]*ResultRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, captured_at, exercise, score, pass, reasons, metrics, created_at
		 FROM results ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]*ResultRecord, error) {
	var results []*ResultRecord
	for rows.Next() {
		rec := &ResultRecord{}
		err := rows.Scan(&rec.ID, &rec.SessionID, &rec.CapturedAt, &rec.Exercise,
			&rec.Score, &rec.Pass, &rec.Reasons, &rec.Metrics, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// CountBySession returns the number of results stored for a session.
func (r *ResultRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM results WHERE session_id = ?`,
		sessionID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the total number of stored results.
func (r *ResultRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// LatestSessionID returns the session that most recently recorded a result.
// With no results stored it returns ErrNotFound.
func (r *ResultRepository) LatestSessionID() (string, error) {
	var id string
	err := r.db.QueryRow(
		`SELECT session_id FROM results ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}

	return id, nil
}

// Summarize aggregates one session's results.
func (r *ResultRepository) Summarize(sessionID string) (*SessionSummary, error) {
	sum := &SessionSummary{SessionID: sessionID}

	err := r.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(score), 0), COALESCE(SUM(pass), 0)
		 FROM results WHERE session_id = ?`,
		sessionID,
	).Scan(&sum.Records, &sum.AvgScore, &sum.Passes)
	if err != nil {
		return nil, err
	}

	return sum, nil
}

// RecentSummaries aggregates the sessions that recorded results most
// recently, newest first.
func (r *ResultRepository) RecentSummaries(limit int) ([]*SessionSummary, error) {
	rows, err := r.db.Query(
		`SELECT session_id, COUNT(*), COALESCE(AVG(score), 0), COALESCE(SUM(pass), 0)
		 FROM results GROUP BY session_id ORDER BY MAX(created_at) DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*SessionSummary
	for rows.Next() {
		sum := &SessionSummary{}
		if err := rows.Scan(&sum.SessionID, &sum.Records, &sum.AvgScore, &sum.Passes); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
