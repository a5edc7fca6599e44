package store

import (
	"database/sql"
	"time"
)

// FrameRecord is one raw landmark payload received during a session.
// Landmarks and Angles hold JSON encoded text exactly as ingested.
type FrameRecord struct {
	ID         int64
	SessionID  string
	CapturedAt float64
	Landmarks  string
	Angles     string
	CreatedAt  time.Time
}

// FrameRepository provides access to stored frames.
type FrameRepository struct {
	db *sql.DB
}

// Frames returns the frame repository for this store.
func (s *Store) Frames() *FrameRepository {
	return &FrameRepository{db: s.db}
}

// Create inserts a new frame record into the database.
func (r *FrameRepository) Create(f *FrameRecord) error {
	f.CreatedAt = time.Now()

	result, err := r.db.Exec(
		`INSERT INTO frames (session_id, captured_at, landmarks, angles, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		f.SessionID, f.CapturedAt, f.Landmarks, f.Angles, f.CreatedAt,
	)
	if err != nil {
		return err
	}

	f.ID, err = result.LastInsertId()
	return err
}

// ListBySession retrieves a session's frames in capture order.
func (r *FrameRepository) ListBySession(sessionID string) ([]*FrameRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, captured_at, landmarks, angles, created_at
		 FROM frames WHERE session_id = ? ORDER BY captured_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frames []*FrameRecord
	for rows.Next() {
		f := &FrameRecord{}
		err := rows.Scan(&f.ID, &f.SessionID, &f.CapturedAt, &f.Landmarks, &f.Angles, &f.CreatedAt)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return frames, nil
}

// CountBySession returns the number of frames stored for a session.
func (r *FrameRepository) CountBySession(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM frames WHERE session_id = ?`,
		sessionID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
