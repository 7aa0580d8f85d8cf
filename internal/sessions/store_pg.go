package sessions

import (
	"context"
	"database/sql"
	"errors"

	"resume-builder/internal/resume"
)

// PGStore persists snapshots in the resume_snapshots table as JSONB.
type PGStore struct {
	DB *sql.DB
}

// Load returns the snapshot for a session, if any.
func (s *PGStore) Load(ctx context.Context, sessionID string) (resume.ResumeData, bool, error) {
	const query = `
SELECT payload
FROM resume_snapshots
WHERE session_id = $1
LIMIT 1`
	var raw []byte
	err := s.DB.QueryRowContext(ctx, query, sessionID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resume.Default(), false, nil
		}
		return resume.ResumeData{}, false, err
	}
	data, ok := decodeSnapshot(sessionID, raw)
	return data, ok, nil
}

// Save upserts the snapshot for a session.
func (s *PGStore) Save(ctx context.Context, sessionID string, data resume.ResumeData) error {
	raw, err := encodeSnapshot(data)
	if err != nil {
		return err
	}
	const query = `
INSERT INTO resume_snapshots (session_id, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (session_id) DO UPDATE SET
  payload = EXCLUDED.payload,
  updated_at = now()`
	_, err = s.DB.ExecContext(ctx, query, sessionID, raw)
	return err
}

// Clear deletes the snapshot for a session.
func (s *PGStore) Clear(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM resume_snapshots WHERE session_id = $1`
	_, err := s.DB.ExecContext(ctx, query, sessionID)
	return err
}
