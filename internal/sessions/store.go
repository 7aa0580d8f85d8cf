// Package sessions persists per-visitor resume snapshots behind a small
// port interface so the wizard has no hidden storage dependency.
package sessions

import (
	"context"
	"encoding/json"

	"resume-builder/internal/resume"
	"resume-builder/internal/shared/telemetry"
)

// Store is the persistence port injected into the wizard: snapshot,
// restore, and clear of one ResumeData per session token.
type Store interface {
	// Load returns the stored snapshot. ok is false when the session has
	// no usable snapshot; parse errors never escape, a corrupted record
	// reads back as "nothing stored" after being logged.
	Load(ctx context.Context, sessionID string) (data resume.ResumeData, ok bool, err error)
	Save(ctx context.Context, sessionID string, data resume.ResumeData) error
	Clear(ctx context.Context, sessionID string) error
}

// decodeSnapshot repairs what it can and resets what it cannot. Incomplete
// but well-formed JSON is shallow-merged against the defaults; malformed
// JSON resets the session wholesale.
func decodeSnapshot(sessionID string, raw []byte) (resume.ResumeData, bool) {
	var data resume.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		telemetry.Error("session.snapshot.corrupt", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return resume.Default(), false
	}
	return resume.Repaired(data), true
}

func encodeSnapshot(data resume.ResumeData) ([]byte, error) {
	return json.Marshal(data)
}
