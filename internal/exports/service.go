package exports

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"

	"resume-builder/internal/resume"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/internal/templates"
)

// ErrExportBusy is returned when a session already has a print run in
// flight. The browser pipeline is expensive; one run per session at a time.
var ErrExportBusy = errors.New("export already in progress for session")

// Result is a finished export: the bytes plus the download file name.
type Result struct {
	FileName string
	PDF      []byte
}

// Service renders the document layout for a template and prints it.
// Archive, when set, receives a best-effort copy of every finished PDF.
type Service struct {
	renderer Renderer
	archive  object.ObjectStore

	mu   sync.Mutex
	busy map[string]bool
}

func NewService(renderer Renderer, archive object.ObjectStore) *Service {
	return &Service{
		renderer: renderer,
		archive:  archive,
		busy:     map[string]bool{},
	}
}

// Export prints the given resume with the template's document layout.
// Screen-only templates fail with templates.ErrNotExportable before any
// browser work starts.
func (s *Service) Export(ctx context.Context, sessionID string, id templates.ID, data resume.ResumeData) (Result, error) {
	if !s.acquire(sessionID) {
		return Result{}, ErrExportBusy
	}
	defer s.release(sessionID)

	html, err := templates.RenderDocument(id, data.Normalized())
	if err != nil {
		return Result{}, err
	}

	metrics.IncExportStarted()
	started := metrics.NowMillis()
	pdf, err := s.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		metrics.IncExportFailed()
		return Result{}, err
	}
	metrics.IncExportCompleted()
	metrics.ObserveExportDurationMs(metrics.NowMillis() - started)

	res := Result{FileName: FileName(data), PDF: pdf}
	s.archiveCopy(ctx, sessionID, res)
	return res, nil
}

func (s *Service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[sessionID] {
		return false
	}
	s.busy[sessionID] = true
	return true
}

func (s *Service) release(sessionID string) {
	s.mu.Lock()
	delete(s.busy, sessionID)
	s.mu.Unlock()
}

// archiveCopy stores a copy of the PDF. Failures are logged and swallowed:
// the download already succeeded from the caller's point of view.
func (s *Service) archiveCopy(ctx context.Context, sessionID string, res Result) {
	if s.archive == nil {
		return
	}
	if _, _, _, err := s.archive.Save(ctx, sessionID, res.FileName, bytes.NewReader(res.PDF)); err != nil {
		telemetry.Error("export.archive.failed", map[string]any{
			"session_id": sessionID,
			"file":       res.FileName,
			"error":      err.Error(),
		})
	}
}

// FileName derives the download name from the resume owner. Empty names
// fall back to a plain Resume.pdf.
func FileName(data resume.ResumeData) string {
	base := strings.TrimSpace(data.FullName())
	if base == "" {
		return "Resume.pdf"
	}
	base = strings.Join(strings.Fields(base), "_") + "_Resume.pdf"
	safe, err := util.SanitizeFileName(base)
	if err != nil {
		return "Resume.pdf"
	}
	return safe
}
