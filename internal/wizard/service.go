package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"resume-builder/internal/resume"
	"resume-builder/internal/sessions"
	"resume-builder/internal/shared/telemetry"
)

var (
	// ErrJumpFromDataStep marks a jump attempted outside the preview state.
	ErrJumpFromDataStep = errors.New("jump to edit is only allowed from preview")
	// ErrJumpTarget marks a jump aimed at preview or out of range.
	ErrJumpTarget = errors.New("jump target must be a data-entry step")
	// ErrUnknownSection marks an add/remove against a non-list section.
	ErrUnknownSection = errors.New("unknown list section")
)

// Service owns the authoritative ResumeData and step index per session.
// There is exactly one logical writer per session; a per-session mutex
// serializes mutations, and snapshot writes are debounced fire-and-forget.
type Service struct {
	store sessions.Store
	saver *sessions.Debouncer

	mu     sync.Mutex
	states map[string]*sessionState
}

type sessionState struct {
	mu   sync.Mutex
	data resume.ResumeData
	step Step
}

// StepState is the wizard position reported to clients.
type StepState struct {
	Step      int      `json:"step"`
	Name      string   `json:"name"`
	AtStart   bool     `json:"atStart"`
	AtPreview bool     `json:"atPreview"`
	Steps     []string `json:"steps"`
}

// NewService constructs a Service over the given snapshot store. saveDelay
// is the quiet period before an edit burst is flushed to storage.
func NewService(store sessions.Store, saveDelay time.Duration) *Service {
	s := &Service{
		store:  store,
		states: make(map[string]*sessionState),
	}
	s.saver = sessions.NewDebouncer(saveDelay, s.persist)
	return s
}

// Resume returns the current ResumeData for a session, restoring it from
// the snapshot store on first touch.
func (s *Service) Resume(ctx context.Context, sessionID string) (resume.ResumeData, error) {
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return resume.ResumeData{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.data.Clone(), nil
}

// Update merges a partial update into the session's ResumeData. It never
// validates: invalid intermediate states flow straight to the live preview.
func (s *Service) Update(ctx context.Context, sessionID string, patch resume.Patch) (resume.ResumeData, error) {
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return resume.ResumeData{}, err
	}
	st.mu.Lock()
	patch.Apply(&st.data)
	out := st.data.Clone()
	st.mu.Unlock()
	s.saver.Schedule(sessionID)
	return out, nil
}

// AddItem appends a fresh record to a list section. For skills, name and
// level seed the entry and exact-name duplicates are silently ignored.
func (s *Service) AddItem(ctx context.Context, sessionID, section, name, level string) (resume.ResumeData, string, bool, error) {
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return resume.ResumeData{}, "", false, err
	}
	st.mu.Lock()
	var id string
	created := true
	switch section {
	case "experience":
		id = st.data.AddExperience().ID
	case "education":
		id = st.data.AddEducation().ID
	case "skills":
		skill, added := st.data.AddSkill(name, level)
		id, created = skill.ID, added
	case "projects":
		id = st.data.AddProject().ID
	case "certifications":
		id = st.data.AddCertification().ID
	default:
		st.mu.Unlock()
		return resume.ResumeData{}, "", false, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	out := st.data.Clone()
	st.mu.Unlock()
	s.saver.Schedule(sessionID)
	return out, id, created, nil
}

// RemoveItem drops a record from a list section. Unknown ids are a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, section, itemID string) (resume.ResumeData, error) {
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return resume.ResumeData{}, err
	}
	st.mu.Lock()
	switch section {
	case "experience":
		st.data.RemoveExperience(itemID)
	case "education":
		st.data.RemoveEducation(itemID)
	case "skills":
		st.data.RemoveSkill(itemID)
	case "projects":
		st.data.RemoveProject(itemID)
	case "certifications":
		st.data.RemoveCertification(itemID)
	default:
		st.mu.Unlock()
		return resume.ResumeData{}, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	out := st.data.Clone()
	st.mu.Unlock()
	s.saver.Schedule(sessionID)
	return out, nil
}

// Clear resets the session to an empty resume and wipes its snapshot.
func (s *Service) Clear(ctx context.Context, sessionID string) (resume.ResumeData, error) {
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return resume.ResumeData{}, err
	}
	st.mu.Lock()
	st.data = resume.Default()
	st.step = StepPersonal
	out := st.data.Clone()
	st.mu.Unlock()

	s.saver.Cancel(sessionID)
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return resume.ResumeData{}, err
	}
	return out, nil
}

// Import replaces the session's resume with a schema-validated snapshot.
func (s *Service) Import(ctx context.Context, sessionID string, raw []byte) (resume.ResumeData, error) {
	if err := resume.ValidateSnapshot(raw); err != nil {
		return resume.ResumeData{}, err
	}
	var data resume.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return resume.ResumeData{}, err
	}
	data = resume.Repaired(data)

	st, err := s.state(ctx, sessionID)
	if err != nil {
		return resume.ResumeData{}, err
	}
	st.mu.Lock()
	st.data = data
	out := st.data.Clone()
	st.mu.Unlock()
	s.saver.Schedule(sessionID)
	return out, nil
}

// State reports the current wizard position.
func (s *Service) State(ctx context.Context, sessionID string) (StepState, error) {
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return StepState{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return stepState(st.step), nil
}

// Next validates the current step and advances on success. Validation
// failures come back as a field error map, not a Go error; Next past
// preview is a no-op.
func (s *Service) Next(ctx context.Context, sessionID string) (StepState, resume.FieldErrors, error) {
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return StepState{}, nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if validate, ok := validators[st.step]; ok {
		if errs := validate(st.data); len(errs) > 0 {
			return stepState(st.step), errs, nil
		}
	}
	if st.step < StepPreview {
		st.step++
	}
	return stepState(st.step), nil, nil
}

// Back retreats one step; at step 0 it is a no-op and the client decides
// whether to leave for the landing page.
func (s *Service) Back(ctx context.Context, sessionID string) (StepState, error) {
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return StepState{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.step > StepPersonal {
		st.step--
	}
	return stepState(st.step), nil
}

// Jump moves from preview straight to a data-entry step (the "Edit"
// affordance). Any other transition is rejected.
func (s *Service) Jump(ctx context.Context, sessionID string, target Step) (StepState, error) {
	if !target.Valid() || target == StepPreview {
		return StepState{}, ErrJumpTarget
	}
	st, err := s.state(ctx, sessionID)
	if err != nil {
		return StepState{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.step != StepPreview {
		return stepState(st.step), ErrJumpFromDataStep
	}
	st.step = target
	return stepState(st.step), nil
}

// Flush forces any pending snapshot write for a session. Export calls this
// so the stored snapshot matches what was rendered.
func (s *Service) Flush(sessionID string) {
	s.saver.Flush(sessionID)
}

// FlushAll forces pending snapshot writes for every live session. Called
// on shutdown so debounced saves are not lost.
func (s *Service) FlushAll() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.states))
	for id := range s.states {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	for _, id := range ids {
		s.saver.Flush(id)
	}
}

func (s *Service) state(ctx context.Context, sessionID string) (*sessionState, error) {
	s.mu.Lock()
	if st, ok := s.states[sessionID]; ok {
		s.mu.Unlock()
		return st, nil
	}
	s.mu.Unlock()

	// Restore outside the registry lock; the snapshot store may be remote.
	data, _, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.states[sessionID]; ok {
		return st, nil
	}
	st := &sessionState{data: data, step: StepPersonal}
	s.states[sessionID] = st
	return st, nil
}

func (s *Service) persist(sessionID string) {
	s.mu.Lock()
	st, ok := s.states[sessionID]
	s.mu.Unlock()
	if !ok {
		return
	}
	st.mu.Lock()
	data := st.data.Clone()
	st.mu.Unlock()

	if err := s.store.Save(context.Background(), sessionID, data); err != nil {
		telemetry.Error("session.save.failed", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

func stepState(step Step) StepState {
	return StepState{
		Step:      int(step),
		Name:      step.String(),
		AtStart:   step == StepPersonal,
		AtPreview: step == StepPreview,
		Steps:     StepNames(),
	}
}
