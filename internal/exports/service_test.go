package exports

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/resume"
	"resume-builder/internal/templates"
)

type fakeRenderer struct {
	mu      sync.Mutex
	calls   int
	lastIn  string
	block   chan struct{}
	failure error
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.lastIn = html
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	if f.failure != nil {
		return nil, f.failure
	}
	return []byte("%PDF-1.7 fake"), nil
}

type recordingStore struct {
	mu    sync.Mutex
	saved []string
	fail  bool
}

func (r *recordingStore) Save(ctx context.Context, sessionID, fileName string, body io.Reader) (string, int64, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return "", 0, "", errors.New("disk full")
	}
	r.saved = append(r.saved, sessionID+"/"+fileName)
	return sessionID + "/" + fileName, 0, "application/pdf", nil
}

func (r *recordingStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func exportData() resume.ResumeData {
	d := resume.Default()
	d.FirstName = "Jane"
	d.LastName = "Doe"
	d.Email = "jane@example.com"
	return d
}

func TestExportProducesPDFAndArchives(t *testing.T) {
	r := &fakeRenderer{}
	store := &recordingStore{}
	svc := NewService(r, store)

	res, err := svc.Export(context.Background(), "sess-1", templates.ClassicProfessional, exportData())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if res.FileName != "Jane_Doe_Resume.pdf" {
		t.Fatalf("unexpected file name %q", res.FileName)
	}
	if len(res.PDF) == 0 {
		t.Fatal("empty pdf")
	}
	if !strings.Contains(r.lastIn, "Jane Doe") {
		t.Fatal("renderer did not receive the document markup")
	}
	if len(store.saved) != 1 || store.saved[0] != "sess-1/Jane_Doe_Resume.pdf" {
		t.Fatalf("archive copy missing, saved=%v", store.saved)
	}
}

func TestExportScreenOnlyTemplateRejected(t *testing.T) {
	r := &fakeRenderer{}
	svc := NewService(r, nil)

	_, err := svc.Export(context.Background(), "sess-1", templates.LegacyProfessional, exportData())
	var notExportable templates.ErrNotExportable
	if !errors.As(err, &notExportable) {
		t.Fatalf("expected ErrNotExportable, got %v", err)
	}
	if r.calls != 0 {
		t.Fatal("renderer should not run for screen-only templates")
	}
}

func TestExportUnknownTemplate(t *testing.T) {
	svc := NewService(&fakeRenderer{}, nil)
	_, err := svc.Export(context.Background(), "sess-1", "nope", exportData())
	var unknown templates.ErrUnknownTemplate
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestExportBusyGuardPerSession(t *testing.T) {
	block := make(chan struct{})
	r := &fakeRenderer{block: block}
	svc := NewService(r, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Export(context.Background(), "sess-1", templates.ClassicProfessional, exportData())
		done <- err
	}()

	// Wait until the first run is inside the renderer.
	for {
		r.mu.Lock()
		started := r.calls > 0
		r.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := svc.Export(context.Background(), "sess-1", templates.ClassicProfessional, exportData()); !errors.Is(err, ErrExportBusy) {
		t.Fatalf("expected ErrExportBusy, got %v", err)
	}

	// A different session is not affected by the guard.
	go func() { close(block) }()
	if _, err := svc.Export(context.Background(), "sess-2", templates.ClassicProfessional, exportData()); err != nil {
		t.Fatalf("second session export: %v", err)
	}

	if err := <-done; err != nil {
		t.Fatalf("first export: %v", err)
	}

	// The guard resets once the run finishes.
	if _, err := svc.Export(context.Background(), "sess-1", templates.ClassicProfessional, exportData()); err != nil {
		t.Fatalf("export after release: %v", err)
	}
}

func TestExportRendererFailure(t *testing.T) {
	r := &fakeRenderer{failure: errors.New("browser crashed")}
	svc := NewService(r, nil)
	if _, err := svc.Export(context.Background(), "sess-1", templates.ClassicProfessional, exportData()); err == nil {
		t.Fatal("expected renderer error")
	}
}

func TestExportArchiveFailureIsNonFatal(t *testing.T) {
	svc := NewService(&fakeRenderer{}, &recordingStore{fail: true})
	if _, err := svc.Export(context.Background(), "sess-1", templates.ClassicProfessional, exportData()); err != nil {
		t.Fatalf("archive failure should not fail the export: %v", err)
	}
}

func TestFileName(t *testing.T) {
	cases := []struct {
		first, last string
		want        string
	}{
		{"Jane", "Doe", "Jane_Doe_Resume.pdf"},
		{"", "", "Resume.pdf"},
		{"Mary Ann", "van Dyke", "Mary_Ann_van_Dyke_Resume.pdf"},
		{"../..", "", "Resume.pdf"},
		{`Jane"`, "Doe\r\n", "Jane__Doe_Resume.pdf"},
	}
	for _, tc := range cases {
		d := resume.Default()
		d.FirstName = tc.first
		d.LastName = tc.last
		if got := FileName(d); got != tc.want {
			t.Fatalf("FileName(%q %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}
