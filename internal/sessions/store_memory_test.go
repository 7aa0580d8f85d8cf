package sessions

import (
	"context"
	"testing"

	"resume-builder/internal/resume"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := store.Load(ctx, "s1"); err != nil || ok {
		t.Fatalf("expected empty load, got ok=%v err=%v", ok, err)
	}

	data := resume.Default()
	data.FirstName = "Jane"
	data.AddSkill("Go", "Advanced")
	if err := store.Save(ctx, "s1", data); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.Load(ctx, "s1")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.FirstName != "Jane" || len(got.Skills) != 1 {
		t.Fatalf("snapshot mismatch: %+v", got)
	}

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := store.Load(ctx, "s1"); ok {
		t.Fatalf("expected cleared session to read as empty")
	}
}

func TestMemoryStoreRepairsIncompleteSnapshot(t *testing.T) {
	store := NewMemoryStore()
	store.put("s1", []byte(`{"firstName":"Jane","experience":[{"company":"Acme","current":true,"endDate":"2022-01"}]}`))

	got, ok, err := store.Load(context.Background(), "s1")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.Skills == nil || got.Projects == nil || got.Education == nil {
		t.Fatalf("missing lists must be defaulted: %+v", got)
	}
	if got.Experience[0].ID == "" {
		t.Fatalf("restored entries must get an id")
	}
	if got.Experience[0].EndDate != "" {
		t.Fatalf("current entry must drop stale end date")
	}
}

func TestMemoryStoreResetsCorruptSnapshot(t *testing.T) {
	store := NewMemoryStore()
	store.put("s1", []byte(`{"firstName": truncated`))

	got, ok, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("parse failures must not surface: %v", err)
	}
	if ok {
		t.Fatalf("corrupt snapshot must read as not-found")
	}
	if got.FirstName != "" || len(got.Experience) != 0 {
		t.Fatalf("corrupt snapshot must reset to defaults: %+v", got)
	}
}

func TestMemoryStoreAcceptsLegacyProjectLinks(t *testing.T) {
	store := NewMemoryStore()
	store.put("s1", []byte(`{"projects":[{"id":"p1","name":"Site","repoLink":"github.com/x"}]}`))

	got, ok, _ := store.Load(context.Background(), "s1")
	if !ok {
		t.Fatalf("expected snapshot")
	}
	if got.Projects[0].CodeURL != "github.com/x" {
		t.Fatalf("legacy repoLink not unified: %+v", got.Projects[0])
	}
}
