package templates

import (
	"errors"
	"testing"
)

func TestRegistryShape(t *testing.T) {
	all := All()
	if len(all) != 16 {
		t.Fatalf("expected 16 templates, got %d", len(all))
	}

	seen := map[ID]bool{}
	exportable := 0
	for _, tpl := range all {
		if seen[tpl.ID] {
			t.Fatalf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true
		if tpl.Name == "" {
			t.Fatalf("template %q has no display name", tpl.ID)
		}
		if tpl.Exportable() {
			exportable++
		}
	}
	if exportable != 12 {
		t.Fatalf("expected 12 exportable templates, got %d", exportable)
	}
}

func TestLegacyTemplatesAreScreenOnly(t *testing.T) {
	for _, id := range []ID{LegacyProfessional, LegacyModern, LegacyMinimal, LegacyCreative} {
		tpl, err := Lookup(id)
		if err != nil {
			t.Fatalf("lookup %q: %v", id, err)
		}
		if tpl.Exportable() {
			t.Fatalf("legacy template %q should not be exportable", id)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("fancy-nonexistent")
	var unknown ErrUnknownTemplate
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
	if unknown.ID != "fancy-nonexistent" {
		t.Fatalf("unexpected id in error: %q", unknown.ID)
	}
}

func TestDocumentVariantsPrintOnWhite(t *testing.T) {
	for _, tpl := range All() {
		if tpl.Document == nil {
			continue
		}
		if tpl.Document.Paper != "#ffffff" {
			t.Fatalf("template %q document paper = %q, want white", tpl.ID, tpl.Document.Paper)
		}
		if tpl.Document.Ink == "#f9fafb" || tpl.Document.Ink == "#e5e7eb" {
			t.Fatalf("template %q document keeps light ink %q", tpl.ID, tpl.Document.Ink)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "clobbered"
	b := All()
	if b[0].Name == "clobbered" {
		t.Fatal("All leaked the backing registry slice")
	}
}
