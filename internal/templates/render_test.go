package templates

import (
	"errors"
	"strings"
	"testing"

	"resume-builder/internal/resume"
)

func sampleData() resume.ResumeData {
	d := resume.Default()
	d.FirstName = "Jane"
	d.LastName = "Doe"
	d.Email = "jane@example.com"
	d.Phone = "555-0100"
	d.Location = "Lisbon"
	d.JobTitle = "Platform Engineer"
	d.Summary = "Builds boring, reliable systems."
	d.Experience = append(d.Experience, resume.Experience{
		ID:        "exp-1",
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: "2020-01",
		Current:   true,
	})
	d.Education = append(d.Education, resume.Education{
		ID:          "edu-1",
		School:      "State University",
		Degree:      "BSc Computer Science",
		StartDate:   "2014-09",
		EndDate:     "2018-06",
		Description: "Graduated with honors.",
	})
	d.AddSkill("Go", "Expert")
	d.AddSkill("SQL", "Intermediate")
	d.Projects = append(d.Projects, resume.Project{
		ID:      "prj-1",
		Name:    "homelab",
		LiveURL: "homelab.example.com",
		Tags:    []string{"infra"},
	})
	return d
}

func TestRenderScreenAllTemplates(t *testing.T) {
	data := sampleData()
	for _, tpl := range All() {
		html, err := RenderScreen(tpl.ID, data)
		if err != nil {
			t.Fatalf("render %q: %v", tpl.ID, err)
		}
		if !strings.Contains(html, "Jane Doe") {
			t.Fatalf("template %q dropped the full name", tpl.ID)
		}
		if !strings.Contains(html, "Jan 2020 - Present") {
			t.Fatalf("template %q dropped the current date range", tpl.ID)
		}
	}
}

func TestEducationEntryRenders(t *testing.T) {
	d := resume.Default()
	d.FirstName = "Jane"
	d.LastName = "Doe"
	d.Education = append(d.Education, resume.Education{
		ID:          "edu-1",
		School:      "State University",
		Degree:      "BSc Computer Science",
		StartDate:   "2014-09",
		EndDate:     "2018-06",
		Description: "Graduated with honors.",
	})

	html, err := RenderScreen("classic-professional", d)
	if err != nil {
		t.Fatalf("render with one education entry: %v", err)
	}
	for _, want := range []string{"BSc Computer Science", "State University", "Graduated with honors."} {
		if !strings.Contains(html, want) {
			t.Fatalf("education section dropped %q", want)
		}
	}

	d.Education[0].Description = ""
	html, err = RenderScreen("classic-professional", d)
	if err != nil {
		t.Fatalf("render without education description: %v", err)
	}
	if strings.Contains(html, "Graduated with honors.") {
		t.Fatalf("stale description rendered")
	}
}

func TestRenderDocumentAllExportable(t *testing.T) {
	data := sampleData()
	for _, tpl := range All() {
		html, err := RenderDocument(tpl.ID, data)
		if !tpl.Exportable() {
			var notExportable ErrNotExportable
			if !errors.As(err, &notExportable) {
				t.Fatalf("template %q: expected ErrNotExportable, got %v", tpl.ID, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("render document %q: %v", tpl.ID, err)
		}
		if !strings.Contains(html, "<!DOCTYPE html>") {
			t.Fatalf("template %q document is not a full page", tpl.ID)
		}
		if !strings.Contains(html, "size: A4") {
			t.Fatalf("template %q document lacks the A4 page rule", tpl.ID)
		}
		if !strings.Contains(html, "Jane Doe") {
			t.Fatalf("template %q document dropped the full name", tpl.ID)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := RenderScreen("nope", sampleData()); err == nil {
		t.Fatal("expected unknown template error")
	}
	if _, err := RenderDocument("nope", sampleData()); err == nil {
		t.Fatal("expected unknown template error")
	}
}

func TestEmptySectionsAreOmitted(t *testing.T) {
	d := resume.Default()
	d.FirstName = "Jane"
	d.LastName = "Doe"
	d.Email = "jane@example.com"

	html, err := RenderScreen(ClassicProfessional, d)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, heading := range []string{
		"Summary</h2>", "Experience</h2>", "Education</h2>",
		"Skills</h2>", "Projects</h2>", "Certifications</h2>",
	} {
		if strings.Contains(html, heading) {
			t.Fatalf("empty section rendered heading %q", heading)
		}
	}
	if !strings.Contains(html, "Jane Doe") {
		t.Fatal("identity header missing")
	}
}

func TestProjectLinksNormalizedAndSuppressed(t *testing.T) {
	d := resume.Default()
	d.FirstName = "Jane"
	d.LastName = "Doe"
	d.Projects = append(d.Projects, resume.Project{
		ID:      "prj-1",
		Name:    "homelab",
		LiveURL: "homelab.example.com",
	})

	html, err := RenderScreen(ClassicProfessional, d)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, `href="https://homelab.example.com"`) {
		t.Fatal("live link was not normalized to https")
	}
	if strings.Contains(html, ">Code</a>") {
		t.Fatal("empty code link should be suppressed")
	}
}

func TestContactOmitsBlankLinks(t *testing.T) {
	d := resume.Default()
	d.FirstName = "Jane"
	d.LastName = "Doe"
	d.LinkedIn = "   "
	d.GitHub = "github.com/janedoe"

	html, err := RenderScreen(ModernBlue, d)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, ">LinkedIn</a>") {
		t.Fatal("whitespace-only link should be suppressed")
	}
	if !strings.Contains(html, `href="https://github.com/janedoe"`) {
		t.Fatal("github link missing or not normalized")
	}
}

func TestSidebarLayoutRendersSkillsInAside(t *testing.T) {
	html, err := RenderScreen(ModernSidebar, sampleData())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	aside := html[strings.Index(html, "<aside"):strings.Index(html, "</aside>")]
	if !strings.Contains(aside, "Skills</h2>") {
		t.Fatal("sidebar layout should render skills inside the aside")
	}
	main := html[strings.Index(html, "<main"):]
	if strings.Contains(main, "Skills</h2>") {
		t.Fatal("skills rendered twice")
	}
}

func TestSkillLevelValue(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"Beginner", 1},
		{"intermediate", 3},
		{"ADVANCED", 4},
		{"Expert", 5},
		{"4", 4},
		{"9", 5},
		{"-2", 0},
		{"", 3},
		{"wizardry", 3},
	}
	for _, tc := range cases {
		if got := skillLevelValue(tc.in); got != tc.want {
			t.Fatalf("skillLevelValue(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
