package templates

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"
	"strings"

	"resume-builder/internal/resume"
)

//go:embed layouts/*.tmpl
var layoutFS embed.FS

var funcMap = template.FuncMap{
	"formatRange": resume.FormatRange,
	"present":     resume.HasLink,
	"href":        resume.NormalizeURL,
	"trim":        strings.TrimSpace,
	"css":         func(s string) template.CSS { return template.CSS(s) },
	"skillPercent": func(level string) int {
		return skillLevelValue(level) * 20
	},
}

var layouts = template.Must(
	template.New("resume").Funcs(funcMap).ParseFS(layoutFS, "layouts/*.tmpl"),
)

type view struct {
	Data  resume.ResumeData
	Style Style
}

// RenderScreen produces the live preview markup for a template id. Pure:
// the same data always yields the same markup, and data is never mutated.
func RenderScreen(id ID, data resume.ResumeData) (string, error) {
	t, err := Lookup(id)
	if err != nil {
		return "", err
	}
	return render("screen", view{Data: data, Style: t.Screen})
}

// RenderDocument produces the paginated, print-oriented markup consumed by
// the export pipeline. Screen-only templates return ErrNotExportable.
func RenderDocument(id ID, data resume.ResumeData) (string, error) {
	t, err := Lookup(id)
	if err != nil {
		return "", err
	}
	if t.Document == nil {
		return "", ErrNotExportable{ID: id}
	}
	return render("document", view{Data: data, Style: *t.Document})
}

func render(name string, v view) (string, error) {
	var buf bytes.Buffer
	if err := layouts.ExecuteTemplate(&buf, name, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// skillLevelValue maps the free-text level label onto the 0..5 scale the
// skill-bar templates draw. Unknown labels land in the middle.
func skillLevelValue(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "beginner", "basic", "novice":
		return 1
	case "elementary":
		return 2
	case "intermediate", "":
		return 3
	case "advanced", "proficient":
		return 4
	case "expert", "master", "native":
		return 5
	}
	if n, err := strconv.Atoi(strings.TrimSpace(level)); err == nil {
		if n < 0 {
			return 0
		}
		if n > 5 {
			return 5
		}
		return n
	}
	return 3
}
