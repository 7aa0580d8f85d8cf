package resume

import (
	"strings"
	"time"
)

// Date strings arrive in a handful of shapes depending on which form control
// produced them. Anything unparseable degrades to an empty label for that
// side only.
var dateLayouts = []string{
	"2006-01",
	"2006-01-02",
	"Jan 2006",
	"January 2006",
	"2006/01",
	"01/2006",
	"1/2006",
	"2006",
}

// FormatRange renders a start/end pair as a single display string, e.g.
// "Jan 2020 - Mar 2022" or "Jan 2020 - Present". An empty or unparseable
// start yields an empty result; current always wins over any stored end.
func FormatRange(start, end string, current bool) string {
	s := formatMonthYear(start)
	if s == "" {
		return ""
	}
	if current {
		return s + " - Present"
	}
	e := formatMonthYear(end)
	if e == "" {
		return s
	}
	return s + " - " + e
}

func formatMonthYear(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}
