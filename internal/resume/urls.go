package resume

import "strings"

// NormalizeURL prefixes bare hostnames with https://. Empty or blank values
// stay empty so absent links never render as broken anchors.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}

// HasLink reports whether a URL-shaped field is present after trimming.
func HasLink(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

// Normalized returns a copy with every URL-shaped field normalized. Export
// runs this before rendering so documents never carry scheme-less links.
func (d ResumeData) Normalized() ResumeData {
	out := d.Clone()
	out.Website = NormalizeURL(out.Website)
	out.LinkedIn = NormalizeURL(out.LinkedIn)
	out.GitHub = NormalizeURL(out.GitHub)
	for i := range out.Projects {
		out.Projects[i].CodeURL = NormalizeURL(out.Projects[i].CodeURL)
		out.Projects[i].LiveURL = NormalizeURL(out.Projects[i].LiveURL)
	}
	for i := range out.Certifications {
		out.Certifications[i].URL = NormalizeURL(out.Certifications[i].URL)
	}
	return out
}
