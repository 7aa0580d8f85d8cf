// Package templates maps template identifiers to renderer pairs: a screen
// preview and, for the exportable subset, a print-oriented document layout.
// Both consume the identical ResumeData.
package templates

import "fmt"

// ID is a template tag from the closed set below. Dispatch is exhaustive:
// adding a template means extending the registry, never a silent fallback.
type ID string

const (
	ClassicProfessional ID = "classic-professional"
	ModernBlue          ID = "modern-blue"
	Minimalist          ID = "minimalist"
	CreativeGradient    ID = "creative-gradient"
	ElegantBW           ID = "elegant-bw"
	TechStartup         ID = "tech-startup"
	ModernSidebar       ID = "modern-sidebar"
	MinimalClassic      ID = "minimal-classic"
	ElegantSerif        ID = "elegant-serif"
	SidebarHighlight    ID = "sidebar-highlight"
	TwoColumnGrid       ID = "two-column-grid"
	DarkTheme           ID = "dark-theme"

	// Legacy screen-only tags. They have no document renderer; export for
	// them is rejected rather than silently swapped for a default layout.
	LegacyProfessional ID = "professional"
	LegacyModern       ID = "modern"
	LegacyMinimal      ID = "minimal"
	LegacyCreative     ID = "creative"
)

// ErrUnknownTemplate marks an id outside the closed set.
type ErrUnknownTemplate struct {
	ID ID
}

func (e ErrUnknownTemplate) Error() string {
	return fmt.Sprintf("unknown template %q", string(e.ID))
}

// ErrNotExportable marks an export request against a screen-only template.
type ErrNotExportable struct {
	ID ID
}

func (e ErrNotExportable) Error() string {
	return fmt.Sprintf("template %q has no document layout", string(e.ID))
}
