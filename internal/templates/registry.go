package templates

// Template pairs a screen style with an optional document style. A nil
// Document marks a screen-only template: its export path is a visible,
// enforced gap rather than a runtime fallback.
type Template struct {
	ID     ID
	Name   string
	Screen Style
	// Document, when set, is the print variant consumed by the export
	// pipeline. Dark or gradient screen styles map to ink-on-paper here.
	Document *Style
}

// Exportable reports whether the template has a document renderer.
func (t Template) Exportable() bool {
	return t.Document != nil
}

func docVariant(s Style) *Style {
	out := s
	// Print always happens on white; dark screens flip back to ink.
	out.Paper = "#ffffff"
	if out.Ink == "#f9fafb" || out.Ink == "#e5e7eb" {
		out.Ink = "#1f2937"
	}
	return &out
}

// registry is the closed template set, in gallery order.
var registry = []Template{
	{
		ID:   ClassicProfessional,
		Name: "Classic Professional",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#1d4ed8", Ink: "#1f2937", Paper: "#ffffff",
			FontStack: fontSans, SectionOrder: defaultOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSingle, Accent: "#1d4ed8", Ink: "#1f2937", Paper: "#ffffff",
			FontStack: fontSans, SectionOrder: defaultOrder,
		}),
	},
	{
		ID:   ModernBlue,
		Name: "Modern Blue",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#0284c7", Ink: "#0f172a", Paper: "#f8fafc",
			FontStack: fontSans, UppercaseHeadings: true, SectionOrder: defaultOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSingle, Accent: "#0284c7", Ink: "#0f172a", Paper: "#ffffff",
			FontStack: fontSans, UppercaseHeadings: true, SectionOrder: defaultOrder,
		}),
	},
	{
		ID:   Minimalist,
		Name: "Minimalist",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#111827", Ink: "#374151", Paper: "#ffffff",
			FontStack: fontSans, SectionOrder: defaultOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSingle, Accent: "#111827", Ink: "#374151", Paper: "#ffffff",
			FontStack: fontSans, SectionOrder: defaultOrder,
		}),
	},
	{
		ID:   CreativeGradient,
		Name: "Creative Gradient",
		Screen: Style{
			Layout: LayoutSidebar, Accent: "#7c3aed", Ink: "#1f2937", Paper: "#ffffff",
			SidebarFill: "#6d28d9", SidebarInk: "#f5f3ff",
			FontStack: fontSans, SkillBars: true, SectionOrder: sidebarOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSidebar, Accent: "#7c3aed", Ink: "#1f2937", Paper: "#ffffff",
			SidebarFill: "#6d28d9", SidebarInk: "#f5f3ff",
			FontStack: fontSans, SkillBars: true, SectionOrder: sidebarOrder,
		}),
	},
	{
		ID:   ElegantBW,
		Name: "Elegant Black & White",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#000000", Ink: "#111111", Paper: "#ffffff",
			FontStack: fontSerif, UppercaseHeadings: true, SectionOrder: defaultOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSingle, Accent: "#000000", Ink: "#111111", Paper: "#ffffff",
			FontStack: fontSerif, UppercaseHeadings: true, SectionOrder: defaultOrder,
		}),
	},
	{
		ID:   TechStartup,
		Name: "Tech Startup",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#059669", Ink: "#111827", Paper: "#ffffff",
			FontStack: fontMono, SectionOrder: []string{"summary", "skills", "experience", "projects", "education", "certifications"},
		},
		Document: docVariant(Style{
			Layout: LayoutSingle, Accent: "#059669", Ink: "#111827", Paper: "#ffffff",
			FontStack: fontMono, SectionOrder: []string{"summary", "skills", "experience", "projects", "education", "certifications"},
		}),
	},
	{
		ID:   ModernSidebar,
		Name: "Modern Sidebar",
		Screen: Style{
			Layout: LayoutSidebar, Accent: "#2563eb", Ink: "#1f2937", Paper: "#ffffff",
			SidebarFill: "#1e3a8a", SidebarInk: "#eff6ff",
			FontStack: fontSans, SectionOrder: sidebarOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSidebar, Accent: "#2563eb", Ink: "#1f2937", Paper: "#ffffff",
			SidebarFill: "#1e3a8a", SidebarInk: "#eff6ff",
			FontStack: fontSans, SectionOrder: sidebarOrder,
		}),
	},
	{
		ID:   MinimalClassic,
		Name: "Minimal Classic",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#4b5563", Ink: "#374151", Paper: "#ffffff",
			FontStack: fontSerif, SectionOrder: defaultOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSingle, Accent: "#4b5563", Ink: "#374151", Paper: "#ffffff",
			FontStack: fontSerif, SectionOrder: defaultOrder,
		}),
	},
	{
		ID:   ElegantSerif,
		Name: "Elegant Serif",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#92400e", Ink: "#292524", Paper: "#fffbeb",
			FontStack: fontSerif, SectionOrder: defaultOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSingle, Accent: "#92400e", Ink: "#292524", Paper: "#ffffff",
			FontStack: fontSerif, SectionOrder: defaultOrder,
		}),
	},
	{
		ID:   SidebarHighlight,
		Name: "Sidebar Highlight",
		Screen: Style{
			Layout: LayoutSidebar, Accent: "#db2777", Ink: "#1f2937", Paper: "#ffffff",
			SidebarFill: "#fdf2f8", SidebarInk: "#831843",
			FontStack: fontSans, SkillBars: true, SectionOrder: sidebarOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSidebar, Accent: "#db2777", Ink: "#1f2937", Paper: "#ffffff",
			SidebarFill: "#fdf2f8", SidebarInk: "#831843",
			FontStack: fontSans, SkillBars: true, SectionOrder: sidebarOrder,
		}),
	},
	{
		ID:   TwoColumnGrid,
		Name: "Two Column Grid",
		Screen: Style{
			Layout: LayoutTwoColumn, Accent: "#0f766e", Ink: "#134e4a", Paper: "#ffffff",
			FontStack: fontSans, SectionOrder: defaultOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutTwoColumn, Accent: "#0f766e", Ink: "#134e4a", Paper: "#ffffff",
			FontStack: fontSans, SectionOrder: defaultOrder,
		}),
	},
	{
		ID:   DarkTheme,
		Name: "Dark Theme",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#38bdf8", Ink: "#f9fafb", Paper: "#111827",
			FontStack: fontSans, UppercaseHeadings: true, SectionOrder: defaultOrder,
		},
		Document: docVariant(Style{
			Layout: LayoutSingle, Accent: "#0369a1", Ink: "#f9fafb", Paper: "#111827",
			FontStack: fontSans, UppercaseHeadings: true, SectionOrder: defaultOrder,
		}),
	},

	// Legacy gallery entries, kept for existing saved selections.
	{ID: LegacyProfessional, Name: "Professional", Screen: sans("#1e40af", defaultOrder)},
	{ID: LegacyModern, Name: "Modern", Screen: sans("#0891b2", defaultOrder)},
	{ID: LegacyMinimal, Name: "Minimal", Screen: sans("#6b7280", defaultOrder)},
	{
		ID:   LegacyCreative,
		Name: "Creative",
		Screen: Style{
			Layout: LayoutSingle, Accent: "#c026d3", Ink: "#1f2937", Paper: "#ffffff",
			FontStack: fontSans, SkillBars: true, SectionOrder: defaultOrder,
		},
	},
}

// All returns the template set in gallery order.
func All() []Template {
	return append([]Template{}, registry...)
}

// Lookup resolves an id against the closed set.
func Lookup(id ID) (Template, error) {
	for _, t := range registry {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrUnknownTemplate{ID: id}
}
