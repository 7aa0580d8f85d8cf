package templates

// Layout selects the page structure a style renders into.
type Layout string

const (
	LayoutSingle    Layout = "single"
	LayoutSidebar   Layout = "sidebar"
	LayoutTwoColumn Layout = "twocolumn"
)

// Style is the per-template descriptor driving the shared renderer. One
// renderer parameterized by these fields replaces sixteen hand-duplicated
// layout trees, so screen and document variants cannot drift apart.
type Style struct {
	Layout            Layout
	Accent            string
	Ink               string
	Paper             string
	SidebarFill       string
	SidebarInk        string
	FontStack         string
	UppercaseHeadings bool
	SkillBars         bool

	// SectionOrder lists the body sections in display order. Sidebar
	// layouts place skills in the aside, so their order omits "skills".
	SectionOrder []string
}

const (
	fontSans  = `"Helvetica Neue", Arial, sans-serif`
	fontSerif = `Georgia, "Times New Roman", serif`
	fontMono  = `"SF Mono", Consolas, monospace`
)

var defaultOrder = []string{"summary", "experience", "education", "skills", "projects", "certifications"}
var sidebarOrder = []string{"summary", "experience", "education", "projects", "certifications"}

func sans(accent string, order []string) Style {
	return Style{
		Layout:       LayoutSingle,
		Accent:       accent,
		Ink:          "#1f2937",
		Paper:        "#ffffff",
		FontStack:    fontSans,
		SectionOrder: order,
	}
}
