package resume

import (
	"strings"

	"github.com/google/uuid"
)

// ResumeData is the canonical resume record shared by the wizard, every
// template renderer, and the export pipeline. List fields keep insertion
// order; ordering is never derived from dates.
type ResumeData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`

	JobTitle string `json:"jobTitle,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`

	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []Skill      `json:"skills"`
	Projects   []Project    `json:"projects"`

	// Certifications may be entirely absent; older snapshots predate the field.
	Certifications []Certification `json:"certifications,omitempty"`
}

// Experience is one work history entry. When Current is true the stored
// EndDate is ignored for display and rendered as "Present".
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education mirrors Experience with school/degree in place of company/position.
type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Skill is a named skill with a free-text level label.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Project is a portfolio entry with optional code and live links.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CodeURL     string   `json:"codeUrl,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	Tags        []string `json:"tags"`
}

// Certification carries the superset of the two historical shapes: either a
// year, a url, both, or neither may be set.
type Certification struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year string `json:"year,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Default returns an empty resume with every required list field non-nil.
// Certifications stays nil until the user adds one.
func Default() ResumeData {
	return ResumeData{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []Skill{},
		Projects:   []Project{},
	}
}

// FullName joins the name fields for display and export naming.
func (d ResumeData) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName))
}

// Clone returns a deep copy; renderers and export receive copies so the
// wizard's authoritative record is never mutated downstream.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Experience = append([]Experience{}, d.Experience...)
	out.Education = append([]Education{}, d.Education...)
	out.Skills = append([]Skill{}, d.Skills...)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Tags = append([]string{}, p.Tags...)
		out.Projects[i] = p
	}
	if d.Certifications != nil {
		out.Certifications = append([]Certification{}, d.Certifications...)
	}
	return out
}

// AddExperience appends a fresh entry and returns it.
func (d *ResumeData) AddExperience() Experience {
	entry := Experience{ID: uuid.NewString()}
	d.Experience = append(d.Experience, entry)
	return entry
}

// RemoveExperience drops the entry with the given id. Unknown ids are a no-op.
func (d *ResumeData) RemoveExperience(id string) {
	d.Experience = removeByID(d.Experience, id, func(e Experience) string { return e.ID })
}

// AddEducation appends a fresh entry and returns it.
func (d *ResumeData) AddEducation() Education {
	entry := Education{ID: uuid.NewString()}
	d.Education = append(d.Education, entry)
	return entry
}

// RemoveEducation drops the entry with the given id.
func (d *ResumeData) RemoveEducation(id string) {
	d.Education = removeByID(d.Education, id, func(e Education) string { return e.ID })
}

// AddSkill appends a skill unless one with the exact same name already
// exists; duplicates are silently ignored.
func (d *ResumeData) AddSkill(name, level string) (Skill, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Skill{}, false
	}
	for _, s := range d.Skills {
		if s.Name == name {
			return s, false
		}
	}
	entry := Skill{ID: uuid.NewString(), Name: name, Level: level}
	d.Skills = append(d.Skills, entry)
	return entry, true
}

// RemoveSkill drops the skill with the given id.
func (d *ResumeData) RemoveSkill(id string) {
	d.Skills = removeByID(d.Skills, id, func(s Skill) string { return s.ID })
}

// AddProject appends a fresh entry and returns it.
func (d *ResumeData) AddProject() Project {
	entry := Project{ID: uuid.NewString(), Tags: []string{}}
	d.Projects = append(d.Projects, entry)
	return entry
}

// RemoveProject drops the entry with the given id.
func (d *ResumeData) RemoveProject(id string) {
	d.Projects = removeByID(d.Projects, id, func(p Project) string { return p.ID })
}

// AddCertification appends a fresh entry, materializing the list if absent.
func (d *ResumeData) AddCertification() Certification {
	entry := Certification{ID: uuid.NewString()}
	d.Certifications = append(d.Certifications, entry)
	return entry
}

// RemoveCertification drops the entry with the given id.
func (d *ResumeData) RemoveCertification(id string) {
	d.Certifications = removeByID(d.Certifications, id, func(c Certification) string { return c.ID })
}

func removeByID[T any](list []T, id string, key func(T) string) []T {
	out := list[:0]
	for _, item := range list {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}

// Repaired fills structural gaps in a restored snapshot: nil required lists
// become empty, entries missing an id get a fresh one, and checked "current"
// flags clear any stale end date. Certifications stay nil when absent.
func Repaired(d ResumeData) ResumeData {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	for i := range d.Experience {
		if d.Experience[i].ID == "" {
			d.Experience[i].ID = uuid.NewString()
		}
		if d.Experience[i].Current {
			d.Experience[i].EndDate = ""
		}
	}
	for i := range d.Education {
		if d.Education[i].ID == "" {
			d.Education[i].ID = uuid.NewString()
		}
		if d.Education[i].Current {
			d.Education[i].EndDate = ""
		}
	}
	for i := range d.Skills {
		if d.Skills[i].ID == "" {
			d.Skills[i].ID = uuid.NewString()
		}
	}
	for i := range d.Projects {
		if d.Projects[i].ID == "" {
			d.Projects[i].ID = uuid.NewString()
		}
		if d.Projects[i].Tags == nil {
			d.Projects[i].Tags = []string{}
		}
	}
	for i := range d.Certifications {
		if d.Certifications[i].ID == "" {
			d.Certifications[i].ID = uuid.NewString()
		}
	}
	return d
}
