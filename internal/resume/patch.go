package resume

import "encoding/json"

// Patch is a merge-by-field partial update. Only fields present in the
// request body are applied; list fields replace their slice wholesale.
// Every keystroke in a form step produces one of these, so Apply never
// validates: invalid intermediate states are allowed to reach the preview.
type Patch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`

	JobTitle *string `json:"jobTitle"`
	Summary  *string `json:"summary"`
	Website  *string `json:"website"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`

	Experience     *[]Experience    `json:"experience"`
	Education      *[]Education     `json:"education"`
	Skills         *[]Skill         `json:"skills"`
	Projects       *[]Project       `json:"projects"`
	Certifications *[]Certification `json:"certifications"`
}

// Apply merges the patch into the resume. Entries arriving with current=true
// have their end date cleared so stored data agrees with the display rule.
func (p Patch) Apply(d *ResumeData) {
	setString(&d.FirstName, p.FirstName)
	setString(&d.LastName, p.LastName)
	setString(&d.Email, p.Email)
	setString(&d.Phone, p.Phone)
	setString(&d.Location, p.Location)
	setString(&d.JobTitle, p.JobTitle)
	setString(&d.Summary, p.Summary)
	setString(&d.Website, p.Website)
	setString(&d.LinkedIn, p.LinkedIn)
	setString(&d.GitHub, p.GitHub)

	if p.Experience != nil {
		d.Experience = append([]Experience{}, (*p.Experience)...)
		for i := range d.Experience {
			if d.Experience[i].Current {
				d.Experience[i].EndDate = ""
			}
		}
	}
	if p.Education != nil {
		d.Education = append([]Education{}, (*p.Education)...)
		for i := range d.Education {
			if d.Education[i].Current {
				d.Education[i].EndDate = ""
			}
		}
	}
	if p.Skills != nil {
		d.Skills = append([]Skill{}, (*p.Skills)...)
	}
	if p.Projects != nil {
		d.Projects = append([]Project{}, (*p.Projects)...)
	}
	if p.Certifications != nil {
		d.Certifications = append([]Certification{}, (*p.Certifications)...)
	}
}

// UnmarshalJSON accepts the legacy repoLink/liveLink names some older
// snapshots carry and unifies them onto codeUrl/liveUrl.
func (p *Project) UnmarshalJSON(data []byte) error {
	type alias Project
	aux := struct {
		*alias
		RepoLink string `json:"repoLink"`
		LiveLink string `json:"liveLink"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.CodeURL == "" {
		p.CodeURL = aux.RepoLink
	}
	if p.LiveURL == "" {
		p.LiveURL = aux.LiveLink
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
