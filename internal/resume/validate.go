package resume

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// FieldErrors maps a field path ("experience[1].company") to an inline
// message. Validation gates wizard advancement only; it never blocks a
// merge and is never surfaced as a Go error.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidatePersonal checks the personal step: identity fields are required,
// profile links must be well-formed once normalized.
func ValidatePersonal(d ResumeData) FieldErrors {
	errs := FieldErrors{}
	requireField(errs, "firstName", d.FirstName, "First name is required")
	requireField(errs, "lastName", d.LastName, "Last name is required")
	requireField(errs, "phone", d.Phone, "Phone is required")
	requireField(errs, "location", d.Location, "Location is required")
	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(d.Email)) {
		errs["email"] = "Email is not valid"
	}
	checkURLField(errs, "website", d.Website)
	checkURLField(errs, "linkedin", d.LinkedIn)
	checkURLField(errs, "github", d.GitHub)
	return errs
}

// ValidateExperience checks every entry of the experience step.
func ValidateExperience(d ResumeData) FieldErrors {
	errs := FieldErrors{}
	for i, exp := range d.Experience {
		requireField(errs, fmt.Sprintf("experience[%d].company", i), exp.Company, "Company is required")
		requireField(errs, fmt.Sprintf("experience[%d].position", i), exp.Position, "Position is required")
		requireField(errs, fmt.Sprintf("experience[%d].startDate", i), exp.StartDate, "Start date is required")
	}
	return errs
}

// ValidateEducation checks every entry of the education step.
func ValidateEducation(d ResumeData) FieldErrors {
	errs := FieldErrors{}
	for i, edu := range d.Education {
		requireField(errs, fmt.Sprintf("education[%d].school", i), edu.School, "School is required")
		requireField(errs, fmt.Sprintf("education[%d].degree", i), edu.Degree, "Degree is required")
		requireField(errs, fmt.Sprintf("education[%d].startDate", i), edu.StartDate, "Start date is required")
	}
	return errs
}

// ValidateSkills checks every skill has a name.
func ValidateSkills(d ResumeData) FieldErrors {
	errs := FieldErrors{}
	for i, s := range d.Skills {
		requireField(errs, fmt.Sprintf("skills[%d].name", i), s.Name, "Skill name is required")
	}
	return errs
}

// ValidateProjects checks names and link shapes.
func ValidateProjects(d ResumeData) FieldErrors {
	errs := FieldErrors{}
	for i, p := range d.Projects {
		requireField(errs, fmt.Sprintf("projects[%d].name", i), p.Name, "Project name is required")
		checkURLField(errs, fmt.Sprintf("projects[%d].codeUrl", i), p.CodeURL)
		checkURLField(errs, fmt.Sprintf("projects[%d].liveUrl", i), p.LiveURL)
	}
	return errs
}

// ValidateCertifications checks every certification has a name.
func ValidateCertifications(d ResumeData) FieldErrors {
	errs := FieldErrors{}
	for i, c := range d.Certifications {
		requireField(errs, fmt.Sprintf("certifications[%d].name", i), c.Name, "Certification name is required")
		checkURLField(errs, fmt.Sprintf("certifications[%d].url", i), c.URL)
	}
	return errs
}

func requireField(errs FieldErrors, key, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[key] = message
	}
}

func checkURLField(errs FieldErrors, key, value string) {
	if !HasLink(value) {
		return
	}
	parsed, err := url.Parse(NormalizeURL(value))
	if err != nil || parsed.Host == "" || !strings.Contains(parsed.Host, ".") {
		errs[key] = "Link is not a valid URL"
	}
}
