package wizard

import (
	"fmt"

	"resume-builder/internal/resume"
)

// Step indexes the fixed sequence of wizard states. Preview is not a true
// terminal: editing and repeated exports remain possible from it.
type Step int

const (
	StepPersonal Step = iota
	StepExperience
	StepEducation
	StepSkills
	StepProjects
	StepCertifications
	StepPreview
)

var stepNames = []string{
	"personal",
	"experience",
	"education",
	"skills",
	"projects",
	"certifications",
	"preview",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// Valid reports whether s is inside the closed step set.
func (s Step) Valid() bool {
	return s >= StepPersonal && s <= StepPreview
}

// ParseStep resolves a step name from a request body.
func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("unknown step %q", name)
}

// StepNames lists the ordered step names for clients.
func StepNames() []string {
	return append([]string{}, stepNames...)
}

// validators maps each data-entry step to its validation slice. Preview has
// nothing to validate.
var validators = map[Step]func(resume.ResumeData) resume.FieldErrors{
	StepPersonal:       resume.ValidatePersonal,
	StepExperience:     resume.ValidateExperience,
	StepEducation:      resume.ValidateEducation,
	StepSkills:         resume.ValidateSkills,
	StepProjects:       resume.ValidateProjects,
	StepCertifications: resume.ValidateCertifications,
}
