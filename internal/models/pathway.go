package models

type StepStatus string

const (
	StepCompleted StepStatus = "completed"
	StepCurrent   StepStatus = "current"
	StepLocked    StepStatus = "locked"
)

type StepType string

const (
	StepCourse        StepType = "course"
	StepProject       StepType = "project"
	StepCertification StepType = "certification"
)

// PathwayStep is one stage of the learning pathway.
type PathwayStep struct {
	ID            string     `json:"id" yaml:"id"`
	Title         string     `json:"title" yaml:"title"`
	Description   string     `json:"description" yaml:"description"`
	DurationWeeks int        `json:"duration_weeks" yaml:"duration_weeks"`
	Status        StepStatus `json:"status" yaml:"status"`
	Progress      int        `json:"progress" yaml:"progress"`
	Type          StepType   `json:"type" yaml:"type"`
	Skills        []string   `json:"skills" yaml:"skills"`
}

// PreviewItem is a dashboard pathway teaser line.
type PreviewItem struct {
	Title  string `json:"title" yaml:"title"`
	Status string `json:"status" yaml:"status"`
}
