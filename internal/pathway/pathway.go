package pathway

import (
	"math"

	"github.com/david/pathly/internal/models"
)

// Pathway is the fixed learning journey.
type Pathway struct {
	Steps        []models.PathwayStep
	Preview      []models.PreviewItem
	HoursPerWeek int
}

func New(steps []models.PathwayStep, preview []models.PreviewItem, hoursPerWeek int) *Pathway {
	return &Pathway{
		Steps:        append([]models.PathwayStep(nil), steps...),
		Preview:      append([]models.PreviewItem(nil), preview...),
		HoursPerWeek: hoursPerWeek,
	}
}

// Completed counts finished steps.
func (p *Pathway) Completed() int {
	n := 0
	for _, s := range p.Steps {
		if s.Status == models.StepCompleted {
			n++
		}
	}
	return n
}

// OverallProgress is the rounded percentage of completed steps.
func (p *Pathway) OverallProgress() int {
	if len(p.Steps) == 0 {
		return 0
	}
	return int(math.Round(float64(p.Completed()) / float64(len(p.Steps)) * 100))
}

// EstimatedWeeks sums step durations.
func (p *Pathway) EstimatedWeeks() int {
	total := 0
	for _, s := range p.Steps {
		total += s.DurationWeeks
	}
	return total
}

// Current returns the step in progress, if any.
func (p *Pathway) Current() (models.PathwayStep, bool) {
	for _, s := range p.Steps {
		if s.Status == models.StepCurrent {
			return s, true
		}
	}
	return models.PathwayStep{}, false
}

// StatusLabel summarizes the journey for the dashboard stats card.
func (p *Pathway) StatusLabel() string {
	switch {
	case len(p.Steps) > 0 && p.Completed() == len(p.Steps):
		return "Completed"
	case p.Completed() > 0:
		return "In Progress"
	}
	if _, ok := p.Current(); ok {
		return "In Progress"
	}
	return "Not Started"
}

// ActionLabel is the button text for a step.
func ActionLabel(s models.PathwayStep) string {
	switch s.Status {
	case models.StepCompleted:
		return "Review"
	case models.StepCurrent:
		return "Continue"
	}
	return "Locked"
}

// Summary is the serializable view of the pathway.
type Summary struct {
	Steps           []StepView `json:"steps"`
	Completed       int        `json:"completed"`
	Total           int        `json:"total"`
	OverallProgress int        `json:"overall_progress"`
	EstimatedWeeks  int        `json:"estimated_weeks"`
	HoursPerWeek    int        `json:"hours_per_week"`
}

type StepView struct {
	models.PathwayStep
	Action   string `json:"action"`
	Disabled bool   `json:"disabled"`
}

func (p *Pathway) Summary() Summary {
	views := make([]StepView, 0, len(p.Steps))
	for _, s := range p.Steps {
		views = append(views, StepView{
			PathwayStep: s,
			Action:      ActionLabel(s),
			Disabled:    s.Status == models.StepLocked,
		})
	}
	return Summary{
		Steps:           views,
		Completed:       p.Completed(),
		Total:           len(p.Steps),
		OverallProgress: p.OverallProgress(),
		EstimatedWeeks:  p.EstimatedWeeks(),
		HoursPerWeek:    p.HoursPerWeek,
	}
}
