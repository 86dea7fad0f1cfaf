package models

import (
	"fmt"
	"strings"
)

// Category classifies a catalog record.
type Category string

const (
	CategoryAll           Category = "all"
	CategoryScholarship   Category = "scholarship"
	CategoryCertification Category = "certification"
)

// ParseCategory maps a selector string to a Category. An empty selector means all.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case "", CategoryAll:
		return CategoryAll, nil
	case CategoryScholarship:
		return CategoryScholarship, nil
	case CategoryCertification:
		return CategoryCertification, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Icon returns the glyph identifier used to render a record of this category.
func (c Category) Icon() Icon {
	if c == CategoryScholarship {
		return IconGraduationCap
	}
	return IconAward
}

// Opportunity is a scholarship or certification shown on the explore view.
// Amount and Deadline are display strings, e.g. "Full Tuition" or "Mar 15, 2024".
type Opportunity struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Category Category `json:"category" yaml:"category"`
	Provider string   `json:"provider" yaml:"provider"`
	Amount   string   `json:"amount" yaml:"amount"`
	Deadline string   `json:"deadline" yaml:"deadline"`
}

// Highlight is a dashboard teaser for a scholarship with a relative deadline.
type Highlight struct {
	Name     string `json:"name" yaml:"name"`
	Amount   string `json:"amount" yaml:"amount"`
	Deadline string `json:"deadline" yaml:"deadline"`
}
