package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/david/pathly/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// Dataset is the fixed demo content loaded at startup.
type Dataset struct {
	User       models.UserProfile         `yaml:"user"`
	Catalog    []models.Opportunity       `yaml:"catalog"`
	Highlights []models.Highlight         `yaml:"highlights"`
	Tiers      []models.DiscountTier      `yaml:"tiers"`
	Rewards    []models.Reward            `yaml:"rewards"`
	EarnRules  []models.EarnRule          `yaml:"earn_rules"`
	History    []models.TokenHistoryEntry `yaml:"history"`
	Pathway    PathwayConfig              `yaml:"pathway"`
}

type PathwayConfig struct {
	HoursPerWeek int                  `yaml:"hours_per_week"`
	Steps        []models.PathwayStep `yaml:"steps"`
	Preview      []models.PreviewItem `yaml:"preview"`
}

// Load parses the embedded dataset.
func Load() (*Dataset, error) {
	return Parse(seedYAML)
}

// LoadFile parses a dataset from disk, for local overrides of the demo content.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML dataset.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	var errs []error
	if ds.User.Tokens < 0 {
		errs = append(errs, fmt.Errorf("user %s: tokens must not be negative", ds.User.ID))
	}
	for _, o := range ds.Catalog {
		if o.Category != models.CategoryScholarship && o.Category != models.CategoryCertification {
			errs = append(errs, fmt.Errorf("catalog %s: invalid category %q", o.ID, o.Category))
		}
	}
	for _, t := range ds.Tiers {
		if t.TokensRequired <= 0 {
			errs = append(errs, fmt.Errorf("tier %s: tokens_required must be positive", t.ID))
		}
	}
	for _, r := range ds.Rewards {
		if r.TokensRequired <= 0 {
			errs = append(errs, fmt.Errorf("reward %s: tokens_required must be positive", r.ID))
		}
	}
	for _, h := range ds.History {
		if h.Amount <= 0 {
			errs = append(errs, fmt.Errorf("history %s: amount must be positive", h.ID))
		}
		if h.Direction != models.Earned && h.Direction != models.Spent {
			errs = append(errs, fmt.Errorf("history %s: invalid direction %q", h.ID, h.Direction))
		}
	}
	return errors.Join(errs...)
}
