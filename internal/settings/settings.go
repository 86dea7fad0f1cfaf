package settings

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case "", ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// ThemeStore holds the current theme.
type ThemeStore struct {
	mu    sync.Mutex
	theme Theme
}

func NewThemeStore(initial Theme) *ThemeStore {
	if initial != ThemeDark {
		initial = ThemeLight
	}
	return &ThemeStore{theme: initial}
}

func (s *ThemeStore) Get() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Toggle switches between light and dark and returns the new theme.
func (s *ThemeStore) Toggle() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.theme
}

var ErrUnknownPreference = errors.New("unknown notification preference")

// Preference keys.
const (
	PrefScholarships   = "scholarships"
	PrefPathwayUpdates = "pathwayUpdates"
	PrefTokenRewards   = "tokenRewards"
	PrefEmailDigest    = "emailDigest"
)

// PreferenceItem is one notification switch as rendered in settings.
type PreferenceItem struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Desc    string `json:"description"`
	Enabled bool   `json:"enabled"`
}

var preferenceCatalog = []PreferenceItem{
	{Key: PrefScholarships, Label: "Scholarship Matches", Desc: "Alerts for scholarship opportunities"},
	{Key: PrefPathwayUpdates, Label: "Pathway Updates", Desc: "Learning reminders and progress alerts"},
	{Key: PrefTokenRewards, Label: "Token Rewards", Desc: "When you earn new tokens"},
	{Key: PrefEmailDigest, Label: "Weekly Email Summary", Desc: "Weekly report sent to your email"},
}

// Preferences are the notification switches.
type Preferences struct {
	mu      sync.Mutex
	enabled map[string]bool
}

func NewPreferences() *Preferences {
	return &Preferences{enabled: map[string]bool{
		PrefScholarships:   true,
		PrefPathwayUpdates: true,
		PrefTokenRewards:   true,
		PrefEmailDigest:    false,
	}}
}

// Toggle flips a preference and returns its new value.
func (p *Preferences) Toggle(key string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.enabled[key]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownPreference, key)
	}
	p.enabled[key] = !v
	return !v, nil
}

func (p *Preferences) Enabled(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled[key]
}

// Items lists preferences in display order.
func (p *Preferences) Items() []PreferenceItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PreferenceItem, 0, len(preferenceCatalog))
	for _, item := range preferenceCatalog {
		item.Enabled = p.enabled[item.Key]
		out = append(out, item)
	}
	return out
}
