package profile

import (
	"errors"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/david/pathly/internal/models"
)

var ErrNameRequired = errors.New("full name is required")

// Fields are the editable profile fields. Email, tokens, and joined date
// are not editable.
type Fields struct {
	FullName       string `json:"full_name"`
	Location       string `json:"location"`
	Institution    string `json:"institution"`
	CareerGoal     string `json:"career_goal"`
	EducationLevel string `json:"education_level"`
}

// Update replaces every field, as a submitted edit form does.
func (f Fields) Update() Update {
	return Update{
		FullName:       &f.FullName,
		Location:       &f.Location,
		Institution:    &f.Institution,
		CareerGoal:     &f.CareerGoal,
		EducationLevel: &f.EducationLevel,
	}
}

// Update is a partial edit. Nil fields keep their stored value.
type Update struct {
	FullName       *string `json:"full_name"`
	Location       *string `json:"location"`
	Institution    *string `json:"institution"`
	CareerGoal     *string `json:"career_goal"`
	EducationLevel *string `json:"education_level"`
}

// Store keeps the demo profile in memory for the process lifetime.
type Store struct {
	mu      sync.RWMutex
	user    models.UserProfile
	initial models.UserProfile
	policy  *bluemonday.Policy
}

func NewStore(user models.UserProfile) *Store {
	return &Store{user: user, initial: user, policy: bluemonday.StrictPolicy()}
}

func (s *Store) Get() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u := s.user
	u.Interests = append([]string{}, s.user.Interests...)
	return u
}

// Form returns the current editable fields, used to fill the edit form.
func (s *Store) Form() Fields {
	u := s.Get()
	return Fields{
		FullName:       u.FullName,
		Location:       u.Location,
		Institution:    u.Institution,
		CareerGoal:     u.CareerGoal,
		EducationLevel: u.EducationLevel,
	}
}

// Apply stores the fields set in upd as plain text. A name that is set must
// not be blank after cleaning.
func (s *Store) Apply(upd Update) (models.UserProfile, error) {
	var name string
	if upd.FullName != nil {
		name = s.sanitize(*upd.FullName)
		if name == "" {
			return models.UserProfile{}, ErrNameRequired
		}
	}

	s.mu.Lock()
	if upd.FullName != nil {
		s.user.FullName = name
	}
	s.set(&s.user.Location, upd.Location)
	s.set(&s.user.Institution, upd.Institution)
	s.set(&s.user.CareerGoal, upd.CareerGoal)
	s.set(&s.user.EducationLevel, upd.EducationLevel)
	s.mu.Unlock()

	return s.Get(), nil
}

func (s *Store) set(dst *string, v *string) {
	if v != nil {
		*dst = s.sanitize(*v)
	}
}

// Reset restores the profile seeded at startup.
func (s *Store) Reset() {
	s.mu.Lock()
	s.user = s.initial
	s.mu.Unlock()
}

// StrictPolicy escapes what it keeps, so unescape to store plain text; the
// template layer escapes again on output.
func (s *Store) sanitize(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}
