package profile

import (
	"errors"
	"testing"

	"github.com/david/pathly/internal/models"
)

func ptr(s string) *string { return &s }

func demoUser() models.UserProfile {
	return models.UserProfile{
		ID:         "demo-user",
		FullName:   "Demo User",
		Email:      "demo@pathly.app",
		Tokens:     100,
		JoinedDate: "2025-01-01",
	}
}

func TestApply_StripsMarkup(t *testing.T) {
	s := NewStore(demoUser())

	u, err := s.Apply(Fields{
		FullName:    "  Ada <b>Lovelace</b> ",
		Location:    `London<script>alert("x")</script>`,
		Institution: "Cambridge & Co",
		CareerGoal:  "ML Engineer",
	}.Update())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if u.FullName != "Ada Lovelace" {
		t.Fatalf("expected sanitized name, got %q", u.FullName)
	}
	if u.Location != "London" {
		t.Fatalf("expected script stripped, got %q", u.Location)
	}
	if u.Institution != "Cambridge & Co" {
		t.Fatalf("expected plain ampersand, got %q", u.Institution)
	}
	if u.Email != "demo@pathly.app" {
		t.Fatalf("email must not change, got %q", u.Email)
	}
}

func TestApply_RequiresName(t *testing.T) {
	s := NewStore(demoUser())

	if _, err := s.Apply(Update{FullName: ptr("<i></i>  ")}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if s.Get().FullName != "Demo User" {
		t.Fatalf("failed update must not modify profile: %q", s.Get().FullName)
	}
}

func TestFormAndReset(t *testing.T) {
	s := NewStore(demoUser())
	if _, err := s.Apply(Update{FullName: ptr("New Name"), Location: ptr("Lima")}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if f := s.Form(); f.FullName != "New Name" || f.Location != "Lima" {
		t.Fatalf("unexpected form: %+v", f)
	}

	s.Reset()
	if s.Get().FullName != "Demo User" || s.Get().Location != "" {
		t.Fatalf("reset did not restore seed: %+v", s.Get())
	}
}

func TestApply_PartialKeepsUnsetFields(t *testing.T) {
	s := NewStore(demoUser())
	if _, err := s.Apply(Update{FullName: ptr("A"), Location: ptr("Lima"), Institution: ptr("MIT")}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	u, err := s.Apply(Update{FullName: ptr("B")})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if u.FullName != "B" || u.Location != "Lima" || u.Institution != "MIT" {
		t.Fatalf("partial update lost fields: %+v", u)
	}

	// Omitting the name keeps it; clearing another field is explicit.
	u, err = s.Apply(Update{Location: ptr("")})
	if err != nil {
		t.Fatalf("apply without name: %v", err)
	}
	if u.FullName != "B" || u.Location != "" {
		t.Fatalf("unexpected profile: %+v", u)
	}
}

func TestUserProfileDerivations(t *testing.T) {
	u := demoUser()
	if got := u.MemberSince(); got != "January 2025" {
		t.Fatalf("MemberSince = %q", got)
	}
	if got := u.Initial(); got != "D" {
		t.Fatalf("Initial = %q", got)
	}
	if got := u.DayStreak(); got != 1 {
		t.Fatalf("DayStreak = %d", got)
	}

	u.JoinedDate = "soon"
	u.FullName = ""
	if u.MemberSince() != "N/A" || u.Initial() != "U" {
		t.Fatalf("unexpected fallbacks: %q %q", u.MemberSince(), u.Initial())
	}
}
