package models

import (
	"time"
	"unicode/utf8"
)

// UserProfile is the demo account. Tokens mirrors the ledger balance at the
// time the profile was read.
type UserProfile struct {
	ID             string   `json:"id" yaml:"id"`
	FullName       string   `json:"full_name" yaml:"full_name"`
	Email          string   `json:"email" yaml:"email"`
	Tokens         int      `json:"tokens" yaml:"tokens"`
	JoinedDate     string   `json:"joined_date" yaml:"joined_date"` // YYYY-MM-DD
	Location       string   `json:"location,omitempty" yaml:"location,omitempty"`
	Institution    string   `json:"institution,omitempty" yaml:"institution,omitempty"`
	CareerGoal     string   `json:"career_goal,omitempty" yaml:"career_goal,omitempty"`
	EducationLevel string   `json:"education_level,omitempty" yaml:"education_level,omitempty"`
	Streak         int      `json:"streak,omitempty" yaml:"streak,omitempty"`
	Certifications int      `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Interests      []string `json:"interests" yaml:"interests,omitempty"`
}

// MemberSince formats the joined date as "January 2025", or "N/A".
func (u UserProfile) MemberSince() string {
	t, err := time.Parse("2006-01-02", u.JoinedDate)
	if err != nil {
		return "N/A"
	}
	return t.Format("January 2006")
}

// Initial is the avatar letter.
func (u UserProfile) Initial() string {
	r, size := utf8.DecodeRuneInString(u.FullName)
	if size == 0 || r == utf8.RuneError {
		return "U"
	}
	return string(r)
}

// DayStreak reports the streak, counting today as day one.
func (u UserProfile) DayStreak() int {
	if u.Streak <= 0 {
		return 1
	}
	return u.Streak
}
