package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/david/pathly/internal/models"
	"github.com/david/pathly/internal/notify"
	"github.com/david/pathly/internal/profile"
)

type profileStat struct {
	Label string      `json:"label"`
	Value int         `json:"value"`
	Icon  models.Icon `json:"icon"`
}

type profileView struct {
	User        models.UserProfile `json:"user"`
	MemberSince string             `json:"member_since"`
	Initial     string             `json:"initial"`
	Stats       []profileStat      `json:"stats"`
}

// currentProfile reads the profile with Tokens taken from the ledger.
func (s *Server) currentProfile() profileView {
	u := s.Profile.Get()
	u.Tokens = s.Ledger.Balance()
	return profileView{
		User:        u,
		MemberSince: u.MemberSince(),
		Initial:     u.Initial(),
		Stats: []profileStat{
			{Label: "Tokens", Value: u.Tokens, Icon: models.IconCoins},
			{Label: "Certifications", Value: u.Certifications, Icon: models.IconAward},
			{Label: "Day Streak", Value: u.DayStreak(), Icon: models.IconTrophy},
		},
	}
}

func (s *Server) handleGetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, s.currentProfile())
}

// updateProfile applies upd and records the outcome as a notice.
func (s *Server) updateProfile(upd profile.Update) (notify.Notice, error) {
	if _, err := s.Profile.Apply(upd); err != nil {
		if errors.Is(err, profile.ErrNameRequired) {
			return s.Notices.Show("Profile Not Saved", "Full name is required.", notify.SeverityDestructive), err
		}
		return notify.Notice{}, err
	}
	return s.Notices.Show("Profile Updated", "Your profile has been saved.", notify.SeverityDefault), nil
}

// handleUpdateProfile changes only the fields present in the body.
func (s *Server) handleUpdateProfile(c echo.Context) error {
	var req profile.Update
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	notice, err := s.updateProfile(req)
	if errors.Is(err, profile.ErrNameRequired) {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{"error": err.Error(), "notice": notice})
	}
	if err != nil {
		c.Logger().Errorf("Failed to update profile: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
	}

	return c.JSON(http.StatusOK, map[string]any{"profile": s.currentProfile(), "notice": notice})
}
