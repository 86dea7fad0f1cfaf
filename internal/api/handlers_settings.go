package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/david/pathly/internal/auth"
	"github.com/david/pathly/internal/notify"
	"github.com/david/pathly/internal/settings"
)

type settingsView struct {
	Theme             settings.Theme            `json:"theme"`
	Notifications     []settings.PreferenceItem `json:"notifications"`
	PasswordChangedAt string                    `json:"password_changed_at,omitempty"`
}

func (s *Server) settings() settingsView {
	v := settingsView{Theme: s.Theme.Get(), Notifications: s.Preferences.Items()}
	if at := s.Passwords.ChangedAt(); !at.IsZero() {
		v.PasswordChangedAt = at.Format("Jan 2, 2006 15:04")
	}
	return v
}

func (s *Server) handleGetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, s.settings())
}

func (s *Server) handleToggleTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"theme": s.Theme.Toggle()})
}

func (s *Server) togglePreference(key string) (bool, notify.Notice, error) {
	enabled, err := s.Preferences.Toggle(key)
	if err != nil {
		return false, notify.Notice{}, err
	}
	return enabled, s.Notices.Show("Notification Updated", "Your preferences have been saved.", notify.SeverityDefault), nil
}

func (s *Server) handleTogglePreference(c echo.Context) error {
	key := c.Param("key")
	enabled, notice, err := s.togglePreference(key)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"key": key, "enabled": enabled, "notice": notice})
}

// passwordNotice maps a rejected password change to its toast.
func passwordNotice(err error) (title, description string, status int) {
	switch {
	case errors.Is(err, auth.ErrPasswordMismatch):
		return "Passwords do not match", "", http.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrWeakPassword):
		return "Weak Password", "Password must be at least 6 characters.", http.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrMissingPasswordFields):
		return "Missing Fields", "Fill in all password fields.", http.StatusUnprocessableEntity
	case errors.Is(err, auth.ErrPasswordChangeInProgress):
		return "Please Wait", "Your password change is still being processed.", http.StatusConflict
	}
	return "", "", 0
}

// changePassword runs the change and records its notice. Errors without a
// notice are cancellations or unexpected failures.
func (s *Server) changePassword(ctx context.Context, req auth.PasswordChange) (notify.Notice, int, error) {
	err := s.Passwords.ChangePassword(ctx, req)
	if err == nil {
		return s.Notices.Show("Password Updated", "Your password has been changed.", notify.SeverityDefault), http.StatusOK, nil
	}
	if title, desc, status := passwordNotice(err); status != 0 {
		return s.Notices.Show(title, desc, notify.SeverityDestructive), status, err
	}
	if errors.Is(err, context.Canceled) {
		return notify.Notice{}, http.StatusRequestTimeout, err
	}
	return notify.Notice{}, http.StatusInternalServerError, err
}

func (s *Server) handleChangePassword(c echo.Context) error {
	var req auth.PasswordChange
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	notice, status, err := s.changePassword(c.Request().Context(), req)
	switch {
	case err == nil:
		return c.JSON(status, map[string]any{"notice": notice})
	case notice.Title != "":
		return c.JSON(status, map[string]any{"error": err.Error(), "notice": notice})
	case status == http.StatusRequestTimeout:
		return c.NoContent(status)
	}
	c.Logger().Errorf("Failed to change password: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
}

func (s *Server) deleteAccount() notify.Notice {
	s.Session.SignOut()
	s.Profile.Reset()
	return s.Notices.Show("Account Deleted", "Your account has been removed.", notify.SeverityDefault)
}

// handleDeleteAccount signs the demo session out and resets the profile.
func (s *Server) handleDeleteAccount(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"redirect": EntryRoute, "notice": s.deleteAccount()})
}
