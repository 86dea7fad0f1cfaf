package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/david/pathly/internal/auth"
	"github.com/david/pathly/internal/catalog"
	"github.com/david/pathly/internal/models"
	"github.com/david/pathly/internal/notify"
	"github.com/david/pathly/internal/profile"
	"github.com/david/pathly/internal/settings"
)

type navItem struct {
	Path   string
	Label  string
	Icon   models.Icon
	Active bool
}

var navItems = []navItem{
	{Path: "/dashboard", Label: "Home", Icon: models.IconHome},
	{Path: "/explore", Label: "Explore", Icon: models.IconSearch},
	{Path: "/pathway", Label: "AI Pathway", Icon: models.IconRoute},
	{Path: "/tokens", Label: "Tokens", Icon: models.IconCoins},
	{Path: "/profile", Label: "Profile", Icon: models.IconUser},
	{Path: "/settings", Label: "Settings", Icon: models.IconSettings},
}

// pageData is what every template receives; Page holds the view-specific part.
type pageData struct {
	Title   string
	Theme   settings.Theme
	ShowNav bool
	Nav     []navItem
	Notices []notify.Notice
	Page    any
}

func (s *Server) render(c echo.Context, status int, name, title string, showNav bool, page any) error {
	path := c.Request().URL.Path
	nav := make([]navItem, len(navItems))
	for i, item := range navItems {
		item.Active = item.Path == path
		nav[i] = item
	}
	return c.Render(status, name, pageData{
		Title:   title,
		Theme:   s.Theme.Get(),
		ShowNav: showNav,
		Nav:     nav,
		Notices: s.Notices.Recent(3),
		Page:    page,
	})
}

func (s *Server) handleEntryPage(c echo.Context) error {
	return s.render(c, http.StatusOK, "entry", "Welcome", false, nil)
}

// handleSignInForm is the entry page's "Go to Dashboard" action.
func (s *Server) handleSignInForm(c echo.Context) error {
	s.Session.SignIn()
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) handleDashboardPage(c echo.Context) error {
	return s.render(c, http.StatusOK, "dashboard", "Dashboard", true, s.dashboard())
}

type explorePage struct {
	Query    string
	Category models.Category
	Result   catalog.Result
	Invalid  string
}

func (s *Server) handleExplorePage(c echo.Context) error {
	result, category, err := s.search(c)
	page := explorePage{Query: c.QueryParam("q"), Category: category, Result: result}
	status := http.StatusOK
	if err != nil {
		// Show what the selector displays: the query across every category.
		page.Invalid = err.Error()
		page.Category = models.CategoryAll
		page.Result = s.Catalog.Search(page.Query, models.CategoryAll)
		status = http.StatusBadRequest
	}
	return s.render(c, status, "explore", "Explore Opportunities", true, page)
}

func (s *Server) handlePathwayPage(c echo.Context) error {
	return s.render(c, http.StatusOK, "pathway", "AI Pathway", true, s.Pathway.Summary())
}

type tokensPage struct {
	Tab    string
	Tabs   []tokensTab
	Wallet walletView
}

type tokensTab struct {
	ID     string
	Label  string
	Icon   models.Icon
	Active bool
}

func (s *Server) handleTokensPage(c echo.Context) error {
	tab := c.QueryParam("tab")
	switch tab {
	case "wallet", "rewards", "history":
	default:
		tab = "wallet"
	}
	tabs := []tokensTab{
		{ID: "wallet", Label: "Discounts", Icon: models.IconCoins},
		{ID: "rewards", Label: "Rewards", Icon: models.IconGift},
		{ID: "history", Label: "History", Icon: models.IconHistory},
	}
	for i := range tabs {
		tabs[i].Active = tabs[i].ID == tab
	}
	return s.render(c, http.StatusOK, "tokens", "Tokens", true, tokensPage{Tab: tab, Tabs: tabs, Wallet: s.wallet()})
}

type profilePage struct {
	profileView
	Form profile.Fields
}

func (s *Server) handleProfilePage(c echo.Context) error {
	return s.render(c, http.StatusOK, "profile", "Profile", true, profilePage{profileView: s.currentProfile(), Form: s.Profile.Form()})
}

func (s *Server) handleSettingsPage(c echo.Context) error {
	return s.render(c, http.StatusOK, "settings", "Settings", true, s.settings())
}

func (s *Server) handleNotFoundPage(c echo.Context) error {
	return s.render(c, http.StatusNotFound, "notfound", "Page Not Found", false, nil)
}

// The page forms below post back and answer 303 to the page they came from,
// so a reload does not resubmit. Outcomes reach the page as notices.

func (s *Server) handleRedeemForm(c echo.Context) error {
	if _, _, err := s.redeem(redeemRequest{RewardID: c.FormValue("reward_id")}); err != nil {
		status := redeemStatus(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("Failed to redeem: %v", err)
		}
		return echo.NewHTTPError(status, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/tokens?tab=rewards")
}

func (s *Server) handleProfileForm(c echo.Context) error {
	f := profile.Fields{
		FullName:       c.FormValue("full_name"),
		Location:       c.FormValue("location"),
		Institution:    c.FormValue("institution"),
		CareerGoal:     c.FormValue("career_goal"),
		EducationLevel: c.FormValue("education_level"),
	}
	if _, err := s.updateProfile(f.Update()); err != nil && !errors.Is(err, profile.ErrNameRequired) {
		c.Logger().Errorf("Failed to update profile: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Redirect(http.StatusSeeOther, "/profile")
}

func (s *Server) handleThemeForm(c echo.Context) error {
	s.Theme.Toggle()
	return c.Redirect(http.StatusSeeOther, "/settings")
}

func (s *Server) handlePreferenceForm(c echo.Context) error {
	if _, _, err := s.togglePreference(c.Param("key")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, "/settings")
}

func (s *Server) handlePasswordForm(c echo.Context) error {
	req := auth.PasswordChange{
		Current: c.FormValue("current"),
		New:     c.FormValue("new"),
		Confirm: c.FormValue("confirm"),
	}
	notice, status, err := s.changePassword(c.Request().Context(), req)
	if err != nil && notice.Title == "" {
		if status == http.StatusRequestTimeout {
			return c.NoContent(status)
		}
		c.Logger().Errorf("Failed to change password: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	return c.Redirect(http.StatusSeeOther, "/settings")
}

func (s *Server) handleDeleteAccountForm(c echo.Context) error {
	s.deleteAccount()
	return c.Redirect(http.StatusSeeOther, EntryRoute)
}
