package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/david/pathly/internal/auth"
	"github.com/david/pathly/internal/catalog"
	"github.com/david/pathly/internal/config"
	"github.com/david/pathly/internal/models"
	"github.com/david/pathly/internal/notify"
	"github.com/david/pathly/internal/pathway"
	"github.com/david/pathly/internal/profile"
	"github.com/david/pathly/internal/seed"
	"github.com/david/pathly/internal/settings"
	"github.com/david/pathly/internal/tokens"
)

// EntryRoute is where the guard sends signed-out visitors.
const EntryRoute = "/"

// Deps is everything a Server needs. The application root owns the
// lifetime of each dependency.
type Deps struct {
	Catalog     *catalog.Catalog
	Ledger      *tokens.Ledger
	Tiers       []models.DiscountTier
	Rewards     []models.Reward
	EarnRules   []models.EarnRule
	Highlights  []models.Highlight
	Pathway     *pathway.Pathway
	Profile     *profile.Store
	Theme       *settings.ThemeStore
	Preferences *settings.Preferences
	Session     auth.Controller
	Passwords   *auth.Service
	Notices     notify.Board
	CORSOrigins []string
}

// DepsFromSeed wires the demo dataset into fresh in-memory stores.
func DepsFromSeed(ds *seed.Dataset, cfg *config.Config) (Deps, error) {
	ledger, err := tokens.NewLedger(ds.User.Tokens, ds.History)
	if err != nil {
		return Deps{}, fmt.Errorf("building ledger: %w", err)
	}
	theme, err := settings.ParseTheme(cfg.DefaultTheme)
	if err != nil {
		return Deps{}, err
	}
	return Deps{
		Catalog:     catalog.New(ds.Catalog),
		Ledger:      ledger,
		Tiers:       ds.Tiers,
		Rewards:     ds.Rewards,
		EarnRules:   ds.EarnRules,
		Highlights:  ds.Highlights,
		Pathway:     pathway.New(ds.Pathway.Steps, ds.Pathway.Preview, ds.Pathway.HoursPerWeek),
		Profile:     profile.NewStore(ds.User),
		Theme:       settings.NewThemeStore(theme),
		Preferences: settings.NewPreferences(),
		Session:     auth.NewDemoSession(cfg.SessionSignedIn),
		Passwords:   auth.NewService(cfg.PasswordChangeDelay),
		Notices:     notify.NewFeed(cfg.NoticeFeedSize),
		CORSOrigins: cfg.CORSOrigins,
	}, nil
}

type Server struct {
	Deps
	Echo *echo.Echo
}

func NewServer(deps Deps) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	renderer, err := newRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	s := &Server{Deps: deps, Echo: e}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	// Pages
	guard := auth.Guard(s.Session, EntryRoute)
	s.Echo.GET(EntryRoute, s.handleEntryPage)
	s.Echo.POST("/signin", s.handleSignInForm)
	s.Echo.GET("/dashboard", s.handleDashboardPage, guard)
	s.Echo.GET("/explore", s.handleExplorePage, guard)
	s.Echo.GET("/pathway", s.handlePathwayPage, guard)
	s.Echo.GET("/tokens", s.handleTokensPage, guard)
	s.Echo.GET("/profile", s.handleProfilePage, guard)
	s.Echo.GET("/settings", s.handleSettingsPage, guard)
	s.Echo.POST("/tokens/redeem", s.handleRedeemForm, guard)
	s.Echo.POST("/profile", s.handleProfileForm, guard)
	s.Echo.POST("/settings/theme", s.handleThemeForm, guard)
	s.Echo.POST("/settings/notifications/:key", s.handlePreferenceForm, guard)
	s.Echo.POST("/settings/password", s.handlePasswordForm, guard)
	s.Echo.POST("/settings/account/delete", s.handleDeleteAccountForm, guard)
	s.Echo.RouteNotFound("/*", s.handleNotFoundPage)

	api := s.Echo.Group("/api/v1")
	api.POST("/session", s.handleSignIn)
	api.DELETE("/session", s.handleSignOut)

	protected := api.Group("", auth.Require(s.Session))
	protected.GET("/dashboard", s.handleGetDashboard)
	protected.GET("/opportunities", s.handleListOpportunities)
	protected.GET("/opportunities/:id", s.handleGetOpportunity)
	protected.GET("/pathway", s.handleGetPathway)

	protected.GET("/tokens", s.handleGetTokens)
	protected.POST("/tokens/redeem", s.handleRedeem)
	protected.POST("/tokens/earn", s.handleEarn)

	protected.GET("/profile", s.handleGetProfile)
	protected.PATCH("/profile", s.handleUpdateProfile)

	protected.GET("/settings", s.handleGetSettings)
	protected.POST("/settings/theme/toggle", s.handleToggleTheme)
	protected.POST("/settings/notifications/:key/toggle", s.handleTogglePreference)
	protected.POST("/settings/password", s.handleChangePassword)
	protected.DELETE("/settings/account", s.handleDeleteAccount)

	protected.GET("/notifications", s.handleListNotices)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleSignIn(c echo.Context) error {
	s.Session.SignIn()
	return c.JSON(http.StatusOK, map[string]any{"authenticated": true, "redirect": "/dashboard"})
}

func (s *Server) handleSignOut(c echo.Context) error {
	s.Session.SignOut()
	return c.JSON(http.StatusOK, map[string]any{"authenticated": false, "redirect": EntryRoute})
}

func (s *Server) handleListNotices(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"notifications": s.Notices.Recent(0)})
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
