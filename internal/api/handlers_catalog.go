package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/david/pathly/internal/catalog"
	"github.com/david/pathly/internal/models"
	"github.com/david/pathly/internal/pathway"
	"github.com/david/pathly/internal/tokens"
)

// search reads q and category from the query string.
func (s *Server) search(c echo.Context) (catalog.Result, models.Category, error) {
	category, err := models.ParseCategory(c.QueryParam("category"))
	if err != nil {
		return catalog.Result{}, "", err
	}
	return s.Catalog.Search(c.QueryParam("q"), category), category, nil
}

func (s *Server) handleListOpportunities(c echo.Context) error {
	result, _, err := s.search(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetOpportunity(c echo.Context) error {
	opp, ok := s.Catalog.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}
	return c.JSON(http.StatusOK, opp)
}

func (s *Server) handleGetPathway(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Pathway.Summary())
}

type dashboardStats struct {
	Tokens         int    `json:"tokens"`
	Certifications int    `json:"certifications"`
	Progress       string `json:"progress"`
}

type dashboardView struct {
	Stats      dashboardStats       `json:"stats"`
	Highlights []models.Highlight   `json:"top_scholarships"`
	Preview    []models.PreviewItem `json:"pathway_preview"`
	Tiers      []tokens.TierStatus  `json:"tiers"`
	Pathway    pathway.Summary      `json:"-"`
}

func (s *Server) dashboard() dashboardView {
	balance := s.Ledger.Balance()
	return dashboardView{
		Stats: dashboardStats{
			Tokens:         balance,
			Certifications: s.Profile.Get().Certifications,
			Progress:       s.Pathway.StatusLabel(),
		},
		Highlights: s.Highlights,
		Preview:    s.Pathway.Preview,
		Tiers:      tokens.EvaluateTiers(s.Tiers, balance),
		Pathway:    s.Pathway.Summary(),
	}
}

func (s *Server) handleGetDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, s.dashboard())
}
