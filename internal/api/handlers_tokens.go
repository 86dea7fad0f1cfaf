package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/david/pathly/internal/models"
	"github.com/david/pathly/internal/notify"
	"github.com/david/pathly/internal/settings"
	"github.com/david/pathly/internal/tokens"
)

type walletView struct {
	Balance   int                        `json:"balance"`
	Tiers     []tokens.TierStatus        `json:"tiers"`
	Rewards   []tokens.RewardStatus      `json:"rewards"`
	EarnRules []models.EarnRule          `json:"earn_rules"`
	History   []models.TokenHistoryEntry `json:"history"`
}

func (s *Server) wallet() walletView {
	balance := s.Ledger.Balance()
	return walletView{
		Balance:   balance,
		Tiers:     tokens.EvaluateTiers(s.Tiers, balance),
		Rewards:   tokens.EvaluateRewards(s.Rewards, balance),
		EarnRules: s.EarnRules,
		History:   s.Ledger.History(),
	}
}

func (s *Server) handleGetTokens(c echo.Context) error {
	return c.JSON(http.StatusOK, s.wallet())
}

type redeemRequest struct {
	RewardID    string `json:"reward_id"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

var errUnknownReward = errors.New("reward not found")

// redeem spends tokens on a reward, or on an arbitrary amount when no reward
// is named, and records the outcome as a notice. A denial is not an error.
func (s *Server) redeem(req redeemRequest) (tokens.Decision, notify.Notice, error) {
	required, title := req.Amount, strings.TrimSpace(req.Description)
	if req.RewardID != "" {
		reward, ok := tokens.FindReward(s.Rewards, req.RewardID)
		if !ok {
			return tokens.Decision{}, notify.Notice{}, errUnknownReward
		}
		required, title = reward.TokensRequired, reward.Title
	}
	if title == "" {
		title = "Token redemption"
	}

	decision, err := s.Ledger.Redeem(required, title)
	if err != nil {
		return tokens.Decision{}, notify.Notice{}, err
	}
	if decision.Granted() {
		return decision, s.Notices.Show("Redeemed Successfully", title, notify.SeverityDefault), nil
	}
	return decision, s.Notices.Show("Not Enough Tokens", "Earn more tokens to unlock this", notify.SeverityDestructive), nil
}

func redeemStatus(err error) int {
	switch {
	case errors.Is(err, errUnknownReward):
		return http.StatusNotFound
	case errors.Is(err, tokens.ErrInvalidAmount):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// handleRedeem answers a denial with a normal 200 and granted=false.
func (s *Server) handleRedeem(c echo.Context) error {
	var req redeemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	decision, notice, err := s.redeem(req)
	if err != nil {
		status := redeemStatus(err)
		if status == http.StatusInternalServerError {
			c.Logger().Errorf("Failed to redeem: %v", err)
			return c.JSON(status, map[string]string{"error": "Internal Server Error"})
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"granted":  decision.Granted(),
		"decision": decision,
		"balance":  s.Ledger.Balance(),
		"notice":   notice,
	})
}

type earnRequest struct {
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

func (s *Server) handleEarn(c echo.Context) error {
	var req earnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		desc = "Tokens earned"
	}

	balance, err := s.Ledger.Earn(req.Amount, desc)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var notice *notify.Notice
	if s.Preferences.Enabled(settings.PrefTokenRewards) {
		n := s.Notices.Show("Tokens Earned", fmt.Sprintf("+%d %s", req.Amount, desc), notify.SeverityDefault)
		notice = &n
	}
	return c.JSON(http.StatusOK, map[string]any{"balance": balance, "notice": notice})
}
