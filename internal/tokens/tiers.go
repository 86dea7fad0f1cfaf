package tokens

import "github.com/david/pathly/internal/models"

// Unlocked reports whether balance reaches the threshold.
func Unlocked(tokensRequired, balance int) bool {
	return balance >= tokensRequired
}

// Remaining is how many more tokens are needed, never negative.
func Remaining(tokensRequired, balance int) int {
	return max(0, tokensRequired-balance)
}

type TierStatus struct {
	models.DiscountTier
	Unlocked  bool `json:"unlocked"`
	Remaining int  `json:"remaining"`
}

// EvaluateTiers computes unlock state for each tier, in input order.
func EvaluateTiers(tiers []models.DiscountTier, balance int) []TierStatus {
	out := make([]TierStatus, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, TierStatus{
			DiscountTier: t,
			Unlocked:     Unlocked(t.TokensRequired, balance),
			Remaining:    Remaining(t.TokensRequired, balance),
		})
	}
	return out
}

type RewardStatus struct {
	models.Reward
	CanRedeem bool `json:"can_redeem"`
}

func EvaluateRewards(rewards []models.Reward, balance int) []RewardStatus {
	out := make([]RewardStatus, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, RewardStatus{Reward: r, CanRedeem: Unlocked(r.TokensRequired, balance)})
	}
	return out
}

// FindReward looks up a reward by ID.
func FindReward(rewards []models.Reward, id string) (models.Reward, bool) {
	for _, r := range rewards {
		if r.ID == id {
			return r, true
		}
	}
	return models.Reward{}, false
}
