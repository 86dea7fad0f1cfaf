package models

// Direction is the sign of a ledger entry.
type Direction string

const (
	Earned Direction = "earned"
	Spent  Direction = "spent"
)

// TokenHistoryEntry is one earn or spend event. Amount is always positive;
// Direction carries the sign.
type TokenHistoryEntry struct {
	ID          string    `json:"id" yaml:"id"`
	Direction   Direction `json:"direction" yaml:"direction"`
	Amount      int       `json:"amount" yaml:"amount"`
	Description string    `json:"description" yaml:"description"`
	Date        string    `json:"date" yaml:"date"` // YYYY-MM-DD
}

// Delta returns the signed balance change of the entry.
func (e TokenHistoryEntry) Delta() int {
	if e.Direction == Spent {
		return -e.Amount
	}
	return e.Amount
}

// DiscountTier is a certification discount unlocked by holding enough tokens.
type DiscountTier struct {
	ID              string `json:"id" yaml:"id"`
	DiscountPercent int    `json:"discount_percent" yaml:"discount"`
	TokensRequired  int    `json:"tokens_required" yaml:"tokens_required"`
	Label           string `json:"label" yaml:"label"`
}

// Reward is an item in the reward store.
type Reward struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	Description    string `json:"description" yaml:"description"`
	TokensRequired int    `json:"tokens_required" yaml:"tokens_required"`
	Icon           Icon   `json:"icon" yaml:"icon"`
}

// EarnRule describes one way to earn tokens.
type EarnRule struct {
	Title string `json:"title" yaml:"title"`
	Gain  int    `json:"gain" yaml:"gain"`
	Icon  Icon   `json:"icon" yaml:"icon"`
}
