package tokens

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/david/pathly/internal/models"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// Outcome is the result of a redemption check.
type Outcome string

const (
	Granted Outcome = "granted"
	Denied  Outcome = "denied"
)

// Decision explains a redemption check. Shortfall is zero when granted.
type Decision struct {
	Outcome   Outcome `json:"outcome"`
	Required  int     `json:"required"`
	Balance   int     `json:"balance"`
	Shortfall int     `json:"shortfall"`
}

func (d Decision) Granted() bool {
	return d.Outcome == Granted
}

// CheckRedemption grants when balance covers required.
func CheckRedemption(balance, required int) Decision {
	d := Decision{Outcome: Granted, Required: required, Balance: balance}
	if balance < required {
		d.Outcome = Denied
		d.Shortfall = required - balance
	}
	return d
}

// Ledger is an append-only log of signed token deltas. The balance is the
// opening balance plus every delta appended since construction; the seeded
// history predates the opening balance and is shown for reference only.
type Ledger struct {
	mu      sync.Mutex
	opening int
	seeded  []models.TokenHistoryEntry
	entries []models.TokenHistoryEntry
	now     func() time.Time
}

// NewLedger starts a ledger at opening with the given prior history
// (newest first).
func NewLedger(opening int, history []models.TokenHistoryEntry) (*Ledger, error) {
	if opening < 0 {
		return nil, fmt.Errorf("opening balance %d: %w", opening, ErrInvalidAmount)
	}
	return &Ledger{
		opening: opening,
		seeded:  append([]models.TokenHistoryEntry(nil), history...),
		now:     time.Now,
	}, nil
}

// Balance returns the derived balance.
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balanceLocked()
}

func (l *Ledger) balanceLocked() int {
	b := l.opening
	for _, e := range l.entries {
		b += e.Delta()
	}
	return b
}

// History returns appended entries followed by the seeded history, newest first.
func (l *Ledger) History() []models.TokenHistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.TokenHistoryEntry, 0, len(l.entries)+len(l.seeded))
	for i := len(l.entries) - 1; i >= 0; i-- {
		out = append(out, l.entries[i])
	}
	return append(out, l.seeded...)
}

// Earn appends an earned entry and returns the new balance.
func (l *Ledger) Earn(amount int, description string) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("earn %d: %w", amount, ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.appendLocked(models.Earned, amount, description)
	return l.balanceLocked(), nil
}

// Redeem checks the balance and, when granted, appends the spend in the same
// critical section so concurrent redemptions cannot overdraw.
func (l *Ledger) Redeem(required int, description string) (Decision, error) {
	if required <= 0 {
		return Decision{}, fmt.Errorf("redeem %d: %w", required, ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	d := CheckRedemption(l.balanceLocked(), required)
	if !d.Granted() {
		return d, nil
	}
	l.appendLocked(models.Spent, required, description)
	d.Balance = l.balanceLocked()
	return d, nil
}

func (l *Ledger) appendLocked(dir models.Direction, amount int, description string) {
	l.entries = append(l.entries, models.TokenHistoryEntry{
		ID:          uuid.New().String(),
		Direction:   dir,
		Amount:      amount,
		Description: description,
		Date:        l.now().Format("2006-01-02"),
	})
}
