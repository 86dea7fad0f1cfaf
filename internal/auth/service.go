package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const MinPasswordLength = 6

var (
	ErrMissingPasswordFields    = errors.New("all password fields are required")
	ErrPasswordMismatch         = errors.New("passwords do not match")
	ErrWeakPassword             = errors.New("password must be at least 6 characters")
	ErrPasswordChangeInProgress = errors.New("a password change is already in progress")
)

// PasswordChange is the settings security form.
type PasswordChange struct {
	Current string `json:"current"`
	New     string `json:"new"`
	Confirm string `json:"confirm"`
}

// Validate checks the form in the order the settings page reports problems:
// missing fields, mismatch, then length.
func (p PasswordChange) Validate() error {
	if p.Current == "" || p.New == "" || p.Confirm == "" {
		return ErrMissingPasswordFields
	}
	if p.New != p.Confirm {
		return ErrPasswordMismatch
	}
	if len(p.New) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Service owns the demo account credential. The current password is not
// verified; the demo sign-in never asked for one.
type Service struct {
	delay    time.Duration
	inFlight *semaphore.Weighted

	mu        sync.Mutex
	hash      []byte
	changedAt time.Time
}

// NewService creates a credential service that simulates a slow backend by
// waiting delay before each accepted change.
func NewService(delay time.Duration) *Service {
	return &Service{delay: delay, inFlight: semaphore.NewWeighted(1)}
}

// ChangePassword validates the form, waits out the simulated latency, and
// stores a bcrypt hash of the new password. A second call while one is
// pending fails with ErrPasswordChangeInProgress.
func (s *Service) ChangePassword(ctx context.Context, req PasswordChange) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !s.inFlight.TryAcquire(1) {
		return ErrPasswordChangeInProgress
	}
	defer s.inFlight.Release(1)

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.New), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}

	s.mu.Lock()
	s.hash = hash
	s.changedAt = time.Now()
	s.mu.Unlock()
	return nil
}

// ChangedAt is the time of the last accepted change, zero if none.
func (s *Service) ChangedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changedAt
}
