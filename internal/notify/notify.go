package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notice is a toast shown to the user.
type Notice struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Severity    Severity  `json:"severity"`
	At          time.Time `json:"at"`
}

// Notifier is the notification surface.
type Notifier interface {
	Show(title, description string, severity Severity) Notice
}

// Board is a Notifier that can also list what it has shown.
type Board interface {
	Notifier
	Recent(n int) []Notice
}

// Feed keeps the most recent notices in memory. Nothing is delivered
// outside the process.
type Feed struct {
	mu      sync.Mutex
	size    int
	notices []Notice
	now     func() time.Time
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = 20
	}
	return &Feed{size: size, now: time.Now}
}

func (f *Feed) Show(title, description string, severity Severity) Notice {
	if severity == "" {
		severity = SeverityDefault
	}
	n := Notice{Title: title, Description: description, Severity: severity, At: f.now()}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
	if over := len(f.notices) - f.size; over > 0 {
		f.notices = append([]Notice(nil), f.notices[over:]...)
	}
	return n
}

// Recent returns up to n notices, newest first. n <= 0 returns all.
func (f *Feed) Recent(n int) []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	if n <= 0 || n > len(f.notices) {
		n = len(f.notices)
	}
	out := make([]Notice, 0, n)
	for i := len(f.notices) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.notices[i])
	}
	return out
}
