package notify

import (
	"fmt"
	"testing"
)

func TestFeed_KeepsNewestWithinSize(t *testing.T) {
	f := NewFeed(3)
	for i := 1; i <= 5; i++ {
		f.Show(fmt.Sprintf("n%d", i), "", "")
	}

	got := f.Recent(0)
	if len(got) != 3 {
		t.Fatalf("expected 3 notices, got %d", len(got))
	}
	if got[0].Title != "n5" || got[2].Title != "n3" {
		t.Fatalf("unexpected order: %s .. %s", got[0].Title, got[2].Title)
	}
	if got[0].Severity != SeverityDefault {
		t.Fatalf("expected default severity, got %s", got[0].Severity)
	}
	if len(f.Recent(1)) != 1 {
		t.Fatal("Recent(1) should return a single notice")
	}
}

func TestFeed_ShowReturnsNotice(t *testing.T) {
	var n Board = NewFeed(0)
	got := n.Show("Not Enough Tokens", "Earn more tokens to unlock this", SeverityDestructive)
	if got.Severity != SeverityDestructive || got.At.IsZero() {
		t.Fatalf("unexpected notice: %+v", got)
	}
}
