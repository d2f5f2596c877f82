package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterWindow(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(3, time.Hour)
	rl.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("submission %d should be allowed", i+1)
		}
		rl.Record("1.2.3.4")
	}

	if rl.Allow("1.2.3.4") {
		t.Fatal("4th submission within the hour should be rejected")
	}

	// Another source is unaffected.
	if !rl.Allow("5.6.7.8") {
		t.Fatal("different source should be allowed")
	}

	// After the window elapses the same source may submit again.
	current = current.Add(time.Hour + time.Minute)
	if !rl.Allow("1.2.3.4") {
		t.Fatal("submission after the window should be allowed")
	}
}

func TestRateLimiterAllowDoesNotConsume(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("Allow alone must not consume budget")
	}
	rl.Record("a")
	if rl.Allow("a") {
		t.Fatal("budget should be spent after Record")
	}
}
