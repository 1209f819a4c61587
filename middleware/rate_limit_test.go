package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsFreshIP(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, time.Minute)

	allowed, remaining, _ := rl.Check("1.2.3.4")
	if !allowed || remaining != 3 {
		t.Errorf("fresh IP: allowed=%v remaining=%d", allowed, remaining)
	}
}

func TestRateLimiterLocksAfterMaxFailures(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, time.Minute)
	ip := "1.2.3.4"

	for i := 0; i < 3; i++ {
		rl.RecordAttempt(ip, false)
	}

	allowed, remaining, lock := rl.Check(ip)
	if allowed {
		t.Error("IP should be locked after max failed attempts")
	}
	if remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
	if lock <= 0 {
		t.Errorf("lock duration = %v, want > 0", lock)
	}
}

func TestRateLimiterResetsOnSuccess(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute, time.Minute)
	ip := "1.2.3.4"

	rl.RecordAttempt(ip, false)
	rl.RecordAttempt(ip, false)
	rl.RecordAttempt(ip, true)

	allowed, remaining, _ := rl.Check(ip)
	if !allowed || remaining != 3 {
		t.Errorf("after success: allowed=%v remaining=%d", allowed, remaining)
	}
}

func TestRateLimiterTracksIPsIndependently(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute, time.Minute)

	rl.RecordAttempt("1.1.1.1", false)
	rl.RecordAttempt("1.1.1.1", false)

	if allowed, _, _ := rl.Check("1.1.1.1"); allowed {
		t.Error("1.1.1.1 should be locked")
	}
	if allowed, _, _ := rl.Check("2.2.2.2"); !allowed {
		t.Error("2.2.2.2 should be unaffected")
	}
}
