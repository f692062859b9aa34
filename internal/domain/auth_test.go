package domain_test

import (
	"testing"
	"time"

	"dailytrack/internal/domain"
)

func TestSessionExpired(t *testing.T) {
	exp := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	s := domain.Session{ExpiresAt: exp}

	if s.Expired(exp.Add(-time.Second)) {
		t.Error("session should be valid before expiry")
	}
	if s.Expired(exp) {
		t.Error("session should be valid at the expiry instant")
	}
	if !s.Expired(exp.Add(time.Second)) {
		t.Error("session should be expired after expiry")
	}
}
