package app

import (
	"context"
	"sync"

	"dailytrack/internal/domain"
)

// WorkoutService owns the workout journal: sessions grouped by day.
type WorkoutService struct {
	mu       sync.Mutex
	sessions *dayLog[domain.WorkoutEntry]
	status   LoadStatus
}

// NewWorkoutService loads the workout journal from kv. Missing or malformed
// data starts an empty journal.
func NewWorkoutService(ctx context.Context, kv domain.KeyValueStore) *WorkoutService {
	sessions, status := loadDayLog[domain.WorkoutEntry](ctx, kv, domain.KeyWorkouts)
	return &WorkoutService{sessions: sessions, status: status}
}

// AddSession records a workout at the front of the day. Sessions without a
// name, with an unknown type, or with negative or non-numeric minutes are
// ignored. Minutes are rounded to the nearest whole number.
func (s *WorkoutService) AddSession(ctx context.Context, day, name string, kind domain.WorkoutType, minutes float64) {
	name, ok := cleanText(name)
	if !ok || !kind.Valid() {
		return
	}
	mins, ok := roundCount(minutes)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.prepend(ctx, day, domain.WorkoutEntry{Name: name, Type: kind, Minutes: mins})
}

// DeleteSession removes the session at index within the day. Indexes outside
// the day's sessions are ignored.
func (s *WorkoutService) DeleteSession(ctx context.Context, day string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.remove(ctx, day, index)
}

// Day returns the day's sessions and minute total.
func (s *WorkoutService) Day(day string) domain.WorkoutDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.group(day)
	total := 0
	for _, w := range sessions {
		total += w.Minutes
	}
	return domain.WorkoutDay{Day: day, Sessions: sessions, TotalMinutes: total}
}

// LoadStatus reports what was found in storage at startup.
func (s *WorkoutService) LoadStatus() LoadStatus {
	return s.status
}
