package app

import (
	"context"
	"sync"

	"dailytrack/internal/domain"
)

// NutritionService owns the food journal: entries grouped by day.
type NutritionService struct {
	mu      sync.Mutex
	entries *dayLog[domain.NutritionEntry]
	status  LoadStatus
}

// NewNutritionService loads the food journal from kv. Missing or malformed
// data starts an empty journal.
func NewNutritionService(ctx context.Context, kv domain.KeyValueStore) *NutritionService {
	entries, status := loadDayLog[domain.NutritionEntry](ctx, kv, domain.KeyEntries)
	return &NutritionService{entries: entries, status: status}
}

// AddEntry records a food item at the front of the day. Empty food names and
// calorie amounts that are negative or not numbers are ignored. Calories are
// rounded to the nearest whole number.
func (s *NutritionService) AddEntry(ctx context.Context, day, food string, calories float64) {
	food, ok := cleanText(food)
	if !ok {
		return
	}
	kcal, ok := roundCount(calories)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries.prepend(ctx, day, domain.NutritionEntry{Food: food, Calories: kcal})
}

// DeleteEntry removes the entry at index within the day. Indexes outside the
// day's entries are ignored.
func (s *NutritionService) DeleteEntry(ctx context.Context, day string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries.remove(ctx, day, index)
}

// Day returns the day's entries and calorie total.
func (s *NutritionService) Day(day string) domain.NutritionDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entries.group(day)
	total := 0
	for _, e := range entries {
		total += e.Calories
	}
	return domain.NutritionDay{Day: day, Entries: entries, TotalCalories: total}
}

// LoadStatus reports what was found in storage at startup.
func (s *NutritionService) LoadStatus() LoadStatus {
	return s.status
}
