package app

import "dailytrack/internal/domain"

// SummaryService combines the journals and the body profile into one
// per-day view.
type SummaryService struct {
	nutrition *NutritionService
	workouts  *WorkoutService
	profile   *ProfileService
}

// NewSummaryService creates a SummaryService over the given services.
func NewSummaryService(n *NutritionService, w *WorkoutService, p *ProfileService) *SummaryService {
	return &SummaryService{nutrition: n, workouts: w, profile: p}
}

// DailySummary is the derived statistics for one day.
type DailySummary struct {
	Day           string           `json:"day"`
	TotalCalories int              `json:"totalCalories"`
	EntryCount    int              `json:"entryCount"`
	TotalMinutes  int              `json:"totalMinutes"`
	WorkoutCount  int              `json:"workoutCount"`
	BMI           domain.BMIResult `json:"bmi"`
}

// Summary returns the calorie and workout totals for day together with the
// current BMI reading.
func (s *SummaryService) Summary(day string) DailySummary {
	n := s.nutrition.Day(day)
	w := s.workouts.Day(day)
	return DailySummary{
		Day:           day,
		TotalCalories: n.TotalCalories,
		EntryCount:    len(n.Entries),
		TotalMinutes:  w.TotalMinutes,
		WorkoutCount:  len(w.Sessions),
		BMI:           s.profile.BMI(),
	}
}
