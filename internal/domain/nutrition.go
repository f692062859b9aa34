package domain

import "encoding/json"

// NutritionEntry is one food item logged on a day.
type NutritionEntry struct {
	Food     string `json:"food"`
	Calories int    `json:"calories"`
}

// NutritionDay is the entries of one day, most recent first, with their
// calorie total.
type NutritionDay struct {
	Day           string           `json:"day"`
	Entries       []NutritionEntry `json:"entries"`
	TotalCalories int              `json:"totalCalories"`
}

// UnmarshalJSON accepts any JSON number for Calories, so stored values such
// as 120.0 or 120.4 load as whole calories instead of failing the document.
func (e *NutritionEntry) UnmarshalJSON(b []byte) error {
	var raw struct {
		Food     string  `json:"food"`
		Calories float64 `json:"calories"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = NutritionEntry{Food: raw.Food, Calories: storedCount(raw.Calories)}
	return nil
}
