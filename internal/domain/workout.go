package domain

import "encoding/json"

// WorkoutType classifies a workout session.
type WorkoutType string

const (
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutStrength    WorkoutType = "strength"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutSports      WorkoutType = "sports"
	WorkoutOther       WorkoutType = "other"
)

// WorkoutTypes lists every accepted workout type.
var WorkoutTypes = []WorkoutType{WorkoutCardio, WorkoutStrength, WorkoutFlexibility, WorkoutSports, WorkoutOther}

// Valid reports whether t is one of WorkoutTypes.
func (t WorkoutType) Valid() bool {
	for _, w := range WorkoutTypes {
		if t == w {
			return true
		}
	}
	return false
}

// WorkoutEntry is one workout session logged on a day.
type WorkoutEntry struct {
	Name    string      `json:"name"`
	Type    WorkoutType `json:"type"`
	Minutes int         `json:"minutes"`
}

// WorkoutDay is the sessions of one day, most recent first, with their
// minute total.
type WorkoutDay struct {
	Day          string         `json:"day"`
	Sessions     []WorkoutEntry `json:"sessions"`
	TotalMinutes int            `json:"totalMinutes"`
}

// UnmarshalJSON accepts any JSON number for Minutes, rounding it to whole
// minutes.
func (e *WorkoutEntry) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name    string      `json:"name"`
		Type    WorkoutType `json:"type"`
		Minutes float64     `json:"minutes"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = WorkoutEntry{Name: raw.Name, Type: raw.Type, Minutes: storedCount(raw.Minutes)}
	return nil
}
