package adapthttp

import (
	"net/http"
	"strconv"

	"dailytrack/internal/domain"
)

type workoutRequest struct {
	Date    string  `json:"date"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Minutes *number `json:"minutes"`
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		day, err := s.dateParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, s.workouts.Day(day))

	case http.MethodPost:
		var req workoutRequest
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		day, err := s.bodyDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s.workouts.AddSession(r.Context(), day, req.Name, domain.WorkoutType(req.Type), req.Minutes.value())
		writeJSON(w, http.StatusOK, s.workouts.Day(day))

	case http.MethodDelete:
		day, err := s.dateParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		index, err := strconv.Atoi(r.URL.Query().Get("index"))
		if err != nil {
			writeError(w, http.StatusBadRequest, errInvalidIndex)
			return
		}
		s.workouts.DeleteSession(r.Context(), day, index)
		writeJSON(w, http.StatusOK, s.workouts.Day(day))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
