package adapthttp

import (
	"net/http"

	"dailytrack/internal/domain"
)

type profileRequest struct {
	Weight     *number `json:"weight"`
	WeightUnit string  `json:"weightUnit"`
	Height     *number `json:"height"`
	HeightUnit string  `json:"heightUnit"`
}

type bmiResponse struct {
	domain.BMIResult
	Display string `json:"display"`
}

func newBMIResponse(r domain.BMIResult) bmiResponse {
	return bmiResponse{BMIResult: r, Display: r.Display()}
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p := s.profile.Profile()
		writeJSON(w, http.StatusOK, map[string]any{
			"profile": p,
			"bmi":     newBMIResponse(p.BMI()),
		})

	case http.MethodPut:
		var req profileRequest
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p := s.profile.SaveProfile(r.Context(), domain.BodyProfile{
			Weight:     req.Weight.value(),
			WeightUnit: domain.WeightUnit(req.WeightUnit),
			Height:     req.Height.value(),
			HeightUnit: domain.HeightUnit(req.HeightUnit),
		})
		writeJSON(w, http.StatusOK, map[string]any{
			"profile": p,
			"bmi":     newBMIResponse(p.BMI()),
		})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleBMI computes a reading from query parameters without touching the
// stored profile.
func (s *Server) handleBMI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	res := domain.CalculateBMI(
		domain.ParseNumber(q.Get("weight")), domain.WeightUnit(q.Get("weightUnit")),
		domain.ParseNumber(q.Get("height")), domain.HeightUnit(q.Get("heightUnit")),
	)
	writeJSON(w, http.StatusOK, newBMIResponse(res))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	day, err := s.dateParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.summary.Summary(day))
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sso_enabled":  s.oidcConfig.Enabled,
		"units":        s.profile.Units(),
		"workoutTypes": domain.WorkoutTypes,
	})
}
