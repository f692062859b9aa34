package adapthttp

import (
	"net/http"
	"strconv"
)

type entryRequest struct {
	Date     string  `json:"date"`
	Food     string  `json:"food"`
	Calories *number `json:"calories"`
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		day, err := s.dateParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, s.nutrition.Day(day))

	case http.MethodPost:
		var req entryRequest
		if err := parseJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		day, err := s.bodyDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s.nutrition.AddEntry(r.Context(), day, req.Food, req.Calories.value())
		writeJSON(w, http.StatusOK, s.nutrition.Day(day))

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
		s.nutrition.DeleteEntry(r.Context(), day, index)
		writeJSON(w, http.StatusOK, s.nutrition.Day(day))

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
