package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fifa4x4/predictor-api/internal/api/respond"
	"github.com/fifa4x4/predictor-api/internal/engine"
)

// minOdds is the lowest decimal odds accepted; 1.01 itself is valid.
const minOdds = 1.01

// looseFloat accepts a JSON number or a numeric string. The front-end
// variants send odds both ways; normalize here, at the boundary.
// ParseFloat accepts "NaN" and "Inf" spellings, which are not odds —
// only finite values unmarshal successfully.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("odds must be a finite number, got %q", s)
	}
	*f = looseFloat(v)
	return nil
}

type predictRequest struct {
	Team1 string     `json:"team1"`
	Team2 string     `json:"team2"`
	Odds1 looseFloat `json:"odds1"`
	Odds2 looseFloat `json:"odds2"`
}

type predictResponse struct {
	PredictionID string `json:"predictionId"`
	engine.Result
}

// Predict generates a match prediction for two teams and their odds.
// @Summary Predict a match outcome
// @Description Derives ranked scorelines, winner verdicts, and goal-line recommendations for half-time and full-time from two teams and their decimal odds.
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body handler.predictRequest true "Teams and decimal odds (odds accepted as number or string)"
// @Success 200 {object} handler.predictResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with team1, team2, odds1, odds2")
		return
	}

	req.Team1 = strings.TrimSpace(req.Team1)
	req.Team2 = strings.TrimSpace(req.Team2)

	if req.Team1 == "" || req.Team2 == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_TEAMS", "Both team names are required")
		return
	}
	if strings.EqualFold(req.Team1, req.Team2) {
		respond.WriteError(w, http.StatusBadRequest, "IDENTICAL_TEAMS", "Pick two different teams")
		return
	}
	if float64(req.Odds1) < minOdds || float64(req.Odds2) < minOdds {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ODDS", "Odds must be at least 1.01")
		return
	}

	result, err := h.deps.Predictor.Predict(r.Context(), req.Team1, req.Team2, float64(req.Odds1), float64(req.Odds2))
	if err != nil {
		h.deps.Logger.Error("prediction failed", "team1", req.Team1, "team2", req.Team2, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "PREDICTION_FAILED", "Could not generate a prediction for these teams")
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, predictResponse{
		PredictionID: uuid.NewString(),
		Result:       result,
	})
}
