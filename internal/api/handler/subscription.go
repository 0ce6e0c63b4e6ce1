package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/fifa4x4/predictor-api/internal/api/respond"
)

// looseID accepts a JSON number or string Telegram user ID.
type looseID int64

func (id *looseID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*id = looseID(v)
	return nil
}

type subscriptionRequest struct {
	UserID   looseID `json:"user_id"`
	Username string  `json:"username"`
}

// CheckSubscription reports whether a Telegram user follows the channel.
// @Summary Check channel subscription
// @Description Checks Telegram channel membership for a user. Upstream failures grant access (fail-open) so the user flow is never blocked by an outage.
// @Tags subscription
// @Accept json
// @Produce json
// @Param request body handler.subscriptionRequest true "Telegram user"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} respond.ErrorResponse
// @Router /check-subscription [post]
func (h *Handler) CheckSubscription(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with user_id and username")
		return
	}
	if req.UserID == 0 {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_USER_ID", "user_id is required")
		return
	}

	subscribed := h.deps.Checker.IsSubscribed(r.Context(), int64(req.UserID), req.Username)
	respond.WriteJSONObject(w, http.StatusOK, map[string]bool{"isSubscribed": subscribed})
}
