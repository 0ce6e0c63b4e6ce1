package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fifa4x4/predictor-api/internal/api/respond"
	"github.com/fifa4x4/predictor-api/internal/cache"
	"github.com/fifa4x4/predictor-api/internal/teams"
)

// GetTeams returns the selectable team list.
// @Summary List teams
// @Description Returns all team names. Served from Postgres when configured, otherwise from the built-in list.
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	const cacheKey = "teams:list"

	if data, etag, ok := h.deps.Cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLTeams, true)
		return
	}

	list, err := h.deps.Store.List(r.Context())
	if err != nil {
		if !errors.Is(err, teams.ErrNoStore) {
			h.deps.Logger.Warn("team store unavailable, serving built-in list", "error", err)
		}
		list = teams.Builtin()
	}
	if len(list) == 0 {
		list = teams.Builtin()
	}

	payload, err := json.Marshal(map[string]interface{}{"teams": teams.Names(list)})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED", "Could not encode team list")
		return
	}

	etag := h.deps.Cache.Set(cacheKey, payload, cache.TTLTeams)
	respond.WriteJSON(w, payload, etag, cache.TTLTeams, false)
}
