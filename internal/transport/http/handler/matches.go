package handler

import (
	"net/http"
	"strconv"

	"github.com/uni-match-api/internal/application/match"
	"github.com/uni-match-api/internal/application/profile"
	"github.com/uni-match-api/internal/transport/http/middleware"
)

// MatchHandler serves ranked candidate pages for the authenticated user.
type MatchHandler struct {
	matches  match.Service
	profiles profile.Service
}

func NewMatchHandler(matches match.Service, profiles profile.Service) *MatchHandler {
	return &MatchHandler{matches: matches, profiles: profiles}
}

func (h *MatchHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// The credential asserts an email; the profile store binds it to an id.
	requester, err := h.profiles.GetByEmail(r.Context(), claims.Email)
	if err != nil {
		httpError(w, err)
		return
	}

	offset, limit := parsePage(r)
	page, err := h.matches.RankCandidates(r.Context(), requester.ProfileID, offset, limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func parsePage(r *http.Request) (offset, limit int) {
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = match.DefaultLimit
	}
	if limit > match.MaxLimit {
		limit = match.MaxLimit
	}
	return
}
