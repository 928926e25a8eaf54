package handler

import (
	"net/http"
	"strconv"

	"github.com/uni-match-api/internal/application/catalog"
)

// CatalogHandler serves the university catalog and configuration metadata.
type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListUniversities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	results, total, err := h.svc.ListUniversities(r.Context(), catalog.ListUniversitiesParams{
		Search:  q.Get("search"),
		Program: q.Get("program"),
		Country: q.Get("country"),
		Limit:   limit,
	})
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UniversityCatalogEnvelope{Total: total, Results: results})
}

func (h *CatalogHandler) GetConfiguration(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.GetConfiguration(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}
