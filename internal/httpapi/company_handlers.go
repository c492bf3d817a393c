package httpapi

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"trialscout/internal/domain"
	"trialscout/internal/leads"
)

type CompanyHandler struct {
	Deps Deps
}

type CompanyDetail struct {
	Company     string             `json:"company"`
	TotalTrials int                `json:"total_trials"`
	Trials      []domain.TrialInfo `json:"trials"`
}

// DetailByPath expects /api/company/{name}.
func (h CompanyHandler) DetailByPath(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/company/")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" {
		WriteError(w, r, http.StatusBadRequest, CodeInvalidRequest, "company name is required")
		return
	}

	trials, err := h.Deps.Aggregator().CompanyDetail(r.Context(), name)
	if errors.Is(err, leads.ErrNoData) {
		WriteError(w, r, http.StatusNotFound, CodeNoData, "no data available")
		return
	}
	if err != nil {
		reqID := RequestIDFrom(r.Context())
		log.Printf("level=error msg=\"registry call failed\" request_id=%s path=%s err=%v", reqID, r.URL.Path, err)
		WriteError(w, r, http.StatusInternalServerError, CodeUpstreamError, "no response from trial registry")
		return
	}

	writeJSON(w, CompanyDetail{
		Company:     name,
		TotalTrials: len(trials),
		Trials:      trials,
	})
}
