package httpapi

import (
	"net/http"

	"trialscout/internal/domain"
	"trialscout/internal/registry"
)

type DebugHandler struct {
	Deps Deps
}

type DebugReport struct {
	APITest struct {
		Working bool   `json:"working"`
		Studies int    `json:"studies"`
		Error   string `json:"error,omitempty"`
	} `json:"api_test"`
	LeadsTest struct {
		Working    bool         `json:"working"`
		TotalLeads int          `json:"total_leads"`
		Skipped    int          `json:"skipped"`
		Sample     *domain.Lead `json:"sample,omitempty"`
		Error      string       `json:"error,omitempty"`
	} `json:"leads_test"`
}

// Report probes the registry with a tiny query, then runs the full leads
// aggregation, and reports both outcomes. Diagnostic only.
func (h DebugHandler) Report(w http.ResponseWriter, r *http.Request) {
	var rep DebugReport

	studies, err := h.Deps.Registry.Search(r.Context(), registry.TermLatePhase, 2)
	if err != nil {
		rep.APITest.Error = err.Error()
	} else {
		rep.APITest.Working = true
		rep.APITest.Studies = len(studies)
	}

	ls, skips, err := h.Deps.Aggregator().Leads(r.Context())
	if err != nil {
		rep.LeadsTest.Error = err.Error()
	} else {
		rep.LeadsTest.Working = true
		rep.LeadsTest.TotalLeads = len(ls)
		rep.LeadsTest.Skipped = len(skips)
		if len(ls) > 0 {
			rep.LeadsTest.Sample = &ls[0]
		}
	}

	writeJSON(w, rep)
}
