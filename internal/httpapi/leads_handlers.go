package httpapi

import (
	"errors"
	"log"
	"net/http"

	"trialscout/internal/domain"
	"trialscout/internal/events"
	"trialscout/internal/leads"
)

type LeadsHandler struct {
	Deps Deps
}

func (h LeadsHandler) List(w http.ResponseWriter, r *http.Request) {
	ls, skips, err := h.Deps.Aggregator().Leads(r.Context())
	if err != nil {
		writeLeadsError(w, r, err)
		return
	}
	if ls == nil {
		ls = []domain.Lead{}
	}

	reqID := RequestIDFrom(r.Context())
	logSkips(reqID, "/api/leads", skips)
	if h.Deps.Hub != nil {
		h.Deps.Hub.Publish(events.MakeEvent(reqID, events.TypeLeadsFetched, 1, map[string]any{"count": len(ls)}))
	}
	writeJSON(w, ls)
}

// Export re-runs the leads aggregation and flattens it into a downloadable
// attachment. Pipe-delimited text by default; ?format=csv for CSV.
func (h LeadsHandler) Export(w http.ResponseWriter, r *http.Request) {
	ls, skips, err := h.Deps.Aggregator().Leads(r.Context())
	if err != nil {
		writeLeadsError(w, r, err)
		return
	}
	logSkips(RequestIDFrom(r.Context()), "/api/export", skips)

	if r.URL.Query().Get("format") == "csv" {
		b, err := leads.RenderCSV(ls)
		if err != nil {
			WriteError(w, r, http.StatusInternalServerError, CodeInternal, "could not render export")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename=leads.csv`)
		_, _ = w.Write(b)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", `attachment; filename=leads.txt`)
	_, _ = w.Write([]byte(leads.RenderPipeDelimited(ls)))
}

func writeLeadsError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := RequestIDFrom(r.Context())
	if errors.Is(err, leads.ErrNoData) {
		log.Printf("level=error msg=\"no studies found\" request_id=%s path=%s", reqID, r.URL.Path)
		WriteError(w, r, http.StatusInternalServerError, CodeNoData, "no studies found")
		return
	}
	log.Printf("level=error msg=\"registry call failed\" request_id=%s path=%s err=%v", reqID, r.URL.Path, err)
	WriteError(w, r, http.StatusInternalServerError, CodeUpstreamError, "no response from trial registry")
}

func logSkips(reqID, path string, skips []leads.Skip) {
	for _, s := range skips {
		log.Printf("level=info msg=\"record skipped\" request_id=%s path=%s index=%d nct_id=%s reason=%q",
			reqID, path, s.Index, s.NCTID, s.Reason)
	}
}
