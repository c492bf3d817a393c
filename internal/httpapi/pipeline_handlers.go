package httpapi

import (
	"log"
	"net/http"

	"trialscout/internal/domain"
	"trialscout/internal/events"
)

type PipelineHandler struct {
	Deps Deps
}

func (h PipelineHandler) List(w http.ResponseWriter, r *http.Request) {
	items, skips, err := h.Deps.Aggregator().Pipeline(r.Context())
	if err != nil {
		reqID := RequestIDFrom(r.Context())
		log.Printf("level=error msg=\"registry call failed\" request_id=%s path=%s err=%v", reqID, r.URL.Path, err)
		WriteError(w, r, http.StatusInternalServerError, CodeUpstreamError, "no response from trial registry")
		return
	}
	if items == nil {
		items = []domain.PipelineItem{}
	}

	reqID := RequestIDFrom(r.Context())
	logSkips(reqID, "/api/pipeline", skips)
	if h.Deps.Hub != nil {
		h.Deps.Hub.Publish(events.MakeEvent(reqID, events.TypePipelineFetched, 1, map[string]any{"count": len(items)}))
	}
	writeJSON(w, items)
}
