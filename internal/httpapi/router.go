package httpapi

import "net/http"

// NewMux wires every route. main() chains middleware around the result.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	dh := DashboardHandler{}
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Index,
	}))

	lh := LeadsHandler{Deps: d}
	mux.HandleFunc("/api/leads", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.List,
	}))
	mux.HandleFunc("/api/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.Export,
	}))

	ch := CompanyHandler{Deps: d}
	mux.HandleFunc("/api/company/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.DetailByPath, // expects /api/company/{name}
	}))

	ph := PipelineHandler{Deps: d}
	mux.HandleFunc("/api/pipeline", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.List,
	}))

	dbg := DebugHandler{Deps: d}
	mux.HandleFunc("/api/debug", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dbg.Report,
	}))

	cfgh := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfgh.Get,
		http.MethodPut: cfgh.Put,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
