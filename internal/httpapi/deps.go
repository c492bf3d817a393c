package httpapi

import (
	"sync/atomic"
	"time"

	"trialscout/internal/config"
	"trialscout/internal/events"
	"trialscout/internal/leads"
	"trialscout/internal/registry"
)

type Deps struct {
	// Registry is the long-lived upstream client (possibly cache-wrapped).
	Registry registry.Searcher

	Hub *events.Hub

	// CfgVal stores config.Config and is swapped on config updates.
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (d Deps) Config() config.Config {
	return d.CfgVal.Load().(config.Config)
}

// Aggregator builds a request-scoped pipeline from the current config.
func (d Deps) Aggregator() *leads.Aggregator {
	cfg := d.Config()
	return &leads.Aggregator{
		Registry: d.Registry,
		Cfg: leads.Config{
			LeadsPageSize:    cfg.Leads.PageSize,
			MaxLeads:         cfg.Leads.MaxLeads,
			MinScore:         cfg.Leads.MinScore,
			PipelinePageSize: cfg.Pipeline.PageSize,
			HorizonDays:      cfg.Pipeline.HorizonDays,
			CompanyPageSize:  cfg.Company.PageSize,
			ExcludeTerms:     cfg.Filters.ExcludeNameTerms,
		},
		Now: d.Now,
	}
}
