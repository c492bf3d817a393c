package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes list fields, then checks the config
// for values that would break a request or hammer the registry.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			if seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Filters.ExcludeNameTerms = trimList(out.Filters.ExcludeNameTerms)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if strings.TrimSpace(out.Registry.BaseURL) == "" {
		res.addErr("registry.base_url is required")
	} else if u, err := url.Parse(out.Registry.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("registry.base_url must be an absolute URL")
	}
	if out.Registry.TimeoutSeconds <= 0 {
		res.addErr("registry.timeout_seconds must be > 0")
	}
	if out.Registry.ReqPerSec <= 0 {
		res.addErr("registry.req_per_sec must be > 0")
	} else if out.Registry.ReqPerSec > 10 {
		res.addWarn("registry.req_per_sec is high (%.1f); the registry may throttle you.", out.Registry.ReqPerSec)
	}
	if out.Registry.Burst <= 0 {
		res.addErr("registry.burst must be > 0")
	}

	if out.Leads.PageSize <= 0 {
		res.addErr("leads.page_size must be > 0")
	}
	if out.Leads.MaxLeads <= 0 {
		res.addErr("leads.max_leads must be > 0")
	}
	if out.Leads.MinScore < 0 || out.Leads.MinScore > 100 {
		res.addErr("leads.min_score must be 0..100")
	}
	if out.Leads.MaxLeads > out.Leads.PageSize {
		res.addWarn("leads.max_leads (%d) exceeds leads.page_size (%d); the cap can never be reached.", out.Leads.MaxLeads, out.Leads.PageSize)
	}

	if out.Pipeline.PageSize <= 0 {
		res.addErr("pipeline.page_size must be > 0")
	}
	if out.Pipeline.HorizonDays <= 0 {
		res.addErr("pipeline.horizon_days must be > 0")
	}

	if out.Company.PageSize <= 0 {
		res.addErr("company.page_size must be > 0")
	}

	if len(out.Filters.ExcludeNameTerms) == 0 {
		res.addWarn("filters.exclude_name_terms is empty; academic sponsors will show up as companies.")
	}

	if out.Cache.Enabled && out.Cache.TTLMinutes <= 0 {
		res.addErr("cache.ttl_minutes must be > 0 when cache.enabled=true")
	}

	return out, res
}
