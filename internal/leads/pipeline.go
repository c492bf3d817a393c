package leads

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"trialscout/internal/domain"
	"trialscout/internal/registry"
	"trialscout/internal/score"
)

// ErrNoData means the registry answered but had nothing matching the query.
var ErrNoData = errors.New("no data available")

type Config struct {
	LeadsPageSize    int // studies requested for the leads query
	MaxLeads         int // collection stops once this many leads are kept
	MinScore         int // keep a lead only if its score is strictly above this
	PipelinePageSize int
	HorizonDays      int // pipeline analysis window
	CompanyPageSize  int
	ExcludeTerms     []string // sponsor-name substrings treated as academic
}

func DefaultConfig() Config {
	return Config{
		LeadsPageSize:    200,
		MaxLeads:         50,
		MinScore:         30,
		PipelinePageSize: 100,
		HorizonDays:      180,
		CompanyPageSize:  50,
		ExcludeTerms:     score.DefaultExcludeTerms,
	}
}

// Skip records one study dropped during aggregation, and why. Dropped
// studies never abort the run; they are reported alongside the results.
type Skip struct {
	Index  int    `json:"index"`
	NCTID  string `json:"nct_id,omitempty"`
	Reason string `json:"reason"`
}

// Aggregator runs the per-endpoint fetch/score/filter/shape pipelines.
type Aggregator struct {
	Registry registry.Searcher
	Cfg      Config
	Now      func() time.Time // nil means time.Now
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// Leads fetches late-phase trials and returns the scored, ranked lead list:
// at most MaxLeads entries, each with at least one company and a score above
// MinScore, sorted by score descending. The sort is stable, so ties keep
// the registry's order (which is arbitrary, not meaningful).
func (a *Aggregator) Leads(ctx context.Context) ([]domain.Lead, []Skip, error) {
	studies, err := a.Registry.Search(ctx, registry.TermLatePhase, a.Cfg.LeadsPageSize)
	if err != nil {
		return nil, nil, err
	}
	if len(studies) == 0 {
		return nil, nil, ErrNoData
	}

	now := a.now()
	var out []domain.Lead
	var skips []Skip
	for i, st := range studies {
		likelihood := score.ApprovalLikelihood(st, now)
		companies := score.ExtractCompanies(st, a.Cfg.ExcludeTerms)

		switch {
		case len(companies) == 0:
			skips = append(skips, skip(i, st, "no company sponsor"))
		case likelihood <= a.Cfg.MinScore:
			skips = append(skips, skip(i, st, fmt.Sprintf("score %d not above %d", likelihood, a.Cfg.MinScore)))
		default:
			out = append(out, shapeLead(st, companies, likelihood))
		}
		if len(out) >= a.Cfg.MaxLeads {
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FDALikelihood > out[j].FDALikelihood
	})
	return out, skips, nil
}

// CompanyDetail fetches every trial led by the named sponsor. No score
// filter and no cap beyond the query's page size. ErrNoData when the
// registry has nothing for that sponsor.
func (a *Aggregator) CompanyDetail(ctx context.Context, company string) ([]domain.TrialInfo, error) {
	studies, err := a.Registry.Search(ctx, registry.SponsorTerm(company), a.Cfg.CompanyPageSize)
	if err != nil {
		return nil, err
	}
	if len(studies) == 0 {
		return nil, ErrNoData
	}

	now := a.now()
	out := make([]domain.TrialInfo, 0, len(studies))
	for _, st := range studies {
		out = append(out, shapeTrialInfo(st, score.ApprovalLikelihood(st, now)))
	}
	return out, nil
}

// Pipeline returns late-phase trials completing within the horizon that have
// at least one company sponsor.
func (a *Aggregator) Pipeline(ctx context.Context) ([]domain.PipelineItem, []Skip, error) {
	studies, err := a.Registry.Search(ctx, registry.TermLatePhase, a.Cfg.PipelinePageSize)
	if err != nil {
		return nil, nil, err
	}

	now := a.now()
	var out []domain.PipelineItem
	var skips []Skip
	for i, st := range studies {
		days, ok := score.DaysUntilCompletion(st, now)
		if !ok {
			skips = append(skips, skip(i, st, "no parsable completion date"))
			continue
		}
		if days > a.Cfg.HorizonDays {
			skips = append(skips, skip(i, st, fmt.Sprintf("completion %d days out, beyond %d-day horizon", days, a.Cfg.HorizonDays)))
			continue
		}
		companies := score.ExtractCompanies(st, a.Cfg.ExcludeTerms)
		if len(companies) == 0 {
			skips = append(skips, skip(i, st, "no company sponsor"))
			continue
		}

		ps := st.ProtocolSection
		out = append(out, domain.PipelineItem{
			Companies:      companies,
			DrugName:       joinOr(interventionNames(st), "Unknown"),
			Phase:          joinOr(ps.Design.Phases, "Unknown"),
			CompletionDate: ps.Status.CompletionDate.Date,
			Condition:      joinOr(ps.Conditions.Conditions, "Unknown"),
			Urgency:        "High",
			FDALikelihood:  score.ApprovalLikelihood(st, now),
		})
	}
	return out, skips, nil
}

func skip(i int, st domain.Study, reason string) Skip {
	return Skip{Index: i, NCTID: st.ProtocolSection.Identification.NCTID, Reason: reason}
}
