package leads

import (
	"strings"

	"trialscout/internal/domain"
	"trialscout/internal/score"
)

// Shared per-record shaping: list fields join with ", ", empty fields fall
// back to "Unknown" (completion date on a lead falls back to "TBD").

func shapeLead(st domain.Study, companies []string, likelihood int) domain.Lead {
	ps := st.ProtocolSection
	return domain.Lead{
		NCTID:          orDefault(ps.Identification.NCTID, "Unknown"),
		Title:          orDefault(ps.Identification.BriefTitle, "Unknown"),
		Phase:          joinOr(ps.Design.Phases, "Unknown"),
		Status:         orDefault(ps.Status.OverallStatus, "Unknown"),
		Companies:      companies,
		DrugName:       joinOr(interventionNames(st), "Unknown"),
		Condition:      joinOr(ps.Conditions.Conditions, "Unknown"),
		CompletionDate: orDefault(ps.Status.CompletionDate.Date, "TBD"),
		FDALikelihood:  likelihood,
		Priority:       score.PriorityFor(likelihood),
	}
}

func shapeTrialInfo(st domain.Study, likelihood int) domain.TrialInfo {
	ps := st.ProtocolSection
	return domain.TrialInfo{
		NCTID:          orDefault(ps.Identification.NCTID, "Unknown"),
		Title:          orDefault(ps.Identification.BriefTitle, "Unknown"),
		Phase:          joinOr(ps.Design.Phases, "Unknown"),
		Status:         orDefault(ps.Status.OverallStatus, "Unknown"),
		DrugName:       joinOr(interventionNames(st), "Unknown"),
		Condition:      joinOr(ps.Conditions.Conditions, "Unknown"),
		StartDate:      orDefault(ps.Status.StartDate.Date, "Unknown"),
		CompletionDate: orDefault(ps.Status.CompletionDate.Date, "Unknown"),
		FDALikelihood:  likelihood,
	}
}

func interventionNames(st domain.Study) []string {
	ivs := st.ProtocolSection.ArmsInterventions.Interventions
	names := make([]string, 0, len(ivs))
	for _, iv := range ivs {
		if iv.Name != "" {
			names = append(names, iv.Name)
		}
	}
	return names
}

func joinOr(xs []string, def string) string {
	if len(xs) == 0 {
		return def
	}
	return strings.Join(xs, ", ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
