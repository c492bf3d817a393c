package score

import (
	"strings"
	"time"

	"trialscout/internal/domain"
)

// Component weights for the approval-likelihood score. Phase weights are
// mutually exclusive (first substring match on the joined phase list wins);
// status and timeline stack on top, capped at 100.
const (
	phase3Weight = 40
	phase2Weight = 20
	phase4Weight = 50

	completedWeight  = 30
	activeNotWeight  = 25
	recruitingWeight = 15

	within180Weight = 35
	within365Weight = 25

	maxScore = 100
)

const dateLayout = "2006-01-02"

// Priority buckets derived from the likelihood score.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// DefaultExcludeTerms filters out academic sponsors by name substring.
var DefaultExcludeTerms = []string{"University", "Hospital"}

// ApprovalLikelihood scores a trial's likelihood of near-term approval on a
// 0..100 scale from its phase, overall status, and completion timeline.
func ApprovalLikelihood(s domain.Study, now time.Time) int {
	score := 0

	phase := strings.Join(s.ProtocolSection.Design.Phases, ", ")
	switch {
	case strings.Contains(phase, "PHASE3"):
		score += phase3Weight
	case strings.Contains(phase, "PHASE2"):
		score += phase2Weight
	case strings.Contains(phase, "PHASE4"):
		// already marketed, highest single contribution
		score += phase4Weight
	}

	switch s.ProtocolSection.Status.OverallStatus {
	case "COMPLETED":
		score += completedWeight
	case "ACTIVE_NOT_RECRUITING":
		score += activeNotWeight
	case "RECRUITING":
		score += recruitingWeight
	}

	score += timelineComponent(s.ProtocolSection.Status.CompletionDate.Date, now)

	if score > maxScore {
		score = maxScore
	}
	return score
}

// timelineComponent rewards trials completing soon. Absent or unparsable
// dates contribute nothing; past dates count as within the near window.
func timelineComponent(date string, now time.Time) int {
	if date == "" {
		return 0
	}
	comp, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0
	}
	days := int(comp.Sub(now).Hours() / 24)
	switch {
	case days <= 180:
		return within180Weight
	case days <= 365:
		return within365Weight
	}
	return 0
}

// DaysUntilCompletion reports the whole days from now until the study's
// completion date. ok is false when the date is absent or unparsable.
func DaysUntilCompletion(s domain.Study, now time.Time) (days int, ok bool) {
	date := s.ProtocolSection.Status.CompletionDate.Date
	if date == "" {
		return 0, false
	}
	comp, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, false
	}
	return int(comp.Sub(now).Hours() / 24), true
}

// ExtractCompanies returns the trial's lead sponsor plus collaborators,
// dropping any name containing one of the exclude terms (case-sensitive
// substring match) and deduplicating. Order is first-seen and not meaningful.
func ExtractCompanies(s domain.Study, excludeTerms []string) []string {
	sc := s.ProtocolSection.SponsorCollaborators

	var out []string
	seen := map[string]bool{}
	add := func(name string) {
		if name == "" || seen[name] || excluded(name, excludeTerms) {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	add(sc.LeadSponsor.Name)
	for _, c := range sc.Collaborators {
		add(c.Name)
	}
	return out
}

func excluded(name string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

// PriorityFor maps a likelihood score to its priority bucket.
func PriorityFor(likelihood int) string {
	switch {
	case likelihood > 70:
		return PriorityHigh
	case likelihood > 50:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
