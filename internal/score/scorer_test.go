package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trialscout/internal/domain"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func study(phases []string, status, completion string) domain.Study {
	var s domain.Study
	s.ProtocolSection.Design.Phases = phases
	s.ProtocolSection.Status.OverallStatus = status
	s.ProtocolSection.Status.CompletionDate.Date = completion
	return s
}

func TestApprovalLikelihood(t *testing.T) {
	tests := []struct {
		name       string
		phases     []string
		status     string
		completion string
		want       int
	}{
		{"empty study scores zero", nil, "", "", 0},
		{"phase3 only", []string{"PHASE3"}, "", "", 40},
		{"phase2 only", []string{"PHASE2"}, "", "", 20},
		{"phase4 only", []string{"PHASE4"}, "", "", 50},
		// joined phase list is matched in order PHASE3, PHASE2, PHASE4
		{"phase2 and phase3 counts as phase3", []string{"PHASE2", "PHASE3"}, "", "", 40},
		{"phase3 and phase4 counts as phase3", []string{"PHASE3", "PHASE4"}, "", "", 40},
		{"completed", nil, "COMPLETED", "", 30},
		{"active not recruiting", nil, "ACTIVE_NOT_RECRUITING", "", 25},
		{"recruiting", nil, "RECRUITING", "", 15},
		{"unknown status ignored", nil, "TERMINATED", "", 0},
		{"completion within 180 days", nil, "", "2026-06-01", 35},
		{"completion within 365 days", nil, "", "2026-12-01", 25},
		{"completion beyond a year", nil, "", "2028-01-01", 0},
		{"completion in the past counts as near", nil, "", "2025-01-01", 35},
		{"unparsable date ignored", nil, "", "June 2026", 0},
		{"phase4 completed near-term caps at 100", []string{"PHASE4"}, "COMPLETED", "2026-04-01", 100},
		{"phase3 recruiting mid-term", []string{"PHASE3"}, "RECRUITING", "2026-12-01", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApprovalLikelihood(study(tt.phases, tt.status, tt.completion), now)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestExtractCompanies(t *testing.T) {
	var s domain.Study
	s.ProtocolSection.SponsorCollaborators.LeadSponsor.Name = "Acme Pharma"
	s.ProtocolSection.SponsorCollaborators.Collaborators = []domain.Sponsor{
		{Name: "Stanford University"},
		{Name: "Acme Pharma"},
		{Name: "Mass General Hospital"},
		{Name: "BioGen Labs"},
		{Name: ""},
	}

	got := ExtractCompanies(s, DefaultExcludeTerms)
	assert.Equal(t, []string{"Acme Pharma", "BioGen Labs"}, got)

	for _, name := range got {
		assert.NotContains(t, name, "University")
		assert.NotContains(t, name, "Hospital")
	}
}

func TestExtractCompaniesAcademicLeadSponsor(t *testing.T) {
	var s domain.Study
	s.ProtocolSection.SponsorCollaborators.LeadSponsor.Name = "University of Utrecht"

	assert.Empty(t, ExtractCompanies(s, DefaultExcludeTerms))
	// exclusion is case-sensitive by design
	s.ProtocolSection.SponsorCollaborators.LeadSponsor.Name = "university of utrecht"
	assert.Len(t, ExtractCompanies(s, DefaultExcludeTerms), 1)
}

func TestPriorityFor(t *testing.T) {
	assert.Equal(t, PriorityLow, PriorityFor(0))
	assert.Equal(t, PriorityLow, PriorityFor(50))
	assert.Equal(t, PriorityMedium, PriorityFor(51))
	assert.Equal(t, PriorityMedium, PriorityFor(70))
	assert.Equal(t, PriorityHigh, PriorityFor(71))
	assert.Equal(t, PriorityHigh, PriorityFor(100))
}

func TestDaysUntilCompletion(t *testing.T) {
	s := study(nil, "", "2026-06-01")
	days, ok := DaysUntilCompletion(s, now)
	assert.True(t, ok)
	assert.Equal(t, 91, days)

	_, ok = DaysUntilCompletion(study(nil, "", ""), now)
	assert.False(t, ok)
	_, ok = DaysUntilCompletion(study(nil, "", "not-a-date"), now)
	assert.False(t, ok)
}
