package leads

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialscout/internal/domain"
)

func exportLeads() []domain.Lead {
	return []domain.Lead{
		{
			NCTID: "NCT001", Title: "A Trial", Phase: "PHASE3", Status: "RECRUITING",
			Companies: []string{"Acme Pharma", "BioGen Labs"}, DrugName: "Drug A",
			Condition: "Asthma, COPD", CompletionDate: "2026-06-01",
			FDALikelihood: 80, Priority: "High",
		},
		{
			NCTID: "NCT002", Title: "Another Trial", Phase: "PHASE4", Status: "COMPLETED",
			Companies: []string{"MidCo"}, DrugName: "Unknown",
			Condition: "Unknown", CompletionDate: "TBD",
			FDALikelihood: 55, Priority: "Medium",
		},
	}
}

func TestRenderPipeDelimited(t *testing.T) {
	out := RenderPipeDelimited(exportLeads())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3, "one header line plus one line per lead")
	assert.Equal(t, "NCT_ID|Title|Drug|Companies|Phase|Status|Condition|Completion|FDA_Score|Priority", lines[0])
	assert.Equal(t, "NCT001|A Trial|Drug A|Acme Pharma, BioGen Labs|PHASE3|RECRUITING|Asthma, COPD|2026-06-01|80|High", lines[1])
	assert.Equal(t, "NCT002|Another Trial|Unknown|MidCo|PHASE4|COMPLETED|Unknown|TBD|55|Medium", lines[2])
}

func TestRenderPipeDelimitedEmpty(t *testing.T) {
	out := RenderPipeDelimited(nil)
	assert.Equal(t, "NCT_ID|Title|Drug|Companies|Phase|Status|Condition|Completion|FDA_Score|Priority", out)
}

func TestRenderCSV(t *testing.T) {
	b, err := RenderCSV(exportLeads())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(b))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"NCT_ID", "Title", "Drug", "Companies", "Phase", "Status", "Condition", "Completion", "FDA_Score", "Priority"}, rows[0])
	// comma-bearing fields survive the round trip intact
	assert.Equal(t, "Acme Pharma, BioGen Labs", rows[1][3])
	assert.Equal(t, "Asthma, COPD", rows[1][6])
}
