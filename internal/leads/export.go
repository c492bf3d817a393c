package leads

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"trialscout/internal/domain"
)

var exportHeader = []string{
	"NCT_ID", "Title", "Drug", "Companies", "Phase",
	"Status", "Condition", "Completion", "FDA_Score", "Priority",
}

func exportRow(l domain.Lead) []string {
	return []string{
		l.NCTID,
		l.Title,
		l.DrugName,
		strings.Join(l.Companies, ", "),
		l.Phase,
		l.Status,
		l.Condition,
		l.CompletionDate,
		strconv.Itoa(l.FDALikelihood),
		l.Priority,
	}
}

// RenderPipeDelimited flattens leads into pipe-separated text: one header
// line plus one line per lead.
func RenderPipeDelimited(ls []domain.Lead) string {
	lines := make([]string, 0, len(ls)+1)
	lines = append(lines, strings.Join(exportHeader, "|"))
	for _, l := range ls {
		lines = append(lines, strings.Join(exportRow(l), "|"))
	}
	return strings.Join(lines, "\n")
}

// RenderCSV is the comma-delimited variant, with proper quoting for fields
// that contain commas (condition and company lists usually do).
func RenderCSV(ls []domain.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, l := range ls {
		if err := w.Write(exportRow(l)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
