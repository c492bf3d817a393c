package domain

// Lead is one scored, company-attributable trial surfaced as a BD prospect.
// Built per request and discarded after serialization; never persisted.
type Lead struct {
	NCTID          string   `json:"nct_id"`
	Title          string   `json:"title"`
	Phase          string   `json:"phase"`
	Status         string   `json:"status"`
	Companies      []string `json:"companies"`
	DrugName       string   `json:"drug_name"`
	Condition      string   `json:"condition"`
	CompletionDate string   `json:"completion_date"`
	FDALikelihood  int      `json:"fda_likelihood"`
	Priority       string   `json:"priority"`
}

// TrialInfo is the per-trial row in a company detail response.
type TrialInfo struct {
	NCTID          string `json:"nct_id"`
	Title          string `json:"title"`
	Phase          string `json:"phase"`
	Status         string `json:"status"`
	DrugName       string `json:"drug_name"`
	Condition      string `json:"condition"`
	StartDate      string `json:"start_date"`
	CompletionDate string `json:"completion_date"`
	FDALikelihood  int    `json:"fda_likelihood"`
}

// PipelineItem is one near-term trial in the pipeline analysis.
// Urgency is always "High": the filter already restricts to the 180-day
// horizon, so the field carries no information. Kept for response
// compatibility rather than graded, since any scale here would be invented.
type PipelineItem struct {
	Companies      []string `json:"companies"`
	DrugName       string   `json:"drug_name"`
	Phase          string   `json:"phase"`
	CompletionDate string   `json:"completion_date"`
	Condition      string   `json:"condition"`
	Urgency        string   `json:"urgency"`
	FDALikelihood  int      `json:"fda_likelihood"`
}
