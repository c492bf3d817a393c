package domain

// Study mirrors one study document from the ClinicalTrials.gov v2 API.
// Every field is optional upstream; absent fields decode to zero values,
// so downstream code never has to nil-check its way down the tree.
type Study struct {
	ProtocolSection ProtocolSection `json:"protocolSection"`
}

type ProtocolSection struct {
	Identification       IdentificationModule       `json:"identificationModule"`
	Status               StatusModule               `json:"statusModule"`
	Design               DesignModule               `json:"designModule"`
	Conditions           ConditionsModule           `json:"conditionsModule"`
	ArmsInterventions    ArmsInterventionsModule    `json:"armsInterventionsModule"`
	SponsorCollaborators SponsorCollaboratorsModule `json:"sponsorCollaboratorsModule"`
}

type IdentificationModule struct {
	NCTID      string `json:"nctId"`
	BriefTitle string `json:"briefTitle"`
}

type StatusModule struct {
	OverallStatus  string     `json:"overallStatus"`
	StartDate      DateStruct `json:"startDateStruct"`
	CompletionDate DateStruct `json:"completionDateStruct"`
}

// DateStruct wraps the registry's {"date": "YYYY-MM-DD"} objects.
type DateStruct struct {
	Date string `json:"date"`
}

type DesignModule struct {
	Phases []string `json:"phases"`
}

type ConditionsModule struct {
	Conditions []string `json:"conditions"`
}

type ArmsInterventionsModule struct {
	Interventions []Intervention `json:"interventions"`
}

type Intervention struct {
	Name string `json:"name"`
}

type SponsorCollaboratorsModule struct {
	LeadSponsor   Sponsor   `json:"leadSponsor"`
	Collaborators []Sponsor `json:"collaborators"`
}

type Sponsor struct {
	Name string `json:"name"`
}
