package models

// Outcomes of one imported roster line
const (
	ImportCreated = "criado"
	ImportFailed  = "falhou"
)

// RosterImportLine reports what happened to one spreadsheet row
type RosterImportLine struct {
	Linha           int    `json:"linha" example:"2"`
	Login           string `json:"login" example:"julia@empresa.com"`
	Status          string `json:"status" example:"criado"`
	Erro            string `json:"erro,omitempty"`
	SenhaTemporaria string `json:"senha_temporaria,omitempty"`
}

// RosterImportResult summarises a spreadsheet import
type RosterImportResult struct {
	Created int                `json:"created"`
	Failed  int                `json:"failed"`
	Lines   []RosterImportLine `json:"lines"`
}
