package registry_dto

// FinancialProfile holds the financial questionnaire answers. Writes are
// full-document upserts; the registry never merges partial maps.
type FinancialProfile struct {
	ID        string             `json:"id,omitempty"`
	PatientID string             `json:"patientId"`
	Answers   map[string]*string `json:"answers"`
	UpdatedAt string             `json:"updatedAt,omitempty"`
}
