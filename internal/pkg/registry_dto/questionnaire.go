package registry_dto

// QuestionnaireSubmission is one medical-eligibility questionnaire as
// persisted on the registry. Answers map question id to "yes", "no" or
// null; unanswered questions are absent or null, never a placeholder.
type QuestionnaireSubmission struct {
	ID          string             `json:"id,omitempty"`
	PatientID   string             `json:"patientId"`
	Answers     map[string]*string `json:"answers"`
	SubmittedAt string             `json:"submittedAt,omitempty"`
}

// ContraindicationFinding is one question flagged "yes".
type ContraindicationFinding struct {
	QuestionID   string `json:"questionId"`
	QuestionText string `json:"questionText"`
	Category     string `json:"category"`
}

// StatusSummary is the eligibility result. The registry computes the
// authoritative copy and may attach a pathway stage; the local rules
// engine produces the same shape (without PathwayStage) for display
// between submit and the next registry read.
type StatusSummary struct {
	HasAbsolute      bool                      `json:"hasAbsolute"`
	HasRelative      bool                      `json:"hasRelative"`
	AbsoluteFindings []ContraindicationFinding `json:"absoluteFindings"`
	RelativeFindings []ContraindicationFinding `json:"relativeFindings"`
	PathwayStage     string                    `json:"pathwayStage,omitempty"`
	ComputedAt       string                    `json:"computedAt,omitempty"`
}
