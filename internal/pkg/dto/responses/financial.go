package responses

// FinancialProfileView is the financial questionnaire screen payload.
// Loaded reports whether a pre-existing profile came back from the
// registry; on a first-time flow the lookup is skipped entirely.
type FinancialProfileView struct {
	Answers map[string]*string `json:"answers"`
	Loaded  bool               `json:"loaded"`
}
