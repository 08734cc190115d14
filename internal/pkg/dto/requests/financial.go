package requests

// FinancialDraft is one in-progress snapshot of the financial
// questionnaire. Every draft update replaces the whole cached answer map.
type FinancialDraft struct {
	Answers map[string]*string `json:"answers" validate:"required"`
}

// SubmitFinancial finalizes the financial questionnaire. When Answers is
// omitted the current cached draft is submitted as-is.
type SubmitFinancial struct {
	Answers map[string]*string `json:"answers,omitempty"`
}
