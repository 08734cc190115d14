package requests

// SubmitQuestionnaire carries the completed eligibility questionnaire.
// Each answer is "yes", "no" or null; question ids not in the static
// catalog are accepted and ignored downstream.
type SubmitQuestionnaire struct {
	Answers map[string]*string `json:"answers" validate:"required,dive,omitempty,answer"`
}
