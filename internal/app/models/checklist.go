package models

// AllCompleteTitle is the current-step title when the checklist has no
// remaining work (or no items at all).
const AllCompleteTitle = "All Complete"

// ChecklistProgressSummary is the derived view of an ordered checklist.
// CurrentStep is 1-based; an all-complete list collapses onto the last
// step. Percentage is an integer in [0, 100].
type ChecklistProgressSummary struct {
	CurrentStep      int    `json:"currentStep"`
	TotalSteps       int    `json:"totalSteps"`
	CompletedSteps   int    `json:"completedSteps"`
	CurrentStepTitle string `json:"currentStepTitle"`
	Percentage       int    `json:"percentage"`
}

// Complete reports whether every step of a non-empty checklist is done.
func (s *ChecklistProgressSummary) Complete() bool {
	return s.TotalSteps > 0 && s.CompletedSteps == s.TotalSteps
}
