package eligibility

import (
	"navigator-service/internal/pkg/registry_dto"
	"time"
)

const answerYes = "yes"

// ComputeStatus classifies a questionnaire's answers against the
// catalog. Findings keep catalog order, never answer order. Answers for
// ids outside the catalog are ignored; a missing, null or malformed
// answer counts as not-yes. Pure: no side effects, no error paths.
func ComputeStatus(catalog []QuestionDefinition, answers map[string]*string) *registry_dto.StatusSummary {
	summary := &registry_dto.StatusSummary{
		AbsoluteFindings: []registry_dto.ContraindicationFinding{},
		RelativeFindings: []registry_dto.ContraindicationFinding{},
		ComputedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	for _, question := range catalog {
		answer, ok := answers[question.ID]
		if !ok || answer == nil || *answer != answerYes {
			continue
		}

		finding := registry_dto.ContraindicationFinding{
			QuestionID:   question.ID,
			QuestionText: question.Text,
			Category:     string(question.Category),
		}
		switch question.Category {
		case CategoryAbsolute:
			summary.AbsoluteFindings = append(summary.AbsoluteFindings, finding)
		case CategoryRelative:
			summary.RelativeFindings = append(summary.RelativeFindings, finding)
		}
	}

	summary.HasAbsolute = len(summary.AbsoluteFindings) > 0
	summary.HasRelative = len(summary.RelativeFindings) > 0
	return summary
}
