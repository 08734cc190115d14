package contracts

import (
	"context"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/registry_dto"
)

// QuestionnaireRegistryClient persists questionnaire submissions and
// reads the registry-computed status summary. Both reads return
// (nil, nil) on 404.
type QuestionnaireRegistryClient interface {
	SubmitQuestionnaire(ctx context.Context, request *registry_dto.QuestionnaireSubmission) (*registry_dto.QuestionnaireSubmission, error)
	GetQuestionnaire(ctx context.Context, patientID string) (*registry_dto.QuestionnaireSubmission, error)
	GetStatus(ctx context.Context, patientID string) (*registry_dto.StatusSummary, error)
}

type EligibilityUsecase interface {
	SubmitQuestionnaire(ctx context.Context, session *models.Session, request *requests.SubmitQuestionnaire) (*registry_dto.StatusSummary, error)
	GetStatus(ctx context.Context, session *models.Session) (*registry_dto.StatusSummary, error)
}
