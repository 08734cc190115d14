package eligibility

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/registry_dto"

	"go.uber.org/zap"
)

type eligibilityUsecase struct {
	Log                 *zap.Logger
	QuestionnaireClient contracts.QuestionnaireRegistryClient
	NavigationUsecase   contracts.NavigationUsecase
}

func NewEligibilityUsecase(
	logger *zap.Logger,
	questionnaireClient contracts.QuestionnaireRegistryClient,
	navigationUsecase contracts.NavigationUsecase,
) contracts.EligibilityUsecase {
	return &eligibilityUsecase{
		Log:                 logger,
		QuestionnaireClient: questionnaireClient,
		NavigationUsecase:   navigationUsecase,
	}
}

// SubmitQuestionnaire persists the answers, computes a local status
// summary for immediate display, and moves navigation into the
// financial flow. The registry recomputes the authoritative summary on
// its side; the local one bridges the gap until the next status read.
func (uc *eligibilityUsecase) SubmitQuestionnaire(ctx context.Context, session *models.Session, request *requests.SubmitQuestionnaire) (*registry_dto.StatusSummary, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	submission := &registry_dto.QuestionnaireSubmission{
		PatientID: session.PatientID,
		Answers:   request.Answers,
	}
	_, err := uc.QuestionnaireClient.SubmitQuestionnaire(ctx, submission)
	if err != nil {
		return nil, err
	}

	summary := ComputeStatus(Catalog, request.Answers)

	err = uc.NavigationUsecase.CompleteEligibility(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("eligibilityUsecase.SubmitQuestionnaire completed",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
		zap.Bool("has_absolute", summary.HasAbsolute),
		zap.Bool("has_relative", summary.HasRelative),
	)
	return summary, nil
}

// GetStatus prefers the registry-computed summary and falls back to a
// local recompute from the stored submission when the registry has not
// produced one yet.
func (uc *eligibilityUsecase) GetStatus(ctx context.Context, session *models.Session) (*registry_dto.StatusSummary, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	status, err := uc.QuestionnaireClient.GetStatus(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if status != nil {
		return status, nil
	}

	submission, err := uc.QuestionnaireClient.GetQuestionnaire(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if submission == nil {
		return nil, nil
	}

	return ComputeStatus(Catalog, submission.Answers), nil
}
