package pathway

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/app/services/core/checklist"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/registry_dto"

	"go.uber.org/zap"
)

type pathwayUsecase struct {
	Log                 *zap.Logger
	QuestionnaireClient contracts.QuestionnaireRegistryClient
	ReferralClient      contracts.ReferralRegistryClient
	ChecklistClient     contracts.ChecklistRegistryClient
}

func NewPathwayUsecase(
	logger *zap.Logger,
	questionnaireClient contracts.QuestionnaireRegistryClient,
	referralClient contracts.ReferralRegistryClient,
	checklistClient contracts.ChecklistRegistryClient,
) contracts.PathwayUsecase {
	return &pathwayUsecase{
		Log:                 logger,
		QuestionnaireClient: questionnaireClient,
		ReferralClient:      referralClient,
		ChecklistClient:     checklistClient,
	}
}

// GetPathway gathers the three independent registry signals and folds
// them into one stage. Each signal may be absent (brand-new patient);
// a failed read on a display path degrades to "no data" for that signal
// instead of failing the whole view.
func (uc *pathwayUsecase) GetPathway(ctx context.Context, session *models.Session) (*responses.PathwayView, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	status, err := uc.QuestionnaireClient.GetStatus(ctx, session.PatientID)
	if err != nil {
		uc.Log.Error("pathwayUsecase.GetPathway status read failed, treating as absent",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		status = nil
	}

	referral, err := uc.ReferralClient.GetReferral(ctx, session.PatientID)
	if err != nil {
		uc.Log.Error("pathwayUsecase.GetPathway referral read failed, treating as absent",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		referral = nil
	}

	checklistRecord, err := uc.ChecklistClient.GetChecklist(ctx, session.PatientID)
	if err != nil {
		uc.Log.Error("pathwayUsecase.GetPathway checklist read failed, treating as absent",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		checklistRecord = nil
	}

	var progress *models.ChecklistProgressSummary
	if checklistRecord != nil {
		summary := checklist.ComputeProgress(checklistRecord.Items)
		progress = &summary
	}

	stage := ResolveStage(status, referral, progress)

	uc.Log.Info("pathwayUsecase.GetPathway resolved",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
		zap.String(constvars.LoggingStageKey, string(stage)),
	)

	return &responses.PathwayView{
		Stage:       stage,
		Status:      status,
		Referral:    referral,
		Progress:    progress,
		HasReferral: referral != nil && referral.HasReferral,
	}, nil
}

func (uc *pathwayUsecase) GetReferral(ctx context.Context, session *models.Session) (*registry_dto.Referral, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}
	return uc.ReferralClient.GetReferral(ctx, session.PatientID)
}
