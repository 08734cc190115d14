package checklist

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/registry_dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type checklistUsecase struct {
	Log             *zap.Logger
	ChecklistClient contracts.ChecklistRegistryClient
}

func NewChecklistUsecase(logger *zap.Logger, checklistClient contracts.ChecklistRegistryClient) contracts.ChecklistUsecase {
	return &checklistUsecase{
		Log:             logger,
		ChecklistClient: checklistClient,
	}
}

// GetChecklist reads the checklist and pairs it with derived progress.
// An absent checklist is a normal branch: the view comes back with no
// items and zeroed progress.
func (uc *checklistUsecase) GetChecklist(ctx context.Context, session *models.Session) (*responses.ChecklistView, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	checklist, err := uc.ChecklistClient.GetChecklist(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}

	items := []registry_dto.ChecklistItem{}
	if checklist != nil {
		items = checklist.Items
	}

	return &responses.ChecklistView{
		Items:    items,
		Progress: ComputeProgress(items),
	}, nil
}

func (uc *checklistUsecase) PatchItem(ctx context.Context, session *models.Session, itemID string, request *requests.PatchChecklistItem) (*registry_dto.ChecklistItem, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	patch := &registry_dto.ChecklistItemPatch{
		IsComplete: request.IsComplete,
		Notes:      request.Notes,
	}
	item, err := uc.ChecklistClient.PatchChecklistItem(ctx, session.PatientID, itemID, patch)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("checklistUsecase.PatchItem completed",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingItemIDKey, itemID),
	)
	return item, nil
}

func (uc *checklistUsecase) AttachDocument(ctx context.Context, session *models.Session, itemID string, request *requests.AttachDocument) (*registry_dto.ChecklistItem, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	document := &registry_dto.DocumentReference{
		ID:       uuid.NewString(),
		Title:    request.Title,
		URL:      request.URL,
		MimeType: request.MimeType,
	}
	item, err := uc.ChecklistClient.AttachDocument(ctx, session.PatientID, itemID, document)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("checklistUsecase.AttachDocument completed",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingItemIDKey, itemID),
	)
	return item, nil
}
