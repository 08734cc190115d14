package contracts

import (
	"context"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/registry_dto"
)

// ChecklistRegistryClient is the registry surface for the evaluation
// checklist. GetChecklist returns (nil, nil) when none exists yet.
type ChecklistRegistryClient interface {
	GetChecklist(ctx context.Context, patientID string) (*registry_dto.TransplantChecklist, error)
	PatchChecklistItem(ctx context.Context, patientID, itemID string, patch *registry_dto.ChecklistItemPatch) (*registry_dto.ChecklistItem, error)
	AttachDocument(ctx context.Context, patientID, itemID string, document *registry_dto.DocumentReference) (*registry_dto.ChecklistItem, error)
}

type ChecklistUsecase interface {
	GetChecklist(ctx context.Context, session *models.Session) (*responses.ChecklistView, error)
	PatchItem(ctx context.Context, session *models.Session, itemID string, request *requests.PatchChecklistItem) (*registry_dto.ChecklistItem, error)
	AttachDocument(ctx context.Context, session *models.Session, itemID string, request *requests.AttachDocument) (*registry_dto.ChecklistItem, error)
}
