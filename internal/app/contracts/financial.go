package contracts

import (
	"context"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/registry_dto"
)

// FinancialRegistryClient reads and upserts the financial profile. The
// upsert replaces the whole document; there is no partial patch.
type FinancialRegistryClient interface {
	GetFinancialProfile(ctx context.Context, patientID string) (*registry_dto.FinancialProfile, error)
	UpsertFinancialProfile(ctx context.Context, request *registry_dto.FinancialProfile) (*registry_dto.FinancialProfile, error)
}

type FinancialUsecase interface {
	LoadProfile(ctx context.Context, session *models.Session) (*responses.FinancialProfileView, error)
	UpdateDraft(ctx context.Context, session *models.Session, request *requests.FinancialDraft) error
	Submit(ctx context.Context, session *models.Session, request *requests.SubmitFinancial) error
}
