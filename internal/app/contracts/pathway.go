package contracts

import (
	"context"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/registry_dto"
)

type PathwayUsecase interface {
	GetPathway(ctx context.Context, session *models.Session) (*responses.PathwayView, error)
	GetReferral(ctx context.Context, session *models.Session) (*registry_dto.Referral, error)
}
