package contracts

import (
	"context"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/dto/responses"
)

type SessionService interface {
	CreateSession(ctx context.Context) (*responses.CreateSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
}
