package contracts

import (
	"context"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/dto/responses"
)

// NavigationStateStore persists the transient per-session navigation
// state. Load returns (nil, nil) when no state has been saved yet.
type NavigationStateStore interface {
	Load(ctx context.Context, sessionID string) (*models.NavigationState, error)
	Save(ctx context.Context, sessionID string, state *models.NavigationState) error
	Delete(ctx context.Context, sessionID string) error
}

// NavigationUsecase owns every screen transition. Resolve performs the
// launch-time read; Advance/Back/SwitchTab/Open are the user-driven
// transitions; DeletePatient is the destructive reset. The checklist
// editing pointer is managed by OpenChecklistItem / ShowItemDocuments /
// CloseChecklistItem.
type NavigationUsecase interface {
	Resolve(ctx context.Context, session *models.Session) (*responses.NavigationView, error)
	Advance(ctx context.Context, session *models.Session, request *requests.AdvanceNavigation) (*responses.NavigationView, error)
	Back(ctx context.Context, session *models.Session, request *requests.NavigateBack) (*responses.NavigationView, error)
	SwitchTab(ctx context.Context, session *models.Session, request *requests.SwitchTab) (*responses.NavigationView, error)
	Open(ctx context.Context, session *models.Session, request *requests.OpenScreen) (*responses.NavigationView, error)
	OpenChecklistItem(ctx context.Context, session *models.Session, itemID string) (*responses.NavigationView, error)
	ShowItemDocuments(ctx context.Context, session *models.Session) (*responses.NavigationView, error)
	CloseChecklistItem(ctx context.Context, session *models.Session) (*responses.NavigationView, error)
	CompleteEligibility(ctx context.Context, session *models.Session) error
	CompleteFinancial(ctx context.Context, session *models.Session) error
	DeletePatient(ctx context.Context, session *models.Session) (*responses.NavigationView, error)
}
