package financial

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/registry_dto"

	"go.uber.org/zap"
)

type financialUsecase struct {
	Log               *zap.Logger
	FinancialClient   contracts.FinancialRegistryClient
	StateStore        contracts.NavigationStateStore
	NavigationUsecase contracts.NavigationUsecase
	Autosave          *AutosaveCoordinator
}

func NewFinancialUsecase(
	logger *zap.Logger,
	financialClient contracts.FinancialRegistryClient,
	stateStore contracts.NavigationStateStore,
	navigationUsecase contracts.NavigationUsecase,
	autosave *AutosaveCoordinator,
) contracts.FinancialUsecase {
	return &financialUsecase{
		Log:               logger,
		FinancialClient:   financialClient,
		StateStore:        stateStore,
		NavigationUsecase: navigationUsecase,
		Autosave:          autosave,
	}
}

// LoadProfile prefills the financial questionnaire. On the first pass
// after eligibility completion there is nothing persisted yet, so the
// registry lookup is skipped; a local draft always wins over the
// persisted document because it is the newer edit.
func (uc *financialUsecase) LoadProfile(ctx context.Context, session *models.Session) (*responses.FinancialProfileView, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	state, err := uc.StateStore.Load(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}

	if state != nil && len(state.FinancialDraft) > 0 {
		return &responses.FinancialProfileView{Answers: state.FinancialDraft, Loaded: false}, nil
	}

	if state != nil && state.FirstFinancialFlow {
		return &responses.FinancialProfileView{Answers: map[string]*string{}, Loaded: false}, nil
	}

	profile, err := uc.FinancialClient.GetFinancialProfile(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &responses.FinancialProfileView{Answers: map[string]*string{}, Loaded: false}, nil
	}

	answers := profile.Answers
	if answers == nil {
		answers = map[string]*string{}
	}
	return &responses.FinancialProfileView{Answers: answers, Loaded: true}, nil
}

// UpdateDraft caches the snapshot in the navigation state and schedules
// a debounced registry write.
func (uc *financialUsecase) UpdateDraft(ctx context.Context, session *models.Session, request *requests.FinancialDraft) error {
	if session.PatientID == "" {
		return exceptions.ErrPatientNotOnboarded(nil)
	}

	state, err := uc.StateStore.Load(ctx, session.SessionID)
	if err != nil {
		return err
	}
	if state == nil {
		state = models.NewNavigationState()
	}

	state.FinancialDraft = request.Answers
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return err
	}

	uc.Autosave.Notify(session.SessionID, &registry_dto.FinancialProfile{
		PatientID: session.PatientID,
		Answers:   request.Answers,
	})

	return nil
}

// Submit writes the answers synchronously, cancels any pending autosave
// carrying an older snapshot, and completes the financial flow.
func (uc *financialUsecase) Submit(ctx context.Context, session *models.Session, request *requests.SubmitFinancial) error {
	if session.PatientID == "" {
		return exceptions.ErrPatientNotOnboarded(nil)
	}

	answers := request.Answers
	if answers == nil {
		state, err := uc.StateStore.Load(ctx, session.SessionID)
		if err != nil {
			return err
		}
		if state != nil {
			answers = state.FinancialDraft
		}
	}
	if answers == nil {
		answers = map[string]*string{}
	}

	uc.Autosave.Cancel(session.SessionID)

	_, err := uc.FinancialClient.UpsertFinancialProfile(ctx, &registry_dto.FinancialProfile{
		PatientID: session.PatientID,
		Answers:   answers,
	})
	if err != nil {
		return err
	}

	uc.Log.Info("financialUsecase.Submit persisted",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
	)

	return uc.NavigationUsecase.CompleteFinancial(ctx, session)
}
