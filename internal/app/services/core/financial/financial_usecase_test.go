package financial

import (
	"context"
	"errors"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/registry_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeStateStore struct {
	states map[string]*models.NavigationState
}

func (s *fakeStateStore) Load(ctx context.Context, sessionID string) (*models.NavigationState, error) {
	return s.states[sessionID], nil
}

func (s *fakeStateStore) Save(ctx context.Context, sessionID string, state *models.NavigationState) error {
	s.states[sessionID] = state
	return nil
}

func (s *fakeStateStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.states, sessionID)
	return nil
}

type fakeNavigationUsecase struct {
	financialCompleted int
}

func (u *fakeNavigationUsecase) Resolve(ctx context.Context, session *models.Session) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

func (u *fakeNavigationUsecase) Advance(ctx context.Context, session *models.Session, request *requests.AdvanceNavigation) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

func (u *fakeNavigationUsecase) Back(ctx context.Context, session *models.Session, request *requests.NavigateBack) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

func (u *fakeNavigationUsecase) SwitchTab(ctx context.Context, session *models.Session, request *requests.SwitchTab) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

func (u *fakeNavigationUsecase) Open(ctx context.Context, session *models.Session, request *requests.OpenScreen) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

func (u *fakeNavigationUsecase) OpenChecklistItem(ctx context.Context, session *models.Session, itemID string) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

func (u *fakeNavigationUsecase) ShowItemDocuments(ctx context.Context, session *models.Session) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

func (u *fakeNavigationUsecase) CloseChecklistItem(ctx context.Context, session *models.Session) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

func (u *fakeNavigationUsecase) CompleteEligibility(ctx context.Context, session *models.Session) error {
	return nil
}

func (u *fakeNavigationUsecase) CompleteFinancial(ctx context.Context, session *models.Session) error {
	u.financialCompleted++
	return nil
}

func (u *fakeNavigationUsecase) DeletePatient(ctx context.Context, session *models.Session) (*responses.NavigationView, error) {
	return nil, errors.New("not implemented")
}

type countingFinancialClient struct {
	fakeFinancialClient
	profile  *registry_dto.FinancialProfile
	getCalls int
}

func (c *countingFinancialClient) GetFinancialProfile(ctx context.Context, patientID string) (*registry_dto.FinancialProfile, error) {
	c.getCalls++
	return c.profile, nil
}

func TestFinancialUsecase(t *testing.T) {
	ctx := context.Background()
	session := &models.Session{SessionID: "sess-1", PatientID: "pat-1"}

	newUsecase := func() (*financialUsecase, *fakeStateStore, *countingFinancialClient, *fakeNavigationUsecase) {
		store := &fakeStateStore{states: make(map[string]*models.NavigationState)}
		client := &countingFinancialClient{}
		nav := &fakeNavigationUsecase{}
		coordinator := NewAutosaveCoordinator(zap.NewNop(), client, time.Hour, time.Second)
		usecase := NewFinancialUsecase(zap.NewNop(), client, store, nav, coordinator).(*financialUsecase)
		return usecase, store, client, nav
	}

	t.Run("First Flow Skips The Registry Lookup", func(t *testing.T) {
		usecase, store, client, _ := newUsecase()
		store.states["sess-1"] = &models.NavigationState{
			CurrentScreen:      models.ScreenFinancialQuestionnaire,
			FirstFinancialFlow: true,
		}

		view, err := usecase.LoadProfile(ctx, session)

		assert.NoError(t, err)
		assert.False(t, view.Loaded)
		assert.Empty(t, view.Answers)
		assert.Equal(t, 0, client.getCalls, "first-time flow must not hit the registry")
	})

	t.Run("Existing Profile Prefills Answers", func(t *testing.T) {
		usecase, _, client, _ := newUsecase()
		answer := "medicaid"
		client.profile = &registry_dto.FinancialProfile{
			PatientID: "pat-1",
			Answers:   map[string]*string{"insurance": &answer},
		}

		view, err := usecase.LoadProfile(ctx, session)

		assert.NoError(t, err)
		assert.True(t, view.Loaded)
		assert.Equal(t, "medicaid", *view.Answers["insurance"])
	})

	t.Run("Local Draft Wins Over Persisted Profile", func(t *testing.T) {
		usecase, store, client, _ := newUsecase()
		old := "none"
		client.profile = &registry_dto.FinancialProfile{
			PatientID: "pat-1",
			Answers:   map[string]*string{"insurance": &old},
		}
		edited := "private"
		store.states["sess-1"] = &models.NavigationState{
			CurrentScreen:  models.ScreenFinancialQuestionnaire,
			FinancialDraft: map[string]*string{"insurance": &edited},
		}

		view, err := usecase.LoadProfile(ctx, session)

		assert.NoError(t, err)
		assert.Equal(t, "private", *view.Answers["insurance"], "the newer local edit must win")
		assert.Equal(t, 0, client.getCalls)
	})

	t.Run("Submit Falls Back To Cached Draft", func(t *testing.T) {
		usecase, store, client, nav := newUsecase()
		cached := "private"
		store.states["sess-1"] = &models.NavigationState{
			CurrentScreen:  models.ScreenFinancialQuestionnaire,
			FinancialDraft: map[string]*string{"insurance": &cached},
		}

		err := usecase.Submit(ctx, session, &requests.SubmitFinancial{})

		assert.NoError(t, err)
		assert.Equal(t, 1, client.writeCount())
		assert.Equal(t, "private", *client.lastWrite().Answers["insurance"])
		assert.Equal(t, 1, nav.financialCompleted, "submit must complete the financial flow")
	})

	t.Run("Draft Update Caches And Schedules Autosave", func(t *testing.T) {
		usecase, store, client, _ := newUsecase()
		answer := "employer"

		err := usecase.UpdateDraft(ctx, session, &requests.FinancialDraft{
			Answers: map[string]*string{"insurance": &answer},
		})

		assert.NoError(t, err)
		assert.Equal(t, "employer", *store.states["sess-1"].FinancialDraft["insurance"])
		assert.Equal(t, 0, client.writeCount(), "the write must wait for the debounce window")
	})

	t.Run("Submit Without Patient Is Rejected", func(t *testing.T) {
		usecase, _, _, _ := newUsecase()

		err := usecase.Submit(ctx, &models.Session{SessionID: "sess-2"}, &requests.SubmitFinancial{})

		assert.Error(t, err)
	})
}
