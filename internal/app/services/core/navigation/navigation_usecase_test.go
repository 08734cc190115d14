package navigation

import (
	"context"
	"errors"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/app/services/core/patients"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/registry_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeStateStore struct {
	states map[string]*models.NavigationState
}

func newFakeStateStore() *fakeStateStore {
	return &fakeStateStore{states: make(map[string]*models.NavigationState)}
}

func (s *fakeStateStore) Load(ctx context.Context, sessionID string) (*models.NavigationState, error) {
	state, ok := s.states[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *state
	return &copied, nil
}

func (s *fakeStateStore) Save(ctx context.Context, sessionID string, state *models.NavigationState) error {
	copied := *state
	s.states[sessionID] = &copied
	return nil
}

func (s *fakeStateStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.states, sessionID)
	return nil
}

type fakeSessionService struct {
	saved map[string]*models.Session
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{saved: make(map[string]*models.Session)}
}

func (s *fakeSessionService) CreateSession(ctx context.Context) (*responses.CreateSession, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.saved[sessionID], nil
}

func (s *fakeSessionService) SaveSession(ctx context.Context, session *models.Session) error {
	copied := *session
	s.saved[session.SessionID] = &copied
	return nil
}

func (s *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.saved, sessionID)
	return nil
}

type fakePatientClient struct {
	patients  map[string]*registry_dto.Patient
	createErr error
	deleteErr error
	created   []*registry_dto.Patient
}

func newFakePatientClient() *fakePatientClient {
	return &fakePatientClient{patients: make(map[string]*registry_dto.Patient)}
}

func (c *fakePatientClient) CreatePatient(ctx context.Context, request *registry_dto.Patient) (*registry_dto.Patient, error) {
	if c.createErr != nil {
		return nil, c.createErr
	}
	created := *request
	created.ID = "pat-1"
	c.patients[created.ID] = &created
	c.created = append(c.created, &created)
	return &created, nil
}

func (c *fakePatientClient) GetPatientByID(ctx context.Context, patientID string) (*registry_dto.Patient, error) {
	return c.patients[patientID], nil
}

func (c *fakePatientClient) UpdatePatient(ctx context.Context, request *registry_dto.Patient) (*registry_dto.Patient, error) {
	c.patients[request.ID] = request
	return request, nil
}

func (c *fakePatientClient) DeletePatient(ctx context.Context, patientID string) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	delete(c.patients, patientID)
	return nil
}

type fakeChecklistClient struct {
	checklist *registry_dto.TransplantChecklist
}

func (c *fakeChecklistClient) GetChecklist(ctx context.Context, patientID string) (*registry_dto.TransplantChecklist, error) {
	return c.checklist, nil
}

func (c *fakeChecklistClient) PatchChecklistItem(ctx context.Context, patientID, itemID string, patch *registry_dto.ChecklistItemPatch) (*registry_dto.ChecklistItem, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeChecklistClient) AttachDocument(ctx context.Context, patientID, itemID string, document *registry_dto.DocumentReference) (*registry_dto.ChecklistItem, error) {
	return nil, errors.New("not implemented")
}

type fakeFinancialReader struct {
	profile *registry_dto.FinancialProfile
}

func (c *fakeFinancialReader) GetFinancialProfile(ctx context.Context, patientID string) (*registry_dto.FinancialProfile, error) {
	return c.profile, nil
}

func (c *fakeFinancialReader) UpsertFinancialProfile(ctx context.Context, request *registry_dto.FinancialProfile) (*registry_dto.FinancialProfile, error) {
	c.profile = request
	return request, nil
}

type fixture struct {
	store     *fakeStateStore
	sessions  *fakeSessionService
	patient   *fakePatientClient
	checklist *fakeChecklistClient
	financial *fakeFinancialReader
	usecase   contracts.NavigationUsecase
	session   *models.Session
}

func newFixture() *fixture {
	store := newFakeStateStore()
	sessions := newFakeSessionService()
	patientClient := newFakePatientClient()
	checklistClient := &fakeChecklistClient{}
	financialClient := &fakeFinancialReader{}
	logger := zap.NewNop()

	usecase := NewNavigationUsecase(
		logger,
		store,
		sessions,
		patients.NewPatientUsecase(logger, patientClient),
		patientClient,
		checklistClient,
		financialClient,
	)

	return &fixture{
		store:     store,
		sessions:  sessions,
		patient:   patientClient,
		checklist: checklistClient,
		financial: financialClient,
		usecase:   usecase,
		session:   &models.Session{SessionID: "sess-1"},
	}
}

func (f *fixture) setState(state *models.NavigationState) {
	f.store.states[f.session.SessionID] = state
}

func (f *fixture) state() *models.NavigationState {
	return f.store.states[f.session.SessionID]
}

func contactStep() *requests.ContactDetailsPayload {
	return &requests.ContactDetailsPayload{Email: "pat@example.com", PhoneNumber: "5551234567"}
}

func personalStep() *requests.PersonalDetailsPayload {
	return &requests.PersonalDetailsPayload{FirstName: "Jo", LastName: "Reyes", BirthDate: "1980-04-02", Sex: "female"}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("New Session Lands On Onboarding", func(t *testing.T) {
		f := newFixture()

		view, err := f.usecase.Resolve(ctx, f.session)

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenOnboarding, view.CurrentScreen)
		assert.Equal(t, models.TabPathway, view.ActiveTab)
	})

	t.Run("Known Patient Lands On Home", func(t *testing.T) {
		f := newFixture()
		f.patient.patients["pat-1"] = &registry_dto.Patient{ID: "pat-1"}
		f.session.PatientID = "pat-1"

		view, err := f.usecase.Resolve(ctx, f.session)

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenHome, view.CurrentScreen)
	})

	t.Run("Stale Patient Pointer Falls Back To Onboarding", func(t *testing.T) {
		f := newFixture()
		f.session.PatientID = "gone"

		view, err := f.usecase.Resolve(ctx, f.session)

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenOnboarding, view.CurrentScreen)
		assert.Empty(t, f.session.PatientID, "the stale pointer must be dropped")
	})

	t.Run("Existing State Is Returned AsIs", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenChecklistTimeline, ActiveTab: models.TabPathway})

		view, err := f.usecase.Resolve(ctx, f.session)

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenChecklistTimeline, view.CurrentScreen)
	})
}

func TestAdvanceWizard(t *testing.T) {
	ctx := context.Background()

	runWizardToMedical := func(t *testing.T, f *fixture) {
		f.setState(models.NewNavigationState())
		_, err := f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{Screen: "onboarding"})
		assert.NoError(t, err)
		_, err = f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{Screen: "contact-details", Contact: contactStep()})
		assert.NoError(t, err)
		_, err = f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{Screen: "personal-details", Personal: personalStep()})
		assert.NoError(t, err)
	}

	t.Run("Linear Steps Cache Drafts", func(t *testing.T) {
		f := newFixture()
		runWizardToMedical(t, f)

		state := f.state()
		assert.Equal(t, models.ScreenMedicalQuestions, state.CurrentScreen)
		assert.Equal(t, "pat@example.com", state.ContactDraft.Email)
		assert.Equal(t, "Reyes", state.PersonalDraft.LastName)
	})

	t.Run("Failed Persist Preserves All Caches", func(t *testing.T) {
		f := newFixture()
		runWizardToMedical(t, f)
		f.patient.createErr = errors.New("registry down")

		_, err := f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{
			Screen:  "medical-questions",
			Medical: &requests.MedicalQuestionsPayload{Conditions: []string{"ckd"}},
		})

		assert.Error(t, err)
		state := f.state()
		assert.Equal(t, models.ScreenMedicalQuestions, state.CurrentScreen, "a failed persist must not advance")
		assert.NotNil(t, state.ContactDraft, "contact cache must survive a failed persist")
		assert.NotNil(t, state.PersonalDraft, "personal cache must survive a failed persist")
		assert.NotNil(t, state.MedicalDraft, "medical cache must survive a failed persist")
		assert.Empty(t, f.session.PatientID)
	})

	t.Run("Successful Persist Clears Caches And Advances", func(t *testing.T) {
		f := newFixture()
		runWizardToMedical(t, f)

		view, err := f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{
			Screen:  "medical-questions",
			Medical: &requests.MedicalQuestionsPayload{Conditions: []string{"ckd"}},
		})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenAssessmentIntro, view.CurrentScreen)
		assert.Equal(t, "pat-1", f.session.PatientID)

		state := f.state()
		assert.Nil(t, state.ContactDraft)
		assert.Nil(t, state.PersonalDraft)
		assert.Nil(t, state.MedicalDraft)

		assert.Len(t, f.patient.created, 1)
		assert.Equal(t, "pat@example.com", f.patient.created[0].Email, "payload must merge all wizard steps")
		assert.Equal(t, []string{"ckd"}, f.patient.created[0].Conditions)
	})

	t.Run("Retry After Failure Succeeds Without ReEntry", func(t *testing.T) {
		f := newFixture()
		runWizardToMedical(t, f)
		f.patient.createErr = errors.New("registry down")

		_, err := f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{Screen: "medical-questions"})
		assert.Error(t, err)

		f.patient.createErr = nil
		view, err := f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{Screen: "medical-questions"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenAssessmentIntro, view.CurrentScreen)
		assert.Equal(t, "Jo", f.patient.created[0].FirstName, "cached drafts must feed the retried persist")
	})

	t.Run("Stale Screen Is Rejected Without Side Effects", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenHome, ActiveTab: models.TabPathway})

		_, err := f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{Screen: "contact-details", Contact: contactStep()})

		assert.Error(t, err)
		assert.Equal(t, models.ScreenHome, f.state().CurrentScreen)
		assert.Nil(t, f.state().ContactDraft)
	})

	t.Run("Assessment Intro Requires Patient", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenAssessmentIntro, ActiveTab: models.TabPathway})

		_, err := f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{Screen: "assessment-intro"})

		assert.Error(t, err)
		assert.Equal(t, models.ScreenAssessmentIntro, f.state().CurrentScreen)
	})

	t.Run("Missing Step Payload Is Rejected", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenContactDetails, ActiveTab: models.TabPathway})

		_, err := f.usecase.Advance(ctx, f.session, &requests.AdvanceNavigation{Screen: "contact-details"})

		assert.Error(t, err)
	})
}

func TestBack(t *testing.T) {
	ctx := context.Background()

	t.Run("Wizard Back Keeps Cached Values", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{
			CurrentScreen: models.ScreenPersonalDetails,
			ActiveTab:     models.TabPathway,
			ContactDraft:  &models.ContactDraft{Email: "pat@example.com"},
		})

		view, err := f.usecase.Back(ctx, f.session, &requests.NavigateBack{Screen: "personal-details"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenContactDetails, view.CurrentScreen)
		assert.Equal(t, "pat@example.com", view.ContactDraft.Email, "back must not discard cached input")
	})

	t.Run("Assessment Intro Back Routes Home When Patient Exists", func(t *testing.T) {
		f := newFixture()
		f.patient.patients["pat-1"] = &registry_dto.Patient{ID: "pat-1"}
		f.session.PatientID = "pat-1"
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenAssessmentIntro, ActiveTab: models.TabPathway})

		view, err := f.usecase.Back(ctx, f.session, &requests.NavigateBack{Screen: "assessment-intro"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenHome, view.CurrentScreen, "an existing record must block wizard re-entry")
	})

	t.Run("Assessment Intro Back Returns To Wizard When Absent", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenAssessmentIntro, ActiveTab: models.TabPathway})

		view, err := f.usecase.Back(ctx, f.session, &requests.NavigateBack{Screen: "assessment-intro"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenMedicalQuestions, view.CurrentScreen)
	})

	t.Run("Financial Intro Back Routes Home When Profile Exists", func(t *testing.T) {
		f := newFixture()
		f.session.PatientID = "pat-1"
		f.financial.profile = &registry_dto.FinancialProfile{PatientID: "pat-1"}
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenFinancialIntro, ActiveTab: models.TabPathway})

		view, err := f.usecase.Back(ctx, f.session, &requests.NavigateBack{Screen: "financial-intro"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenHome, view.CurrentScreen)
	})

	t.Run("Leaving Item Edit Clears Editing Pointer", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{
			CurrentScreen: models.ScreenChecklistItemEdit,
			ActiveTab:     models.TabPathway,
			Editing:       &models.ChecklistEditingPointer{ItemID: "item-1"},
		})

		view, err := f.usecase.Back(ctx, f.session, &requests.NavigateBack{Screen: "checklist-item-edit"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenChecklistTimeline, view.CurrentScreen)
		assert.Nil(t, view.Editing)
	})

	t.Run("Documents Back Keeps Editing Pointer", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{
			CurrentScreen: models.ScreenChecklistDocuments,
			ActiveTab:     models.TabPathway,
			Editing:       &models.ChecklistEditingPointer{ItemID: "item-1"},
		})

		view, err := f.usecase.Back(ctx, f.session, &requests.NavigateBack{Screen: "checklist-documents"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenChecklistItemEdit, view.CurrentScreen)
		assert.NotNil(t, view.Editing, "item-edit still needs the pointer")
	})

	t.Run("Home Back Is A NoOp", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenHome, ActiveTab: models.TabSettings})

		view, err := f.usecase.Back(ctx, f.session, &requests.NavigateBack{Screen: "home"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenHome, view.CurrentScreen)
	})
}

func TestTabsAndDetailScreens(t *testing.T) {
	ctx := context.Background()

	t.Run("Tab Switch Never Changes Screen", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenHome, ActiveTab: models.TabPathway})

		view, err := f.usecase.SwitchTab(ctx, f.session, &requests.SwitchTab{Tab: "settings"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenHome, view.CurrentScreen)
		assert.Equal(t, models.TabSettings, view.ActiveTab)
	})

	t.Run("Open Detail Screen From Home", func(t *testing.T) {
		f := newFixture()
		f.session.PatientID = "pat-1"
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenHome, ActiveTab: models.TabPathway})

		view, err := f.usecase.Open(ctx, f.session, &requests.OpenScreen{Screen: "checklist-timeline"})

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenChecklistTimeline, view.CurrentScreen)
	})

	t.Run("Open Outside Home Is Rejected", func(t *testing.T) {
		f := newFixture()
		f.session.PatientID = "pat-1"
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenOnboarding, ActiveTab: models.TabPathway})

		_, err := f.usecase.Open(ctx, f.session, &requests.OpenScreen{Screen: "results-detail"})

		assert.Error(t, err)
	})
}

func TestChecklistEditing(t *testing.T) {
	ctx := context.Background()

	t.Run("Open Item Snapshots The Editing Pointer", func(t *testing.T) {
		f := newFixture()
		f.session.PatientID = "pat-1"
		f.checklist.checklist = &registry_dto.TransplantChecklist{
			PatientID: "pat-1",
			Items: []registry_dto.ChecklistItem{
				{ID: "item-1", Title: "Blood panel", Order: 1},
			},
		}
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenChecklistTimeline, ActiveTab: models.TabPathway})

		view, err := f.usecase.OpenChecklistItem(ctx, f.session, "item-1")

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenChecklistItemEdit, view.CurrentScreen)
		assert.Equal(t, "item-1", view.Editing.ItemID)
		assert.Equal(t, "Blood panel", view.Editing.Item.Title)
		assert.Equal(t, []string{ContextKeyEditing}, view.RequiredContext)
	})

	t.Run("Unknown Item Is Rejected", func(t *testing.T) {
		f := newFixture()
		f.session.PatientID = "pat-1"
		f.checklist.checklist = &registry_dto.TransplantChecklist{PatientID: "pat-1"}
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenChecklistTimeline, ActiveTab: models.TabPathway})

		_, err := f.usecase.OpenChecklistItem(ctx, f.session, "missing")

		assert.Error(t, err)
	})

	t.Run("Close Item Returns To Timeline", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{
			CurrentScreen: models.ScreenChecklistDocuments,
			ActiveTab:     models.TabPathway,
			Editing:       &models.ChecklistEditingPointer{ItemID: "item-1"},
		})

		view, err := f.usecase.CloseChecklistItem(ctx, f.session)

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenChecklistTimeline, view.CurrentScreen)
		assert.Nil(t, view.Editing)
	})
}

func TestFlowCompletions(t *testing.T) {
	ctx := context.Background()

	t.Run("Eligibility Completion Raises FirstTime Flag", func(t *testing.T) {
		f := newFixture()
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenEligibilityQuestionnaire, ActiveTab: models.TabPathway})

		err := f.usecase.CompleteEligibility(ctx, f.session)

		assert.NoError(t, err)
		state := f.state()
		assert.Equal(t, models.ScreenFinancialIntro, state.CurrentScreen)
		assert.True(t, state.FirstFinancialFlow)
	})

	t.Run("Financial Completion Routes Home And Clears Flag", func(t *testing.T) {
		f := newFixture()
		answer := "private"
		f.setState(&models.NavigationState{
			CurrentScreen:      models.ScreenFinancialQuestionnaire,
			ActiveTab:          models.TabPathway,
			FirstFinancialFlow: true,
			FinancialDraft:     map[string]*string{"insurance": &answer},
		})

		err := f.usecase.CompleteFinancial(ctx, f.session)

		assert.NoError(t, err)
		state := f.state()
		assert.Equal(t, models.ScreenHome, state.CurrentScreen)
		assert.False(t, state.FirstFinancialFlow)
		assert.Nil(t, state.FinancialDraft)
	})
}

func TestDeletePatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete Resets To Onboarding From Any Screen", func(t *testing.T) {
		f := newFixture()
		f.patient.patients["pat-1"] = &registry_dto.Patient{ID: "pat-1"}
		f.session.PatientID = "pat-1"
		f.setState(&models.NavigationState{
			CurrentScreen: models.ScreenChecklistDocuments,
			ActiveTab:     models.TabSettings,
			ContactDraft:  &models.ContactDraft{Email: "pat@example.com"},
			Editing:       &models.ChecklistEditingPointer{ItemID: "item-1"},
		})

		view, err := f.usecase.DeletePatient(ctx, f.session)

		assert.NoError(t, err)
		assert.Equal(t, models.ScreenOnboarding, view.CurrentScreen)
		assert.Empty(t, f.session.PatientID)

		state := f.state()
		assert.Nil(t, state.ContactDraft, "all caches must be empty after deletion")
		assert.Nil(t, state.Editing)
		assert.False(t, state.FirstFinancialFlow)
	})

	t.Run("Failed Delete Leaves State Unchanged", func(t *testing.T) {
		f := newFixture()
		f.patient.patients["pat-1"] = &registry_dto.Patient{ID: "pat-1"}
		f.patient.deleteErr = errors.New("registry down")
		f.session.PatientID = "pat-1"
		f.setState(&models.NavigationState{CurrentScreen: models.ScreenHome, ActiveTab: models.TabSettings})

		_, err := f.usecase.DeletePatient(ctx, f.session)

		assert.Error(t, err)
		assert.Equal(t, "pat-1", f.session.PatientID)
		assert.Equal(t, models.ScreenHome, f.state().CurrentScreen)
	})

	t.Run("Delete Without Patient Is Rejected", func(t *testing.T) {
		f := newFixture()

		_, err := f.usecase.DeletePatient(ctx, f.session)

		assert.Error(t, err)
	})
}
