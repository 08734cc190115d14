package navigation

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type navigationUsecase struct {
	Log             *zap.Logger
	StateStore      contracts.NavigationStateStore
	SessionService  contracts.SessionService
	PatientUsecase  contracts.PatientUsecase
	PatientClient   contracts.PatientRegistryClient
	ChecklistClient contracts.ChecklistRegistryClient
	FinancialClient contracts.FinancialRegistryClient
}

func NewNavigationUsecase(
	logger *zap.Logger,
	stateStore contracts.NavigationStateStore,
	sessionService contracts.SessionService,
	patientUsecase contracts.PatientUsecase,
	patientClient contracts.PatientRegistryClient,
	checklistClient contracts.ChecklistRegistryClient,
	financialClient contracts.FinancialRegistryClient,
) contracts.NavigationUsecase {
	return &navigationUsecase{
		Log:             logger,
		StateStore:      stateStore,
		SessionService:  sessionService,
		PatientUsecase:  patientUsecase,
		PatientClient:   patientClient,
		ChecklistClient: checklistClient,
		FinancialClient: financialClient,
	}
}

// Resolve returns the stored navigation state, or performs the
// launch-time patient lookup when no state exists yet. A found patient
// record lands on home; absence lands on onboarding. Any other read
// failure is returned as-is so the client can show it without a
// transition.
func (uc *navigationUsecase) Resolve(ctx context.Context, session *models.Session) (*responses.NavigationView, error) {
	state, err := uc.StateStore.Load(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return uc.buildView(state, session), nil
	}

	state = models.NewNavigationState()
	if session.PatientID != "" {
		patient, err := uc.PatientClient.GetPatientByID(ctx, session.PatientID)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			state.CurrentScreen = models.ScreenHome
		} else {
			// The pointer went stale, drop it and start over.
			session.PatientID = ""
			err = uc.SessionService.SaveSession(ctx, session)
			if err != nil {
				return nil, err
			}
		}
	}

	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("navigationUsecase.Resolve initialized",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingScreenKey, string(state.CurrentScreen)),
	)

	return uc.buildView(state, session), nil
}

// Advance performs one forward step. The request names the screen the
// client advanced from; a mismatch with the stored state means the
// request is stale and is rejected without side effects. The
// medical-questions step persists the merged wizard payload before
// moving on: failure keeps the screen and every cached draft so the
// user can retry without re-entering anything.
func (uc *navigationUsecase) Advance(ctx context.Context, session *models.Session, request *requests.AdvanceNavigation) (*responses.NavigationView, error) {
	state, err := uc.requireState(ctx, session, models.Screen(request.Screen), eventAdvance)
	if err != nil {
		return nil, err
	}

	switch state.CurrentScreen {
	case models.ScreenContactDetails:
		if request.Contact == nil {
			return nil, exceptions.ErrWizardIncomplete(nil)
		}
		state.ContactDraft = &models.ContactDraft{
			Email:       request.Contact.Email,
			PhoneNumber: request.Contact.PhoneNumber,
			AddressLine: request.Contact.AddressLine,
			City:        request.Contact.City,
			PostalCode:  request.Contact.PostalCode,
		}

	case models.ScreenPersonalDetails:
		if request.Personal == nil {
			return nil, exceptions.ErrWizardIncomplete(nil)
		}
		state.PersonalDraft = &models.PersonalDraft{
			FirstName: request.Personal.FirstName,
			LastName:  request.Personal.LastName,
			BirthDate: request.Personal.BirthDate,
			Sex:       request.Personal.Sex,
			HeightCm:  request.Personal.HeightCm,
			WeightKg:  request.Personal.WeightKg,
		}

	case models.ScreenMedicalQuestions:
		if request.Medical != nil {
			state.MedicalDraft = &models.MedicalDraft{
				Conditions:  request.Medical.Conditions,
				Medications: request.Medical.Medications,
				Allergies:   request.Medical.Allergies,
			}
		}
		return uc.persistWizard(ctx, session, state)

	case models.ScreenAssessmentIntro, models.ScreenFinancialIntro:
		if session.PatientID == "" {
			return nil, exceptions.ErrPatientNotOnboarded(nil)
		}
	}

	next, ok := forwardTargets[state.CurrentScreen]
	if !ok {
		return nil, exceptions.ErrInvalidTransition(string(state.CurrentScreen), eventAdvance)
	}

	state.CurrentScreen = next
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	return uc.buildView(state, session), nil
}

// persistWizard folds the three cached drafts into one patient payload
// and creates the record. Only a successful create clears the drafts.
func (uc *navigationUsecase) persistWizard(ctx context.Context, session *models.Session, state *models.NavigationState) (*responses.NavigationView, error) {
	if state.ContactDraft == nil || state.PersonalDraft == nil {
		return nil, exceptions.ErrWizardIncomplete(nil)
	}

	err := uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	payload := uc.PatientUsecase.BuildPatientPayload(state.ContactDraft, state.PersonalDraft, state.MedicalDraft)
	created, err := uc.PatientClient.CreatePatient(ctx, payload)
	if err != nil {
		return nil, err
	}

	session.PatientID = created.ID
	err = uc.SessionService.SaveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	state.ContactDraft = nil
	state.PersonalDraft = nil
	state.MedicalDraft = nil
	state.CurrentScreen = models.ScreenAssessmentIntro
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("navigationUsecase.persistWizard patient created",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
	)

	return uc.buildView(state, session), nil
}

// Back performs one back-press. assessment-intro and financial-intro
// run a lazy registry lookup here: when the corresponding record
// already exists the user is routed to home instead of back into the
// wizard. The lookup happens only on back-press, never on forward
// navigation.
func (uc *navigationUsecase) Back(ctx context.Context, session *models.Session, request *requests.NavigateBack) (*responses.NavigationView, error) {
	state, err := uc.requireState(ctx, session, models.Screen(request.Screen), eventBack)
	if err != nil {
		return nil, err
	}

	var next models.Screen
	switch state.CurrentScreen {
	case models.ScreenOnboarding, models.ScreenHome:
		// Nowhere further back to go.
		return uc.buildView(state, session), nil

	case models.ScreenAssessmentIntro:
		next = models.ScreenMedicalQuestions
		if session.PatientID != "" {
			patient, err := uc.PatientClient.GetPatientByID(ctx, session.PatientID)
			if err != nil {
				return nil, err
			}
			if patient != nil {
				next = models.ScreenHome
			}
		}

	case models.ScreenFinancialIntro:
		next = models.ScreenEligibilityQuestionnaire
		if session.PatientID != "" {
			profile, err := uc.FinancialClient.GetFinancialProfile(ctx, session.PatientID)
			if err != nil {
				return nil, err
			}
			if profile != nil {
				next = models.ScreenHome
			}
		}

	default:
		var ok bool
		next, ok = backTargets[state.CurrentScreen]
		if !ok {
			return nil, exceptions.ErrInvalidTransition(string(state.CurrentScreen), eventBack)
		}
	}

	if state.CurrentScreen == models.ScreenChecklistItemEdit && next == models.ScreenChecklistTimeline {
		state.Editing = nil
	}

	state.CurrentScreen = next
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	return uc.buildView(state, session), nil
}

// SwitchTab changes the home tab sub-state without touching the screen.
func (uc *navigationUsecase) SwitchTab(ctx context.Context, session *models.Session, request *requests.SwitchTab) (*responses.NavigationView, error) {
	state, err := uc.loadOrInit(ctx, session)
	if err != nil {
		return nil, err
	}

	state.ActiveTab = models.Tab(request.Tab)
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	return uc.buildView(state, session), nil
}

// Open jumps from home to one of the detail screens.
func (uc *navigationUsecase) Open(ctx context.Context, session *models.Session, request *requests.OpenScreen) (*responses.NavigationView, error) {
	state, err := uc.requireState(ctx, session, models.ScreenHome, eventOpen)
	if err != nil {
		return nil, err
	}
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	state.CurrentScreen = models.Screen(request.Screen)
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	return uc.buildView(state, session), nil
}

// OpenChecklistItem fetches the current checklist, snapshots the chosen
// item into the editing pointer, and enters the item-edit screen. The
// two editing screens cannot render without that pointer.
func (uc *navigationUsecase) OpenChecklistItem(ctx context.Context, session *models.Session, itemID string) (*responses.NavigationView, error) {
	state, err := uc.requireState(ctx, session, models.ScreenChecklistTimeline, eventOpenItem)
	if err != nil {
		return nil, err
	}
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	checklist, err := uc.ChecklistClient.GetChecklist(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if checklist == nil {
		return nil, exceptions.ErrChecklistAbsent()
	}

	for _, item := range checklist.Items {
		if item.ID == itemID {
			state.Editing = &models.ChecklistEditingPointer{ItemID: item.ID, Item: item}
			state.CurrentScreen = models.ScreenChecklistItemEdit
			err = uc.StateStore.Save(ctx, session.SessionID, state)
			if err != nil {
				return nil, err
			}
			return uc.buildView(state, session), nil
		}
	}

	return nil, exceptions.ErrChecklistItemNotFound(itemID)
}

func (uc *navigationUsecase) ShowItemDocuments(ctx context.Context, session *models.Session) (*responses.NavigationView, error) {
	state, err := uc.requireState(ctx, session, models.ScreenChecklistItemEdit, eventDocuments)
	if err != nil {
		return nil, err
	}
	if state.Editing == nil {
		return nil, exceptions.ErrEditingPointerMissing()
	}

	state.CurrentScreen = models.ScreenChecklistDocuments
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	return uc.buildView(state, session), nil
}

func (uc *navigationUsecase) CloseChecklistItem(ctx context.Context, session *models.Session) (*responses.NavigationView, error) {
	state, err := uc.loadState(ctx, session)
	if err != nil {
		return nil, err
	}
	if state.CurrentScreen != models.ScreenChecklistItemEdit && state.CurrentScreen != models.ScreenChecklistDocuments {
		return nil, exceptions.ErrInvalidTransition(string(state.CurrentScreen), eventCloseItem)
	}

	state.Editing = nil
	state.CurrentScreen = models.ScreenChecklistTimeline
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	return uc.buildView(state, session), nil
}

// CompleteEligibility routes to financial-intro after a questionnaire
// submission and raises the first-time flag so the financial screen
// skips its guaranteed-404 profile lookup.
func (uc *navigationUsecase) CompleteEligibility(ctx context.Context, session *models.Session) error {
	state, err := uc.loadOrInit(ctx, session)
	if err != nil {
		return err
	}

	state.CurrentScreen = models.ScreenFinancialIntro
	state.FirstFinancialFlow = true
	return uc.StateStore.Save(ctx, session.SessionID, state)
}

// CompleteFinancial routes home after a financial submission and drops
// both the first-time flag and the cached draft.
func (uc *navigationUsecase) CompleteFinancial(ctx context.Context, session *models.Session) error {
	state, err := uc.loadOrInit(ctx, session)
	if err != nil {
		return err
	}

	state.CurrentScreen = models.ScreenHome
	state.ActiveTab = models.TabPathway
	state.FirstFinancialFlow = false
	state.FinancialDraft = nil
	return uc.StateStore.Save(ctx, session.SessionID, state)
}

// DeletePatient removes the registry record, clears the patient pointer,
// and resets navigation to onboarding from whatever screen was active.
// A failed delete leaves everything untouched.
func (uc *navigationUsecase) DeletePatient(ctx context.Context, session *models.Session) (*responses.NavigationView, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	err := uc.PatientClient.DeletePatient(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}

	deletedPatientID := session.PatientID
	session.PatientID = ""
	err = uc.SessionService.SaveSession(ctx, session)
	if err != nil {
		return nil, err
	}

	state := models.NewNavigationState()
	err = uc.StateStore.Save(ctx, session.SessionID, state)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("navigationUsecase.DeletePatient reset to onboarding",
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingPatientIDKey, deletedPatientID),
	)

	return uc.buildView(state, session), nil
}

func (uc *navigationUsecase) loadState(ctx context.Context, session *models.Session) (*models.NavigationState, error) {
	state, err := uc.StateStore.Load(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, exceptions.ErrInvalidTransition(string(models.ScreenOnboarding), "no-state")
	}
	return state, nil
}

func (uc *navigationUsecase) loadOrInit(ctx context.Context, session *models.Session) (*models.NavigationState, error) {
	state, err := uc.StateStore.Load(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = models.NewNavigationState()
	}
	return state, nil
}

// requireState loads the state and rejects the request when the screen
// the client acted from no longer matches the stored one.
func (uc *navigationUsecase) requireState(ctx context.Context, session *models.Session, fromScreen models.Screen, event string) (*models.NavigationState, error) {
	state, err := uc.loadState(ctx, session)
	if err != nil {
		return nil, err
	}
	if state.CurrentScreen != fromScreen {
		uc.Log.Warn("navigationUsecase stale transition rejected",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.String(constvars.LoggingScreenKey, string(state.CurrentScreen)),
			zap.String("requested_screen", string(fromScreen)),
			zap.String("event", event),
		)
		return nil, exceptions.ErrInvalidTransition(string(state.CurrentScreen), event)
	}
	return state, nil
}

func (uc *navigationUsecase) buildView(state *models.NavigationState, session *models.Session) *responses.NavigationView {
	return &responses.NavigationView{
		CurrentScreen:      state.CurrentScreen,
		ActiveTab:          state.ActiveTab,
		RequiredContext:    RequiredContext(state.CurrentScreen),
		ContactDraft:       state.ContactDraft,
		PersonalDraft:      state.PersonalDraft,
		MedicalDraft:       state.MedicalDraft,
		FinancialDraft:     state.FinancialDraft,
		FirstFinancialFlow: state.FirstFinancialFlow,
		Editing:            state.Editing,
		PatientID:          session.PatientID,
	}
}
