package navigation

import "navigator-service/internal/app/models"

// Transition event names used for logging and stale-request rejection.
const (
	eventAdvance   = "advance"
	eventBack      = "back"
	eventOpen      = "open"
	eventOpenItem  = "open-item"
	eventDocuments = "documents"
	eventCloseItem = "close-item"
)

// ContextKeyEditing marks screens that cannot render without the
// checklist editing pointer.
const ContextKeyEditing = "editing"

// forwardTargets are the pure advance transitions. medical-questions is
// absent on purpose: its advance persists the patient record first and
// is handled in the usecase. assessment-intro and financial-intro are
// guarded by the patient identifier, also in the usecase.
var forwardTargets = map[models.Screen]models.Screen{
	models.ScreenOnboarding:      models.ScreenContactDetails,
	models.ScreenContactDetails:  models.ScreenPersonalDetails,
	models.ScreenPersonalDetails: models.ScreenMedicalQuestions,
	models.ScreenAssessmentIntro: models.ScreenEligibilityQuestionnaire,
	models.ScreenFinancialIntro:  models.ScreenFinancialQuestionnaire,
}

// backTargets are the pure back transitions. assessment-intro and
// financial-intro are absent on purpose: their back-press runs a lazy
// registry lookup to decide between the prior wizard step and home.
var backTargets = map[models.Screen]models.Screen{
	models.ScreenContactDetails:           models.ScreenOnboarding,
	models.ScreenPersonalDetails:          models.ScreenContactDetails,
	models.ScreenMedicalQuestions:         models.ScreenPersonalDetails,
	models.ScreenEligibilityQuestionnaire: models.ScreenAssessmentIntro,
	models.ScreenFinancialQuestionnaire:   models.ScreenFinancialIntro,
	models.ScreenResultsDetail:            models.ScreenHome,
	models.ScreenChecklistTimeline:        models.ScreenHome,
	models.ScreenChecklistItemEdit:        models.ScreenChecklistTimeline,
	models.ScreenChecklistDocuments:       models.ScreenChecklistItemEdit,
	models.ScreenReferralNavigator:        models.ScreenHome,
	models.ScreenReferralView:             models.ScreenHome,
}

// requiredContext maps each screen to the context keys a client must
// hold before rendering it. Screens not listed need nothing beyond the
// state itself.
var requiredContext = map[models.Screen][]string{
	models.ScreenChecklistItemEdit:  {ContextKeyEditing},
	models.ScreenChecklistDocuments: {ContextKeyEditing},
}

// RequiredContext returns the context keys screen needs to render.
func RequiredContext(screen models.Screen) []string {
	return requiredContext[screen]
}
