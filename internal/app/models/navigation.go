package models

import "navigator-service/internal/pkg/registry_dto"

// Screen is the closed set of screens the navigator can show. The
// reducer in the navigation service is the only writer of CurrentScreen.
type Screen string

const (
	ScreenOnboarding               Screen = "onboarding"
	ScreenContactDetails           Screen = "contact-details"
	ScreenPersonalDetails          Screen = "personal-details"
	ScreenMedicalQuestions         Screen = "medical-questions"
	ScreenAssessmentIntro          Screen = "assessment-intro"
	ScreenEligibilityQuestionnaire Screen = "eligibility-questionnaire"
	ScreenFinancialIntro           Screen = "financial-intro"
	ScreenFinancialQuestionnaire   Screen = "financial-questionnaire"
	ScreenHome                     Screen = "home"
	ScreenResultsDetail            Screen = "results-detail"
	ScreenChecklistTimeline        Screen = "checklist-timeline"
	ScreenChecklistItemEdit        Screen = "checklist-item-edit"
	ScreenChecklistDocuments       Screen = "checklist-documents"
	ScreenReferralNavigator        Screen = "referral-navigator"
	ScreenReferralView             Screen = "referral-view"
)

// Tab is the active sub-state of the home screen. Switching tabs never
// changes CurrentScreen.
type Tab string

const (
	TabPathway  Tab = "pathway"
	TabChat     Tab = "chat"
	TabSettings Tab = "settings"
)

// ValidScreen reports whether s is a member of the closed screen set.
func ValidScreen(s Screen) bool {
	switch s {
	case ScreenOnboarding, ScreenContactDetails, ScreenPersonalDetails,
		ScreenMedicalQuestions, ScreenAssessmentIntro, ScreenEligibilityQuestionnaire,
		ScreenFinancialIntro, ScreenFinancialQuestionnaire, ScreenHome,
		ScreenResultsDetail, ScreenChecklistTimeline, ScreenChecklistItemEdit,
		ScreenChecklistDocuments, ScreenReferralNavigator, ScreenReferralView:
		return true
	}
	return false
}

func ValidTab(t Tab) bool {
	return t == TabPathway || t == TabChat || t == TabSettings
}

// ContactDraft caches the contact-details wizard step.
type ContactDraft struct {
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	AddressLine string `json:"addressLine,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
}

// PersonalDraft caches the personal-details wizard step.
type PersonalDraft struct {
	FirstName string  `json:"firstName,omitempty"`
	LastName  string  `json:"lastName,omitempty"`
	BirthDate string  `json:"birthDate,omitempty"`
	Sex       string  `json:"sex,omitempty"`
	HeightCm  float64 `json:"heightCm,omitempty"`
	WeightKg  float64 `json:"weightKg,omitempty"`
}

// MedicalDraft caches the medical-questions wizard step.
type MedicalDraft struct {
	Conditions  []string `json:"conditions,omitempty"`
	Medications []string `json:"medications,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

// ChecklistEditingPointer identifies the checklist item being edited and
// carries a snapshot of it; checklist-item-edit and checklist-documents
// cannot render without it.
type ChecklistEditingPointer struct {
	ItemID string                     `json:"itemId"`
	Item   registry_dto.ChecklistItem `json:"item"`
}

// NavigationState is the transient per-session state driving the screen
// tree. It is reset wholesale on patient deletion; wizard drafts are
// discarded only once the final wizard step persists successfully.
type NavigationState struct {
	CurrentScreen      Screen                   `json:"currentScreen"`
	ActiveTab          Tab                      `json:"activeTab"`
	ContactDraft       *ContactDraft            `json:"contactDraft,omitempty"`
	PersonalDraft      *PersonalDraft           `json:"personalDraft,omitempty"`
	MedicalDraft       *MedicalDraft            `json:"medicalDraft,omitempty"`
	FinancialDraft     map[string]*string       `json:"financialDraft,omitempty"`
	FirstFinancialFlow bool                     `json:"firstFinancialFlow"`
	Editing            *ChecklistEditingPointer `json:"editing,omitempty"`
}

// NewNavigationState is the post-onboarding-reset state.
func NewNavigationState() *NavigationState {
	return &NavigationState{
		CurrentScreen: ScreenOnboarding,
		ActiveTab:     TabPathway,
	}
}
