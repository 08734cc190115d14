package responses

import "navigator-service/internal/app/models"

// NavigationView is what thin clients render from. RequiredContext lists
// the context keys the current screen needs (e.g. the editing pointer),
// so clients can assert they hold everything before rendering.
type NavigationView struct {
	CurrentScreen      models.Screen                   `json:"currentScreen"`
	ActiveTab          models.Tab                      `json:"activeTab"`
	RequiredContext    []string                        `json:"requiredContext,omitempty"`
	ContactDraft       *models.ContactDraft            `json:"contactDraft,omitempty"`
	PersonalDraft      *models.PersonalDraft           `json:"personalDraft,omitempty"`
	MedicalDraft       *models.MedicalDraft            `json:"medicalDraft,omitempty"`
	FinancialDraft     map[string]*string              `json:"financialDraft,omitempty"`
	FirstFinancialFlow bool                            `json:"firstFinancialFlow"`
	Editing            *models.ChecklistEditingPointer `json:"editing,omitempty"`
	PatientID          string                          `json:"patientId,omitempty"`
}
