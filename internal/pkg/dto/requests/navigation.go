package requests

// ContactDetailsPayload is the contact-details wizard step body.
type ContactDetailsPayload struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=7,max=20"`
	AddressLine string `json:"addressLine,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
}

// PersonalDetailsPayload is the personal-details wizard step body.
type PersonalDetailsPayload struct {
	FirstName string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string  `json:"lastName" validate:"required,min=1,max=100"`
	BirthDate string  `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Sex       string  `json:"sex" validate:"required,oneof=female male other unknown"`
	HeightCm  float64 `json:"heightCm" validate:"omitempty,gt=0,lt=300"`
	WeightKg  float64 `json:"weightKg" validate:"omitempty,gt=0,lt=700"`
}

// MedicalQuestionsPayload is the medical-questions wizard step body.
type MedicalQuestionsPayload struct {
	Conditions  []string `json:"conditions,omitempty"`
	Medications []string `json:"medications,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
}

// AdvanceNavigation carries one forward step. Screen names the screen
// the client is advancing from; a mismatch with the stored state means
// the request is stale and is rejected without side effects. Exactly one
// step payload may accompany the matching wizard screen.
type AdvanceNavigation struct {
	Screen   string                   `json:"screen" validate:"required"`
	Contact  *ContactDetailsPayload   `json:"contact,omitempty"`
	Personal *PersonalDetailsPayload  `json:"personal,omitempty"`
	Medical  *MedicalQuestionsPayload `json:"medical,omitempty"`
}

// NavigateBack carries one back-press, again guarded by the origin screen.
type NavigateBack struct {
	Screen string `json:"screen" validate:"required"`
}

// SwitchTab selects the active home tab.
type SwitchTab struct {
	Tab string `json:"tab" validate:"required,oneof=pathway chat settings"`
}

// OpenScreen jumps from home to one of the detail screens.
type OpenScreen struct {
	Screen string `json:"screen" validate:"required,oneof=results-detail checklist-timeline referral-navigator referral-view"`
}
