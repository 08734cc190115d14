package registry_dto

// ProviderContact is one clinical contact attached to a referral.
type ProviderContact struct {
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
}

// Referral is the referral sub-profile. Its lifecycle is independent of
// the patient record and it may not exist yet.
type Referral struct {
	ID             string            `json:"id,omitempty"`
	PatientID      string            `json:"patientId"`
	HasReferral    bool              `json:"hasReferral"`
	ReferralStatus string            `json:"referralStatus,omitempty"`
	ReferralSource string            `json:"referralSource,omitempty"`
	Location       string            `json:"location,omitempty"`
	Providers      []ProviderContact `json:"providers,omitempty"`
	UpdatedAt      string            `json:"updatedAt,omitempty"`
}
