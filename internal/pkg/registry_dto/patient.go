package registry_dto

// Patient is the registry's patient resource. ID is assigned by the
// registry on create and must be treated as immutable afterwards.
type Patient struct {
	ID          string   `json:"id,omitempty"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	BirthDate   string   `json:"birthDate"`
	Sex         string   `json:"sex"`
	HeightCm    float64  `json:"heightCm,omitempty"`
	WeightKg    float64  `json:"weightKg,omitempty"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	AddressLine string   `json:"addressLine,omitempty"`
	City        string   `json:"city,omitempty"`
	PostalCode  string   `json:"postalCode,omitempty"`
	Conditions  []string `json:"conditions,omitempty"`
	Medications []string `json:"medications,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}
