package responses

// PatientProfile is the settings-tab view of the persisted patient.
type PatientProfile struct {
	PatientID   string  `json:"patientId"`
	Fullname    string  `json:"fullname"`
	BirthDate   string  `json:"birthDate"`
	Sex         string  `json:"sex"`
	HeightCm    float64 `json:"heightCm,omitempty"`
	WeightKg    float64 `json:"weightKg,omitempty"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	HomeAddress string  `json:"homeAddress,omitempty"`
}
