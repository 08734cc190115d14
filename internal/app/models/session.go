package models

import "time"

// Session is one anonymous intake session. PatientID is empty until the
// onboarding wizard persists the patient on the registry, and is never
// reassigned afterwards within the same session.
type Session struct {
	SessionID string    `json:"sessionId"`
	PatientID string    `json:"patientId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
