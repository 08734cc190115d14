package contracts

import (
	"context"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/registry_dto"
)

// PatientRegistryClient is the registry surface for the patient record.
// GetPatientByID returns (nil, nil) when the registry answers 404:
// absence is a normal branch, never an error.
type PatientRegistryClient interface {
	CreatePatient(ctx context.Context, request *registry_dto.Patient) (*registry_dto.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*registry_dto.Patient, error)
	UpdatePatient(ctx context.Context, request *registry_dto.Patient) (*registry_dto.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}

type PatientUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.PatientProfile, error)
	BuildPatientPayload(contact *models.ContactDraft, personal *models.PersonalDraft, medical *models.MedicalDraft) *registry_dto.Patient
}
