package patients

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/responses"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/registry_dto"
	"strings"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Log           *zap.Logger
	PatientClient contracts.PatientRegistryClient
}

func NewPatientUsecase(logger *zap.Logger, patientClient contracts.PatientRegistryClient) contracts.PatientUsecase {
	return &patientUsecase{
		Log:           logger,
		PatientClient: patientClient,
	}
}

func (uc *patientUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.PatientProfile, error) {
	if session.PatientID == "" {
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	patient, err := uc.PatientClient.GetPatientByID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		uc.Log.Warn("patientUsecase.GetProfile patient pointer is stale",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.String(constvars.LoggingPatientIDKey, session.PatientID),
		)
		return nil, exceptions.ErrPatientNotOnboarded(nil)
	}

	return &responses.PatientProfile{
		PatientID:   patient.ID,
		Fullname:    strings.TrimSpace(patient.FirstName + " " + patient.LastName),
		BirthDate:   patient.BirthDate,
		Sex:         patient.Sex,
		HeightCm:    patient.HeightCm,
		WeightKg:    patient.WeightKg,
		Email:       patient.Email,
		PhoneNumber: patient.PhoneNumber,
		HomeAddress: buildHomeAddress(patient),
	}, nil
}

// BuildPatientPayload folds the three wizard drafts into one registry
// patient resource. Nil drafts contribute nothing; the caller is
// responsible for having collected all mandatory steps first.
func (uc *patientUsecase) BuildPatientPayload(contact *models.ContactDraft, personal *models.PersonalDraft, medical *models.MedicalDraft) *registry_dto.Patient {
	patient := new(registry_dto.Patient)

	if personal != nil {
		patient.FirstName = personal.FirstName
		patient.LastName = personal.LastName
		patient.BirthDate = personal.BirthDate
		patient.Sex = personal.Sex
		patient.HeightCm = personal.HeightCm
		patient.WeightKg = personal.WeightKg
	}
	if contact != nil {
		patient.Email = contact.Email
		patient.PhoneNumber = contact.PhoneNumber
		patient.AddressLine = contact.AddressLine
		patient.City = contact.City
		patient.PostalCode = contact.PostalCode
	}
	if medical != nil {
		patient.Conditions = medical.Conditions
		patient.Medications = medical.Medications
		patient.Allergies = medical.Allergies
	}

	return patient
}

func buildHomeAddress(patient *registry_dto.Patient) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{patient.AddressLine, patient.City, patient.PostalCode} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
