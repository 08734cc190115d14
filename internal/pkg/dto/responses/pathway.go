package responses

import (
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/registry_dto"
)

// PathwayView is the home pathway tab payload: the single resolved stage
// plus the signals it was derived from.
type PathwayView struct {
	Stage       models.PathwayStage              `json:"stage"`
	Status      *registry_dto.StatusSummary      `json:"status,omitempty"`
	Referral    *registry_dto.Referral           `json:"referral,omitempty"`
	Progress    *models.ChecklistProgressSummary `json:"progress,omitempty"`
	HasReferral bool                             `json:"hasReferral"`
}
