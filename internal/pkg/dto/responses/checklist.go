package responses

import (
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/registry_dto"
)

// ChecklistView pairs the ordered items with their derived progress.
type ChecklistView struct {
	Items    []registry_dto.ChecklistItem    `json:"items"`
	Progress models.ChecklistProgressSummary `json:"progress"`
}
