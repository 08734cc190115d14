package pathway

import (
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/registry_dto"
)

// ResolveStage reconciles the three registry signals into the single
// active pathway stage. A valid registry-provided stage wins outright;
// the local derivation only covers degraded reads where the status
// record is missing or carries no stage. Pure and idempotent: inputs
// are never mutated and identical inputs always yield the same stage.
func ResolveStage(status *registry_dto.StatusSummary, referral *registry_dto.Referral, progress *models.ChecklistProgressSummary) models.PathwayStage {
	if status != nil && status.PathwayStage != "" {
		if stage, ok := models.ParsePathwayStage(status.PathwayStage); ok {
			return stage
		}
	}

	if status == nil {
		return models.StageIdentification
	}
	if referral != nil && referral.HasReferral {
		return models.StageReferral
	}
	if progress != nil && progress.TotalSteps > 0 {
		if progress.Complete() {
			return models.StageSelection
		}
		return models.StageEvaluation
	}

	return models.StageIdentification
}
