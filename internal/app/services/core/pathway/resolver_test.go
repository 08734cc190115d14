package pathway

import (
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/registry_dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStage(t *testing.T) {
	t.Run("No Signals Default To Identification", func(t *testing.T) {
		assert.Equal(t, models.StageIdentification, ResolveStage(nil, nil, nil))
	})

	t.Run("Registry Stage Is Authoritative", func(t *testing.T) {
		status := &registry_dto.StatusSummary{PathwayStage: "transplantation"}
		referral := &registry_dto.Referral{HasReferral: true}
		progress := &models.ChecklistProgressSummary{TotalSteps: 5, CompletedSteps: 1}

		assert.Equal(t, models.StageTransplant, ResolveStage(status, referral, progress),
			"an explicit registry stage must override every local signal")
	})

	t.Run("Registry Stage Can Regress", func(t *testing.T) {
		status := &registry_dto.StatusSummary{PathwayStage: "identification"}
		progress := &models.ChecklistProgressSummary{TotalSteps: 5, CompletedSteps: 5}

		assert.Equal(t, models.StageIdentification, ResolveStage(status, nil, progress),
			"the resolver is not a ratchet")
	})

	t.Run("Invalid Registry Stage Falls Back", func(t *testing.T) {
		status := &registry_dto.StatusSummary{PathwayStage: "space-flight"}
		progress := &models.ChecklistProgressSummary{TotalSteps: 3, CompletedSteps: 1}

		assert.Equal(t, models.StageEvaluation, ResolveStage(status, nil, progress),
			"unknown stage values must fall through to local derivation")
	})

	t.Run("Referral Received", func(t *testing.T) {
		status := &registry_dto.StatusSummary{}
		referral := &registry_dto.Referral{HasReferral: true}

		assert.Equal(t, models.StageReferral, ResolveStage(status, referral, nil))
	})

	t.Run("Incomplete Checklist Is Evaluation", func(t *testing.T) {
		status := &registry_dto.StatusSummary{}
		progress := &models.ChecklistProgressSummary{TotalSteps: 4, CompletedSteps: 2}

		assert.Equal(t, models.StageEvaluation, ResolveStage(status, nil, progress))
	})

	t.Run("Complete Checklist Is Selection", func(t *testing.T) {
		status := &registry_dto.StatusSummary{}
		progress := &models.ChecklistProgressSummary{TotalSteps: 4, CompletedSteps: 4}

		assert.Equal(t, models.StageSelection, ResolveStage(status, nil, progress))
	})

	t.Run("Status Without Other Signals Is Identification", func(t *testing.T) {
		status := &registry_dto.StatusSummary{HasRelative: true}

		assert.Equal(t, models.StageIdentification, ResolveStage(status, nil, nil))
	})

	t.Run("Idempotent For Identical Inputs", func(t *testing.T) {
		status := &registry_dto.StatusSummary{PathwayStage: "evaluation"}
		referral := &registry_dto.Referral{HasReferral: true}
		progress := &models.ChecklistProgressSummary{TotalSteps: 2, CompletedSteps: 2}

		first := ResolveStage(status, referral, progress)
		second := ResolveStage(status, referral, progress)

		assert.Equal(t, first, second)
		assert.Equal(t, "evaluation", status.PathwayStage, "inputs must not be mutated")
	})
}
