package checklist

import (
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/registry_dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	t.Run("Five Items Two Complete", func(t *testing.T) {
		items := []registry_dto.ChecklistItem{
			{ID: "1", Title: "Referral letter", Order: 1, IsComplete: true},
			{ID: "2", Title: "Blood panel", Order: 2, IsComplete: true},
			{ID: "3", Title: "Cardiac workup", Order: 3, IsComplete: false},
			{ID: "4", Title: "Imaging", Order: 4, IsComplete: false},
			{ID: "5", Title: "Committee review", Order: 5, IsComplete: false},
		}

		progress := ComputeProgress(items)

		assert.Equal(t, 3, progress.CurrentStep, "current step should be the first incomplete item")
		assert.Equal(t, 5, progress.TotalSteps)
		assert.Equal(t, 2, progress.CompletedSteps)
		assert.Equal(t, "Cardiac workup", progress.CurrentStepTitle)
		assert.Equal(t, 40, progress.Percentage)
	})

	t.Run("Empty List", func(t *testing.T) {
		progress := ComputeProgress(nil)

		assert.Equal(t, 0, progress.CurrentStep)
		assert.Equal(t, 0, progress.TotalSteps)
		assert.Equal(t, 0, progress.CompletedSteps)
		assert.Equal(t, models.AllCompleteTitle, progress.CurrentStepTitle)
		assert.Equal(t, 0, progress.Percentage, "zero items must not divide by zero")
	})

	t.Run("All Complete Collapses Onto Last Step", func(t *testing.T) {
		items := []registry_dto.ChecklistItem{
			{ID: "1", Title: "Referral letter", Order: 1, IsComplete: true},
			{ID: "2", Title: "Blood panel", Order: 2, IsComplete: true},
		}

		progress := ComputeProgress(items)

		assert.Equal(t, 2, progress.CurrentStep)
		assert.Equal(t, 2, progress.CompletedSteps)
		assert.Equal(t, models.AllCompleteTitle, progress.CurrentStepTitle)
		assert.Equal(t, 100, progress.Percentage)
	})

	t.Run("Unsorted Sparse Orders Are Sorted First", func(t *testing.T) {
		items := []registry_dto.ChecklistItem{
			{ID: "c", Title: "Third", Order: 30, IsComplete: false},
			{ID: "a", Title: "First", Order: 10, IsComplete: true},
			{ID: "b", Title: "Second", Order: 20, IsComplete: false},
		}

		progress := ComputeProgress(items)

		assert.Equal(t, 2, progress.CurrentStep, "ordering must follow Order, not input position")
		assert.Equal(t, "Second", progress.CurrentStepTitle)
		assert.Equal(t, 1, progress.CompletedSteps)
		assert.Equal(t, 33, progress.Percentage, "percentage should round to nearest integer")
	})

	t.Run("Input Slice Is Not Mutated", func(t *testing.T) {
		items := []registry_dto.ChecklistItem{
			{ID: "b", Title: "Second", Order: 2, IsComplete: false},
			{ID: "a", Title: "First", Order: 1, IsComplete: false},
		}

		ComputeProgress(items)

		assert.Equal(t, "b", items[0].ID, "caller's slice must keep its order")
	})

	t.Run("Completed Count Bounded By Total", func(t *testing.T) {
		items := []registry_dto.ChecklistItem{
			{ID: "1", Title: "One", Order: 1, IsComplete: true},
			{ID: "2", Title: "Two", Order: 2, IsComplete: false},
			{ID: "3", Title: "Three", Order: 3, IsComplete: true},
		}

		progress := ComputeProgress(items)

		assert.GreaterOrEqual(t, progress.CompletedSteps, 0)
		assert.LessOrEqual(t, progress.CompletedSteps, progress.TotalSteps)
		assert.Equal(t, 67, progress.Percentage)
	})
}
