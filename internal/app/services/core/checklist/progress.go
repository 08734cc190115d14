package checklist

import (
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/registry_dto"
	"sort"
)

// ComputeProgress derives the ordered progress summary for a checklist.
// Items are stable-sorted ascending by Order (ties keep input position).
// The current step is the first incomplete item, 1-based; an
// all-complete list collapses onto the last step. An empty list yields
// zero current step and zero percentage.
func ComputeProgress(items []registry_dto.ChecklistItem) models.ChecklistProgressSummary {
	totalSteps := len(items)
	if totalSteps == 0 {
		return models.ChecklistProgressSummary{
			CurrentStep:      0,
			TotalSteps:       0,
			CompletedSteps:   0,
			CurrentStepTitle: models.AllCompleteTitle,
			Percentage:       0,
		}
	}

	sorted := make([]registry_dto.ChecklistItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	completedSteps := 0
	currentStepIndex := -1
	for i, item := range sorted {
		if item.IsComplete {
			completedSteps++
		} else if currentStepIndex == -1 {
			currentStepIndex = i
		}
	}

	currentStepTitle := models.AllCompleteTitle
	if currentStepIndex == -1 {
		currentStepIndex = totalSteps - 1
	} else {
		currentStepTitle = sorted[currentStepIndex].Title
	}

	return models.ChecklistProgressSummary{
		CurrentStep:      currentStepIndex + 1,
		TotalSteps:       totalSteps,
		CompletedSteps:   completedSteps,
		CurrentStepTitle: currentStepTitle,
		Percentage:       roundPercentage(completedSteps, totalSteps),
	}
}

func roundPercentage(completed, total int) int {
	return (100*completed + total/2) / total
}
