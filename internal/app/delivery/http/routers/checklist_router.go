package routers

import (
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/services/core/checklist"

	"github.com/go-chi/chi/v5"
)

func attachChecklistRoutes(router chi.Router, middlewares *middlewares.Middlewares, checklistController *checklist.ChecklistController) {
	router.With(middlewares.SessionRequired).Get("/", checklistController.GetChecklist)
	router.With(middlewares.SessionRequired).Patch("/items/{itemID}", checklistController.PatchItem)
	router.With(middlewares.SessionRequired).Post("/items/{itemID}/documents", checklistController.AttachDocument)
}
