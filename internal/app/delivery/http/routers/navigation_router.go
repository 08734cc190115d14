package routers

import (
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/services/core/navigation"

	"github.com/go-chi/chi/v5"
)

func attachNavigationRoutes(router chi.Router, middlewares *middlewares.Middlewares, navigationController *navigation.NavigationController) {
	router.With(middlewares.SessionRequired).Get("/", navigationController.Resolve)
	router.With(middlewares.SessionRequired).Post("/advance", navigationController.Advance)
	router.With(middlewares.SessionRequired).Post("/back", navigationController.Back)
	router.With(middlewares.SessionRequired).Post("/tab", navigationController.SwitchTab)
	router.With(middlewares.SessionRequired).Post("/open", navigationController.Open)
	router.With(middlewares.SessionRequired).Post("/checklist-items/{itemID}/open", navigationController.OpenChecklistItem)
	router.With(middlewares.SessionRequired).Post("/checklist-items/documents", navigationController.ShowItemDocuments)
	router.With(middlewares.SessionRequired).Post("/checklist-items/close", navigationController.CloseChecklistItem)
}
