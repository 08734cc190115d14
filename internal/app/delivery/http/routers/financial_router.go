package routers

import (
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/services/core/financial"

	"github.com/go-chi/chi/v5"
)

func attachFinancialRoutes(router chi.Router, middlewares *middlewares.Middlewares, financialController *financial.FinancialController) {
	router.With(middlewares.SessionRequired).Get("/", financialController.GetFinancialProfile)
	router.With(middlewares.SessionRequired).Put("/draft", financialController.UpdateDraft)
	router.With(middlewares.SessionRequired).Post("/submit", financialController.Submit)
}
