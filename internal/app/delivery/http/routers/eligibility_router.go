package routers

import (
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/services/core/eligibility"

	"github.com/go-chi/chi/v5"
)

func attachEligibilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, eligibilityController *eligibility.EligibilityController) {
	router.With(middlewares.SessionRequired).Post("/", eligibilityController.SubmitQuestionnaire)
	router.With(middlewares.SessionRequired).Get("/status", eligibilityController.GetStatus)
}
