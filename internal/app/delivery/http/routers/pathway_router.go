package routers

import (
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/services/core/pathway"

	"github.com/go-chi/chi/v5"
)

func attachPathwayRoutes(router chi.Router, middlewares *middlewares.Middlewares, pathwayController *pathway.PathwayController) {
	router.With(middlewares.SessionRequired).Get("/", pathwayController.GetPathway)
	router.With(middlewares.SessionRequired).Get("/referral", pathwayController.GetReferral)
}
