package routers

import (
	"fmt"
	"navigator-service/internal/app/config"
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/services/core/checklist"
	"navigator-service/internal/app/services/core/eligibility"
	"navigator-service/internal/app/services/core/financial"
	"navigator-service/internal/app/services/core/navigation"
	"navigator-service/internal/app/services/core/pathway"
	"navigator-service/internal/app/services/core/patients"
	"navigator-service/internal/app/services/core/session"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	sessionMintLimiter *middlewares.RateLimiter,
	sessionController *session.SessionController,
	navigationController *navigation.NavigationController,
	patientController *patients.PatientController,
	eligibilityController *eligibility.EligibilityController,
	checklistController *checklist.ChecklistController,
	financialController *financial.FinancialController,
	pathwayController *pathway.PathwayController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, sessionMintLimiter, sessionController)
			})

			r.Route("/navigation", func(r chi.Router) {
				attachNavigationRoutes(r, middlewares, navigationController)
			})

			r.Route("/profile", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, navigationController)
			})

			r.Route("/questionnaire", func(r chi.Router) {
				attachEligibilityRoutes(r, middlewares, eligibilityController)
			})

			r.Route("/checklist", func(r chi.Router) {
				attachChecklistRoutes(r, middlewares, checklistController)
			})

			r.Route("/financial", func(r chi.Router) {
				attachFinancialRoutes(r, middlewares, financialController)
			})

			r.Route("/pathway", func(r chi.Router) {
				attachPathwayRoutes(r, middlewares, pathwayController)
			})
		})
	})
}
