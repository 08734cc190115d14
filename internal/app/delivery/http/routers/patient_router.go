package routers

import (
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/services/core/navigation"
	"navigator-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController, navigationController *navigation.NavigationController) {
	router.With(middlewares.SessionRequired).Get("/", patientController.GetProfile)
	router.With(middlewares.SessionRequired).Delete("/", navigationController.DeletePatient)
}
