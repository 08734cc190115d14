package routers

import (
	"navigator-service/internal/app/delivery/http/middlewares"
	"navigator-service/internal/app/services/core/session"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, mintLimiter *middlewares.RateLimiter, sessionController *session.SessionController) {
	router.With(mintLimiter.Limit).Post("/", sessionController.CreateSession)
}
