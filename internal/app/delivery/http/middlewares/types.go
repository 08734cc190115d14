package middlewares

import (
	"navigator-service/internal/app/config"
	"navigator-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}
