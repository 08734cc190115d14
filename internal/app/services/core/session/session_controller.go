package session

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
}

func NewSessionController(logger *zap.Logger, sessionService contracts.SessionService) *SessionController {
	return &SessionController{
		Log:            logger,
		SessionService: sessionService,
	}
}

func (ctrl *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SessionService.CreateSession(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SessionCreatedSuccess, result)
}
