package pathway

import (
	"context"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type PathwayController struct {
	Log            *zap.Logger
	PathwayUsecase contracts.PathwayUsecase
}

func NewPathwayController(logger *zap.Logger, pathwayUsecase contracts.PathwayUsecase) *PathwayController {
	return &PathwayController{
		Log:            logger,
		PathwayUsecase: pathwayUsecase,
	}
}

func (ctrl *PathwayController) GetPathway(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view, err := ctrl.PathwayUsecase.GetPathway(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PathwayGetSuccess, view)
}

func (ctrl *PathwayController) GetReferral(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	referral, err := ctrl.PathwayUsecase.GetReferral(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReferralGetSuccess, referral)
}
