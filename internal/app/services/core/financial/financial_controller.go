package financial

import (
	"context"
	"encoding/json"
	"navigator-service/internal/app/contracts"
	"navigator-service/internal/app/models"
	"navigator-service/internal/pkg/constvars"
	"navigator-service/internal/pkg/dto/requests"
	"navigator-service/internal/pkg/exceptions"
	"navigator-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type FinancialController struct {
	Log              *zap.Logger
	FinancialUsecase contracts.FinancialUsecase
}

func NewFinancialController(logger *zap.Logger, financialUsecase contracts.FinancialUsecase) *FinancialController {
	return &FinancialController{
		Log:              logger,
		FinancialUsecase: financialUsecase,
	}
}

func (ctrl *FinancialController) GetFinancialProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view, err := ctrl.FinancialUsecase.LoadProfile(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FinancialProfileGetSuccess, view)
}

func (ctrl *FinancialController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	request := new(requests.FinancialDraft)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.FinancialUsecase.UpdateDraft(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.FinancialDraftAcceptedNotice, nil)
}

func (ctrl *FinancialController) Submit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitFinancial)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.FinancialUsecase.Submit(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FinancialSubmittedSuccess, nil)
}
