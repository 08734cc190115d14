package eligibility

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

type EligibilityController struct {
	Log                *zap.Logger
	EligibilityUsecase contracts.EligibilityUsecase
}

func NewEligibilityController(logger *zap.Logger, eligibilityUsecase contracts.EligibilityUsecase) *EligibilityController {
	return &EligibilityController{
		Log:                logger,
		EligibilityUsecase: eligibilityUsecase,
	}
}

func (ctrl *EligibilityController) SubmitQuestionnaire(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitQuestionnaire)
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

	summary, err := ctrl.EligibilityUsecase.SubmitQuestionnaire(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuestionnaireSubmittedSuccess, summary)
}

func (ctrl *EligibilityController) GetStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := ctrl.EligibilityUsecase.GetStatus(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatusGetSuccess, summary)
}
