package checklist

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

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChecklistController struct {
	Log              *zap.Logger
	ChecklistUsecase contracts.ChecklistUsecase
}

func NewChecklistController(logger *zap.Logger, checklistUsecase contracts.ChecklistUsecase) *ChecklistController {
	return &ChecklistController{
		Log:              logger,
		ChecklistUsecase: checklistUsecase,
	}
}

func (ctrl *ChecklistController) GetChecklist(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view, err := ctrl.ChecklistUsecase.GetChecklist(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChecklistGetSuccess, view)
}

func (ctrl *ChecklistController) PatchItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, constvars.URLParamItemID)

	request := new(requests.PatchChecklistItem)
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

	item, err := ctrl.ChecklistUsecase.PatchItem(ctx, session, itemID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChecklistItemPatchSuccess, item)
}

func (ctrl *ChecklistController) AttachDocument(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, constvars.URLParamItemID)

	request := new(requests.AttachDocument)
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

	item, err := ctrl.ChecklistUsecase.AttachDocument(ctx, session, itemID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DocumentAttachedSuccess, item)
}
