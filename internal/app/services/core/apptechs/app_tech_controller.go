package appTechs

import (
	"context"
	"fmt"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/exceptions"
	"labrequest-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppTechController struct {
	Log            *zap.Logger
	AppTechUsecase contracts.AppTechUsecase
}

func NewAppTechController(logger *zap.Logger, appTechUsecase contracts.AppTechUsecase) *AppTechController {
	return &AppTechController{
		Log:            logger,
		AppTechUsecase: appTechUsecase,
	}
}

func (ctrl *AppTechController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppTechUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppTechSuccessMessage, result)
}

func (ctrl *AppTechController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateAppTech{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.AppTechUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateLookupSuccessMessage, "app-tech"), result)
}

func (ctrl *AppTechController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appTechID := chi.URLParam(r, "appTechID")
	if appTechID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "appTechID"))
		return
	}

	request := &requests.CreateAppTech{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.AppTechUsecase.Update(ctx, appTechID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateLookupSuccessMessage, "app-tech"), result)
}
