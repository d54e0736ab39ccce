package ioNumbers

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

type IONumberController struct {
	Log             *zap.Logger
	IONumberUsecase contracts.IONumberUsecase
}

func NewIONumberController(logger *zap.Logger, ioNumberUsecase contracts.IONumberUsecase) *IONumberController {
	return &IONumberController{
		Log:             logger,
		IONumberUsecase: ioNumberUsecase,
	}
}

func (ctrl *IONumberController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IONumberUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIONumberSuccessMessage, result)
}

func (ctrl *IONumberController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateIONumber{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.IONumberUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateLookupSuccessMessage, "IO number"), result)
}

func (ctrl *IONumberController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	ioNumberID := chi.URLParam(r, "ioNumberID")
	if ioNumberID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "ioNumberID"))
		return
	}

	request := &requests.CreateIONumber{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.IONumberUsecase.Update(ctx, ioNumberID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateLookupSuccessMessage, "IO number"), result)
}
