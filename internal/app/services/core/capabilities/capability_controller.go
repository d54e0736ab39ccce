package capabilities

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

type CapabilityController struct {
	Log               *zap.Logger
	CapabilityUsecase contracts.CapabilityUsecase
}

func NewCapabilityController(logger *zap.Logger, capabilityUsecase contracts.CapabilityUsecase) *CapabilityController {
	return &CapabilityController{
		Log:               logger,
		CapabilityUsecase: capabilityUsecase,
	}
}

func (ctrl *CapabilityController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CapabilityUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCapabilitySuccessMessage, result)
}

func (ctrl *CapabilityController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateCapability{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.CapabilityUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateLookupSuccessMessage, "capability"), result)
}

func (ctrl *CapabilityController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	capabilityID := chi.URLParam(r, "capabilityID")
	if capabilityID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "capabilityID"))
		return
	}

	request := &requests.CreateCapability{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.CapabilityUsecase.Update(ctx, capabilityID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateLookupSuccessMessage, "capability"), result)
}
