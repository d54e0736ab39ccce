package testRequests

import (
	"context"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/exceptions"
	"labrequest-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TestRequestController struct {
	Log                *zap.Logger
	TestRequestUsecase contracts.TestRequestUsecase
}

func NewTestRequestController(logger *zap.Logger, testRequestUsecase contracts.TestRequestUsecase) *TestRequestController {
	return &TestRequestController{
		Log:                logger,
		TestRequestUsecase: testRequestUsecase,
	}
}

func (ctrl *TestRequestController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pagination := utils.BuildPaginationRequest(r)
	result, responsePagination, err := ctrl.TestRequestUsecase.FindAll(ctx, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetTestRequestSuccessMessage, responsePagination, result)
}

func (ctrl *TestRequestController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	requestID := chi.URLParam(r, "requestID")
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "requestID"))
		return
	}

	result, err := ctrl.TestRequestUsecase.FindByID(ctx, requestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTestRequestSuccessMessage, result)
}
