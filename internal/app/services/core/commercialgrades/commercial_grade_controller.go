package commercialGrades

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

type CommercialGradeController struct {
	Log                    *zap.Logger
	CommercialGradeUsecase contracts.CommercialGradeUsecase
}

func NewCommercialGradeController(logger *zap.Logger, commercialGradeUsecase contracts.CommercialGradeUsecase) *CommercialGradeController {
	return &CommercialGradeController{
		Log:                    logger,
		CommercialGradeUsecase: commercialGradeUsecase,
	}
}

func (ctrl *CommercialGradeController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CommercialGradeUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCommercialGradeSuccessMessage, result)
}

func (ctrl *CommercialGradeController) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateCommercialGrade{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.CommercialGradeUsecase.Create(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateLookupSuccessMessage, "commercial grade"), result)
}

func (ctrl *CommercialGradeController) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	gradeID := chi.URLParam(r, "gradeID")
	if gradeID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "gradeID"))
		return
	}

	request := &requests.CreateCommercialGrade{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.CommercialGradeUsecase.Update(ctx, gradeID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateLookupSuccessMessage, "commercial grade"), result)
}
