package wizardflow

import (
	"context"
	"fmt"
	"io"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/exceptions"
	"labrequest-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WizardController struct {
	Log           *zap.Logger
	WizardUsecase contracts.WizardUsecase
}

func NewWizardController(logger *zap.Logger, wizardUsecase contracts.WizardUsecase) *WizardController {
	return &WizardController{
		Log:           logger,
		WizardUsecase: wizardUsecase,
	}
}

// session returns the wizard session token from the request header. Every
// endpoint except Start refuses requests without one.
func (ctrl *WizardController) session(r *http.Request) (string, error) {
	token := r.Header.Get(constvars.HeaderXWizardSession)
	if token == "" {
		return "", exceptions.ErrWizardSessionMissing()
	}
	return token, nil
}

func (ctrl *WizardController) sampleIndex(r *http.Request) (int, error) {
	indexStr := chi.URLParam(r, "index")
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return 0, exceptions.ErrURLParamValidation(err, "index")
	}
	return index, nil
}

func (ctrl *WizardController) Start(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	flowKind := chi.URLParam(r, "flowKind")
	sessionToken := r.Header.Get(constvars.HeaderXWizardSession)
	if sessionToken == "" {
		sessionToken = utils.GenerateWizardSessionToken()
	}

	result, err := ctrl.WizardUsecase.Start(ctx, flowKind, sessionToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderXWizardSession, sessionToken)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WizardStartSuccessMessage, result)
}

func (ctrl *WizardController) State(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.WizardUsecase.State(ctx, chi.URLParam(r, "flowKind"), sessionToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStateSuccessMessage, result)
}

func (ctrl *WizardController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.UpdateDraft{}
	if err := utils.ParseAndValidateRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.WizardUsecase.UpdateDraft(ctx, chi.URLParam(r, "flowKind"), sessionToken, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardDraftSuccessMessage, result)
}

func (ctrl *WizardController) Next(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.WizardUsecase.Next(ctx, chi.URLParam(r, "flowKind"), sessionToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.WizardNextSuccessMessage, result.CurrentStep)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *WizardController) Previous(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.WizardUsecase.Previous(ctx, chi.URLParam(r, "flowKind"), sessionToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.WizardPreviousSuccessMessage, result.CurrentStep)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *WizardController) DeriveSampleName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	buffer := &requests.SampleBuffer{}
	if err := utils.ParseAndValidateRequestBody(r, buffer); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.WizardUsecase.DeriveSampleName(ctx, buffer)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardDeriveSuccessMessage, result)
}

func (ctrl *WizardController) AddSample(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	buffer := &requests.SampleBuffer{}
	if err := utils.ParseAndValidateRequestBody(r, buffer); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, message, err := ctrl.WizardUsecase.AddSample(ctx, chi.URLParam(r, "flowKind"), sessionToken, buffer)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, result)
}

func (ctrl *WizardController) UpdateSample(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	index, err := ctrl.sampleIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	buffer := &requests.SampleBuffer{}
	if err := utils.ParseAndValidateRequestBody(r, buffer); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, message, err := ctrl.WizardUsecase.UpdateSample(ctx, chi.URLParam(r, "flowKind"), sessionToken, index, buffer)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *WizardController) RemoveSample(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	index, err := ctrl.sampleIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, message, err := ctrl.WizardUsecase.RemoveSample(ctx, chi.URLParam(r, "flowKind"), sessionToken, index)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *WizardController) CopySample(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	index, err := ctrl.sampleIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, message, err := ctrl.WizardUsecase.CopySample(ctx, chi.URLParam(r, "flowKind"), sessionToken, index)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *WizardController) EditSample(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	index, err := ctrl.sampleIndex(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, message, err := ctrl.WizardUsecase.EditSample(ctx, chi.URLParam(r, "flowKind"), sessionToken, index)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *WizardController) CancelEditSample(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.WizardUsecase.CancelEditSample(ctx, chi.URLParam(r, "flowKind"), sessionToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SampleEditCancelledMessage, result)
}

func (ctrl *WizardController) ExportSamplesCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	flowKind := chi.URLParam(r, "flowKind")
	csvText, err := ctrl.WizardUsecase.ExportSamplesCSV(ctx, flowKind, sessionToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	fileName := fmt.Sprintf("%s-samples-%s.csv", flowKind, time.Now().Format("20060102"))
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCSV)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(constvars.StatusOK)
	_, _ = w.Write([]byte(csvText))
}

// ImportSamplesCSV accepts either a text/csv body or a multipart form with a
// "file" field.
func (ctrl *WizardController) ImportSamplesCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	csvText, err := ctrl.readCSVBody(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, imported, err := ctrl.WizardUsecase.ImportSamplesCSV(ctx, chi.URLParam(r, "flowKind"), sessionToken, csvText)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.SamplesImportedMessage, imported)
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *WizardController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionToken, err := ctrl.session(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.WizardUsecase.Submit(ctx, chi.URLParam(r, "flowKind"), sessionToken)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := fmt.Sprintf(constvars.SubmitRequestSuccessMessage, result.RequestNumber)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, result)
}

func (ctrl *WizardController) readCSVBody(r *http.Request) (string, error) {
	contentType := r.Header.Get(constvars.HeaderContentType)
	if strings.HasPrefix(contentType, constvars.MIMEMultipartForm) {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return "", exceptions.ErrCannotParseMultipartForm(err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", exceptions.ErrCannotParseMultipartForm(err)
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			return "", exceptions.ErrCannotParseMultipartForm(err)
		}
		return string(content), nil
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return string(content), nil
}
