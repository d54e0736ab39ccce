package attachments

import (
	"context"
	"labrequest-service/internal/app/config"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/dto/responses"
	"labrequest-service/internal/pkg/exceptions"
	"labrequest-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// AttachmentController stores uploaded files in object storage and hands the
// object name back. The client records it on the draft through the wizard's
// draft update endpoint.
type AttachmentController struct {
	Log          *zap.Logger
	Storage      contracts.Storage
	DriverConfig *config.DriverConfig
	MaxSizeMB    int64
}

func NewAttachmentController(
	logger *zap.Logger,
	storage contracts.Storage,
	driverConfig *config.DriverConfig,
	maxSizeMB int64,
) *AttachmentController {
	return &AttachmentController{
		Log:          logger,
		Storage:      storage,
		DriverConfig: driverConfig,
		MaxSizeMB:    maxSizeMB,
	}
}

func (ctrl *AttachmentController) Upload(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	maxBytes := ctrl.MaxSizeMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	objectName, err := ctrl.Storage.UploadFile(ctx, file, fileHeader, ctrl.DriverConfig.Minio.BucketName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result := responses.UploadedAttachment{ObjectName: objectName}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccess, result)
}
