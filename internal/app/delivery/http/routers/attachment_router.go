package routers

import (
	"labrequest-service/internal/app/services/core/attachments"

	"github.com/go-chi/chi/v5"
)

func attachAttachmentRoutes(router chi.Router, attachmentController *attachments.AttachmentController) {
	router.Post("/", attachmentController.Upload)
}
