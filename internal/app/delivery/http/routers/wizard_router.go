package routers

import (
	"labrequest-service/internal/app/services/core/wizardflow"

	"github.com/go-chi/chi/v5"
)

func attachWizardRoutes(router chi.Router, wizardController *wizardflow.WizardController) {
	router.Route("/{flowKind}", func(r chi.Router) {
		r.Post("/start", wizardController.Start)
		r.Get("/state", wizardController.State)
		r.Patch("/draft", wizardController.UpdateDraft)
		r.Post("/next", wizardController.Next)
		r.Post("/previous", wizardController.Previous)
		r.Post("/submit", wizardController.Submit)

		r.Route("/samples", func(r chi.Router) {
			r.Post("/", wizardController.AddSample)
			r.Post("/derive", wizardController.DeriveSampleName)
			r.Get("/export", wizardController.ExportSamplesCSV)
			r.Post("/import", wizardController.ImportSamplesCSV)
			r.Put("/{index}", wizardController.UpdateSample)
			r.Delete("/{index}", wizardController.RemoveSample)
			r.Post("/{index}/copy", wizardController.CopySample)
			r.Post("/{index}/edit", wizardController.EditSample)
			r.Post("/cancel-edit", wizardController.CancelEditSample)
		})
	})
}
