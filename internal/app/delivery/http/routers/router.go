package routers

import (
	"fmt"
	"labrequest-service/internal/app/config"
	"labrequest-service/internal/app/delivery/http/middlewares"
	appTechs "labrequest-service/internal/app/services/core/apptechs"
	"labrequest-service/internal/app/services/core/attachments"
	"labrequest-service/internal/app/services/core/capabilities"
	commercialGrades "labrequest-service/internal/app/services/core/commercialgrades"
	ioNumbers "labrequest-service/internal/app/services/core/ionumbers"
	"labrequest-service/internal/app/services/core/locations"
	plantReactors "labrequest-service/internal/app/services/core/plantreactors"
	testMethods "labrequest-service/internal/app/services/core/testmethods"
	testRequests "labrequest-service/internal/app/services/core/testrequests"
	"labrequest-service/internal/app/services/core/users"
	"labrequest-service/internal/app/services/core/wizardflow"
	"labrequest-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	locationController *locations.LocationController,
	capabilityController *capabilities.CapabilityController,
	testMethodController *testMethods.TestMethodController,
	userController *users.UserController,
	commercialGradeController *commercialGrades.CommercialGradeController,
	ioNumberController *ioNumbers.IONumberController,
	plantReactorController *plantReactors.PlantReactorController,
	appTechController *appTechs.AppTechController,
	testRequestController *testRequests.TestRequestController,
	wizardController *wizardflow.WizardController,
	attachmentController *attachments.AttachmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID, constvars.HeaderXWizardSession},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID, constvars.HeaderXWizardSession, constvars.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceLocations, func(r chi.Router) {
				attachLocationRoutes(r, locationController)
			})

			r.Route("/"+constvars.ResourceCapabilities, func(r chi.Router) {
				attachCapabilityRoutes(r, capabilityController)
			})

			r.Route("/"+constvars.ResourceTestMethods, func(r chi.Router) {
				attachTestMethodRoutes(r, testMethodController)
			})

			r.Route("/"+constvars.ResourceUsers, func(r chi.Router) {
				attachUserRoutes(r, userController)
			})

			r.Route("/"+constvars.ResourceCommercialGrades, func(r chi.Router) {
				attachCommercialGradeRoutes(r, commercialGradeController)
			})

			r.Route("/"+constvars.ResourceIONumbers, func(r chi.Router) {
				attachIONumberRoutes(r, ioNumberController)
			})

			r.Route("/"+constvars.ResourcePlantReactors, func(r chi.Router) {
				attachPlantReactorRoutes(r, plantReactorController)
			})

			r.Route("/"+constvars.ResourceAppTechs, func(r chi.Router) {
				attachAppTechRoutes(r, appTechController)
			})

			r.Route("/"+constvars.ResourceTestRequests, func(r chi.Router) {
				attachTestRequestRoutes(r, testRequestController)
			})

			r.Route("/"+constvars.ResourceWizard, func(r chi.Router) {
				r.Use(middlewares.WizardLimiter.Limit)
				attachWizardRoutes(r, wizardController)
			})

			r.Route("/"+constvars.ResourceAttachments, func(r chi.Router) {
				attachAttachmentRoutes(r, attachmentController)
			})
		})
	})
}
