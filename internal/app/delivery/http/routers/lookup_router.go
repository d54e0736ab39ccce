package routers

import (
	appTechs "labrequest-service/internal/app/services/core/apptechs"
	"labrequest-service/internal/app/services/core/capabilities"
	commercialGrades "labrequest-service/internal/app/services/core/commercialgrades"
	ioNumbers "labrequest-service/internal/app/services/core/ionumbers"
	"labrequest-service/internal/app/services/core/locations"
	plantReactors "labrequest-service/internal/app/services/core/plantreactors"
	testMethods "labrequest-service/internal/app/services/core/testmethods"
	"labrequest-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachLocationRoutes(router chi.Router, locationController *locations.LocationController) {
	router.Get("/", locationController.FindAll)
	router.Post("/", locationController.Create)
	router.Put("/{locationID}", locationController.Update)
}

func attachCapabilityRoutes(router chi.Router, capabilityController *capabilities.CapabilityController) {
	router.Get("/", capabilityController.FindAll)
	router.Post("/", capabilityController.Create)
	router.Put("/{capabilityID}", capabilityController.Update)
}

func attachTestMethodRoutes(router chi.Router, testMethodController *testMethods.TestMethodController) {
	router.Get("/", testMethodController.FindAll)
	router.Post("/", testMethodController.Create)
	router.Put("/{testMethodID}", testMethodController.Update)
}

func attachUserRoutes(router chi.Router, userController *users.UserController) {
	router.Get("/", userController.FindAll)
	router.Post("/", userController.Create)
	router.Put("/{userID}", userController.Update)
}

func attachCommercialGradeRoutes(router chi.Router, commercialGradeController *commercialGrades.CommercialGradeController) {
	router.Get("/", commercialGradeController.FindAll)
	router.Post("/", commercialGradeController.Create)
	router.Put("/{gradeID}", commercialGradeController.Update)
}

func attachIONumberRoutes(router chi.Router, ioNumberController *ioNumbers.IONumberController) {
	router.Get("/", ioNumberController.FindAll)
	router.Post("/", ioNumberController.Create)
	router.Put("/{ioNumberID}", ioNumberController.Update)
}

func attachPlantReactorRoutes(router chi.Router, plantReactorController *plantReactors.PlantReactorController) {
	router.Get("/", plantReactorController.FindAll)
	router.Post("/", plantReactorController.Create)
	router.Put("/{reactorID}", plantReactorController.Update)
}

func attachAppTechRoutes(router chi.Router, appTechController *appTechs.AppTechController) {
	router.Get("/", appTechController.FindAll)
	router.Post("/", appTechController.Create)
	router.Put("/{appTechID}", appTechController.Update)
}
