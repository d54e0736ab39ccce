package routers

import (
	testRequests "labrequest-service/internal/app/services/core/testrequests"

	"github.com/go-chi/chi/v5"
)

func attachTestRequestRoutes(router chi.Router, testRequestController *testRequests.TestRequestController) {
	router.Get("/", testRequestController.FindAll)
	router.Get("/{requestID}", testRequestController.FindByID)
}
