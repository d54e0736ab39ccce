package contracts

import (
	"context"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/dto/responses"
)

type TestRequestRepository interface {
	Insert(ctx context.Context, testRequest models.TestRequest) (string, error)
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.TestRequest, int, error)
	FindByID(ctx context.Context, id string) (*models.TestRequest, error)
}

type TestRequestUsecase interface {
	FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.TestRequest, *responses.Pagination, error)
	FindByID(ctx context.Context, id string) (*responses.TestRequest, error)
}

// SubmissionQueue publishes an event for every accepted request so downstream
// systems (notifications, scheduling) pick it up asynchronously.
type SubmissionQueue interface {
	PublishSubmitted(ctx context.Context, testRequest models.TestRequest) error
}
