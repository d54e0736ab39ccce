package testRequests

import (
	"context"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/dto/responses"
	"labrequest-service/internal/pkg/exceptions"
)

type testRequestUsecase struct {
	TestRequestRepository contracts.TestRequestRepository
}

func NewTestRequestUsecase(testRequestRepository contracts.TestRequestRepository) contracts.TestRequestUsecase {
	return &testRequestUsecase{
		TestRequestRepository: testRequestRepository,
	}
}

func (uc *testRequestUsecase) FindAll(ctx context.Context, pagination *requests.Pagination) ([]responses.TestRequest, *responses.Pagination, error) {
	testRequests, total, err := uc.TestRequestRepository.FindAll(ctx, pagination)
	if err != nil {
		return nil, nil, err
	}

	response := make([]responses.TestRequest, len(testRequests))
	for i, eachTestRequest := range testRequests {
		response[i] = eachTestRequest.ConvertIntoResponse()
	}

	responsePagination := &responses.Pagination{
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	return response, responsePagination, nil
}

func (uc *testRequestUsecase) FindByID(ctx context.Context, id string) (*responses.TestRequest, error) {
	testRequest, err := uc.TestRequestRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if testRequest == nil {
		return nil, exceptions.ErrTestRequestNotFound(id)
	}

	response := testRequest.ConvertIntoResponse()
	response.Draft = &testRequest.Draft

	return &response, nil
}
