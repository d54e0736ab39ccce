package testRequests

import (
	"context"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/exceptions"
	"labrequest-service/internal/pkg/utils"
	"labrequest-service/internal/pkg/wizard"
	"time"

	"go.uber.org/zap"
)

// testRequestSubmitter turns a completed wizard draft into a persisted test
// request and announces it on the submission queue.
type testRequestSubmitter struct {
	TestRequestRepository contracts.TestRequestRepository
	SubmissionQueue       contracts.SubmissionQueue
	Log                   *zap.Logger
}

func NewTestRequestSubmitter(
	testRequestRepository contracts.TestRequestRepository,
	submissionQueue contracts.SubmissionQueue,
	logger *zap.Logger,
) wizard.Submitter {
	return &testRequestSubmitter{
		TestRequestRepository: testRequestRepository,
		SubmissionQueue:       submissionQueue,
		Log:                   logger,
	}
}

func (s *testRequestSubmitter) Submit(ctx context.Context, draft *wizard.RequestDraft) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	testRequest := models.TestRequest{
		RequestNumber: utils.GenerateTestRequestNumber(draft.FlowKind),
		FlowKind:      draft.FlowKind,
		Title:         draft.Title,
		Priority:      draft.Priority,
		Draft:         *draft,
		SubmittedAt:   time.Now().UTC(),
	}
	if draft.OnBehalfOf != nil {
		testRequest.SubmittedBy = models.NewRef(draft.OnBehalfOf.UserID)
	}

	testRequestID, err := s.TestRequestRepository.Insert(ctx, testRequest)
	if err != nil {
		s.Log.Error("TestRequestSubmitter.Submit failed to persist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrTestRequestSubmission(err)
	}
	testRequest.ID = testRequestID

	// The request is durably stored at this point. A queue outage must not
	// fail the submission, so publish errors are only logged.
	if err := s.SubmissionQueue.PublishSubmitted(ctx, testRequest); err != nil {
		s.Log.Error("TestRequestSubmitter.Submit failed to publish",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("request_number", testRequest.RequestNumber),
			zap.Error(err),
		)
	}

	s.Log.Info("TestRequestSubmitter.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("request_number", testRequest.RequestNumber),
		zap.String(constvars.LoggingFlowKey, testRequest.FlowKind),
	)

	return testRequest.RequestNumber, nil
}
