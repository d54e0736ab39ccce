package contracts

import (
	"context"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/dto/responses"
)

// WizardUsecase runs one engine operation per call against the session's
// checkpointed draft. Every mutation persists before returning.
type WizardUsecase interface {
	Start(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error)
	State(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error)
	UpdateDraft(ctx context.Context, flowKind, sessionToken string, request *requests.UpdateDraft) (*responses.WizardState, error)
	Next(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error)
	Previous(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error)

	DeriveSampleName(ctx context.Context, buffer *requests.SampleBuffer) (*responses.DerivedName, error)
	AddSample(ctx context.Context, flowKind, sessionToken string, buffer *requests.SampleBuffer) (*responses.WizardState, string, error)
	UpdateSample(ctx context.Context, flowKind, sessionToken string, index int, buffer *requests.SampleBuffer) (*responses.WizardState, string, error)
	RemoveSample(ctx context.Context, flowKind, sessionToken string, index int) (*responses.WizardState, string, error)
	CopySample(ctx context.Context, flowKind, sessionToken string, index int) (*responses.WizardState, string, error)
	EditSample(ctx context.Context, flowKind, sessionToken string, index int) (*responses.WizardState, string, error)
	CancelEditSample(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error)

	ExportSamplesCSV(ctx context.Context, flowKind, sessionToken string) (string, error)
	ImportSamplesCSV(ctx context.Context, flowKind, sessionToken string, csvText string) (*responses.WizardState, int, error)

	Submit(ctx context.Context, flowKind, sessionToken string) (*responses.SubmittedRequest, error)
}
