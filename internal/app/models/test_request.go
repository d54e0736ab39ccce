package models

import (
	"labrequest-service/internal/pkg/dto/responses"
	"labrequest-service/internal/pkg/wizard"
	"time"
)

// TestRequest is a submitted NTR or ASR request as persisted. The draft is
// stored whole so the intake team sees exactly what the submitter completed.
type TestRequest struct {
	ID            string              `json:"id" bson:"_id,omitempty"`
	RequestNumber string              `json:"requestNumber" bson:"requestNumber"`
	FlowKind      string              `json:"flowKind" bson:"flowKind"`
	Title         string              `json:"title" bson:"title"`
	Priority      string              `json:"priority" bson:"priority"`
	Draft         wizard.RequestDraft `json:"draft" bson:"draft"`
	SubmittedBy   Ref                 `json:"submittedBy" bson:"submittedBy,omitempty"`
	SubmittedAt   time.Time           `json:"submittedAt" bson:"submittedAt"`
}

func (r TestRequest) ConvertIntoResponse() responses.TestRequest {
	return responses.TestRequest{
		ID:            r.ID,
		RequestNumber: r.RequestNumber,
		FlowKind:      r.FlowKind,
		Title:         r.Title,
		Priority:      r.Priority,
		Samples:       r.Draft.Samples.Items,
		SubmittedBy:   r.SubmittedBy.ID(),
		SubmittedAt:   r.SubmittedAt.Format(time.RFC3339),
	}
}
