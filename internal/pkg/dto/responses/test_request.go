package responses

import "labrequest-service/internal/pkg/wizard"

type TestRequest struct {
	ID            string               `json:"id"`
	RequestNumber string               `json:"requestNumber"`
	FlowKind      string               `json:"flowKind"`
	Title         string               `json:"title"`
	Priority      string               `json:"priority"`
	Samples       []wizard.Sample      `json:"samples"`
	Draft         *wizard.RequestDraft `json:"draft,omitempty"`
	SubmittedBy   string               `json:"submittedBy,omitempty"`
	SubmittedAt   string               `json:"submittedAt"`
}
