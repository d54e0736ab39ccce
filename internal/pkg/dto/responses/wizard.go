package responses

import "labrequest-service/internal/pkg/wizard"

// WizardState is the full state of one wizard session returned after every
// wizard operation.
type WizardState struct {
	FlowKind          string               `json:"flowKind"`
	CurrentStep       int                  `json:"currentStep"`
	StepCount         int                  `json:"stepCount"`
	StepNames         []string             `json:"stepNames"`
	Draft             *wizard.RequestDraft `json:"draft"`
	NextRequiredField string               `json:"nextRequiredField,omitempty"`
	RehydratedSamples bool                 `json:"rehydratedSamples,omitempty"`
}

// DerivedName is the guided-entry answer for a sample buffer.
type DerivedName struct {
	GeneratedName     string `json:"generatedName"`
	NextRequiredField string `json:"nextRequiredField,omitempty"`
}

type SubmittedRequest struct {
	RequestNumber string `json:"requestNumber"`
}

type UploadedAttachment struct {
	ObjectName string `json:"objectName"`
}
