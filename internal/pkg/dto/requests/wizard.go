package requests

// UpdateDraft merges scalar fields into the session's draft. Pointer fields
// distinguish "not sent" from "clear this value".
type UpdateDraft struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,priority"`
	UseIONumber *bool   `json:"useIONumber,omitempty"`
	IONumberID  *string `json:"ioNumberId,omitempty"`

	TestItems   *string `json:"testItems,omitempty" validate:"omitempty,max=2000"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`

	ProblemSource         *string   `json:"problemSource,omitempty" validate:"omitempty,max=500"`
	TestObjective         *string   `json:"testObjective,omitempty" validate:"omitempty,max=2000"`
	ExpectedResults       *string   `json:"expectedResults,omitempty" validate:"omitempty,max=2000"`
	DesiredCompletionDate *string   `json:"desiredCompletionDate,omitempty"`
	Capabilities          *[]string `json:"capabilities,omitempty"`

	UrgencyType     *string `json:"urgencyType,omitempty" validate:"omitempty,max=100"`
	UrgencyReason   *string `json:"urgencyReason,omitempty" validate:"omitempty,max=500"`
	UrgencyApprover *string `json:"urgencyApprover,omitempty" validate:"omitempty,max=100"`
	UrgencyMemo     *string `json:"urgencyMemo,omitempty" validate:"omitempty,max=500"`

	AttachmentPaths *[]string `json:"attachmentPaths,omitempty"`

	OnBehalfUserID     *string `json:"onBehalfUserId,omitempty"`
	OnBehalfName       *string `json:"onBehalfName,omitempty" validate:"omitempty,max=100"`
	OnBehalfEmail      *string `json:"onBehalfEmail,omitempty" validate:"omitempty,email"`
	OnBehalfCostCenter *string `json:"onBehalfCostCenter,omitempty" validate:"omitempty,max=30"`
}

// SampleBuffer is the editing buffer a client commits through the sample
// endpoints. GeneratedName is recomputed server-side and never trusted from
// the client.
type SampleBuffer struct {
	Category       string `json:"category" validate:"required,sample_category"`
	Grade          string `json:"grade" validate:"omitempty,max=50"`
	Lot            string `json:"lot" validate:"omitempty,max=50"`
	Tech           string `json:"tech" validate:"omitempty,max=100"`
	Feature        string `json:"feature" validate:"omitempty,max=100"`
	Plant          string `json:"plant" validate:"omitempty,plant"`
	SamplingDate   string `json:"samplingDate" validate:"omitempty,max=20"`
	SamplingTime   string `json:"samplingTime" validate:"omitempty,max=20"`
	SampleIdentity string `json:"sampleIdentity" validate:"omitempty,max=100"`
	PolymerType    string `json:"type" validate:"omitempty,polymer_type"`
	Form           string `json:"form" validate:"omitempty,sample_form"`
}
