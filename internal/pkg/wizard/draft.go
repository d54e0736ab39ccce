package wizard

const (
	PriorityNormal = "Normal"
	PriorityUrgent = "Urgent"
)

// UrgencyInfo is populated only when the draft priority is Urgent.
type UrgencyInfo struct {
	Type     string `json:"type,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Approver string `json:"approver,omitempty"`
	Memo     string `json:"memo,omitempty"`
}

// OnBehalfInfo is populated when the submitter files for another user.
type OnBehalfInfo struct {
	UserID     string `json:"userId,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	CostCenter string `json:"costCenter,omitempty"`
}

// RequestDraft is the in-progress wizard state for one NTR or ASR
// submission. It is exclusively owned by the wizard session that created it.
type RequestDraft struct {
	FlowKind    string `json:"flowKind"`
	Title       string `json:"title,omitempty"`
	Priority    string `json:"priority,omitempty"`
	UseIONumber bool   `json:"useIONumber"`
	IONumberID  string `json:"ioNumberId,omitempty"`

	// NTR descriptive fields
	TestItems   string `json:"testItems,omitempty"`
	Description string `json:"description,omitempty"`

	// ASR descriptive fields
	ProblemSource         string   `json:"problemSource,omitempty"`
	TestObjective         string   `json:"testObjective,omitempty"`
	ExpectedResults       string   `json:"expectedResults,omitempty"`
	DesiredCompletionDate string   `json:"desiredCompletionDate,omitempty"`
	Capabilities          []string `json:"capabilities,omitempty"`

	Urgency    *UrgencyInfo  `json:"urgency,omitempty"`
	OnBehalfOf *OnBehalfInfo `json:"onBehalfOf,omitempty"`

	AttachmentPaths []string `json:"attachmentPaths,omitempty"`

	Samples     Collection `json:"samples"`
	CurrentStep int        `json:"currentStep"`
}

// NewRequestDraft returns an empty draft positioned at the first step.
func NewRequestDraft(flowKind string) *RequestDraft {
	return &RequestDraft{
		FlowKind:    flowKind,
		Priority:    PriorityNormal,
		Samples:     NewCollection(),
		CurrentStep: 1,
	}
}
