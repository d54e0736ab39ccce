package wizard

import "labrequest-service/internal/pkg/exceptions"

const (
	FlowKindNTR = "ntr"
	FlowKindASR = "asr"
)

// Step validation messages surfaced to the user verbatim.
const (
	MsgTitleRequired           = "title is required"
	MsgIONumberRequired        = "IO number is required when using an IO number"
	MsgProblemSourceRequired   = "problem source is required"
	MsgTestObjectiveRequired   = "test objective is required"
	MsgSampleRequired          = "at least one sample must be added"
	MsgExpectedResultsRequired = "expected results are required"
	MsgCompletionDateRequired  = "desired completion date is required"
	MsgCapabilityRequired      = "at least one capability must be selected"
)

func validateRequestInfo(draft *RequestDraft) string {
	if draft.Title == "" {
		return MsgTitleRequired
	}
	if draft.UseIONumber && draft.IONumberID == "" {
		return MsgIONumberRequired
	}
	return ""
}

func validateProblemDescription(draft *RequestDraft) string {
	if draft.ProblemSource == "" {
		return MsgProblemSourceRequired
	}
	if draft.TestObjective == "" {
		return MsgTestObjectiveRequired
	}
	return ""
}

func validateSamples(draft *RequestDraft) string {
	if len(draft.Samples.Items) == 0 {
		return MsgSampleRequired
	}
	return ""
}

func validateExpectedResults(draft *RequestDraft) string {
	if draft.ExpectedResults == "" {
		return MsgExpectedResultsRequired
	}
	if draft.DesiredCompletionDate == "" {
		return MsgCompletionDateRequired
	}
	return ""
}

func validateCapabilities(draft *RequestDraft) string {
	if len(draft.Capabilities) == 0 {
		return MsgCapabilityRequired
	}
	return ""
}

// NTRFlow describes the three-step Normal Test Request wizard.
func NTRFlow() Flow {
	return Flow{
		Kind: FlowKindNTR,
		Steps: []Step{
			{Name: "request-info", Validate: validateRequestInfo, CheckpointDraft: true},
			{Name: "samples", Validate: validateSamples, CheckpointSamples: true},
			{Name: "attachments"},
		},
	}
}

// ASRFlow describes the six-step Analysis Solution Request wizard.
func ASRFlow() Flow {
	return Flow{
		Kind: FlowKindASR,
		Steps: []Step{
			{Name: "request-info", Validate: validateRequestInfo, CheckpointDraft: true},
			{Name: "problem-description", Validate: validateProblemDescription},
			{Name: "samples", Validate: validateSamples, CheckpointSamples: true},
			{Name: "expected-results", Validate: validateExpectedResults},
			{Name: "capability-selection", Validate: validateCapabilities},
			{Name: "attachments"},
		},
	}
}

// FlowByKind resolves a flow descriptor from its request-path kind.
func FlowByKind(kind string) (Flow, error) {
	switch kind {
	case FlowKindNTR:
		return NTRFlow(), nil
	case FlowKindASR:
		return ASRFlow(), nil
	default:
		return Flow{}, exceptions.ErrUnknownWizardFlow(kind)
	}
}
