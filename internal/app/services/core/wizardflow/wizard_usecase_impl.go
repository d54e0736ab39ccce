package wizardflow

import (
	"context"
	"fmt"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/dto/responses"
	"labrequest-service/internal/pkg/exceptions"
	"labrequest-service/internal/pkg/wizard"

	"go.uber.org/zap"
)

type wizardUsecase struct {
	CheckpointStore wizard.CheckpointStore
	AppTechUsecase  contracts.AppTechUsecase
	Submitter       wizard.Submitter
	Log             *zap.Logger
}

func NewWizardUsecase(
	checkpointStore wizard.CheckpointStore,
	appTechUsecase contracts.AppTechUsecase,
	submitter wizard.Submitter,
	logger *zap.Logger,
) contracts.WizardUsecase {
	return &wizardUsecase{
		CheckpointStore: checkpointStore,
		AppTechUsecase:  appTechUsecase,
		Submitter:       submitter,
		Log:             logger,
	}
}

// mount builds the session's controller and rehydrates it from the
// checkpoint store. Every operation goes through here so no state survives
// in memory between requests.
func (uc *wizardUsecase) mount(ctx context.Context, flowKind, sessionToken string) (*wizard.Controller, bool, error) {
	flow, err := wizard.FlowByKind(flowKind)
	if err != nil {
		return nil, false, err
	}

	draftKey := fmt.Sprintf(constvars.RedisKeyWizardDraftFormat, flowKind, sessionToken)
	samplesKey := fmt.Sprintf(constvars.RedisKeyWizardSamplesFormat, flowKind, sessionToken)
	controller := wizard.NewController(flow, uc.CheckpointStore, uc.Log, draftKey, samplesKey)

	rehydrated, err := controller.Mount(ctx)
	if err != nil {
		return nil, false, err
	}
	return controller, rehydrated, nil
}

func (uc *wizardUsecase) resolver(ctx context.Context) wizard.ShortCodeResolver {
	return wizard.ShortCodeFunc(func(ref string) (string, bool) {
		return uc.AppTechUsecase.ShortCode(ctx, ref)
	})
}

func (uc *wizardUsecase) buildState(controller *wizard.Controller, rehydrated bool) *responses.WizardState {
	flow := controller.Flow()
	stepNames := make([]string, flow.StepCount())
	for i, eachStep := range flow.Steps {
		stepNames[i] = eachStep.Name
	}

	return &responses.WizardState{
		FlowKind:          flow.Kind,
		CurrentStep:       controller.Draft.CurrentStep,
		StepCount:         flow.StepCount(),
		StepNames:         stepNames,
		Draft:             controller.Draft,
		NextRequiredField: wizard.NextRequiredField(controller.Draft.Samples.Buffer),
		RehydratedSamples: rehydrated,
	}
}

func (uc *wizardUsecase) Start(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("WizardUsecase.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowKey, flowKind),
		zap.String(constvars.LoggingSessionKey, sessionToken),
	)

	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, err
	}

	// Persist immediately so a fresh session survives a reload even before
	// the first forward transition.
	if err := controller.Checkpoint(ctx); err != nil {
		return nil, err
	}

	return uc.buildState(controller, rehydrated), nil
}

func (uc *wizardUsecase) State(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error) {
	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, err
	}
	return uc.buildState(controller, rehydrated), nil
}

func (uc *wizardUsecase) UpdateDraft(ctx context.Context, flowKind, sessionToken string, request *requests.UpdateDraft) (*responses.WizardState, error) {
	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, err
	}

	applyDraftUpdate(controller.Draft, request)

	if err := controller.Checkpoint(ctx); err != nil {
		return nil, err
	}
	return uc.buildState(controller, rehydrated), nil
}

func (uc *wizardUsecase) Next(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, err
	}

	if err := controller.Next(ctx); err != nil {
		return nil, err
	}
	if err := controller.Checkpoint(ctx); err != nil {
		return nil, err
	}

	uc.Log.Info("WizardUsecase.Next advanced",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowKey, flowKind),
		zap.Int(constvars.LoggingStepKey, controller.Draft.CurrentStep),
	)

	return uc.buildState(controller, rehydrated), nil
}

func (uc *wizardUsecase) Previous(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error) {
	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, err
	}

	if err := controller.Previous(); err != nil {
		return nil, err
	}
	if err := controller.Checkpoint(ctx); err != nil {
		return nil, err
	}
	return uc.buildState(controller, rehydrated), nil
}

func (uc *wizardUsecase) DeriveSampleName(ctx context.Context, buffer *requests.SampleBuffer) (*responses.DerivedName, error) {
	sample := buildSample(buffer)
	sample.GeneratedName = wizard.DeriveName(sample, uc.resolver(ctx))

	return &responses.DerivedName{
		GeneratedName:     sample.GeneratedName,
		NextRequiredField: wizard.NextRequiredField(sample),
	}, nil
}

func (uc *wizardUsecase) AddSample(ctx context.Context, flowKind, sessionToken string, buffer *requests.SampleBuffer) (*responses.WizardState, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, "", err
	}

	sample := buildSample(buffer)
	sample.GeneratedName = wizard.DeriveName(sample, uc.resolver(ctx))

	if err := controller.Draft.Samples.Add(sample); err != nil {
		return nil, "", err
	}
	if err := controller.Checkpoint(ctx); err != nil {
		return nil, "", err
	}

	uc.Log.Info("WizardUsecase.AddSample committed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowKey, flowKind),
		zap.String(constvars.LoggingSampleNameKey, sample.GeneratedName),
	)

	message := fmt.Sprintf(constvars.SampleAddedSuccessMessage, sample.GeneratedName)
	return uc.buildState(controller, rehydrated), message, nil
}

func (uc *wizardUsecase) UpdateSample(ctx context.Context, flowKind, sessionToken string, index int, buffer *requests.SampleBuffer) (*responses.WizardState, string, error) {
	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, "", err
	}

	sample := buildSample(buffer)
	sample.GeneratedName = wizard.DeriveName(sample, uc.resolver(ctx))

	if err := controller.Draft.Samples.Update(index, sample); err != nil {
		return nil, "", err
	}
	if err := controller.Checkpoint(ctx); err != nil {
		return nil, "", err
	}

	message := fmt.Sprintf(constvars.SampleUpdatedSuccessMessage, sample.GeneratedName)
	return uc.buildState(controller, rehydrated), message, nil
}

func (uc *wizardUsecase) RemoveSample(ctx context.Context, flowKind, sessionToken string, index int) (*responses.WizardState, string, error) {
	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, "", err
	}

	removedName, err := controller.Draft.Samples.Remove(index)
	if err != nil {
		return nil, "", err
	}
	if err := controller.Checkpoint(ctx); err != nil {
		return nil, "", err
	}

	message := fmt.Sprintf(constvars.SampleRemovedSuccessMessage, removedName)
	return uc.buildState(controller, rehydrated), message, nil
}

func (uc *wizardUsecase) CopySample(ctx context.Context, flowKind, sessionToken string, index int) (*responses.WizardState, string, error) {
	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, "", err
	}

	sourceName := ""
	if index >= 0 && index < len(controller.Draft.Samples.Items) {
		sourceName = controller.Draft.Samples.Items[index].GeneratedName
	}

	if _, err := controller.Draft.Samples.Copy(index); err != nil {
		return nil, "", err
	}
	if err := controller.Checkpoint(ctx); err != nil {
		return nil, "", err
	}

	message := fmt.Sprintf(constvars.SampleCopiedSuccessMessage, sourceName)
	return uc.buildState(controller, rehydrated), message, nil
}

func (uc *wizardUsecase) EditSample(ctx context.Context, flowKind, sessionToken string, index int) (*responses.WizardState, string, error) {
	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, "", err
	}

	buffer, err := controller.Draft.Samples.Edit(index)
	if err != nil {
		return nil, "", err
	}
	if err := controller.Checkpoint(ctx); err != nil {
		return nil, "", err
	}

	message := fmt.Sprintf(constvars.SampleEditSuccessMessage, buffer.GeneratedName)
	return uc.buildState(controller, rehydrated), message, nil
}

func (uc *wizardUsecase) CancelEditSample(ctx context.Context, flowKind, sessionToken string) (*responses.WizardState, error) {
	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, err
	}

	controller.Draft.Samples.CancelEdit()

	if err := controller.Checkpoint(ctx); err != nil {
		return nil, err
	}
	return uc.buildState(controller, rehydrated), nil
}

func (uc *wizardUsecase) ExportSamplesCSV(ctx context.Context, flowKind, sessionToken string) (string, error) {
	controller, _, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return "", err
	}
	return wizard.ToCSV(controller.Draft.Samples.Items)
}

func (uc *wizardUsecase) ImportSamplesCSV(ctx context.Context, flowKind, sessionToken string, csvText string) (*responses.WizardState, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	controller, rehydrated, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, 0, err
	}

	samples, err := wizard.FromCSV(csvText)
	if err != nil {
		return nil, 0, exceptions.ErrCSVMalformed(err)
	}
	if len(samples) == 0 {
		return nil, 0, exceptions.ErrCSVNoValidRows()
	}

	imported := 0
	for _, eachSample := range samples {
		if wizard.IsDuplicate(eachSample.GeneratedName, controller.Draft.Samples.Items, wizard.NoExclusion) {
			continue
		}
		controller.Draft.Samples.Items = append(controller.Draft.Samples.Items, eachSample)
		imported++
	}
	if imported == 0 {
		return nil, 0, exceptions.ErrCSVAllDuplicates()
	}

	if err := controller.Checkpoint(ctx); err != nil {
		return nil, 0, err
	}

	uc.Log.Info("WizardUsecase.ImportSamplesCSV committed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowKey, flowKind),
		zap.Int("imported", imported),
	)

	return uc.buildState(controller, rehydrated), imported, nil
}

func (uc *wizardUsecase) Submit(ctx context.Context, flowKind, sessionToken string) (*responses.SubmittedRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	controller, _, err := uc.mount(ctx, flowKind, sessionToken)
	if err != nil {
		return nil, err
	}

	requestNumber, err := controller.Submit(ctx, uc.Submitter)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("WizardUsecase.Submit accepted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowKey, flowKind),
		zap.String(constvars.LoggingSessionKey, sessionToken),
		zap.String("request_number", requestNumber),
	)

	return &responses.SubmittedRequest{RequestNumber: requestNumber}, nil
}

func buildSample(buffer *requests.SampleBuffer) wizard.Sample {
	return wizard.Sample{
		Category:       wizard.Category(buffer.Category),
		Grade:          buffer.Grade,
		Lot:            buffer.Lot,
		Tech:           buffer.Tech,
		Feature:        buffer.Feature,
		Plant:          buffer.Plant,
		SamplingDate:   buffer.SamplingDate,
		SamplingTime:   buffer.SamplingTime,
		SampleIdentity: buffer.SampleIdentity,
		PolymerType:    buffer.PolymerType,
		Form:           buffer.Form,
	}
}

// applyDraftUpdate merges only the fields the client sent. Urgency details
// are dropped whenever the priority moves back to Normal.
func applyDraftUpdate(draft *wizard.RequestDraft, request *requests.UpdateDraft) {
	if request.Title != nil {
		draft.Title = *request.Title
	}
	if request.Priority != nil {
		draft.Priority = *request.Priority
	}
	if request.UseIONumber != nil {
		draft.UseIONumber = *request.UseIONumber
		if !draft.UseIONumber {
			draft.IONumberID = ""
		}
	}
	if request.IONumberID != nil {
		draft.IONumberID = *request.IONumberID
	}
	if request.TestItems != nil {
		draft.TestItems = *request.TestItems
	}
	if request.Description != nil {
		draft.Description = *request.Description
	}
	if request.ProblemSource != nil {
		draft.ProblemSource = *request.ProblemSource
	}
	if request.TestObjective != nil {
		draft.TestObjective = *request.TestObjective
	}
	if request.ExpectedResults != nil {
		draft.ExpectedResults = *request.ExpectedResults
	}
	if request.DesiredCompletionDate != nil {
		draft.DesiredCompletionDate = *request.DesiredCompletionDate
	}
	if request.Capabilities != nil {
		draft.Capabilities = *request.Capabilities
	}
	if request.AttachmentPaths != nil {
		draft.AttachmentPaths = *request.AttachmentPaths
	}

	if request.UrgencyType != nil || request.UrgencyReason != nil || request.UrgencyApprover != nil || request.UrgencyMemo != nil {
		if draft.Urgency == nil {
			draft.Urgency = &wizard.UrgencyInfo{}
		}
		if request.UrgencyType != nil {
			draft.Urgency.Type = *request.UrgencyType
		}
		if request.UrgencyReason != nil {
			draft.Urgency.Reason = *request.UrgencyReason
		}
		if request.UrgencyApprover != nil {
			draft.Urgency.Approver = *request.UrgencyApprover
		}
		if request.UrgencyMemo != nil {
			draft.Urgency.Memo = *request.UrgencyMemo
		}
	}
	if draft.Priority != wizard.PriorityUrgent {
		draft.Urgency = nil
	}

	if request.OnBehalfUserID != nil || request.OnBehalfName != nil || request.OnBehalfEmail != nil || request.OnBehalfCostCenter != nil {
		if draft.OnBehalfOf == nil {
			draft.OnBehalfOf = &wizard.OnBehalfInfo{}
		}
		if request.OnBehalfUserID != nil {
			draft.OnBehalfOf.UserID = *request.OnBehalfUserID
		}
		if request.OnBehalfName != nil {
			draft.OnBehalfOf.Name = *request.OnBehalfName
		}
		if request.OnBehalfEmail != nil {
			draft.OnBehalfOf.Email = *request.OnBehalfEmail
		}
		if request.OnBehalfCostCenter != nil {
			draft.OnBehalfOf.CostCenter = *request.OnBehalfCostCenter
		}
	}
}
