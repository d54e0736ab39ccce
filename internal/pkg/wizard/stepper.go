package wizard

import (
	"context"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// CheckpointStore is the durable key-value port the controller checkpoints
// drafts to between steps. Load returns the empty string when no value is
// stored under the key.
type CheckpointStore interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key string, value interface{}) error
	Clear(ctx context.Context, key string) error
}

// Submitter receives the completed draft on final submission and returns the
// assigned request number.
type Submitter interface {
	Submit(ctx context.Context, draft *RequestDraft) (string, error)
}

// StepValidator inspects only its step's required fields and returns the
// first missing-field message, or the empty string when the step is complete.
type StepValidator func(draft *RequestDraft) string

// Step is one position in a flow. Checkpoint flags decide which slices of
// the draft are persisted after a successful forward transition out of it.
type Step struct {
	Name              string
	Validate          StepValidator
	CheckpointDraft   bool
	CheckpointSamples bool
}

// Flow is the descriptor parameterizing the controller: the ordered step
// list shared by every wizard of its kind.
type Flow struct {
	Kind  string
	Steps []Step
}

func (f Flow) StepCount() int {
	return len(f.Steps)
}

// Controller is the finite-state stepper over one draft. It is the sole
// mutator of the draft's step position.
type Controller struct {
	flow       Flow
	store      CheckpointStore
	log        *zap.Logger
	draftKey   string
	samplesKey string

	Draft *RequestDraft
}

func NewController(flow Flow, store CheckpointStore, log *zap.Logger, draftKey, samplesKey string) *Controller {
	return &Controller{
		flow:       flow,
		store:      store,
		log:        log,
		draftKey:   draftKey,
		samplesKey: samplesKey,
		Draft:      NewRequestDraft(flow.Kind),
	}
}

func (c *Controller) Flow() Flow {
	return c.flow
}

// Mount rehydrates the draft from the checkpoint store. Malformed stored
// JSON is logged and treated as "no data found": the wizard proceeds with an
// empty draft rather than failing. The returned flag reports whether
// checkpointed samples were found, so the caller can show the populated
// sample list instead of the empty-state prompt.
func (c *Controller) Mount(ctx context.Context) (bool, error) {
	draftData, err := c.store.Load(ctx, c.draftKey)
	if err != nil {
		return false, err
	}
	if draftData != "" {
		var draft RequestDraft
		if err := json.Unmarshal([]byte(draftData), &draft); err != nil {
			c.log.Warn(constvars.ErrDevCheckpointMalformed,
				zap.String("key", c.draftKey),
				zap.Error(err),
			)
		} else {
			draft.FlowKind = c.flow.Kind
			if draft.CurrentStep < 1 || draft.CurrentStep > c.flow.StepCount() {
				draft.CurrentStep = 1
			}
			c.Draft = &draft
		}
	}

	samplesData, err := c.store.Load(ctx, c.samplesKey)
	if err != nil {
		return false, err
	}
	if samplesData == "" {
		return false, nil
	}
	var samples Collection
	if err := json.Unmarshal([]byte(samplesData), &samples); err != nil {
		c.log.Warn(constvars.ErrDevCheckpointMalformed,
			zap.String("key", c.samplesKey),
			zap.Error(err),
		)
		return false, nil
	}
	c.Draft.Samples = samples
	return len(samples.Items) > 0, nil
}

// Next validates the current step and, if it passes, checkpoints the
// configured draft slices and advances one step. On validation failure the
// transition is refused and the first missing-field message is returned.
func (c *Controller) Next(ctx context.Context) error {
	step := c.flow.Steps[c.Draft.CurrentStep-1]
	if step.Validate != nil {
		if message := step.Validate(c.Draft); message != "" {
			return exceptions.ErrStepValidation(message)
		}
	}

	if c.Draft.CurrentStep >= c.flow.StepCount() {
		return nil
	}

	if err := c.checkpoint(ctx, step); err != nil {
		return err
	}
	c.Draft.CurrentStep++
	return nil
}

// Previous moves one step back without validation. It refuses at step 1.
func (c *Controller) Previous() error {
	if c.Draft.CurrentStep <= 1 {
		return exceptions.ErrWizardAtFirstStep()
	}
	c.Draft.CurrentStep--
	return nil
}

// Submit hands the draft to the submitter. It is only callable from the
// final step; on acceptance the flow's checkpoint keys are cleared.
func (c *Controller) Submit(ctx context.Context, submitter Submitter) (string, error) {
	if c.Draft.CurrentStep != c.flow.StepCount() {
		return "", exceptions.ErrWizardNotAtFinalStep()
	}

	requestNumber, err := submitter.Submit(ctx, c.Draft)
	if err != nil {
		return "", err
	}

	if err := c.store.Clear(ctx, c.draftKey); err != nil {
		return "", err
	}
	if err := c.store.Clear(ctx, c.samplesKey); err != nil {
		return "", err
	}
	return requestNumber, nil
}

// Checkpoint persists the draft and samples unconditionally. Sample commits
// call this so a reload never loses a committed sample.
func (c *Controller) Checkpoint(ctx context.Context) error {
	return c.checkpoint(ctx, Step{CheckpointDraft: true, CheckpointSamples: true})
}

func (c *Controller) checkpoint(ctx context.Context, step Step) error {
	if step.CheckpointDraft {
		if err := c.store.Save(ctx, c.draftKey, c.Draft); err != nil {
			return err
		}
	}
	if step.CheckpointSamples {
		if err := c.store.Save(ctx, c.samplesKey, c.Draft.Samples); err != nil {
			return err
		}
	}
	return nil
}
