package wizard

import (
	"context"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mapStore struct {
	data map[string]string
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string]string)}
}

func (s *mapStore) Load(_ context.Context, key string) (string, error) {
	return s.data[key], nil
}

func (s *mapStore) Save(_ context.Context, key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.data[key] = string(encoded)
	return nil
}

func (s *mapStore) Clear(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

type stubSubmitter struct {
	requestNumber string
	err           error
	received      *RequestDraft
}

func (s *stubSubmitter) Submit(_ context.Context, draft *RequestDraft) (string, error) {
	s.received = draft
	return s.requestNumber, s.err
}

func newNTRController(store CheckpointStore) *Controller {
	return NewController(NTRFlow(), store, zap.NewNop(), "test:ntr:draft", "test:ntr:samples")
}

func TestControllerNext(t *testing.T) {
	ctx := context.Background()

	t.Run("Incomplete request-info refuses the transition", func(t *testing.T) {
		controller := newNTRController(newMapStore())

		err := controller.Next(ctx)
		require.Error(t, err)
		assert.Equal(t, 1, controller.Draft.CurrentStep)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, MsgTitleRequired, customErr.ClientMessage)
	})

	t.Run("Completing the field advances exactly one step", func(t *testing.T) {
		store := newMapStore()
		controller := newNTRController(store)
		controller.Draft.Title = "Polymer QC"

		require.NoError(t, controller.Next(ctx))
		assert.Equal(t, 2, controller.Draft.CurrentStep)

		// Forward transition out of request-info checkpointed the draft.
		assert.NotEmpty(t, store.data["test:ntr:draft"])
	})

	t.Run("IO number required when the flag is set", func(t *testing.T) {
		controller := newNTRController(newMapStore())
		controller.Draft.Title = "Polymer QC"
		controller.Draft.UseIONumber = true

		err := controller.Next(ctx)
		require.Error(t, err)
		customErr := err.(*exceptions.CustomError)
		assert.Equal(t, MsgIONumberRequired, customErr.ClientMessage)

		controller.Draft.IONumberID = "io-123"
		require.NoError(t, controller.Next(ctx))
	})

	t.Run("Sample step requires a committed sample", func(t *testing.T) {
		controller := newNTRController(newMapStore())
		controller.Draft.Title = "Polymer QC"
		require.NoError(t, controller.Next(ctx))

		err := controller.Next(ctx)
		require.Error(t, err)
		assert.Equal(t, 2, controller.Draft.CurrentStep)

		require.NoError(t, controller.Draft.Samples.Add(commercialSample("A")))
		require.NoError(t, controller.Next(ctx))
		assert.Equal(t, 3, controller.Draft.CurrentStep)
	})
}

func TestControllerPrevious(t *testing.T) {
	ctx := context.Background()
	controller := newNTRController(newMapStore())

	err := controller.Previous()
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))

	controller.Draft.Title = "Polymer QC"
	require.NoError(t, controller.Next(ctx))
	require.NoError(t, controller.Previous())
	assert.Equal(t, 1, controller.Draft.CurrentStep)
}

func TestControllerSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Refused before the final step", func(t *testing.T) {
		controller := newNTRController(newMapStore())
		submitter := &stubSubmitter{requestNumber: "NTR-1"}

		_, err := controller.Submit(ctx, submitter)
		require.Error(t, err)
		assert.Nil(t, submitter.received)
	})

	t.Run("Accepted submission clears the checkpoints", func(t *testing.T) {
		store := newMapStore()
		controller := newNTRController(store)
		submitter := &stubSubmitter{requestNumber: "NTR-20230101-ABCDEF"}

		controller.Draft.Title = "Polymer QC"
		require.NoError(t, controller.Next(ctx))
		require.NoError(t, controller.Draft.Samples.Add(commercialSample("A")))
		require.NoError(t, controller.Next(ctx))

		requestNumber, err := controller.Submit(ctx, submitter)
		require.NoError(t, err)
		assert.Equal(t, "NTR-20230101-ABCDEF", requestNumber)
		assert.Empty(t, store.data["test:ntr:draft"])
		assert.Empty(t, store.data["test:ntr:samples"])
	})

	t.Run("Failed submission keeps the checkpoints", func(t *testing.T) {
		store := newMapStore()
		controller := newNTRController(store)
		submitter := &stubSubmitter{err: exceptions.ErrTestRequestSubmission(assert.AnError)}

		controller.Draft.Title = "Polymer QC"
		require.NoError(t, controller.Next(ctx))
		require.NoError(t, controller.Draft.Samples.Add(commercialSample("A")))
		require.NoError(t, controller.Next(ctx))

		_, err := controller.Submit(ctx, submitter)
		require.Error(t, err)
		assert.NotEmpty(t, store.data["test:ntr:draft"])
		assert.NotEmpty(t, store.data["test:ntr:samples"])
	})
}

func TestControllerMount(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store yields a fresh draft", func(t *testing.T) {
		controller := newNTRController(newMapStore())

		rehydratedSamples, err := controller.Mount(ctx)
		require.NoError(t, err)
		assert.False(t, rehydratedSamples)
		assert.Equal(t, 1, controller.Draft.CurrentStep)
	})

	t.Run("Checkpointed draft and samples are rehydrated", func(t *testing.T) {
		store := newMapStore()
		first := newNTRController(store)
		first.Draft.Title = "Polymer QC"
		require.NoError(t, first.Next(ctx))
		require.NoError(t, first.Draft.Samples.Add(commercialSample("A")))
		require.NoError(t, first.Checkpoint(ctx))

		second := newNTRController(store)
		rehydratedSamples, err := second.Mount(ctx)
		require.NoError(t, err)
		assert.True(t, rehydratedSamples)
		assert.Equal(t, "Polymer QC", second.Draft.Title)
		require.Len(t, second.Draft.Samples.Items, 1)
		assert.Equal(t, "HD5000S-H23010101-A", second.Draft.Samples.Items[0].GeneratedName)
	})

	t.Run("Malformed checkpoint JSON is treated as no data", func(t *testing.T) {
		store := newMapStore()
		store.data["test:ntr:draft"] = "{not json"
		store.data["test:ntr:samples"] = "]]"

		controller := newNTRController(store)
		rehydratedSamples, err := controller.Mount(ctx)
		require.NoError(t, err)
		assert.False(t, rehydratedSamples)
		assert.Equal(t, 1, controller.Draft.CurrentStep)
		assert.Empty(t, controller.Draft.Samples.Items)
	})
}

// End-to-end walk of the NTR flow matching the documented scenario.
func TestNTRScenario(t *testing.T) {
	ctx := context.Background()
	controller := newNTRController(newMapStore())

	controller.Draft.Title = "Polymer QC"
	controller.Draft.UseIONumber = false
	require.NoError(t, controller.Next(ctx))
	assert.Equal(t, 2, controller.Draft.CurrentStep)

	buffer := Sample{
		Category:       CategoryCommercialGrade,
		Grade:          "HD5000S",
		Lot:            "H23010101",
		SampleIdentity: "Test",
		PolymerType:    "HDPE",
		Form:           "Pellet",
	}
	buffer.GeneratedName = DeriveName(buffer, nil)
	assert.Equal(t, "HD5000S-H23010101-Test", buffer.GeneratedName)
	require.NoError(t, controller.Draft.Samples.Add(buffer))

	duplicate := buffer
	err := controller.Draft.Samples.Add(duplicate)
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
	assert.Len(t, controller.Draft.Samples.Items, 1)
}

func TestASRFlowShape(t *testing.T) {
	flow := ASRFlow()
	require.Equal(t, 6, flow.StepCount())

	ctx := context.Background()
	controller := NewController(flow, newMapStore(), zap.NewNop(), "test:asr:draft", "test:asr:samples")
	controller.Draft.Title = "Failure analysis"
	require.NoError(t, controller.Next(ctx))

	err := controller.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, MsgProblemSourceRequired, err.(*exceptions.CustomError).ClientMessage)

	controller.Draft.ProblemSource = "Customer complaint"
	controller.Draft.TestObjective = "Identify root cause"
	require.NoError(t, controller.Next(ctx))

	require.NoError(t, controller.Draft.Samples.Add(commercialSample("A")))
	require.NoError(t, controller.Next(ctx))

	err = controller.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, MsgExpectedResultsRequired, err.(*exceptions.CustomError).ClientMessage)

	controller.Draft.ExpectedResults = "Mechanical property report"
	controller.Draft.DesiredCompletionDate = "2023-03-01"
	require.NoError(t, controller.Next(ctx))

	err = controller.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, MsgCapabilityRequired, err.(*exceptions.CustomError).ClientMessage)

	controller.Draft.Capabilities = []string{"cap-1"}
	require.NoError(t, controller.Next(ctx))
	assert.Equal(t, 6, controller.Draft.CurrentStep)
}
