package wizardflow

import (
	"context"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/dto/responses"
	"labrequest-service/internal/pkg/exceptions"
	"labrequest-service/internal/pkg/wizard"
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
	received      *wizard.RequestDraft
}

func (s *stubSubmitter) Submit(_ context.Context, draft *wizard.RequestDraft) (string, error) {
	s.received = draft
	return s.requestNumber, s.err
}

// stubShortCodes satisfies the app-tech usecase with a fixed short code
// mapping. The CRUD methods are never reached from the wizard.
type stubShortCodes struct {
	codes map[string]string
}

func (s *stubShortCodes) FindAll(_ context.Context) ([]responses.AppTech, error) {
	return nil, nil
}

func (s *stubShortCodes) Create(_ context.Context, _ *requests.CreateAppTech) (*responses.AppTech, error) {
	return nil, nil
}

func (s *stubShortCodes) Update(_ context.Context, _ string, _ *requests.CreateAppTech) (*responses.AppTech, error) {
	return nil, nil
}

func (s *stubShortCodes) ShortCode(_ context.Context, ref string) (string, bool) {
	code, ok := s.codes[ref]
	return code, ok
}

func newTestUsecase(store wizard.CheckpointStore, submitter wizard.Submitter) *wizardUsecase {
	return &wizardUsecase{
		CheckpointStore: store,
		AppTechUsecase:  &stubShortCodes{codes: map[string]string{"Injection Molding": "IM", "Stiffness": "ST"}},
		Submitter:       submitter,
		Log:             zap.NewNop(),
	}
}

func commercialBuffer(identity string) *requests.SampleBuffer {
	return &requests.SampleBuffer{
		Category:       string(wizard.CategoryCommercialGrade),
		Grade:          "HD5000S",
		Lot:            "H23010101",
		SampleIdentity: identity,
		PolymerType:    "HDPE",
		Form:           "Pellet",
	}
}

func TestWizardUsecaseLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMapStore()
	submitter := &stubSubmitter{requestNumber: "NTR-20240101-AAAAAA"}
	uc := newTestUsecase(store, submitter)

	state, err := uc.Start(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Equal(t, 3, state.StepCount)
	assert.Equal(t, []string{"request-info", "samples", "attachments"}, state.StepNames)

	title := "PE film haze investigation"
	state, err = uc.UpdateDraft(ctx, wizard.FlowKindNTR, "session-1", &requests.UpdateDraft{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, state.Draft.Title)

	state, err = uc.Next(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentStep)

	state, message, err := uc.AddSample(ctx, wizard.FlowKindNTR, "session-1", commercialBuffer("X1"))
	require.NoError(t, err)
	require.Len(t, state.Draft.Samples.Items, 1)
	assert.Equal(t, "HD5000S-H23010101-X1", state.Draft.Samples.Items[0].GeneratedName)
	assert.Contains(t, message, "HD5000S-H23010101-X1")

	// The committed sample survives a completely fresh mount.
	fresh := newTestUsecase(store, submitter)
	state, err = fresh.State(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	require.Len(t, state.Draft.Samples.Items, 1)
	assert.True(t, state.RehydratedSamples)
	assert.Equal(t, 2, state.CurrentStep)

	// Same derived name again is refused.
	_, _, err = uc.AddSample(ctx, wizard.FlowKindNTR, "session-1", commercialBuffer("X1"))
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, 409))

	state, err = uc.Next(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 3, state.CurrentStep)

	result, err := uc.Submit(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "NTR-20240101-AAAAAA", result.RequestNumber)
	require.NotNil(t, submitter.received)
	assert.Equal(t, title, submitter.received.Title)

	// Checkpoints are cleared: the session restarts empty.
	state, err = uc.State(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Empty(t, state.Draft.Samples.Items)
}

func TestWizardUsecaseUnknownFlow(t *testing.T) {
	uc := newTestUsecase(newMapStore(), &stubSubmitter{})

	_, err := uc.State(context.Background(), "qa", "session-1")
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, 404))
}

func TestWizardUsecaseSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := newMapStore()
	uc := newTestUsecase(store, &stubSubmitter{})

	_, _, err := uc.AddSample(ctx, wizard.FlowKindNTR, "session-a", commercialBuffer("A1"))
	require.NoError(t, err)

	state, err := uc.State(ctx, wizard.FlowKindNTR, "session-b")
	require.NoError(t, err)
	assert.Empty(t, state.Draft.Samples.Items)
}

func TestWizardUsecaseDeriveSampleName(t *testing.T) {
	uc := newTestUsecase(newMapStore(), &stubSubmitter{})

	result, err := uc.DeriveSampleName(context.Background(), commercialBuffer("X9"))
	require.NoError(t, err)
	assert.Equal(t, "HD5000S-H23010101-X9", result.GeneratedName)
	assert.Empty(t, result.NextRequiredField)

	incomplete := commercialBuffer("")
	result, err = uc.DeriveSampleName(context.Background(), incomplete)
	require.NoError(t, err)
	assert.Empty(t, result.GeneratedName)
	assert.Equal(t, "sampleIdentity", result.NextRequiredField)

	// Taxonomy references resolve through their short codes.
	tdnpd := &requests.SampleBuffer{
		Category:       string(wizard.CategoryTDNPD),
		Tech:           "Injection Molding",
		Feature:        "Stiffness",
		SampleIdentity: "T1",
		PolymerType:    "PP",
		Form:           "Pellet",
	}
	result, err = uc.DeriveSampleName(context.Background(), tdnpd)
	require.NoError(t, err)
	assert.Equal(t, "IM-ST-T1", result.GeneratedName)
}

func TestWizardUsecaseUpdateAndRemoveSample(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMapStore(), &stubSubmitter{})

	_, _, err := uc.AddSample(ctx, wizard.FlowKindNTR, "session-1", commercialBuffer("X1"))
	require.NoError(t, err)
	_, _, err = uc.AddSample(ctx, wizard.FlowKindNTR, "session-1", commercialBuffer("X2"))
	require.NoError(t, err)

	// Renaming the second sample onto the first is a conflict.
	_, _, err = uc.UpdateSample(ctx, wizard.FlowKindNTR, "session-1", 1, commercialBuffer("X1"))
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, 409))

	// Committing the unchanged name back to its own slot is fine.
	state, _, err := uc.UpdateSample(ctx, wizard.FlowKindNTR, "session-1", 1, commercialBuffer("X2"))
	require.NoError(t, err)
	assert.Len(t, state.Draft.Samples.Items, 2)

	state, message, err := uc.RemoveSample(ctx, wizard.FlowKindNTR, "session-1", 0)
	require.NoError(t, err)
	assert.Len(t, state.Draft.Samples.Items, 1)
	assert.Contains(t, message, "HD5000S-H23010101-X1")

	_, _, err = uc.RemoveSample(ctx, wizard.FlowKindNTR, "session-1", 5)
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, 404))
}

func TestWizardUsecaseEditSample(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMapStore(), &stubSubmitter{})

	_, _, err := uc.AddSample(ctx, wizard.FlowKindNTR, "session-1", commercialBuffer("X1"))
	require.NoError(t, err)

	state, message, err := uc.EditSample(ctx, wizard.FlowKindNTR, "session-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Draft.Samples.EditIndex)
	assert.Equal(t, "HD5000S-H23010101-X1", state.Draft.Samples.Buffer.GeneratedName)
	assert.Contains(t, message, "HD5000S-H23010101-X1")

	state, err = uc.CancelEditSample(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	assert.Equal(t, wizard.NoExclusion, state.Draft.Samples.EditIndex)
	assert.Empty(t, state.Draft.Samples.Buffer.GeneratedName)

	_, _, err = uc.EditSample(ctx, wizard.FlowKindNTR, "session-1", 7)
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, 404))
}

func TestWizardUsecaseCSVRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMapStore(), &stubSubmitter{})

	_, _, err := uc.AddSample(ctx, wizard.FlowKindNTR, "session-1", commercialBuffer("X1"))
	require.NoError(t, err)
	_, _, err = uc.AddSample(ctx, wizard.FlowKindNTR, "session-1", commercialBuffer("X2"))
	require.NoError(t, err)

	csvText, err := uc.ExportSamplesCSV(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	assert.Contains(t, csvText, "HD5000S-H23010101-X1")
	assert.Contains(t, csvText, "HD5000S-H23010101-X2")

	// Importing into another session lands both samples; importing into
	// the source session skips every duplicate.
	state, imported, err := uc.ImportSamplesCSV(ctx, wizard.FlowKindNTR, "session-2", csvText)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	assert.Len(t, state.Draft.Samples.Items, 2)

	_, _, err = uc.ImportSamplesCSV(ctx, wizard.FlowKindNTR, "session-1", csvText)
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, 409))
}

func TestWizardUsecaseImportRejectsBadCSV(t *testing.T) {
	ctx := context.Background()
	uc := newTestUsecase(newMapStore(), &stubSubmitter{})

	t.Run("Unbalanced quoting is a client error", func(t *testing.T) {
		malformed := "grade,lot\n\"unclosed,1\nnext"
		_, _, err := uc.ImportSamplesCSV(ctx, wizard.FlowKindNTR, "session-1", malformed)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, 400))
	})

	t.Run("Rows without a generated name are discarded", func(t *testing.T) {
		headerOnly := "category,grade,lot,sampleIdentity\nCommercialGrade,HD5000S,H23010101,\n"
		_, _, err := uc.ImportSamplesCSV(ctx, wizard.FlowKindNTR, "session-1", headerOnly)
		require.Error(t, err)
		assert.True(t, exceptions.IsStatus(err, 400))
	})

	// The session keeps whatever it had before the failed import.
	state, err := uc.State(ctx, wizard.FlowKindNTR, "session-1")
	require.NoError(t, err)
	assert.Empty(t, state.Draft.Samples.Items)
}
