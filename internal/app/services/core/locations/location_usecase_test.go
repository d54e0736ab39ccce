package locations

import (
	"context"
	"labrequest-service/internal/app/config"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubLocationRepository struct {
	locations []models.Location
	findCalls int
}

func (s *stubLocationRepository) FindAll(_ context.Context) ([]models.Location, error) {
	s.findCalls++
	return s.locations, nil
}

func (s *stubLocationRepository) Insert(_ context.Context, location models.Location) (string, error) {
	s.locations = append(s.locations, location)
	return "loc-1", nil
}

func (s *stubLocationRepository) Update(_ context.Context, _ string, _ models.Location) error {
	return nil
}

type mapRedis struct {
	data map[string]string
}

func newMapRedis() *mapRedis {
	return &mapRedis{data: make(map[string]string)}
}

func (r *mapRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.data[key] = string(encoded)
	return nil
}

func (r *mapRedis) Get(_ context.Context, key string) (string, error) {
	return r.data[key], nil
}

func (r *mapRedis) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func newTestConfig() *config.InternalConfig {
	internalConfig := &config.InternalConfig{}
	internalConfig.Wizard.LookupCacheTTLMinute = 5
	return internalConfig
}

func TestLocationUsecaseFindAllCaches(t *testing.T) {
	ctx := context.Background()
	repo := &stubLocationRepository{locations: []models.Location{{ID: "1", Name: "Main Lab", Site: "Rayong"}}}
	redis := newMapRedis()
	uc := NewLocationUsecase(repo, redis, newTestConfig(), zap.NewNop())

	result, err := uc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Main Lab", result[0].Name)
	assert.Equal(t, 1, repo.findCalls)

	// Second read is served from the cache.
	result, err = uc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 1, repo.findCalls)
	assert.NotEmpty(t, redis.data[constvars.RedisKeyLocationList])
}

func TestLocationUsecaseCreateInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := &stubLocationRepository{}
	redis := newMapRedis()
	uc := NewLocationUsecase(repo, redis, newTestConfig(), zap.NewNop())

	_, err := uc.FindAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, redis.data[constvars.RedisKeyLocationList])

	created, err := uc.Create(ctx, &requests.CreateLocation{Name: "Pilot Plant Lab", Site: "Map Ta Phut"})
	require.NoError(t, err)
	assert.Equal(t, "loc-1", created.ID)
	assert.Empty(t, redis.data[constvars.RedisKeyLocationList])
}

func TestLocationUsecaseLogsWithRequestID(t *testing.T) {
	core, observed := observer.New(zap.InfoLevel)
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "LABREQ_SVC_test")
	uc := NewLocationUsecase(&stubLocationRepository{}, newMapRedis(), newTestConfig(), zap.New(core))

	_, err := uc.FindAll(ctx)
	require.NoError(t, err)

	entries := observed.FilterMessage("locationUsecase.FindAll called").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "LABREQ_SVC_test", entries[0].ContextMap()[constvars.LoggingRequestIDKey])
}
