package locations

import (
	"context"
	"labrequest-service/internal/app/config"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/dto/responses"
	"labrequest-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type locationUsecase struct {
	LocationRepository contracts.LocationRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewLocationUsecase(
	locationRepository contracts.LocationRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LocationUsecase {
	return &locationUsecase{
		LocationRepository: locationRepository,
		RedisRepository:    redisRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *locationUsecase) FindAll(ctx context.Context) ([]responses.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("locationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var locations []models.Location

	locationRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyLocationList)
	if err != nil {
		uc.Log.Error("locationUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if locationRedisData == "" {
		locations, err = uc.LocationRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("locationUsecase.FindAll error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyLocationList, locations, uc.cacheTTL())
		if err != nil {
			uc.Log.Error("locationUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(locationRedisData), &locations)
		if err != nil {
			uc.Log.Error("locationUsecase.FindAll error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.Location, len(locations))
	for i, eachLocation := range locations {
		response[i] = eachLocation.ConvertIntoResponse()
	}

	return response, nil
}

func (uc *locationUsecase) Create(ctx context.Context, request *requests.CreateLocation) (*responses.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("locationUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	location := models.Location{
		Name: request.Name,
		Site: request.Site,
	}

	locationID, err := uc.LocationRepository.Insert(ctx, location)
	if err != nil {
		uc.Log.Error("locationUsecase.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	location.ID = locationID

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyLocationList)
	if err != nil {
		uc.Log.Error("locationUsecase.Create error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := location.ConvertIntoResponse()
	return &response, nil
}

func (uc *locationUsecase) Update(ctx context.Context, id string, request *requests.CreateLocation) (*responses.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("locationUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	location := models.Location{
		Name: request.Name,
		Site: request.Site,
	}

	err := uc.LocationRepository.Update(ctx, id, location)
	if err != nil {
		uc.Log.Error("locationUsecase.Update error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	location.ID = id

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyLocationList)
	if err != nil {
		uc.Log.Error("locationUsecase.Update error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := location.ConvertIntoResponse()
	return &response, nil
}

func (uc *locationUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Wizard.LookupCacheTTLMinute) * time.Minute
}
