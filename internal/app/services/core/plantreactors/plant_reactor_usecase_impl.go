package plantReactors

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

type plantReactorUsecase struct {
	PlantReactorRepository contracts.PlantReactorRepository
	RedisRepository        contracts.RedisRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewPlantReactorUsecase(
	plantReactorRepository contracts.PlantReactorRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PlantReactorUsecase {
	return &plantReactorUsecase{
		PlantReactorRepository: plantReactorRepository,
		RedisRepository:        redisRepository,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

func (uc *plantReactorUsecase) FindAll(ctx context.Context) ([]responses.PlantReactor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("plantReactorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var reactors []models.PlantReactor

	reactorRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPlantReactorList)
	if err != nil {
		uc.Log.Error("plantReactorUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if reactorRedisData == "" {
		reactors, err = uc.PlantReactorRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("plantReactorUsecase.FindAll error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyPlantReactorList, reactors, uc.cacheTTL())
		if err != nil {
			uc.Log.Error("plantReactorUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(reactorRedisData), &reactors)
		if err != nil {
			uc.Log.Error("plantReactorUsecase.FindAll error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.PlantReactor, len(reactors))
	for i, eachReactor := range reactors {
		response[i] = eachReactor.ConvertIntoResponse()
	}

	return response, nil
}

func (uc *plantReactorUsecase) Create(ctx context.Context, request *requests.CreatePlantReactor) (*responses.PlantReactor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("plantReactorUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reactor := models.PlantReactor{
		Plant:   request.Plant,
		Reactor: request.Reactor,
	}

	reactorID, err := uc.PlantReactorRepository.Insert(ctx, reactor)
	if err != nil {
		uc.Log.Error("plantReactorUsecase.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	reactor.ID = reactorID

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyPlantReactorList)
	if err != nil {
		uc.Log.Error("plantReactorUsecase.Create error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := reactor.ConvertIntoResponse()
	return &response, nil
}

func (uc *plantReactorUsecase) Update(ctx context.Context, id string, request *requests.CreatePlantReactor) (*responses.PlantReactor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("plantReactorUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reactor := models.PlantReactor{
		Plant:   request.Plant,
		Reactor: request.Reactor,
	}

	err := uc.PlantReactorRepository.Update(ctx, id, reactor)
	if err != nil {
		uc.Log.Error("plantReactorUsecase.Update error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	reactor.ID = id

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyPlantReactorList)
	if err != nil {
		uc.Log.Error("plantReactorUsecase.Update error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := reactor.ConvertIntoResponse()
	return &response, nil
}

func (uc *plantReactorUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Wizard.LookupCacheTTLMinute) * time.Minute
}
