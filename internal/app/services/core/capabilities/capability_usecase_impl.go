package capabilities

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

type capabilityUsecase struct {
	CapabilityRepository contracts.CapabilityRepository
	RedisRepository      contracts.RedisRepository
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewCapabilityUsecase(
	capabilityRepository contracts.CapabilityRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CapabilityUsecase {
	return &capabilityUsecase{
		CapabilityRepository: capabilityRepository,
		RedisRepository:      redisRepository,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *capabilityUsecase) FindAll(ctx context.Context) ([]responses.Capability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("capabilityUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var capabilities []models.Capability

	capabilityRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyCapabilityList)
	if err != nil {
		uc.Log.Error("capabilityUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if capabilityRedisData == "" {
		capabilities, err = uc.CapabilityRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("capabilityUsecase.FindAll error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyCapabilityList, capabilities, uc.cacheTTL())
		if err != nil {
			uc.Log.Error("capabilityUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(capabilityRedisData), &capabilities)
		if err != nil {
			uc.Log.Error("capabilityUsecase.FindAll error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.Capability, len(capabilities))
	for i, eachCapability := range capabilities {
		response[i] = eachCapability.ConvertIntoResponse()
	}

	return response, nil
}

func (uc *capabilityUsecase) Create(ctx context.Context, request *requests.CreateCapability) (*responses.Capability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("capabilityUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	capability := models.Capability{
		Name:        request.Name,
		Group:       request.Group,
		Description: request.Description,
	}

	capabilityID, err := uc.CapabilityRepository.Insert(ctx, capability)
	if err != nil {
		uc.Log.Error("capabilityUsecase.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	capability.ID = capabilityID

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyCapabilityList)
	if err != nil {
		uc.Log.Error("capabilityUsecase.Create error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := capability.ConvertIntoResponse()
	return &response, nil
}

func (uc *capabilityUsecase) Update(ctx context.Context, id string, request *requests.CreateCapability) (*responses.Capability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("capabilityUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	capability := models.Capability{
		Name:        request.Name,
		Group:       request.Group,
		Description: request.Description,
	}

	err := uc.CapabilityRepository.Update(ctx, id, capability)
	if err != nil {
		uc.Log.Error("capabilityUsecase.Update error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	capability.ID = id

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyCapabilityList)
	if err != nil {
		uc.Log.Error("capabilityUsecase.Update error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := capability.ConvertIntoResponse()
	return &response, nil
}

func (uc *capabilityUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Wizard.LookupCacheTTLMinute) * time.Minute
}
