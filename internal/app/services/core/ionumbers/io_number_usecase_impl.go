package ioNumbers

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

type ioNumberUsecase struct {
	IONumberRepository contracts.IONumberRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewIONumberUsecase(
	ioNumberRepository contracts.IONumberRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.IONumberUsecase {
	return &ioNumberUsecase{
		IONumberRepository: ioNumberRepository,
		RedisRepository:    redisRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *ioNumberUsecase) FindAll(ctx context.Context) ([]responses.IONumber, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ioNumberUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var ioNumbers []models.IONumber

	ioNumberRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyIONumberList)
	if err != nil {
		uc.Log.Error("ioNumberUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if ioNumberRedisData == "" {
		ioNumbers, err = uc.IONumberRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("ioNumberUsecase.FindAll error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyIONumberList, ioNumbers, uc.cacheTTL())
		if err != nil {
			uc.Log.Error("ioNumberUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(ioNumberRedisData), &ioNumbers)
		if err != nil {
			uc.Log.Error("ioNumberUsecase.FindAll error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.IONumber, len(ioNumbers))
	for i, eachIONumber := range ioNumbers {
		response[i] = eachIONumber.ConvertIntoResponse()
	}

	return response, nil
}

func (uc *ioNumberUsecase) Create(ctx context.Context, request *requests.CreateIONumber) (*responses.IONumber, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ioNumberUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ioNumber := models.IONumber{
		Number:     request.Number,
		CostCenter: request.CostCenter,
		ValidUntil: request.ValidUntil,
	}

	ioNumberID, err := uc.IONumberRepository.Insert(ctx, ioNumber)
	if err != nil {
		uc.Log.Error("ioNumberUsecase.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	ioNumber.ID = ioNumberID

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyIONumberList)
	if err != nil {
		uc.Log.Error("ioNumberUsecase.Create error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := ioNumber.ConvertIntoResponse()
	return &response, nil
}

func (uc *ioNumberUsecase) Update(ctx context.Context, id string, request *requests.CreateIONumber) (*responses.IONumber, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ioNumberUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ioNumber := models.IONumber{
		Number:     request.Number,
		CostCenter: request.CostCenter,
		ValidUntil: request.ValidUntil,
	}

	err := uc.IONumberRepository.Update(ctx, id, ioNumber)
	if err != nil {
		uc.Log.Error("ioNumberUsecase.Update error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	ioNumber.ID = id

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyIONumberList)
	if err != nil {
		uc.Log.Error("ioNumberUsecase.Update error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := ioNumber.ConvertIntoResponse()
	return &response, nil
}

func (uc *ioNumberUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Wizard.LookupCacheTTLMinute) * time.Minute
}
