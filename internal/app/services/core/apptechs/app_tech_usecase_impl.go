package appTechs

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

type appTechUsecase struct {
	AppTechRepository contracts.AppTechRepository
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAppTechUsecase(
	appTechRepository contracts.AppTechRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppTechUsecase {
	return &appTechUsecase{
		AppTechRepository: appTechRepository,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *appTechUsecase) FindAll(ctx context.Context) ([]responses.AppTech, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appTechUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appTechs, err := uc.findAllCached(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.AppTech, len(appTechs))
	for i, eachAppTech := range appTechs {
		response[i] = eachAppTech.ConvertIntoResponse()
	}

	return response, nil
}

func (uc *appTechUsecase) Create(ctx context.Context, request *requests.CreateAppTech) (*responses.AppTech, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appTechUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appTech := models.AppTech{
		Kind:      request.Kind,
		Name:      request.Name,
		ShortCode: request.ShortCode,
		Parent:    models.NewRef(request.ParentID),
	}

	appTechID, err := uc.AppTechRepository.Insert(ctx, appTech)
	if err != nil {
		uc.Log.Error("appTechUsecase.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appTech.ID = appTechID

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyAppTechList)
	if err != nil {
		uc.Log.Error("appTechUsecase.Create error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := appTech.ConvertIntoResponse()
	return &response, nil
}

func (uc *appTechUsecase) Update(ctx context.Context, id string, request *requests.CreateAppTech) (*responses.AppTech, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appTechUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appTech := models.AppTech{
		Kind:      request.Kind,
		Name:      request.Name,
		ShortCode: request.ShortCode,
		Parent:    models.NewRef(request.ParentID),
	}

	err := uc.AppTechRepository.Update(ctx, id, appTech)
	if err != nil {
		uc.Log.Error("appTechUsecase.Update error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appTech.ID = id

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyAppTechList)
	if err != nil {
		uc.Log.Error("appTechUsecase.Update error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := appTech.ConvertIntoResponse()
	return &response, nil
}

// ShortCode resolves a taxonomy entry to its display code. Name derivation
// calls this once per sample field, so it reads through the cached list
// instead of hitting the database per lookup.
func (uc *appTechUsecase) ShortCode(ctx context.Context, ref string) (string, bool) {
	if ref == "" {
		return "", false
	}

	appTechs, err := uc.findAllCached(ctx)
	if err != nil {
		return "", false
	}

	for _, eachAppTech := range appTechs {
		if eachAppTech.ID == ref {
			if eachAppTech.ShortCode != "" {
				return eachAppTech.ShortCode, true
			}
			return eachAppTech.Name, true
		}
	}

	return "", false
}

func (uc *appTechUsecase) findAllCached(ctx context.Context) ([]models.AppTech, error) {
	var appTechs []models.AppTech

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	appTechRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyAppTechList)
	if err != nil {
		uc.Log.Error("appTechUsecase.findAllCached error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if appTechRedisData == "" {
		appTechs, err = uc.AppTechRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("appTechUsecase.findAllCached error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		ttl := time.Duration(uc.InternalConfig.Wizard.LookupCacheTTLMinute) * time.Minute
		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyAppTechList, appTechs, ttl)
		if err != nil {
			uc.Log.Error("appTechUsecase.findAllCached error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(appTechRedisData), &appTechs)
		if err != nil {
			uc.Log.Error("appTechUsecase.findAllCached error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	return appTechs, nil
}
