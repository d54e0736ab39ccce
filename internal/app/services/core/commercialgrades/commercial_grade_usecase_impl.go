package commercialGrades

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

type commercialGradeUsecase struct {
	CommercialGradeRepository contracts.CommercialGradeRepository
	RedisRepository           contracts.RedisRepository
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
}

func NewCommercialGradeUsecase(
	commercialGradeRepository contracts.CommercialGradeRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CommercialGradeUsecase {
	return &commercialGradeUsecase{
		CommercialGradeRepository: commercialGradeRepository,
		RedisRepository:           redisRepository,
		InternalConfig:            internalConfig,
		Log:                       logger,
	}
}

func (uc *commercialGradeUsecase) FindAll(ctx context.Context) ([]responses.CommercialGrade, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("commercialGradeUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var grades []models.CommercialGrade

	gradeRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyCommercialGradeList)
	if err != nil {
		uc.Log.Error("commercialGradeUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if gradeRedisData == "" {
		grades, err = uc.CommercialGradeRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("commercialGradeUsecase.FindAll error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyCommercialGradeList, grades, uc.cacheTTL())
		if err != nil {
			uc.Log.Error("commercialGradeUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(gradeRedisData), &grades)
		if err != nil {
			uc.Log.Error("commercialGradeUsecase.FindAll error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.CommercialGrade, len(grades))
	for i, eachGrade := range grades {
		response[i] = eachGrade.ConvertIntoResponse()
	}

	return response, nil
}

func (uc *commercialGradeUsecase) Create(ctx context.Context, request *requests.CreateCommercialGrade) (*responses.CommercialGrade, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("commercialGradeUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	grade := models.CommercialGrade{
		Grade:       request.Grade,
		ProductLine: request.ProductLine,
		Plant:       request.Plant,
	}

	gradeID, err := uc.CommercialGradeRepository.Insert(ctx, grade)
	if err != nil {
		uc.Log.Error("commercialGradeUsecase.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	grade.ID = gradeID

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyCommercialGradeList)
	if err != nil {
		uc.Log.Error("commercialGradeUsecase.Create error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := grade.ConvertIntoResponse()
	return &response, nil
}

func (uc *commercialGradeUsecase) Update(ctx context.Context, id string, request *requests.CreateCommercialGrade) (*responses.CommercialGrade, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("commercialGradeUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	grade := models.CommercialGrade{
		Grade:       request.Grade,
		ProductLine: request.ProductLine,
		Plant:       request.Plant,
	}

	err := uc.CommercialGradeRepository.Update(ctx, id, grade)
	if err != nil {
		uc.Log.Error("commercialGradeUsecase.Update error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	grade.ID = id

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyCommercialGradeList)
	if err != nil {
		uc.Log.Error("commercialGradeUsecase.Update error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := grade.ConvertIntoResponse()
	return &response, nil
}

func (uc *commercialGradeUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Wizard.LookupCacheTTLMinute) * time.Minute
}
