package testMethods

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

type testMethodUsecase struct {
	TestMethodRepository contracts.TestMethodRepository
	RedisRepository      contracts.RedisRepository
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewTestMethodUsecase(
	testMethodRepository contracts.TestMethodRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TestMethodUsecase {
	return &testMethodUsecase{
		TestMethodRepository: testMethodRepository,
		RedisRepository:      redisRepository,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *testMethodUsecase) FindAll(ctx context.Context) ([]responses.TestMethod, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("testMethodUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var testMethods []models.TestMethod

	testMethodRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyTestMethodList)
	if err != nil {
		uc.Log.Error("testMethodUsecase.FindAll error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if testMethodRedisData == "" {
		testMethods, err = uc.TestMethodRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("testMethodUsecase.FindAll error fetching data from MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeyTestMethodList, testMethods, uc.cacheTTL())
		if err != nil {
			uc.Log.Error("testMethodUsecase.FindAll error caching data in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(testMethodRedisData), &testMethods)
		if err != nil {
			uc.Log.Error("testMethodUsecase.FindAll error parsing JSON from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.TestMethod, len(testMethods))
	for i, eachTestMethod := range testMethods {
		response[i] = eachTestMethod.ConvertIntoResponse()
	}

	return response, nil
}

func (uc *testMethodUsecase) Create(ctx context.Context, request *requests.CreateTestMethod) (*responses.TestMethod, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("testMethodUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	testMethod := models.TestMethod{
		Code:       request.Code,
		Name:       request.Name,
		Capability: models.NewRef(request.CapabilityID),
		Unit:       request.Unit,
	}

	testMethodID, err := uc.TestMethodRepository.Insert(ctx, testMethod)
	if err != nil {
		uc.Log.Error("testMethodUsecase.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	testMethod.ID = testMethodID

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyTestMethodList)
	if err != nil {
		uc.Log.Error("testMethodUsecase.Create error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := testMethod.ConvertIntoResponse()
	return &response, nil
}

func (uc *testMethodUsecase) Update(ctx context.Context, id string, request *requests.CreateTestMethod) (*responses.TestMethod, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("testMethodUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	testMethod := models.TestMethod{
		Code:       request.Code,
		Name:       request.Name,
		Capability: models.NewRef(request.CapabilityID),
		Unit:       request.Unit,
	}

	err := uc.TestMethodRepository.Update(ctx, id, testMethod)
	if err != nil {
		uc.Log.Error("testMethodUsecase.Update error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	testMethod.ID = id

	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyTestMethodList)
	if err != nil {
		uc.Log.Error("testMethodUsecase.Update error invalidating cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := testMethod.ConvertIntoResponse()
	return &response, nil
}

func (uc *testMethodUsecase) cacheTTL() time.Duration {
	return time.Duration(uc.InternalConfig.Wizard.LookupCacheTTLMinute) * time.Minute
}
