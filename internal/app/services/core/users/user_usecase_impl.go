package users

import (
	"context"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

// The requester directory changes too often to be worth caching, so every
// read goes straight to the database.
type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) FindAll(ctx context.Context) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("userUsecase.FindAll error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.User, len(users))
	for i, eachUser := range users {
		response[i] = eachUser.ConvertIntoResponse()
	}

	return response, nil
}

func (uc *userUsecase) Create(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := models.User{
		Name:       request.Name,
		Email:      request.Email,
		CostCenter: request.CostCenter,
		Location:   models.NewRef(request.LocationID),
	}

	userID, err := uc.UserRepository.Insert(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.Create error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	user.ID = userID

	response := user.ConvertIntoResponse()
	return &response, nil
}

func (uc *userUsecase) Update(ctx context.Context, id string, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := models.User{
		Name:       request.Name,
		Email:      request.Email,
		CostCenter: request.CostCenter,
		Location:   models.NewRef(request.LocationID),
	}

	err := uc.UserRepository.Update(ctx, id, user)
	if err != nil {
		uc.Log.Error("userUsecase.Update error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	user.ID = id

	response := user.ConvertIntoResponse()
	return &response, nil
}
