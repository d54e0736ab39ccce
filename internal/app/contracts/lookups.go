package contracts

import (
	"context"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/dto/responses"
)

type LocationRepository interface {
	FindAll(ctx context.Context) ([]models.Location, error)
	Insert(ctx context.Context, location models.Location) (string, error)
	Update(ctx context.Context, id string, location models.Location) error
}

type LocationUsecase interface {
	FindAll(ctx context.Context) ([]responses.Location, error)
	Create(ctx context.Context, request *requests.CreateLocation) (*responses.Location, error)
	Update(ctx context.Context, id string, request *requests.CreateLocation) (*responses.Location, error)
}

type CapabilityRepository interface {
	FindAll(ctx context.Context) ([]models.Capability, error)
	Insert(ctx context.Context, capability models.Capability) (string, error)
	Update(ctx context.Context, id string, capability models.Capability) error
}

type CapabilityUsecase interface {
	FindAll(ctx context.Context) ([]responses.Capability, error)
	Create(ctx context.Context, request *requests.CreateCapability) (*responses.Capability, error)
	Update(ctx context.Context, id string, request *requests.CreateCapability) (*responses.Capability, error)
}

type TestMethodRepository interface {
	FindAll(ctx context.Context) ([]models.TestMethod, error)
	Insert(ctx context.Context, testMethod models.TestMethod) (string, error)
	Update(ctx context.Context, id string, testMethod models.TestMethod) error
}

type TestMethodUsecase interface {
	FindAll(ctx context.Context) ([]responses.TestMethod, error)
	Create(ctx context.Context, request *requests.CreateTestMethod) (*responses.TestMethod, error)
	Update(ctx context.Context, id string, request *requests.CreateTestMethod) (*responses.TestMethod, error)
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user models.User) (string, error)
	Update(ctx context.Context, id string, user models.User) error
}

type UserUsecase interface {
	FindAll(ctx context.Context) ([]responses.User, error)
	Create(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
	Update(ctx context.Context, id string, request *requests.CreateUser) (*responses.User, error)
}

type CommercialGradeRepository interface {
	FindAll(ctx context.Context) ([]models.CommercialGrade, error)
	Insert(ctx context.Context, grade models.CommercialGrade) (string, error)
	Update(ctx context.Context, id string, grade models.CommercialGrade) error
}

type CommercialGradeUsecase interface {
	FindAll(ctx context.Context) ([]responses.CommercialGrade, error)
	Create(ctx context.Context, request *requests.CreateCommercialGrade) (*responses.CommercialGrade, error)
	Update(ctx context.Context, id string, request *requests.CreateCommercialGrade) (*responses.CommercialGrade, error)
}

type IONumberRepository interface {
	FindAll(ctx context.Context) ([]models.IONumber, error)
	Insert(ctx context.Context, ioNumber models.IONumber) (string, error)
	Update(ctx context.Context, id string, ioNumber models.IONumber) error
}

type IONumberUsecase interface {
	FindAll(ctx context.Context) ([]responses.IONumber, error)
	Create(ctx context.Context, request *requests.CreateIONumber) (*responses.IONumber, error)
	Update(ctx context.Context, id string, request *requests.CreateIONumber) (*responses.IONumber, error)
}

type PlantReactorRepository interface {
	FindAll(ctx context.Context) ([]models.PlantReactor, error)
	Insert(ctx context.Context, reactor models.PlantReactor) (string, error)
	Update(ctx context.Context, id string, reactor models.PlantReactor) error
}

type PlantReactorUsecase interface {
	FindAll(ctx context.Context) ([]responses.PlantReactor, error)
	Create(ctx context.Context, request *requests.CreatePlantReactor) (*responses.PlantReactor, error)
	Update(ctx context.Context, id string, request *requests.CreatePlantReactor) (*responses.PlantReactor, error)
}

type AppTechRepository interface {
	FindAll(ctx context.Context) ([]models.AppTech, error)
	FindByID(ctx context.Context, id string) (*models.AppTech, error)
	Insert(ctx context.Context, appTech models.AppTech) (string, error)
	Update(ctx context.Context, id string, appTech models.AppTech) error
}

type AppTechUsecase interface {
	FindAll(ctx context.Context) ([]responses.AppTech, error)
	Create(ctx context.Context, request *requests.CreateAppTech) (*responses.AppTech, error)
	Update(ctx context.Context, id string, request *requests.CreateAppTech) (*responses.AppTech, error)
	// ShortCode resolves a taxonomy reference to its short display code for
	// sample name derivation.
	ShortCode(ctx context.Context, ref string) (string, bool)
}
