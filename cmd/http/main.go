package main

import (
	"context"
	"labrequest-service/internal/app/config"
	"labrequest-service/internal/app/delivery/http/middlewares"
	"labrequest-service/internal/app/delivery/http/routers"
	"labrequest-service/internal/app/drivers/database"
	"labrequest-service/internal/app/drivers/logger"
	"labrequest-service/internal/app/drivers/messaging"
	"labrequest-service/internal/app/drivers/storage"
	appTechs "labrequest-service/internal/app/services/core/apptechs"
	"labrequest-service/internal/app/services/core/attachments"
	"labrequest-service/internal/app/services/core/capabilities"
	commercialGrades "labrequest-service/internal/app/services/core/commercialgrades"
	ioNumbers "labrequest-service/internal/app/services/core/ionumbers"
	"labrequest-service/internal/app/services/core/locations"
	plantReactors "labrequest-service/internal/app/services/core/plantreactors"
	testMethods "labrequest-service/internal/app/services/core/testmethods"
	testRequests "labrequest-service/internal/app/services/core/testrequests"
	"labrequest-service/internal/app/services/core/users"
	"labrequest-service/internal/app/services/core/wizardflow"
	"labrequest-service/internal/app/services/shared/checkpoint"
	sharedredis "labrequest-service/internal/app/services/shared/redis"
	sharedminio "labrequest-service/internal/app/services/shared/storage"
	"labrequest-service/internal/app/services/shared/submitqueue"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Closing drivers failed: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)

	// Wizard checkpoint store
	checkpointTTL := time.Duration(bootstrap.InternalConfig.Wizard.CheckpointTTLHours) * time.Hour
	checkpointStore := checkpoint.NewRedisCheckpointStore(redisRepository, checkpointTTL)

	// Object storage
	minioStorage := sharedminio.NewMinioStorage(bootstrap.Minio)

	// Submission queue
	submissionQueue, err := submitqueue.NewSubmitQueue(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Wizard.SubmittedQueueName,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize submission queue: %v", err)
	}

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
		WizardLimiter:  middlewares.NewRateLimiter(bootstrap.InternalConfig.App.MaxRequests, time.Second, 30*time.Second),
	}
	bootstrap.Router.Use(appMiddlewares.RequestIDMiddleware)
	bootstrap.Router.Use(appMiddlewares.Logging(bootstrap.Logger))
	bootstrap.Router.Use(appMiddlewares.RequestBodyLimit)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Locations
	locationMongoRepository := locations.NewLocationMongoRepository(bootstrap.MongoDB, dbName)
	locationUsecase := locations.NewLocationUsecase(locationMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	locationController := locations.NewLocationController(bootstrap.Logger, locationUsecase)

	// Capabilities
	capabilityMongoRepository := capabilities.NewCapabilityMongoRepository(bootstrap.MongoDB, dbName)
	capabilityUsecase := capabilities.NewCapabilityUsecase(capabilityMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	capabilityController := capabilities.NewCapabilityController(bootstrap.Logger, capabilityUsecase)

	// Test methods
	testMethodMongoRepository := testMethods.NewTestMethodMongoRepository(bootstrap.MongoDB, dbName)
	testMethodUsecase := testMethods.NewTestMethodUsecase(testMethodMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	testMethodController := testMethods.NewTestMethodController(bootstrap.Logger, testMethodUsecase)

	// Users
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Commercial grades
	commercialGradeMongoRepository := commercialGrades.NewCommercialGradeMongoRepository(bootstrap.MongoDB, dbName)
	commercialGradeUsecase := commercialGrades.NewCommercialGradeUsecase(commercialGradeMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	commercialGradeController := commercialGrades.NewCommercialGradeController(bootstrap.Logger, commercialGradeUsecase)

	// IO numbers
	ioNumberMongoRepository := ioNumbers.NewIONumberMongoRepository(bootstrap.MongoDB, dbName)
	ioNumberUsecase := ioNumbers.NewIONumberUsecase(ioNumberMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	ioNumberController := ioNumbers.NewIONumberController(bootstrap.Logger, ioNumberUsecase)

	// Plant reactors
	plantReactorMongoRepository := plantReactors.NewPlantReactorMongoRepository(bootstrap.MongoDB, dbName)
	plantReactorUsecase := plantReactors.NewPlantReactorUsecase(plantReactorMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	plantReactorController := plantReactors.NewPlantReactorController(bootstrap.Logger, plantReactorUsecase)

	// App-tech taxonomy
	appTechMongoRepository := appTechs.NewAppTechMongoRepository(bootstrap.MongoDB, dbName)
	appTechUsecase := appTechs.NewAppTechUsecase(appTechMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	appTechController := appTechs.NewAppTechController(bootstrap.Logger, appTechUsecase)

	// Test requests
	testRequestMongoRepository := testRequests.NewTestRequestMongoRepository(bootstrap.MongoDB, dbName)
	testRequestUsecase := testRequests.NewTestRequestUsecase(testRequestMongoRepository)
	testRequestController := testRequests.NewTestRequestController(bootstrap.Logger, testRequestUsecase)
	testRequestSubmitter := testRequests.NewTestRequestSubmitter(testRequestMongoRepository, submissionQueue, bootstrap.Logger)

	// Wizard
	wizardUsecase := wizardflow.NewWizardUsecase(checkpointStore, appTechUsecase, testRequestSubmitter, bootstrap.Logger)
	wizardController := wizardflow.NewWizardController(bootstrap.Logger, wizardUsecase)

	// Attachments
	attachmentController := attachments.NewAttachmentController(
		bootstrap.Logger,
		minioStorage,
		bootstrap.DriverConfig,
		bootstrap.InternalConfig.App.AttachmentMaxUploadSizeMB,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		locationController,
		capabilityController,
		testMethodController,
		userController,
		commercialGradeController,
		ioNumberController,
		plantReactorController,
		appTechController,
		testRequestController,
		wizardController,
		attachmentController,
	)
}
