package testRequests

import (
	"context"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/dto/requests"
	"labrequest-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestRequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewTestRequestMongoRepository(db *mongo.Client, dbName string) contracts.TestRequestRepository {
	return &TestRequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTestRequests),
	}
}

func (repo *TestRequestMongoRepository) Insert(ctx context.Context, testRequest models.TestRequest) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, testRequest)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TestRequestMongoRepository) FindAll(ctx context.Context, pagination *requests.Pagination) ([]models.TestRequest, int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var testRequests []models.TestRequest
	opts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
		SetSkip(int64((pagination.Page - 1) * pagination.PageSize)).
		SetLimit(int64(pagination.PageSize))
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &testRequests)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return testRequests, int(total), nil
}

func (repo *TestRequestMongoRepository) FindByID(ctx context.Context, id string) (*models.TestRequest, error) {
	var testRequest models.TestRequest
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&testRequest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &testRequest, nil
}
