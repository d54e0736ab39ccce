package testMethods

import (
	"context"
	"labrequest-service/internal/app/contracts"
	"labrequest-service/internal/app/models"
	"labrequest-service/internal/pkg/constvars"
	"labrequest-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TestMethodMongoRepository struct {
	Collection *mongo.Collection
}

func NewTestMethodMongoRepository(db *mongo.Client, dbName string) contracts.TestMethodRepository {
	return &TestMethodMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTestMethods),
	}
}

func (repo *TestMethodMongoRepository) FindAll(ctx context.Context) ([]models.TestMethod, error) {
	var testMethods []models.TestMethod
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &testMethods)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return testMethods, nil
}

func (repo *TestMethodMongoRepository) Insert(ctx context.Context, testMethod models.TestMethod) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, testMethod)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *TestMethodMongoRepository) Update(ctx context.Context, id string, testMethod models.TestMethod) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": testMethod})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
