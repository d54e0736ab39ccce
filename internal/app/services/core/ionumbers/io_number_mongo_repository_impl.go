package ioNumbers

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

type IONumberMongoRepository struct {
	Collection *mongo.Collection
}

func NewIONumberMongoRepository(db *mongo.Client, dbName string) contracts.IONumberRepository {
	return &IONumberMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionIONumbers),
	}
}

func (repo *IONumberMongoRepository) FindAll(ctx context.Context) ([]models.IONumber, error) {
	var ioNumbers []models.IONumber
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &ioNumbers)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return ioNumbers, nil
}

func (repo *IONumberMongoRepository) Insert(ctx context.Context, ioNumber models.IONumber) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, ioNumber)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *IONumberMongoRepository) Update(ctx context.Context, id string, ioNumber models.IONumber) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": ioNumber})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
