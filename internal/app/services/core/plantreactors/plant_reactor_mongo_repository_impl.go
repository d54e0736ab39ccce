package plantReactors

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

type PlantReactorMongoRepository struct {
	Collection *mongo.Collection
}

func NewPlantReactorMongoRepository(db *mongo.Client, dbName string) contracts.PlantReactorRepository {
	return &PlantReactorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPlantReactors),
	}
}

func (repo *PlantReactorMongoRepository) FindAll(ctx context.Context) ([]models.PlantReactor, error) {
	var reactors []models.PlantReactor
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &reactors)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reactors, nil
}

func (repo *PlantReactorMongoRepository) Insert(ctx context.Context, reactor models.PlantReactor) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, reactor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PlantReactorMongoRepository) Update(ctx context.Context, id string, reactor models.PlantReactor) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": reactor})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
