package locations

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

type LocationMongoRepository struct {
	Collection *mongo.Collection
}

func NewLocationMongoRepository(db *mongo.Client, dbName string) contracts.LocationRepository {
	return &LocationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLocations),
	}
}

func (repo *LocationMongoRepository) FindAll(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &locations)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return locations, nil
}

func (repo *LocationMongoRepository) Insert(ctx context.Context, location models.Location) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, location)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *LocationMongoRepository) Update(ctx context.Context, id string, location models.Location) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": location})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
