package capabilities

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

type CapabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewCapabilityMongoRepository(db *mongo.Client, dbName string) contracts.CapabilityRepository {
	return &CapabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCapabilities),
	}
}

func (repo *CapabilityMongoRepository) FindAll(ctx context.Context) ([]models.Capability, error) {
	var capabilities []models.Capability
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &capabilities)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return capabilities, nil
}

func (repo *CapabilityMongoRepository) Insert(ctx context.Context, capability models.Capability) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, capability)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *CapabilityMongoRepository) Update(ctx context.Context, id string, capability models.Capability) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": capability})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
