package appTechs

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

type AppTechMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppTechMongoRepository(db *mongo.Client, dbName string) contracts.AppTechRepository {
	return &AppTechMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppTechs),
	}
}

func (repo *AppTechMongoRepository) FindAll(ctx context.Context) ([]models.AppTech, error) {
	var appTechs []models.AppTech
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &appTechs)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appTechs, nil
}

func (repo *AppTechMongoRepository) FindByID(ctx context.Context, id string) (*models.AppTech, error) {
	var appTech models.AppTech
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appTech)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appTech, nil
}

func (repo *AppTechMongoRepository) Insert(ctx context.Context, appTech models.AppTech) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appTech)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppTechMongoRepository) Update(ctx context.Context, id string, appTech models.AppTech) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": appTech})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
