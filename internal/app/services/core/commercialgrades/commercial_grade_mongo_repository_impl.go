package commercialGrades

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

type CommercialGradeMongoRepository struct {
	Collection *mongo.Collection
}

func NewCommercialGradeMongoRepository(db *mongo.Client, dbName string) contracts.CommercialGradeRepository {
	return &CommercialGradeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCommercialGrades),
	}
}

func (repo *CommercialGradeMongoRepository) FindAll(ctx context.Context) ([]models.CommercialGrade, error) {
	var grades []models.CommercialGrade
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &grades)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return grades, nil
}

func (repo *CommercialGradeMongoRepository) Insert(ctx context.Context, grade models.CommercialGrade) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, grade)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *CommercialGradeMongoRepository) Update(ctx context.Context, id string, grade models.CommercialGrade) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": grade})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
