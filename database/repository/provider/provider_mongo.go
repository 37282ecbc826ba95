package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberpro/database"
	"barberpro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProviderRepo is the MongoDB-backed ProviderRepository.
type MongoProviderRepo struct {
	providerColl  *mongo.Collection
	exceptionColl *mongo.Collection
	templateColl  *mongo.Collection
}

// NewMongoProviderRepo wires the repository to the application database.
func NewMongoProviderRepo() *MongoProviderRepo {
	return &MongoProviderRepo{
		providerColl:  database.Collection("providers"),
		exceptionColl: database.Collection("schedule_exceptions"),
		templateColl:  database.Collection("schedule_templates"),
	}
}

func (repo *MongoProviderRepo) GetByID(providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var provider models.Provider
	err := repo.providerColl.FindOne(ctx, bson.M{"id": providerID}).Decode(&provider)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching provider %s: %w", providerID, err)
	}
	return &provider, nil
}

func (repo *MongoProviderRepo) UpdateWorkingHours(providerID string, hours models.WorkingHours) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"workingHours": hours, "updatedAt": time.Now()}}
	res, err := repo.providerColl.UpdateOne(ctx, bson.M{"id": providerID}, update)
	if err != nil {
		return fmt.Errorf("error updating working hours for provider %s: %w", providerID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider %s not found", providerID)
	}
	return nil
}

func (repo *MongoProviderRepo) ListExceptions(providerID string) ([]models.ScheduleException, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.exceptionColl.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, fmt.Errorf("error listing exceptions for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var exceptions []models.ScheduleException
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, fmt.Errorf("error decoding exceptions: %w", err)
	}
	return exceptions, nil
}

func (repo *MongoProviderRepo) AddException(exc *models.ScheduleException) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": exc.ProviderID, "date": exc.Date, "recurring": exc.Recurring}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.exceptionColl.ReplaceOne(ctx, filter, exc, opts); err != nil {
		return fmt.Errorf("error saving exception for provider %s: %w", exc.ProviderID, err)
	}
	return nil
}

func (repo *MongoProviderRepo) CreateTemplate(t *models.ScheduleTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.templateColl.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("error creating schedule template: %w", err)
	}
	return nil
}

func (repo *MongoProviderRepo) GetTemplate(templateID string) (*models.ScheduleTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var tpl models.ScheduleTemplate
	err := repo.templateColl.FindOne(ctx, bson.M{"id": templateID}).Decode(&tpl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching template %s: %w", templateID, err)
	}
	return &tpl, nil
}
