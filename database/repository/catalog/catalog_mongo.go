package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberpro/database"
	"barberpro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceRepo is the MongoDB-backed ServiceRepository.
type MongoServiceRepo struct {
	serviceColl *mongo.Collection
}

// NewMongoServiceRepo wires the repository to the application database.
func NewMongoServiceRepo() *MongoServiceRepo {
	return &MongoServiceRepo{serviceColl: database.Collection("services")}
}

func (repo *MongoServiceRepo) GetByID(serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var svc models.Service
	err := repo.serviceColl.FindOne(ctx, bson.M{"id": serviceID}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching service %s: %w", serviceID, err)
	}
	return &svc, nil
}

func (repo *MongoServiceRepo) ListByProvider(providerID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.serviceColl.Find(ctx, bson.M{"providerId": providerID, "isActive": true})
	if err != nil {
		return nil, fmt.Errorf("error listing services for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}
