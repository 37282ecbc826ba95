package bookingRepo

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

// MongoBookingRepo is the MongoDB-backed BookingRepository.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo wires the repository to the application database.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{bookingColl: database.Collection("bookings")}
}

func (repo *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.bookingColl.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) Update(b *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": b.ID}
	if _, err := repo.bookingColl.UpdateOne(ctx, filter, bson.M{"$set": b}); err != nil {
		return fmt.Errorf("error updating booking %s: %w", b.ID, err)
	}
	return nil
}

func (repo *MongoBookingRepo) ListByProviderDate(providerID, date string) ([]models.Booking, error) {
	return repo.list(bson.M{"providerId": providerID, "date": date})
}

func (repo *MongoBookingRepo) ListByProviderDateRange(providerID, fromDate, toDate string) ([]models.Booking, error) {
	return repo.list(bson.M{
		"providerId": providerID,
		"date":       bson.M{"$gte": fromDate, "$lte": toDate},
	})
}

func (repo *MongoBookingRepo) ListPendingCreatedBefore(cutoff time.Time) ([]models.Booking, error) {
	return repo.list(bson.M{
		"status":    models.StatusPending,
		"createdAt": bson.M{"$lte": cutoff},
	})
}

func (repo *MongoBookingRepo) Search(q models.BookingSearchQuery) ([]models.Booking, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if q.ProviderID != "" {
		filter["providerId"] = q.ProviderID
	}
	if q.ClientID != "" {
		filter["clientId"] = q.ClientID
	}
	if q.ServiceID != "" {
		filter["serviceId"] = q.ServiceID
	}
	if len(q.Statuses) > 0 {
		filter["status"] = bson.M{"$in": q.Statuses}
	}
	timeFilter := bson.M{}
	if q.From != nil {
		timeFilter["$gte"] = *q.From
	}
	if q.To != nil {
		timeFilter["$lte"] = *q.To
	}
	if len(timeFilter) > 0 {
		filter["startTime"] = timeFilter
	}

	total, err := repo.bookingColl.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting bookings: %w", err)
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, total, nil
}

func (repo *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.bookingColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
