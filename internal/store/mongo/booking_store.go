package mongo

import (
	"context"
	"fmt"

	"github.com/ridesync/ridesync/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type bookingDoc struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	ServiceID     string        `bson:"serviceId"`
	ServiceName   string        `bson:"serviceName"`
	UserEmail     string        `bson:"userEmail"`
	ProviderEmail string        `bson:"providerEmail,omitempty"`
	Date          string        `bson:"date,omitempty"`
	Price         float64       `bson:"price"`
	Status        string        `bson:"status,omitempty"`
}

func (d *bookingDoc) toModel() *store.Booking {
	return &store.Booking{
		ID:            d.ID.Hex(),
		ServiceID:     d.ServiceID,
		ServiceName:   d.ServiceName,
		UserEmail:     d.UserEmail,
		ProviderEmail: d.ProviderEmail,
		Date:          d.Date,
		Price:         d.Price,
		Status:        d.Status,
	}
}

func bookingDocFromModel(b *store.Booking) *bookingDoc {
	return &bookingDoc{
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		UserEmail:     b.UserEmail,
		ProviderEmail: b.ProviderEmail,
		Date:          b.Date,
		Price:         b.Price,
		Status:        b.Status,
	}
}

// BookingStore is a MongoDB-backed implementation of store.BookingStore
type BookingStore struct {
	collection *mongo.Collection
}

// NewBookingStore creates a booking store on the given database
func NewBookingStore(client *mongo.Client, database string) *BookingStore {
	return &BookingStore{
		collection: client.Database(database).Collection(bookingCollection),
	}
}

// Create inserts a booking document
func (s *BookingStore) Create(ctx context.Context, b *store.Booking) (*store.Booking, error) {
	doc := bookingDocFromModel(b)

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	doc.ID = id
	return doc.toModel(), nil
}

// ListByUser returns the bookings made by the given customer email
func (s *BookingStore) ListByUser(ctx context.Context, email string) ([]*store.Booking, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	result := make([]*store.Booking, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].toModel())
	}
	return result, nil
}

// UpdateStatus sets the status field of a booking document
func (s *BookingStore) UpdateStatus(ctx context.Context, id string, status string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrInvalidID
	}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrBookingNotFound
	}
	return nil
}

// Delete removes a booking document
func (s *BookingStore) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrInvalidID
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrBookingNotFound
	}
	return nil
}
