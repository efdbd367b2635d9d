package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ridesync/ridesync/internal/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// serviceDoc is the wire shape of a service document. The _id is an
// ObjectID inside MongoDB and a hex string everywhere else.
type serviceDoc struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	ServiceName   string        `bson:"serviceName"`
	ServiceImage  string        `bson:"serviceImage,omitempty"`
	ServiceArea   string        `bson:"serviceArea,omitempty"`
	Description   string        `bson:"description,omitempty"`
	Price         float64       `bson:"price"`
	ProviderEmail string        `bson:"providerEmail"`
	ProviderName  string        `bson:"providerName,omitempty"`
}

func (d *serviceDoc) toModel() *store.Service {
	return &store.Service{
		ID:            d.ID.Hex(),
		ServiceName:   d.ServiceName,
		ServiceImage:  d.ServiceImage,
		ServiceArea:   d.ServiceArea,
		Description:   d.Description,
		Price:         d.Price,
		ProviderEmail: d.ProviderEmail,
		ProviderName:  d.ProviderName,
	}
}

func serviceDocFromModel(svc *store.Service) *serviceDoc {
	return &serviceDoc{
		ServiceName:   svc.ServiceName,
		ServiceImage:  svc.ServiceImage,
		ServiceArea:   svc.ServiceArea,
		Description:   svc.Description,
		Price:         svc.Price,
		ProviderEmail: svc.ProviderEmail,
		ProviderName:  svc.ProviderName,
	}
}

// ServiceStore is a MongoDB-backed implementation of store.ServiceStore
type ServiceStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewServiceStore creates a service store on the given database
func NewServiceStore(client *mongo.Client, database string) *ServiceStore {
	return &ServiceStore{
		client:     client,
		collection: client.Database(database).Collection(serviceCollection),
	}
}

// Create inserts a service document
func (s *ServiceStore) Create(ctx context.Context, svc *store.Service) (*store.Service, error) {
	doc := serviceDocFromModel(svc)

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert service: %w", err)
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	doc.ID = id
	return doc.toModel(), nil
}

// List returns every service document
func (s *ServiceStore) List(ctx context.Context) ([]*store.Service, error) {
	return s.find(ctx, bson.M{})
}

// ListByProvider returns the services owned by the given provider email
func (s *ServiceStore) ListByProvider(ctx context.Context, email string) ([]*store.Service, error) {
	return s.find(ctx, bson.M{"providerEmail": email})
}

// Get retrieves a single service by its hex ID
func (s *ServiceStore) Get(ctx context.Context, id string) (*store.Service, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}

	var doc serviceDoc
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	return doc.toModel(), nil
}

// Update replaces the mutable fields of a service document
func (s *ServiceStore) Update(ctx context.Context, id string, svc *store.Service) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrInvalidID
	}

	update := bson.M{"$set": serviceDocFromModel(svc)}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrServiceNotFound
	}
	return nil
}

// Delete removes a service document
func (s *ServiceStore) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrInvalidID
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrServiceNotFound
	}
	return nil
}

// Ping verifies the backing connection for health checks
func (s *ServiceStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *ServiceStore) find(ctx context.Context, filter bson.M) ([]*store.Service, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}

	var docs []serviceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}

	result := make([]*store.Service, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].toModel())
	}
	return result, nil
}
