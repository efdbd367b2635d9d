package store

import (
	"context"
	"errors"
)

// Sentinel errors for common error conditions
var (
	ErrServiceNotFound = errors.New("service not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidID       = errors.New("invalid document id")
)

// Service is a provider-owned service listing. The shape mirrors the
// documents clients post; the server treats most fields as an opaque payload
// and only reads ProviderEmail for ownership-scoped queries.
type Service struct {
	ID            string  `json:"_id,omitempty" bson:"_id,omitempty"`
	ServiceName   string  `json:"serviceName" bson:"serviceName"`
	ServiceImage  string  `json:"serviceImage,omitempty" bson:"serviceImage,omitempty"`
	ServiceArea   string  `json:"serviceArea,omitempty" bson:"serviceArea,omitempty"`
	Description   string  `json:"description,omitempty" bson:"description,omitempty"`
	Price         float64 `json:"price" bson:"price"`
	ProviderEmail string  `json:"providerEmail" bson:"providerEmail"`
	ProviderName  string  `json:"providerName,omitempty" bson:"providerName,omitempty"`
}

// Booking records a customer booking a service. UserEmail is the customer
// identity used for ownership-scoped queries.
type Booking struct {
	ID            string  `json:"_id,omitempty" bson:"_id,omitempty"`
	ServiceID     string  `json:"serviceId" bson:"serviceId"`
	ServiceName   string  `json:"serviceName" bson:"serviceName"`
	UserEmail     string  `json:"userEmail" bson:"userEmail"`
	ProviderEmail string  `json:"providerEmail,omitempty" bson:"providerEmail,omitempty"`
	Date          string  `json:"date,omitempty" bson:"date,omitempty"`
	Price         float64 `json:"price" bson:"price"`
	Status        string  `json:"status,omitempty" bson:"status,omitempty"`
}

// ServiceStore defines the interface for service document storage
type ServiceStore interface {
	// Create inserts a service and returns it with its assigned ID.
	Create(ctx context.Context, svc *Service) (*Service, error)

	// List returns every service in the collection.
	List(ctx context.Context) ([]*Service, error)

	// ListByProvider returns the services owned by the given provider email.
	ListByProvider(ctx context.Context, email string) ([]*Service, error)

	// Get returns a single service by ID. Returns ErrServiceNotFound for an
	// unknown ID and ErrInvalidID for an ID that is not a valid document ID.
	Get(ctx context.Context, id string) (*Service, error)

	// Update replaces the mutable fields of a service.
	Update(ctx context.Context, id string, svc *Service) error

	// Delete removes a service by ID.
	Delete(ctx context.Context, id string) error
}

// BookingStore defines the interface for booking document storage
type BookingStore interface {
	// Create inserts a booking and returns it with its assigned ID.
	Create(ctx context.Context, b *Booking) (*Booking, error)

	// ListByUser returns the bookings made by the given customer email.
	ListByUser(ctx context.Context, email string) ([]*Booking, error)

	// UpdateStatus sets the status field of a booking.
	UpdateStatus(ctx context.Context, id string, status string) error

	// Delete removes a booking by ID.
	Delete(ctx context.Context, id string) error
}

// Pinger is implemented by stores backed by an external database. The
// health endpoint uses it to verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
