package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ridesync/ridesync/internal/store"
)

// BookingStore is an in-memory implementation of store.BookingStore for
// development and testing
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]*store.Booking
	order    []string
}

// NewBookingStore creates a new in-memory booking store
func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[string]*store.Booking),
	}
}

// Create inserts a booking and assigns it an ID
func (s *BookingStore) Create(ctx context.Context, b *store.Booking) (*store.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *b
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	s.bookings[stored.ID] = &stored
	s.order = append(s.order, stored.ID)

	return s.copyBooking(&stored), nil
}

// ListByUser returns the bookings made by the given customer email
func (s *BookingStore) ListByUser(ctx context.Context, email string) ([]*store.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*store.Booking{}
	for _, id := range s.order {
		if b, ok := s.bookings[id]; ok && b.UserEmail == email {
			result = append(result, s.copyBooking(b))
		}
	}
	return result, nil
}

// UpdateStatus sets the status field of a booking
func (s *BookingStore) UpdateStatus(ctx context.Context, id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return store.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

// Delete removes a booking by ID
func (s *BookingStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return store.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

// copyBooking returns a copy to avoid external modifications
func (s *BookingStore) copyBooking(b *store.Booking) *store.Booking {
	c := *b
	return &c
}
