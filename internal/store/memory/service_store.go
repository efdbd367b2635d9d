package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ridesync/ridesync/internal/store"
)

// ServiceStore is an in-memory implementation of store.ServiceStore for
// development and testing
type ServiceStore struct {
	mu       sync.RWMutex
	services map[string]*store.Service
	order    []string // preserves insertion order for stable listings
}

// NewServiceStore creates a new in-memory service store
func NewServiceStore() *ServiceStore {
	return &ServiceStore{
		services: make(map[string]*store.Service),
	}
}

// Create inserts a service and assigns it an ID
func (s *ServiceStore) Create(ctx context.Context, svc *store.Service) (*store.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *svc
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	s.services[stored.ID] = &stored
	s.order = append(s.order, stored.ID)

	return s.copyService(&stored), nil
}

// List returns all services in insertion order
func (s *ServiceStore) List(ctx context.Context) ([]*store.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*store.Service, 0, len(s.order))
	for _, id := range s.order {
		if svc, ok := s.services[id]; ok {
			result = append(result, s.copyService(svc))
		}
	}
	return result, nil
}

// ListByProvider returns the services owned by the given provider email
func (s *ServiceStore) ListByProvider(ctx context.Context, email string) ([]*store.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*store.Service{}
	for _, id := range s.order {
		if svc, ok := s.services[id]; ok && svc.ProviderEmail == email {
			result = append(result, s.copyService(svc))
		}
	}
	return result, nil
}

// Get retrieves a service by ID
func (s *ServiceStore) Get(ctx context.Context, id string) (*store.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[id]
	if !ok {
		return nil, store.ErrServiceNotFound
	}
	return s.copyService(svc), nil
}

// Update replaces the stored service fields, keeping the ID
func (s *ServiceStore) Update(ctx context.Context, id string, svc *store.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return store.ErrServiceNotFound
	}

	updated := *svc
	updated.ID = id
	s.services[id] = &updated
	return nil
}

// Delete removes a service by ID
func (s *ServiceStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return store.ErrServiceNotFound
	}
	delete(s.services, id)
	return nil
}

// copyService returns a copy to avoid external modifications
func (s *ServiceStore) copyService(svc *store.Service) *store.Service {
	c := *svc
	return &c
}
