package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
)

// Ensure VesselStore implements the interface.
var _ navigation.VesselRepository = (*VesselStore)(nil)

// VesselStore is an in-memory implementation of navigation.VesselRepository.
type VesselStore struct {
	mu      sync.RWMutex
	vessels map[string]*navigation.Vessel
}

// NewVesselStore creates a new in-memory vessel store.
func NewVesselStore() *VesselStore {
	return &VesselStore{
		vessels: make(map[string]*navigation.Vessel),
	}
}

// Add registers a vessel under its name.
func (s *VesselStore) Add(_ context.Context, vessel *navigation.Vessel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.vessels[vessel.Name()]; exists {
		return navigation.ErrAlreadyRegistered
	}
	s.vessels[vessel.Name()] = vessel
	return nil
}

// FindByName retrieves a vessel by name.
func (s *VesselStore) FindByName(_ context.Context, name string) (*navigation.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vessel, ok := s.vessels[name]
	if !ok {
		return nil, navigation.ErrVesselNotFound
	}
	return vessel, nil
}

// List returns all vessels ordered by name.
func (s *VesselStore) List(_ context.Context) ([]*navigation.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*navigation.Vessel, 0, len(s.vessels))
	for _, vessel := range s.vessels {
		result = append(result, vessel)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}
