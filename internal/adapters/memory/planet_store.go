package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
)

// Ensure PlanetStore implements the interface.
var _ navigation.PlanetRepository = (*PlanetStore)(nil)

// PlanetStore is an in-memory implementation of navigation.PlanetRepository.
type PlanetStore struct {
	mu      sync.RWMutex
	planets map[string]*navigation.Planet
}

// NewPlanetStore creates a new in-memory planet store.
func NewPlanetStore() *PlanetStore {
	return &PlanetStore{
		planets: make(map[string]*navigation.Planet),
	}
}

// Add registers a planet under its name.
func (s *PlanetStore) Add(_ context.Context, planet *navigation.Planet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.planets[planet.Name()]; exists {
		return navigation.ErrAlreadyRegistered
	}
	s.planets[planet.Name()] = planet
	return nil
}

// FindByName retrieves a planet by name.
func (s *PlanetStore) FindByName(_ context.Context, name string) (*navigation.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	planet, ok := s.planets[name]
	if !ok {
		return nil, navigation.ErrPlanetNotFound
	}
	return planet, nil
}

// List returns all planets ordered by name.
func (s *PlanetStore) List(_ context.Context) ([]*navigation.Planet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*navigation.Planet, 0, len(s.planets))
	for _, planet := range s.planets {
		result = append(result, planet)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}
