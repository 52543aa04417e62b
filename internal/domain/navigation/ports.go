package navigation

import (
	"context"
	"errors"
)

var (
	ErrVesselNotFound    = errors.New("vessel not found")
	ErrPlanetNotFound    = errors.New("planet not found")
	ErrAlreadyRegistered = errors.New("name already registered")
)

// VesselRepository keeps vessels addressable by name for the application layer.
// Implementations live in process memory only.
type VesselRepository interface {
	// Add registers a vessel; fails with ErrAlreadyRegistered on a duplicate name
	Add(ctx context.Context, vessel *Vessel) error

	// FindByName returns ErrVesselNotFound when absent
	FindByName(ctx context.Context, name string) (*Vessel, error)

	// List returns vessels ordered by name
	List(ctx context.Context) ([]*Vessel, error)
}

// PlanetRepository keeps planets addressable by name
type PlanetRepository interface {
	Add(ctx context.Context, planet *Planet) error
	FindByName(ctx context.Context, name string) (*Planet, error)
	List(ctx context.Context) ([]*Planet, error)
}
