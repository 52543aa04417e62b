package navigation

import (
	"fmt"

	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// PositionKind tags which case of Position is populated
type PositionKind int

const (
	positionUnset PositionKind = iota
	PositionInTransit
	PositionDocked
)

func (k PositionKind) String() string {
	switch k {
	case PositionInTransit:
		return "IN_TRANSIT"
	case PositionDocked:
		return "DOCKED"
	default:
		return "UNSET"
	}
}

// Position is where a vessel is: free-floating at coordinates, or docked at a planet.
//
// The docked case holds a non-owning reference; the planet never learns about
// the vessel. The zero value is not a valid position.
type Position struct {
	kind   PositionKind
	coords shared.Coordinates
	planet *Planet
}

// InTransit places a vessel at raw coordinates
func InTransit(coords shared.Coordinates) Position {
	return Position{kind: PositionInTransit, coords: coords}
}

// InTransitAt is InTransit for a two-element pair, e.g. []float64{50, 20}
func InTransitAt(pair []float64) (Position, error) {
	coords, err := shared.CoordinatesFromPair(pair)
	if err != nil {
		return Position{}, shared.NewInvalidPositionError("vessel", err.Error())
	}
	return InTransit(coords), nil
}

// DockedAt places a vessel on a planet
func DockedAt(planet *Planet) Position {
	return Position{kind: PositionDocked, planet: planet}
}

func (p Position) Kind() PositionKind {
	return p.kind
}

func (p Position) IsDocked() bool {
	return p.kind == PositionDocked
}

// Planet returns the planet for the docked case
func (p Position) Planet() (*Planet, bool) {
	if p.kind != PositionDocked {
		return nil, false
	}
	return p.planet, true
}

// Coordinates resolves the point in space for either case
func (p Position) Coordinates() shared.Coordinates {
	switch p.kind {
	case PositionDocked:
		return p.planet.Position()
	default:
		return p.coords
	}
}

func (p Position) validate(entity string) error {
	switch p.kind {
	case PositionInTransit:
		if !p.coords.IsValid() {
			return shared.NewInvalidPositionError(entity, fmt.Sprintf("coordinates must be finite numbers, got %v,%v", p.coords.X, p.coords.Y))
		}
		return nil
	case PositionDocked:
		if p.planet == nil {
			return shared.NewInvalidPositionError(entity, "planet cannot be nil")
		}
		return nil
	default:
		return shared.NewInvalidPositionError(entity, "must be coordinates or a planet")
	}
}

// String renders `Planet "Earth"` when docked, "x,y" otherwise
func (p Position) String() string {
	switch p.kind {
	case PositionDocked:
		return fmt.Sprintf("Planet %q", p.planet.Name())
	case PositionInTransit:
		return p.coords.String()
	default:
		return "nowhere"
	}
}
