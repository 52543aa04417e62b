package navigation

import (
	"fmt"
	"io"
	"os"

	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// Planet entity - a fixed location holding a cargo stock
//
// Invariants:
// - Name must be non-empty
// - Position is immutable after construction
// - cargo is a finite, non-negative number
//
// The planet mediates every cargo transfer with a docked vessel. Transfers
// validate everything before mutating, so a failed call leaves both sides as
// they were.
type Planet struct {
	name          string
	position      shared.Coordinates
	cargo         float64
	dockingPolicy DockingPolicy
}

// PlanetOption customises a planet at construction
type PlanetOption func(*Planet)

// WithDockingPolicy overrides DefaultDockingPolicy
func WithDockingPolicy(policy DockingPolicy) PlanetOption {
	return func(p *Planet) {
		p.dockingPolicy = policy
	}
}

// NewPlanet creates a new Planet entity with validation
func NewPlanet(name string, position shared.Coordinates, availableAmountOfCargo float64, opts ...PlanetOption) (*Planet, error) {
	p := &Planet{
		name:          name,
		position:      position,
		cargo:         availableAmountOfCargo,
		dockingPolicy: DefaultDockingPolicy,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Planet) validate() error {
	if p.name == "" {
		return shared.NewInvalidNameError("planet")
	}

	if !p.position.IsValid() {
		return shared.NewInvalidPositionError("planet", fmt.Sprintf("coordinates must be finite numbers, got %v,%v", p.position.X, p.position.Y))
	}

	if !shared.IsNonNegativeAmount(p.cargo) {
		return shared.NewInvalidCargoAmountError("planet availableAmountOfCargo", p.cargo)
	}

	if p.dockingPolicy != DockingLenient && p.dockingPolicy != DockingStrict {
		return shared.NewValidationError("planet docking policy", fmt.Sprintf("unknown policy %q", p.dockingPolicy))
	}

	return nil
}

// Getters

func (p *Planet) Name() string {
	return p.name
}

func (p *Planet) Position() shared.Coordinates {
	return p.position
}

// AvailableCargo returns the loadable stock
func (p *Planet) AvailableCargo() float64 {
	return p.cargo
}

func (p *Planet) DockingPolicy() DockingPolicy {
	return p.dockingPolicy
}

// HasLanded reports whether vessel counts as landed here under the planet's policy
func (p *Planet) HasLanded(vessel *Vessel) bool {
	dockedAt, ok := vessel.Position().Planet()
	if !ok {
		return false
	}
	return p.dockingPolicy.Accepts(dockedAt.Position(), p.position)
}

// Cargo transfer

// LoadCargoTo moves cargoWeight from the planet's stock into the vessel's hold
func (p *Planet) LoadCargoTo(vessel *Vessel, cargoWeight float64) error {
	if err := p.checkTransfer("loadCargoTo", vessel, cargoWeight); err != nil {
		return err
	}

	if p.cargo < cargoWeight {
		return shared.NewInsufficientPlanetCargoError(cargoWeight, p.cargo)
	}

	if vessel.FreeSpace() < cargoWeight {
		return shared.NewInsufficientVesselSpaceError(cargoWeight, vessel.FreeSpace())
	}

	vessel.cargoWeight += cargoWeight
	p.cargo -= cargoWeight
	return nil
}

// UnloadCargoFrom moves cargoWeight from the vessel's hold into the planet's stock
func (p *Planet) UnloadCargoFrom(vessel *Vessel, cargoWeight float64) error {
	if err := p.checkTransfer("unloadCargoFrom", vessel, cargoWeight); err != nil {
		return err
	}

	if vessel.OccupiedSpace() < cargoWeight {
		return shared.NewInsufficientVesselCargoError(cargoWeight, vessel.OccupiedSpace())
	}

	vessel.cargoWeight -= cargoWeight
	p.cargo += cargoWeight
	return nil
}

// checkTransfer runs the preconditions shared by load and unload, in order:
// vessel present, vessel landed, weight valid.
func (p *Planet) checkTransfer(operation string, vessel *Vessel, cargoWeight float64) error {
	if vessel == nil {
		return shared.NewInvalidVesselArgumentError(operation)
	}

	if !p.HasLanded(vessel) {
		return shared.NewNotDockedError(p.name)
	}

	if !shared.IsNonNegativeAmount(cargoWeight) {
		return shared.NewInvalidCargoAmountError(operation+" cargoWeight", cargoWeight)
	}

	return nil
}

// Reporting

// Status returns the one-line report, e.g.
//
//	Planet "Earth". Location: 1,1. Available cargo: 70t.
//	Planet "Mars". Location: 5,-3. No cargo.
func (p *Planet) Status() string {
	stock := "No cargo."
	if p.cargo != 0 {
		stock = fmt.Sprintf("Available cargo: %st.", shared.FormatTons(p.cargo))
	}
	return fmt.Sprintf("Planet %q. Location: %s. %s", p.name, p.position, stock)
}

// ReportTo writes the status line to w
func (p *Planet) ReportTo(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.Status())
	return err
}

// Report writes the status line to standard output
func (p *Planet) Report() {
	_ = p.ReportTo(os.Stdout)
}

func (p *Planet) String() string {
	return fmt.Sprintf("Planet(%s)", p.name)
}
