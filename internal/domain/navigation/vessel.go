package navigation

import (
	"fmt"
	"io"
	"os"

	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// Vessel entity - a cargo ship that can fly between points and planets
//
// Invariants:
// - Name must be non-empty
// - Position is always a valid InTransit or DockedAt value
// - Capacity is a finite, non-negative number fixed at construction
// - 0 <= cargoWeight <= capacity
//
// Position state:
// - IN_TRANSIT (coordinates) -> FlyTo(planet) -> DOCKED
// - DOCKED -> FlyTo(coordinates) -> IN_TRANSIT
// - any -> FlyTo(any) (relocation is instantaneous and free)
//
// Cargo weight only changes through Planet.LoadCargoTo / Planet.UnloadCargoFrom.
type Vessel struct {
	name        string
	position    Position
	capacity    float64
	cargoWeight float64
}

// NewVessel creates a new Vessel entity with validation
func NewVessel(name string, position Position, capacity float64) (*Vessel, error) {
	v := &Vessel{
		name:     name,
		position: position,
		capacity: capacity,
	}

	if err := v.validate(); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vessel) validate() error {
	if v.name == "" {
		return shared.NewInvalidNameError("vessel")
	}

	if err := v.position.validate("vessel"); err != nil {
		return err
	}

	if !shared.IsNonNegativeAmount(v.capacity) {
		return shared.NewInvalidCapacityError(v.capacity)
	}

	return nil
}

// Getters

func (v *Vessel) Name() string {
	return v.name
}

func (v *Vessel) Position() Position {
	return v.position
}

func (v *Vessel) Capacity() float64 {
	return v.capacity
}

// FreeSpace returns capacity - cargoWeight
func (v *Vessel) FreeSpace() float64 {
	return v.capacity - v.cargoWeight
}

// OccupiedSpace returns the current cargo weight
func (v *Vessel) OccupiedSpace() float64 {
	return v.cargoWeight
}

func (v *Vessel) IsEmpty() bool {
	return v.cargoWeight == 0
}

// FlyTo relocates the vessel. There is no distance, fuel or time model.
func (v *Vessel) FlyTo(destination Position) error {
	if err := destination.validate("vessel"); err != nil {
		return err
	}
	v.position = destination
	return nil
}

// Reporting

// Status returns the one-line report, e.g.
//
//	Vessel "Falcon". Location: Planet "Earth". Occupied: 30 of 50t.
//	Vessel "Falcon". Location: 50,20. Occupied: 0 of 50t.
func (v *Vessel) Status() string {
	return fmt.Sprintf("Vessel %q. Location: %s. Occupied: %s of %st.",
		v.name, v.position, shared.FormatTons(v.cargoWeight), shared.FormatTons(v.capacity))
}

// ReportTo writes the status line to w
func (v *Vessel) ReportTo(w io.Writer) error {
	_, err := fmt.Fprintln(w, v.Status())
	return err
}

// Report writes the status line to standard output
func (v *Vessel) Report() {
	_ = v.ReportTo(os.Stdout)
}

func (v *Vessel) String() string {
	return fmt.Sprintf("Vessel(%s, %s/%s)", v.name, shared.FormatTons(v.cargoWeight), shared.FormatTons(v.capacity))
}
