package scenario

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/andrescamacho/spacecargo/internal/infrastructure/config"
)

// Step actions
const (
	ActionFly    = "fly"
	ActionLoad   = "load"
	ActionUnload = "unload"
	ActionReport = "report"
)

// Scenario is a scripted sequence of cargo operations read from TOML:
//
//	name = "earth-run"
//
//	[[planets]]
//	name = "Earth"
//	x = 1
//	y = 1
//	cargo = 100
//
//	[[vessels]]
//	name = "Falcon"
//	capacity = 50
//	x = 0
//	y = 0
//
//	[[steps]]
//	action = "fly"
//	vessel = "Falcon"
//	planet = "Earth"
//
//	[[steps]]
//	action = "load"
//	vessel = "Falcon"
//	planet = "Earth"
//	weight = 60
//	expect_error = "InsufficientVesselSpace"
type Scenario struct {
	Name          string      `toml:"name"`
	DockingPolicy string      `toml:"docking_policy" validate:"omitempty,oneof=lenient strict"`
	Planets       []PlanetDef `toml:"planets" validate:"dive"`
	Vessels       []VesselDef `toml:"vessels" validate:"dive"`
	Steps         []StepDef   `toml:"steps" validate:"dive"`
}

// PlanetDef declares a planet. Cargo is checked by the planet constructor
// when the runner registers it.
type PlanetDef struct {
	Name          string  `toml:"name" validate:"required"`
	X             float64 `toml:"x" validate:"finite"`
	Y             float64 `toml:"y" validate:"finite"`
	Cargo         float64 `toml:"cargo"`
	DockingPolicy string  `toml:"docking_policy" validate:"omitempty,oneof=lenient strict"`
}

// VesselDef declares a vessel docked at Planet, or floating at X/Y
type VesselDef struct {
	Name     string   `toml:"name" validate:"required"`
	Capacity float64  `toml:"capacity"`
	Planet   string   `toml:"planet"`
	X        *float64 `toml:"x"`
	Y        *float64 `toml:"y"`
}

// StepDef is one operation. ExpectError names an error kind
// (e.g. "NotDocked"); the step passes only if exactly that kind is returned.
type StepDef struct {
	Action      string   `toml:"action" validate:"required,oneof=fly load unload report"`
	Vessel      string   `toml:"vessel"`
	Planet      string   `toml:"planet"`
	X           *float64 `toml:"x"`
	Y           *float64 `toml:"y"`
	Weight      float64  `toml:"weight"`
	Target      string   `toml:"target"`
	ExpectError string   `toml:"expect_error" validate:"omitempty,oneof=InvalidName InvalidPosition InvalidCapacity InvalidCargoAmount InvalidVesselArgument NotDocked InsufficientPlanetCargo InsufficientVesselSpace InsufficientVesselCargo Validation"`
}

// Parse decodes and validates a TOML scenario
func Parse(data []byte) (*Scenario, error) {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var sc Scenario
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// LoadFile reads and parses a scenario file
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	if sc.Name == "" {
		sc.Name = path
	}
	return sc, nil
}

// Validate checks tags, then the cross-field rules tags cannot express
func (s *Scenario) Validate() error {
	if err := config.NewValidator().Validate(s); err != nil {
		return err
	}

	for _, v := range s.Vessels {
		if (v.X == nil) != (v.Y == nil) {
			return fmt.Errorf("vessel %s: x and y must be set together", v.Name)
		}
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
	}

	return nil
}

func (s StepDef) validate() error {
	if (s.X == nil) != (s.Y == nil) {
		return fmt.Errorf("x and y must be set together")
	}

	switch s.Action {
	case ActionFly:
		if s.Vessel == "" {
			return fmt.Errorf("vessel is required")
		}
	case ActionLoad, ActionUnload:
		if s.Vessel == "" || s.Planet == "" {
			return fmt.Errorf("vessel and planet are required")
		}
	}

	return nil
}
