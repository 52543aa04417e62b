package scenario

import "github.com/andrescamacho/spacecargo/internal/domain/shared"

func coord(v float64) *float64 { return &v }

// Demo is the built-in walkthrough: a vessel flies to Earth, trades cargo,
// and shows each rejection the cargo rules produce.
func Demo() *Scenario {
	return &Scenario{
		Name: "demo",
		Planets: []PlanetDef{
			{Name: "Earth", X: 1, Y: 1, Cargo: 100},
			{Name: "Mars", X: 6, Y: 4, Cargo: 0},
		},
		Vessels: []VesselDef{
			{Name: "Falcon", Capacity: 50, X: coord(0), Y: coord(0)},
		},
		Steps: []StepDef{
			{Action: ActionReport},
			{Action: ActionLoad, Vessel: "Falcon", Planet: "Earth", Weight: 10, ExpectError: string(shared.KindNotDocked)},
			{Action: ActionFly, Vessel: "Falcon", Planet: "Earth"},
			{Action: ActionLoad, Vessel: "Falcon", Planet: "Earth", Weight: 30},
			{Action: ActionReport, Target: "Falcon"},
			{Action: ActionLoad, Vessel: "Falcon", Planet: "Earth", Weight: 60, ExpectError: string(shared.KindInsufficientVesselSpace)},
			{Action: ActionUnload, Vessel: "Falcon", Planet: "Earth", Weight: 40, ExpectError: string(shared.KindInsufficientVesselCargo)},
			{Action: ActionFly, Vessel: "Falcon", Planet: "Mars"},
			{Action: ActionUnload, Vessel: "Falcon", Planet: "Mars", Weight: 30},
			{Action: ActionLoad, Vessel: "Falcon", Planet: "Mars", Weight: 40, ExpectError: string(shared.KindInsufficientPlanetCargo)},
			{Action: ActionFly, Vessel: "Falcon", X: coord(3), Y: coord(7)},
			{Action: ActionReport},
		},
	}
}
