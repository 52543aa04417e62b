package steps

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

type cargoContext struct {
	planets map[string]*navigation.Planet
	vessels map[string]*navigation.Vessel
	err     error
	output  string

	// snapshot taken before the last transfer, for "unchanged" assertions
	before map[string]float64
}

func (cc *cargoContext) reset() {
	cc.planets = make(map[string]*navigation.Planet)
	cc.vessels = make(map[string]*navigation.Vessel)
	cc.err = nil
	cc.output = ""
	cc.before = nil
}

func (cc *cargoContext) planet(name string) (*navigation.Planet, error) {
	planet, ok := cc.planets[name]
	if !ok {
		return nil, fmt.Errorf("planet %s not found in test context", name)
	}
	return planet, nil
}

func (cc *cargoContext) vessel(name string) (*navigation.Vessel, error) {
	vessel, ok := cc.vessels[name]
	if !ok {
		return nil, fmt.Errorf("vessel %s not found in test context", name)
	}
	return vessel, nil
}

func (cc *cargoContext) snapshot() {
	cc.before = make(map[string]float64)
	for name, p := range cc.planets {
		cc.before["planet:"+name] = p.AvailableCargo()
	}
	for name, v := range cc.vessels {
		cc.before["vessel:"+name] = v.OccupiedSpace()
	}
}

// Planet setup

func (cc *cargoContext) aPlanetAtWithTonsOfCargo(name string, x, y, cargo float64) error {
	planet, err := navigation.NewPlanet(name, shared.MustNewCoordinates(x, y), cargo)
	if err != nil {
		return err
	}
	cc.planets[name] = planet
	return nil
}

func (cc *cargoContext) aStrictPlanetAtWithTonsOfCargo(name string, x, y, cargo float64) error {
	planet, err := navigation.NewPlanet(name, shared.MustNewCoordinates(x, y), cargo,
		navigation.WithDockingPolicy(navigation.DockingStrict))
	if err != nil {
		return err
	}
	cc.planets[name] = planet
	return nil
}

func (cc *cargoContext) iCreateAPlanetNamedAtWithTonsOfCargo(name string, x, y, cargo float64) error {
	planet, err := navigation.NewPlanet(name, shared.MustNewCoordinates(x, y), cargo)
	cc.err = err
	if err == nil {
		cc.planets[name] = planet
	}
	return nil
}

// Vessel setup

func (cc *cargoContext) aVesselAtWithCapacity(name string, x, y, capacity float64) error {
	vessel, err := navigation.NewVessel(name, navigation.InTransit(shared.MustNewCoordinates(x, y)), capacity)
	if err != nil {
		return err
	}
	cc.vessels[name] = vessel
	return nil
}

func (cc *cargoContext) aVesselDockedAtWithCapacity(name, planetName string, capacity float64) error {
	planet, err := cc.planet(planetName)
	if err != nil {
		return err
	}
	vessel, err := navigation.NewVessel(name, navigation.DockedAt(planet), capacity)
	if err != nil {
		return err
	}
	cc.vessels[name] = vessel
	return nil
}

func (cc *cargoContext) iCreateAVesselNamedAtWithCapacity(name string, x, y, capacity float64) error {
	vessel, err := navigation.NewVessel(name, navigation.InTransit(shared.MustNewCoordinates(x, y)), capacity)
	cc.err = err
	if err == nil {
		cc.vessels[name] = vessel
	}
	return nil
}

func (cc *cargoContext) iCreateAVesselAtPosition(name, pair string, capacity float64) error {
	var coords []float64
	for _, part := range strings.Split(pair, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		var value float64
		if _, err := fmt.Sscan(strings.TrimSpace(part), &value); err != nil {
			return err
		}
		coords = append(coords, value)
	}

	position, err := navigation.InTransitAt(coords)
	if err != nil {
		cc.err = err
		return nil
	}

	vessel, err := navigation.NewVessel(name, position, capacity)
	cc.err = err
	if err == nil {
		cc.vessels[name] = vessel
	}
	return nil
}

// Movement

func (cc *cargoContext) vesselFliesTo(vesselName, planetName string) error {
	vessel, err := cc.vessel(vesselName)
	if err != nil {
		return err
	}
	planet, err := cc.planet(planetName)
	if err != nil {
		return err
	}
	cc.err = vessel.FlyTo(navigation.DockedAt(planet))
	return nil
}

func (cc *cargoContext) vesselFliesToCoordinates(vesselName string, x, y float64) error {
	vessel, err := cc.vessel(vesselName)
	if err != nil {
		return err
	}
	cc.err = vessel.FlyTo(navigation.InTransit(shared.MustNewCoordinates(x, y)))
	return nil
}

// Transfers

func (cc *cargoContext) planetLoadsTonsTo(planetName string, weight float64, vesselName string) error {
	planet, err := cc.planet(planetName)
	if err != nil {
		return err
	}
	vessel, err := cc.vessel(vesselName)
	if err != nil {
		return err
	}
	cc.snapshot()
	cc.err = planet.LoadCargoTo(vessel, weight)
	return nil
}

func (cc *cargoContext) planetUnloadsTonsFrom(planetName string, weight float64, vesselName string) error {
	planet, err := cc.planet(planetName)
	if err != nil {
		return err
	}
	vessel, err := cc.vessel(vesselName)
	if err != nil {
		return err
	}
	cc.snapshot()
	cc.err = planet.UnloadCargoFrom(vessel, weight)
	return nil
}

func (cc *cargoContext) planetLoadsTonsToNoVessel(planetName string, weight float64) error {
	planet, err := cc.planet(planetName)
	if err != nil {
		return err
	}
	cc.snapshot()
	cc.err = planet.LoadCargoTo(nil, weight)
	return nil
}

// Reports

func (cc *cargoContext) iRequestTheReportFor(name string) error {
	var buf bytes.Buffer
	if planet, ok := cc.planets[name]; ok {
		if err := planet.ReportTo(&buf); err != nil {
			return err
		}
	} else {
		vessel, err := cc.vessel(name)
		if err != nil {
			return err
		}
		if err := vessel.ReportTo(&buf); err != nil {
			return err
		}
	}
	cc.output = strings.TrimRight(buf.String(), "\n")
	return nil
}

// Assertions

func (cc *cargoContext) theOperationShouldSucceed() error {
	if cc.err != nil {
		return fmt.Errorf("expected success, got %v", cc.err)
	}
	return nil
}

func (cc *cargoContext) theOperationShouldFailWith(kind string) error {
	if cc.err == nil {
		return fmt.Errorf("expected %s error, got success", kind)
	}
	if got := shared.KindOf(cc.err); string(got) != kind {
		return fmt.Errorf("expected %s error, got %s (%v)", kind, got, cc.err)
	}
	return nil
}

func (cc *cargoContext) theErrorMessageShouldContain(text string) error {
	if cc.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", text)
	}
	if !strings.Contains(cc.err.Error(), text) {
		return fmt.Errorf("expected error containing %q, got %q", text, cc.err.Error())
	}
	return nil
}

func (cc *cargoContext) vesselShouldCarryTons(name string, expected float64) error {
	vessel, err := cc.vessel(name)
	if err != nil {
		return err
	}
	if vessel.OccupiedSpace() != expected {
		return fmt.Errorf("expected %s to carry %v tons, got %v", name, expected, vessel.OccupiedSpace())
	}
	return nil
}

func (cc *cargoContext) vesselShouldHaveTonsOfFreeSpace(name string, expected float64) error {
	vessel, err := cc.vessel(name)
	if err != nil {
		return err
	}
	if vessel.FreeSpace() != expected {
		return fmt.Errorf("expected %s to have %v tons free, got %v", name, expected, vessel.FreeSpace())
	}
	if vessel.FreeSpace()+vessel.OccupiedSpace() != vessel.Capacity() {
		return fmt.Errorf("free + occupied != capacity for %s", name)
	}
	return nil
}

func (cc *cargoContext) planetShouldHaveTonsAvailable(name string, expected float64) error {
	planet, err := cc.planet(name)
	if err != nil {
		return err
	}
	if planet.AvailableCargo() != expected {
		return fmt.Errorf("expected %s to have %v tons, got %v", name, expected, planet.AvailableCargo())
	}
	return nil
}

func (cc *cargoContext) nothingShouldHaveChanged() error {
	for name, p := range cc.planets {
		if p.AvailableCargo() != cc.before["planet:"+name] {
			return fmt.Errorf("planet %s changed from %v to %v", name, cc.before["planet:"+name], p.AvailableCargo())
		}
	}
	for name, v := range cc.vessels {
		if v.OccupiedSpace() != cc.before["vessel:"+name] {
			return fmt.Errorf("vessel %s changed from %v to %v", name, cc.before["vessel:"+name], v.OccupiedSpace())
		}
	}
	return nil
}

func (cc *cargoContext) vesselShouldBeDockedAt(vesselName, planetName string) error {
	vessel, err := cc.vessel(vesselName)
	if err != nil {
		return err
	}
	planet, ok := vessel.Position().Planet()
	if !ok {
		return fmt.Errorf("expected %s docked at %s, but it is in transit at %s", vesselName, planetName, vessel.Position())
	}
	if planet.Name() != planetName {
		return fmt.Errorf("expected %s docked at %s, got %s", vesselName, planetName, planet.Name())
	}
	return nil
}

func (cc *cargoContext) vesselShouldBeInTransitAt(vesselName string, x, y float64) error {
	vessel, err := cc.vessel(vesselName)
	if err != nil {
		return err
	}
	if vessel.Position().IsDocked() {
		return fmt.Errorf("expected %s in transit, but it is docked", vesselName)
	}
	if !vessel.Position().Coordinates().Equals(shared.MustNewCoordinates(x, y)) {
		return fmt.Errorf("expected %s at %v,%v, got %s", vesselName, x, y, vessel.Position())
	}
	return nil
}

func (cc *cargoContext) theReportShouldRead(expected string) error {
	if cc.output != expected {
		return fmt.Errorf("expected report %q, got %q", expected, cc.output)
	}
	return nil
}

// InitializeCargoScenario registers vessel and planet domain step definitions
func InitializeCargoScenario(ctx *godog.ScenarioContext) {
	cc := &cargoContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	// Setup
	ctx.Step(`^a planet "([^"]*)" at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?) with (\d+(?:\.\d+)?) tons of cargo$`, cc.aPlanetAtWithTonsOfCargo)
	ctx.Step(`^a strict planet "([^"]*)" at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?) with (\d+(?:\.\d+)?) tons of cargo$`, cc.aStrictPlanetAtWithTonsOfCargo)
	ctx.Step(`^a vessel "([^"]*)" at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?) with capacity (\d+(?:\.\d+)?)$`, cc.aVesselAtWithCapacity)
	ctx.Step(`^a vessel "([^"]*)" docked at "([^"]*)" with capacity (\d+(?:\.\d+)?)$`, cc.aVesselDockedAtWithCapacity)

	// Construction
	ctx.Step(`^I create a planet named "([^"]*)" at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?) with (-?\d+(?:\.\d+)?) tons of cargo$`, cc.iCreateAPlanetNamedAtWithTonsOfCargo)
	ctx.Step(`^I create a vessel named "([^"]*)" at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?) with capacity (-?\d+(?:\.\d+)?)$`, cc.iCreateAVesselNamedAtWithCapacity)
	ctx.Step(`^I create a vessel named "([^"]*)" at position "([^"]*)" with capacity (\d+(?:\.\d+)?)$`, cc.iCreateAVesselAtPosition)

	// Actions
	ctx.Step(`^"([^"]*)" flies to "([^"]*)"$`, cc.vesselFliesTo)
	ctx.Step(`^"([^"]*)" flies to coordinates (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)$`, cc.vesselFliesToCoordinates)
	ctx.Step(`^"([^"]*)" loads (-?\d+(?:\.\d+)?) tons to "([^"]*)"$`, cc.planetLoadsTonsTo)
	ctx.Step(`^"([^"]*)" unloads (-?\d+(?:\.\d+)?) tons from "([^"]*)"$`, cc.planetUnloadsTonsFrom)
	ctx.Step(`^"([^"]*)" loads (\d+(?:\.\d+)?) tons to no vessel$`, cc.planetLoadsTonsToNoVessel)
	ctx.Step(`^I request the report for "([^"]*)"$`, cc.iRequestTheReportFor)

	// Assertions
	ctx.Step(`^the operation should succeed$`, cc.theOperationShouldSucceed)
	ctx.Step(`^the operation should fail with "([^"]*)"$`, cc.theOperationShouldFailWith)
	ctx.Step(`^the error message should contain "([^"]*)"$`, cc.theErrorMessageShouldContain)
	ctx.Step(`^"([^"]*)" should carry (\d+(?:\.\d+)?) tons$`, cc.vesselShouldCarryTons)
	ctx.Step(`^"([^"]*)" should have (\d+(?:\.\d+)?) tons of free space$`, cc.vesselShouldHaveTonsOfFreeSpace)
	ctx.Step(`^"([^"]*)" should have (\d+(?:\.\d+)?) tons available$`, cc.planetShouldHaveTonsAvailable)
	ctx.Step(`^nothing should have changed$`, cc.nothingShouldHaveChanged)
	ctx.Step(`^"([^"]*)" should be docked at "([^"]*)"$`, cc.vesselShouldBeDockedAt)
	ctx.Step(`^"([^"]*)" should be in transit at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)$`, cc.vesselShouldBeInTransitAt)
	ctx.Step(`^the report should read '([^']*)'$`, cc.theReportShouldRead)
}
