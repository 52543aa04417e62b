package steps

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacecargo/internal/adapters/memory"
	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/application/setup"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
	"github.com/andrescamacho/spacecargo/test/helpers"
)

type cargoApplicationContext struct {
	mediator mediator.Mediator
	logger   *helpers.CapturingLogger
	ctx      context.Context
	response mediator.Response
	err      error
	lines    []string
}

func (ac *cargoApplicationContext) reset() error {
	registry := setup.NewHandlerRegistry(memory.NewVesselStore(), memory.NewPlanetStore())
	med, err := registry.NewMediator()
	if err != nil {
		return err
	}
	ac.mediator = med
	ac.logger = helpers.NewCapturingLogger()
	ac.ctx = common.WithLogger(context.Background(), ac.logger)
	ac.response = nil
	ac.err = nil
	ac.lines = nil
	return nil
}

func (ac *cargoApplicationContext) send(request mediator.Request) {
	ac.response, ac.err = ac.mediator.Send(ac.ctx, request)
}

// Registration

func (ac *cargoApplicationContext) theRegisteredPlanetAtWithTons(name string, x, y, cargo float64) error {
	ac.send(&types.RegisterPlanetCommand{Name: name, Position: shared.MustNewCoordinates(x, y), Cargo: cargo})
	return ac.err
}

func (ac *cargoApplicationContext) theRegisteredPolicyPlanetAtWithTons(policy, name string, x, y, cargo float64) error {
	ac.send(&types.RegisterPlanetCommand{
		Name:          name,
		Position:      shared.MustNewCoordinates(x, y),
		Cargo:         cargo,
		DockingPolicy: navigation.DockingPolicy(policy),
	})
	return ac.err
}

func (ac *cargoApplicationContext) theRegisteredVesselAtWithCapacity(name string, x, y, capacity float64) error {
	coords := shared.MustNewCoordinates(x, y)
	ac.send(&types.RegisterVesselCommand{Name: name, Capacity: capacity, Coordinates: &coords})
	return ac.err
}

func (ac *cargoApplicationContext) theRegisteredVesselDockedAtWithCapacity(name, planet string, capacity float64) error {
	ac.send(&types.RegisterVesselCommand{Name: name, Capacity: capacity, PlanetName: planet})
	return ac.err
}

// Commands

func (ac *cargoApplicationContext) iCommandToFlyTo(vessel, planet string) error {
	ac.send(&types.FlyToCommand{VesselName: vessel, PlanetName: planet})
	return nil
}

func (ac *cargoApplicationContext) iCommandToFlyToCoordinates(vessel string, x, y float64) error {
	coords := shared.MustNewCoordinates(x, y)
	ac.send(&types.FlyToCommand{VesselName: vessel, Coordinates: &coords})
	return nil
}

func (ac *cargoApplicationContext) iCommandToLoad(planet string, weight float64, vessel string) error {
	ac.send(&types.LoadCargoCommand{PlanetName: planet, VesselName: vessel, Weight: weight})
	return nil
}

func (ac *cargoApplicationContext) iCommandToUnload(planet string, weight float64, vessel string) error {
	ac.send(&types.UnloadCargoCommand{PlanetName: planet, VesselName: vessel, Weight: weight})
	return nil
}

func (ac *cargoApplicationContext) concurrentLoadsAndUnloads(pairs int, weight float64, planet, vessel string) error {
	var wg sync.WaitGroup
	for i := 0; i < pairs; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = ac.mediator.Send(ac.ctx, &types.LoadCargoCommand{PlanetName: planet, VesselName: vessel, Weight: weight})
		}()
		go func() {
			defer wg.Done()
			_, _ = ac.mediator.Send(ac.ctx, &types.UnloadCargoCommand{PlanetName: planet, VesselName: vessel, Weight: weight})
		}()
	}
	wg.Wait()
	return nil
}

func (ac *cargoApplicationContext) iRequestTheFullReport() error {
	return ac.report("")
}

func (ac *cargoApplicationContext) iRequestTheStatusOf(name string) error {
	return ac.report(name)
}

func (ac *cargoApplicationContext) report(name string) error {
	ac.send(&types.ReportQuery{Name: name})
	if ac.err != nil {
		return nil
	}
	ac.lines = ac.response.(*types.ReportResponse).Lines
	return nil
}

// Assertions

func (ac *cargoApplicationContext) theCommandShouldSucceed() error {
	if ac.err != nil {
		return fmt.Errorf("expected command to succeed, got %v", ac.err)
	}
	return nil
}

func (ac *cargoApplicationContext) theCommandShouldBeRejectedWith(kind string) error {
	if ac.err == nil {
		return fmt.Errorf("expected %s rejection, command succeeded", kind)
	}
	if got := shared.KindOf(ac.err); string(got) != kind {
		return fmt.Errorf("expected %s rejection, got %s (%v)", kind, got, ac.err)
	}
	return nil
}

func (ac *cargoApplicationContext) theCommandShouldFailBecauseIsUnknown(name string) error {
	if ac.err == nil {
		return fmt.Errorf("expected failure for unknown %s, command succeeded", name)
	}
	if !strings.Contains(ac.err.Error(), "not found") || !strings.Contains(ac.err.Error(), name) {
		return fmt.Errorf("expected not found error naming %s, got %v", name, ac.err)
	}
	return nil
}

func (ac *cargoApplicationContext) theReportShouldContainLines(table *godog.Table) error {
	var expected []string
	for _, row := range table.Rows {
		expected = append(expected, row.Cells[0].Value)
	}
	if len(expected) != len(ac.lines) {
		return fmt.Errorf("expected %d report lines, got %d: %v", len(expected), len(ac.lines), ac.lines)
	}
	for i := range expected {
		if expected[i] != ac.lines[i] {
			return fmt.Errorf("line %d: expected %q, got %q", i+1, expected[i], ac.lines[i])
		}
	}
	return nil
}

func (ac *cargoApplicationContext) theTotalCargoShouldStillBe(planet, vessel string, total float64) error {
	resp, err := ac.mediator.Send(ac.ctx, &types.LoadCargoCommand{PlanetName: planet, VesselName: vessel, Weight: 0})
	if err != nil {
		return err
	}
	transfer := resp.(*types.TransferResponse)
	if got := transfer.PlanetAvailable + transfer.VesselOccupied; got != total {
		return fmt.Errorf("expected %v tons between %s and %s, got %v", total, planet, vessel, got)
	}
	return nil
}

func (ac *cargoApplicationContext) aMessageShouldHaveBeenLogged(level, text string) error {
	if !ac.logger.HasMessageContaining(level, text) {
		return fmt.Errorf("expected %s log containing %q, got %v", level, text, ac.logger.Entries)
	}
	return nil
}

// InitializeCargoApplicationScenario registers mediator-level step definitions
func InitializeCargoApplicationScenario(ctx *godog.ScenarioContext) {
	ac := &cargoApplicationContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, ac.reset()
	})

	// Registration
	ctx.Step(`^the registered planet "([^"]*)" at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?) with (\d+(?:\.\d+)?) tons$`, ac.theRegisteredPlanetAtWithTons)
	ctx.Step(`^the registered (lenient|strict) planet "([^"]*)" at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?) with (\d+(?:\.\d+)?) tons$`, ac.theRegisteredPolicyPlanetAtWithTons)
	ctx.Step(`^the registered vessel "([^"]*)" at (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?) with capacity (\d+(?:\.\d+)?)$`, ac.theRegisteredVesselAtWithCapacity)
	ctx.Step(`^the registered vessel "([^"]*)" docked at "([^"]*)" with capacity (\d+(?:\.\d+)?)$`, ac.theRegisteredVesselDockedAtWithCapacity)

	// Commands
	ctx.Step(`^I command "([^"]*)" to fly to "([^"]*)"$`, ac.iCommandToFlyTo)
	ctx.Step(`^I command "([^"]*)" to fly to coordinates (-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)$`, ac.iCommandToFlyToCoordinates)
	ctx.Step(`^I command "([^"]*)" to load (-?\d+(?:\.\d+)?) tons onto "([^"]*)"$`, ac.iCommandToLoad)
	ctx.Step(`^I command "([^"]*)" to unload (-?\d+(?:\.\d+)?) tons from "([^"]*)"$`, ac.iCommandToUnload)
	ctx.Step(`^(\d+) concurrent load and unload pairs of (\d+(?:\.\d+)?) tons run between "([^"]*)" and "([^"]*)"$`, ac.concurrentLoadsAndUnloads)
	ctx.Step(`^I request the full report$`, ac.iRequestTheFullReport)
	ctx.Step(`^I request the status of "([^"]*)"$`, ac.iRequestTheStatusOf)

	// Assertions
	ctx.Step(`^the command should succeed$`, ac.theCommandShouldSucceed)
	ctx.Step(`^the command should be rejected with "([^"]*)"$`, ac.theCommandShouldBeRejectedWith)
	ctx.Step(`^the command should fail because "([^"]*)" is unknown$`, ac.theCommandShouldFailBecauseIsUnknown)
	ctx.Step(`^the report should contain the lines:$`, ac.theReportShouldContainLines)
	ctx.Step(`^"([^"]*)" and "([^"]*)" should still hold (\d+(?:\.\d+)?) tons between them$`, ac.theTotalCargoShouldStillBe)
	ctx.Step(`^an? (DEBUG|INFO|WARN|ERROR) message containing "([^"]*)" should have been logged$`, ac.aMessageShouldHaveBeenLogged)
}
