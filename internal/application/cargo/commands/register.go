package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// RegisterPlanetHandler - Handles register planet commands
type RegisterPlanetHandler struct {
	planets navigation.PlanetRepository
}

// NewRegisterPlanetHandler creates a new register planet handler
func NewRegisterPlanetHandler(planets navigation.PlanetRepository) *RegisterPlanetHandler {
	return &RegisterPlanetHandler{planets: planets}
}

// Handle executes the register planet command
func (h *RegisterPlanetHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.RegisterPlanetCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	var opts []navigation.PlanetOption
	if cmd.DockingPolicy != "" {
		opts = append(opts, navigation.WithDockingPolicy(cmd.DockingPolicy))
	}

	planet, err := navigation.NewPlanet(cmd.Name, cmd.Position, cmd.Cargo, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create planet: %w", err)
	}

	// Once added, the planet is visible to transfers running under the mutation lock
	message := fmt.Sprintf("[Registry] Planet %s at %s with %st", planet.Name(), planet.Position(), shared.FormatTons(planet.AvailableCargo()))

	if err := h.planets.Add(ctx, planet); err != nil {
		return nil, fmt.Errorf("failed to register planet %s: %w", cmd.Name, err)
	}

	common.LoggerFromContext(ctx).Log("INFO", message, map[string]interface{}{
		"planet":         planet.Name(),
		"docking_policy": string(planet.DockingPolicy()),
	})

	return &types.RegisterPlanetResponse{Planet: planet}, nil
}

// RegisterVesselHandler - Handles register vessel commands
type RegisterVesselHandler struct {
	vessels navigation.VesselRepository
	planets navigation.PlanetRepository
}

// NewRegisterVesselHandler creates a new register vessel handler
func NewRegisterVesselHandler(vessels navigation.VesselRepository, planets navigation.PlanetRepository) *RegisterVesselHandler {
	return &RegisterVesselHandler{vessels: vessels, planets: planets}
}

// Handle executes the register vessel command
func (h *RegisterVesselHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.RegisterVesselCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	position, err := resolvePosition(ctx, h.planets, cmd.PlanetName, cmd.Coordinates)
	if err != nil {
		return nil, err
	}

	vessel, err := navigation.NewVessel(cmd.Name, position, cmd.Capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create vessel: %w", err)
	}

	message := fmt.Sprintf("[Registry] Vessel %s at %s, capacity %st", vessel.Name(), vessel.Position(), shared.FormatTons(vessel.Capacity()))

	if err := h.vessels.Add(ctx, vessel); err != nil {
		return nil, fmt.Errorf("failed to register vessel %s: %w", cmd.Name, err)
	}

	common.LoggerFromContext(ctx).Log("INFO", message, map[string]interface{}{
		"vessel": vessel.Name(),
	})

	return &types.RegisterVesselResponse{Vessel: vessel}, nil
}

// resolvePosition turns "planet name or coordinates" into a Position
func resolvePosition(ctx context.Context, planets navigation.PlanetRepository, planetName string, coords *shared.Coordinates) (navigation.Position, error) {
	switch {
	case planetName != "" && coords != nil:
		return navigation.Position{}, shared.NewInvalidPositionError("vessel", "set either a planet or coordinates, not both")
	case planetName != "":
		planet, err := planets.FindByName(ctx, planetName)
		if err != nil {
			return navigation.Position{}, fmt.Errorf("failed to resolve planet %s: %w", planetName, err)
		}
		return navigation.DockedAt(planet), nil
	case coords != nil:
		return navigation.InTransit(*coords), nil
	default:
		return navigation.Position{}, shared.NewInvalidPositionError("vessel", "must be coordinates or a planet")
	}
}
