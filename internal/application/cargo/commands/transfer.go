package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
	"github.com/andrescamacho/spacecargo/pkg/utils"
)

// transferFunc is Planet.LoadCargoTo or Planet.UnloadCargoFrom
type transferFunc func(planet *navigation.Planet, vessel *navigation.Vessel, weight float64) error

// transferExecutor holds what load and unload have in common: lookup,
// serialisation and logging. The domain call decides the outcome.
type transferExecutor struct {
	vessels navigation.VesselRepository
	planets navigation.PlanetRepository
	lock    *sync.Mutex
}

func (e *transferExecutor) execute(
	ctx context.Context,
	operation, planetName, vesselName string,
	weight float64,
	transfer transferFunc,
) (*types.TransferResponse, error) {
	operationID := utils.GenerateOperationID(operation, vesselName)
	ctx = common.WithOperationID(ctx, operationID)
	logger := common.LoggerFromContext(ctx)

	planet, err := e.planets.FindByName(ctx, planetName)
	if err != nil {
		return nil, fmt.Errorf("planet %s: %w", planetName, err)
	}

	vessel, err := e.vessels.FindByName(ctx, vesselName)
	if err != nil {
		return nil, fmt.Errorf("vessel %s: %w", vesselName, err)
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	if err := transfer(planet, vessel, weight); err != nil {
		logger.Log("ERROR", fmt.Sprintf("[Cargo] %s of %st between %s and %s rejected: %v",
			operation, shared.FormatTons(weight), planet.Name(), vessel.Name(), err), map[string]interface{}{
			"operation_id": operationID,
			"error_kind":   string(shared.KindOf(err)),
		})
		return nil, fmt.Errorf("%s failed: %w", operation, err)
	}

	logger.Log("INFO", fmt.Sprintf("[Cargo] %s %st: %s now %s/%st, %s has %st",
		operation, shared.FormatTons(weight),
		vessel.Name(), shared.FormatTons(vessel.OccupiedSpace()), shared.FormatTons(vessel.Capacity()),
		planet.Name(), shared.FormatTons(planet.AvailableCargo())), map[string]interface{}{
		"operation_id": operationID,
		"planet":       planet.Name(),
		"vessel":       vessel.Name(),
		"weight":       weight,
	})

	return &types.TransferResponse{
		OperationID:     operationID,
		Weight:          weight,
		VesselOccupied:  vessel.OccupiedSpace(),
		VesselFreeSpace: vessel.FreeSpace(),
		PlanetAvailable: planet.AvailableCargo(),
	}, nil
}

// LoadCargoHandler - Handles load cargo commands
type LoadCargoHandler struct {
	executor *transferExecutor
}

// NewLoadCargoHandler creates a new load cargo handler
func NewLoadCargoHandler(vessels navigation.VesselRepository, planets navigation.PlanetRepository, lock *sync.Mutex) *LoadCargoHandler {
	return &LoadCargoHandler{executor: &transferExecutor{vessels: vessels, planets: planets, lock: lock}}
}

// Handle executes the load cargo command
func (h *LoadCargoHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.LoadCargoCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	response, err := h.executor.execute(ctx, "load", cmd.PlanetName, cmd.VesselName, cmd.Weight,
		(*navigation.Planet).LoadCargoTo)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// UnloadCargoHandler - Handles unload cargo commands
type UnloadCargoHandler struct {
	executor *transferExecutor
}

// NewUnloadCargoHandler creates a new unload cargo handler
func NewUnloadCargoHandler(vessels navigation.VesselRepository, planets navigation.PlanetRepository, lock *sync.Mutex) *UnloadCargoHandler {
	return &UnloadCargoHandler{executor: &transferExecutor{vessels: vessels, planets: planets, lock: lock}}
}

// Handle executes the unload cargo command
func (h *UnloadCargoHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.UnloadCargoCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	response, err := h.executor.execute(ctx, "unload", cmd.PlanetName, cmd.VesselName, cmd.Weight,
		(*navigation.Planet).UnloadCargoFrom)
	if err != nil {
		return nil, err
	}
	return response, nil
}
