package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/pkg/utils"
)

// FlyToHandler - Handles fly to commands
type FlyToHandler struct {
	vessels navigation.VesselRepository
	planets navigation.PlanetRepository
	lock    *sync.Mutex
}

// NewFlyToHandler creates a new fly to handler
func NewFlyToHandler(vessels navigation.VesselRepository, planets navigation.PlanetRepository, lock *sync.Mutex) *FlyToHandler {
	return &FlyToHandler{vessels: vessels, planets: planets, lock: lock}
}

// Handle executes the fly to command
func (h *FlyToHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.FlyToCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	operationID := utils.GenerateOperationID("fly", cmd.VesselName)
	ctx = common.WithOperationID(ctx, operationID)
	logger := common.LoggerFromContext(ctx)

	vessel, err := h.vessels.FindByName(ctx, cmd.VesselName)
	if err != nil {
		return nil, fmt.Errorf("vessel %s: %w", cmd.VesselName, err)
	}

	destination, err := resolvePosition(ctx, h.planets, cmd.PlanetName, cmd.Coordinates)
	if err != nil {
		return nil, err
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	from := vessel.Position().String()
	if err := vessel.FlyTo(destination); err != nil {
		logger.Log("ERROR", fmt.Sprintf("[FlyTo] %s failed: %v", vessel.Name(), err), map[string]interface{}{
			"operation_id": operationID,
		})
		return nil, fmt.Errorf("failed to fly %s: %w", vessel.Name(), err)
	}

	logger.Log("INFO", fmt.Sprintf("[FlyTo] %s: %s -> %s", vessel.Name(), from, vessel.Position()), map[string]interface{}{
		"operation_id": operationID,
		"vessel":       vessel.Name(),
		"docked":       vessel.Position().IsDocked(),
	})

	return &types.FlyToResponse{
		OperationID: operationID,
		Location:    vessel.Position().String(),
		Docked:      vessel.Position().IsDocked(),
	}, nil
}
