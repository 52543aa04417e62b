package queries

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
)

// ReportHandler - Handles report queries
type ReportHandler struct {
	vessels navigation.VesselRepository
	planets navigation.PlanetRepository
	lock    *sync.Mutex
}

// NewReportHandler creates a new report handler. lock is the mutation lock
// shared with the cargo commands.
func NewReportHandler(vessels navigation.VesselRepository, planets navigation.PlanetRepository, lock *sync.Mutex) *ReportHandler {
	return &ReportHandler{vessels: vessels, planets: planets, lock: lock}
}

// Handle executes the report query.
// A name is looked up among planets first, then vessels.
func (h *ReportHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*types.ReportQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	if query.Name == "" {
		response, err := h.reportAll(ctx)
		if err != nil {
			return nil, err
		}
		return response, nil
	}

	planet, err := h.planets.FindByName(ctx, query.Name)
	if err == nil {
		return &types.ReportResponse{Lines: []string{planet.Status()}}, nil
	}
	if !errors.Is(err, navigation.ErrPlanetNotFound) {
		return nil, err
	}

	vessel, err := h.vessels.FindByName(ctx, query.Name)
	if err != nil {
		if errors.Is(err, navigation.ErrVesselNotFound) {
			return nil, fmt.Errorf("nothing named %s to report on: %w", query.Name, err)
		}
		return nil, err
	}

	return &types.ReportResponse{Lines: []string{vessel.Status()}}, nil
}

func (h *ReportHandler) reportAll(ctx context.Context) (*types.ReportResponse, error) {
	planets, err := h.planets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}

	vessels, err := h.vessels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vessels: %w", err)
	}

	lines := make([]string, 0, len(planets)+len(vessels))
	for _, planet := range planets {
		lines = append(lines, planet.Status())
	}
	for _, vessel := range vessels {
		lines = append(lines, vessel.Status())
	}

	return &types.ReportResponse{Lines: lines}, nil
}
