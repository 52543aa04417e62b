package helpers

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// MockMediator is a test double for the Mediator interface.
// It records every request and answers cargo commands with canned successes,
// so callers of the mediator can be tested without handlers or stores.
type MockMediator struct {
	mu       sync.Mutex
	sendFunc func(ctx context.Context, request mediator.Request) (mediator.Response, error)
	requests []mediator.Request
	callLog  []string // Track which commands were called
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		callLog: []string{},
	}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, request)
	m.callLog = append(m.callLog, describeRequest(request))
	sendFunc := m.sendFunc
	m.mu.Unlock()

	// Use custom function if provided
	if sendFunc != nil {
		return sendFunc(ctx, request)
	}

	// Default behaviors based on request type
	switch req := request.(type) {
	case *types.RegisterPlanetCommand:
		return &types.RegisterPlanetResponse{}, nil
	case *types.RegisterVesselCommand:
		return &types.RegisterVesselResponse{}, nil
	case *types.FlyToCommand:
		return &types.FlyToResponse{Location: req.PlanetName, Docked: req.PlanetName != ""}, nil
	case *types.LoadCargoCommand:
		return &types.TransferResponse{Weight: req.Weight}, nil
	case *types.UnloadCargoCommand:
		return &types.TransferResponse{Weight: req.Weight}, nil
	case *types.ReportQuery:
		return &types.ReportResponse{Lines: []string{fmt.Sprintf("report %s", req.Name)}}, nil
	default:
		return nil, fmt.Errorf("unsupported request type: %T", request)
	}
}

// Register is a no-op; the mock answers every request itself
func (m *MockMediator) Register(_ reflect.Type, _ mediator.RequestHandler) error {
	return nil
}

// RegisterMiddleware is a no-op
func (m *MockMediator) RegisterMiddleware(_ mediator.Middleware) {}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request mediator.Request) (mediator.Response, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendFunc = fn
}

// Requests returns every request sent so far, in order
func (m *MockMediator) Requests() []mediator.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mediator.Request{}, m.requests...)
}

// GetCallLog returns the list of commands that were called
func (m *MockMediator) GetCallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.callLog...)
}

// ClearCallLog clears the call log
func (m *MockMediator) ClearCallLog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callLog = []string{}
	m.requests = nil
}

func describeRequest(request mediator.Request) string {
	switch req := request.(type) {
	case *types.RegisterPlanetCommand:
		return fmt.Sprintf("RegisterPlanet:%s:%s", req.Name, req.DockingPolicy)
	case *types.RegisterVesselCommand:
		return fmt.Sprintf("RegisterVessel:%s", req.Name)
	case *types.FlyToCommand:
		if req.Coordinates != nil {
			return fmt.Sprintf("FlyTo:%s->%s", req.VesselName, req.Coordinates)
		}
		return fmt.Sprintf("FlyTo:%s->%s", req.VesselName, req.PlanetName)
	case *types.LoadCargoCommand:
		return fmt.Sprintf("Load:%s->%s:%s", req.PlanetName, req.VesselName, shared.FormatTons(req.Weight))
	case *types.UnloadCargoCommand:
		return fmt.Sprintf("Unload:%s->%s:%s", req.VesselName, req.PlanetName, shared.FormatTons(req.Weight))
	case *types.ReportQuery:
		return fmt.Sprintf("Report:%s", req.Name)
	default:
		return fmt.Sprintf("%T", request)
	}
}
