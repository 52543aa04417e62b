package setup

import (
	"reflect"
	"sync"

	cargoCommands "github.com/andrescamacho/spacecargo/internal/application/cargo/commands"
	cargoQueries "github.com/andrescamacho/spacecargo/internal/application/cargo/queries"
	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	vessels navigation.VesselRepository
	planets navigation.PlanetRepository

	// Serialises every command that mutates a vessel or planet
	mutationLock *sync.Mutex

	clock shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(vessels navigation.VesselRepository, planets navigation.PlanetRepository) *HandlerRegistry {
	return &HandlerRegistry{
		vessels:      vessels,
		planets:      planets,
		mutationLock: &sync.Mutex{},
		clock:        shared.NewRealClock(),
	}
}

// WithClock replaces the clock used to time requests in log metadata
func (r *HandlerRegistry) WithClock(clock shared.Clock) *HandlerRegistry {
	r.clock = clock
	return r
}

// NewMediator builds a mediator with logging middleware, then extra in order,
// and every cargo handler registered
func (r *HandlerRegistry) NewMediator(extra ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	m.RegisterMiddleware(common.LoggingMiddleware(r.clock))
	for _, middleware := range extra {
		m.RegisterMiddleware(middleware)
	}

	if err := r.RegisterCargoHandlers(m); err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterCargoHandlers registers all cargo command and query handlers with the mediator
//
// This method registers:
//   - RegisterPlanetCommand → RegisterPlanetHandler
//   - RegisterVesselCommand → RegisterVesselHandler
//   - FlyToCommand → FlyToHandler
//   - LoadCargoCommand → LoadCargoHandler
//   - UnloadCargoCommand → UnloadCargoHandler
//   - ReportQuery → ReportHandler
func (r *HandlerRegistry) RegisterCargoHandlers(m mediator.Mediator) error {
	handlers := []struct {
		request mediator.Request
		handler mediator.RequestHandler
	}{
		{&types.RegisterPlanetCommand{}, cargoCommands.NewRegisterPlanetHandler(r.planets)},
		{&types.RegisterVesselCommand{}, cargoCommands.NewRegisterVesselHandler(r.vessels, r.planets)},
		{&types.FlyToCommand{}, cargoCommands.NewFlyToHandler(r.vessels, r.planets, r.mutationLock)},
		{&types.LoadCargoCommand{}, cargoCommands.NewLoadCargoHandler(r.vessels, r.planets, r.mutationLock)},
		{&types.UnloadCargoCommand{}, cargoCommands.NewUnloadCargoHandler(r.vessels, r.planets, r.mutationLock)},
		{&types.ReportQuery{}, cargoQueries.NewReportHandler(r.vessels, r.planets, r.mutationLock)},
	}

	for _, h := range handlers {
		if err := m.Register(reflect.TypeOf(h.request), h.handler); err != nil {
			return err
		}
	}

	return nil
}
