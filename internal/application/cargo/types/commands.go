package types

import (
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// Cargo command types - shared between handlers, the scenario runner and the CLI

// RegisterPlanetCommand - Command to create a planet and make it addressable by name
type RegisterPlanetCommand struct {
	Name          string
	Position      shared.Coordinates
	Cargo         float64
	DockingPolicy navigation.DockingPolicy // empty = navigation.DefaultDockingPolicy
}

// RegisterPlanetResponse - Response from register planet command
type RegisterPlanetResponse struct {
	Planet *navigation.Planet
}

// RegisterVesselCommand - Command to create a vessel, docked at PlanetName or
// floating at Coordinates (exactly one must be set)
type RegisterVesselCommand struct {
	Name        string
	Capacity    float64
	PlanetName  string
	Coordinates *shared.Coordinates
}

// RegisterVesselResponse - Response from register vessel command
type RegisterVesselResponse struct {
	Vessel *navigation.Vessel
}

// FlyToCommand - Command to relocate a vessel to a planet or to raw coordinates
// (exactly one of PlanetName / Coordinates must be set)
type FlyToCommand struct {
	VesselName  string
	PlanetName  string
	Coordinates *shared.Coordinates
}

// FlyToResponse - Response from fly to command
type FlyToResponse struct {
	OperationID string
	Location    string
	Docked      bool
}

// LoadCargoCommand - Command to move cargo from a planet into a docked vessel
type LoadCargoCommand struct {
	PlanetName string
	VesselName string
	Weight     float64
}

// UnloadCargoCommand - Command to move cargo from a docked vessel onto a planet
type UnloadCargoCommand struct {
	PlanetName string
	VesselName string
	Weight     float64
}

// TransferResponse - Response from load and unload commands, state after the transfer
type TransferResponse struct {
	OperationID     string
	Weight          float64
	VesselOccupied  float64
	VesselFreeSpace float64
	PlanetAvailable float64
}

// ReportQuery - Query for status lines; empty Name reports every planet then every vessel
type ReportQuery struct {
	Name string
}

// ReportResponse - Response from report query
type ReportResponse struct {
	Lines []string
}
