package navigation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

func dockedFalcon(t *testing.T) (*navigation.Planet, *navigation.Vessel) {
	t.Helper()
	earth := mustPlanet(t, "Earth", 1, 1, 100)
	vessel := mustVessel(t, "Falcon", navigation.InTransit(shared.MustNewCoordinates(0, 0)), 50)
	require.NoError(t, vessel.FlyTo(navigation.DockedAt(earth)))
	return earth, vessel
}

func assertUnchanged(t *testing.T, planet *navigation.Planet, vessel *navigation.Vessel, stock, occupied float64) {
	t.Helper()
	assert.Equal(t, stock, planet.AvailableCargo())
	assert.Equal(t, occupied, vessel.OccupiedSpace())
}

func TestNewPlanet_ValidationErrors(t *testing.T) {
	origin := shared.MustNewCoordinates(0, 0)

	_, err := navigation.NewPlanet("", origin, 10)
	var nameErr *shared.InvalidNameError
	require.True(t, errors.As(err, &nameErr))
	assert.Equal(t, "planet", nameErr.Entity)

	_, err = navigation.NewPlanet("Earth", shared.Coordinates{X: math.Inf(-1), Y: 0}, 10)
	var posErr *shared.InvalidPositionError
	assert.True(t, errors.As(err, &posErr))

	_, err = navigation.NewPlanet("Earth", origin, -5)
	var amountErr *shared.InvalidCargoAmountError
	require.True(t, errors.As(err, &amountErr))
	assert.Equal(t, -5.0, amountErr.Value)

	_, err = navigation.NewPlanet("Earth", origin, 10, navigation.WithDockingPolicy("sideways"))
	var validationErr *shared.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestPlanet_Report(t *testing.T) {
	earth := mustPlanet(t, "Earth", 1, 1, 100)
	mars := mustPlanet(t, "Mars", 5, -3, 0)

	assert.Equal(t, "Planet \"Earth\". Location: 1,1. Available cargo: 100t.", earth.Status())
	assert.Equal(t, "Planet \"Mars\". Location: 5,-3. No cargo.", mars.Status())
}

func TestPlanet_LoadCargoTo(t *testing.T) {
	earth, vessel := dockedFalcon(t)

	require.NoError(t, earth.LoadCargoTo(vessel, 30))

	assert.Equal(t, 30.0, vessel.OccupiedSpace())
	assert.Equal(t, 70.0, earth.AvailableCargo())
	assert.Equal(t, vessel.Capacity(), vessel.FreeSpace()+vessel.OccupiedSpace())
}

func TestPlanet_LoadCargoTo_Failures(t *testing.T) {
	t.Run("more than vessel capacity", func(t *testing.T) {
		earth, vessel := dockedFalcon(t)
		err := earth.LoadCargoTo(vessel, 60)
		var target *shared.InsufficientVesselSpaceError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, 60.0, target.Required)
		assert.Equal(t, 50.0, target.Available)
		assertUnchanged(t, earth, vessel, 100, 0)
	})

	t.Run("more than planet stock", func(t *testing.T) {
		earth := mustPlanet(t, "Earth", 1, 1, 10)
		vessel := mustVessel(t, "Falcon", navigation.DockedAt(earth), 50)
		err := earth.LoadCargoTo(vessel, 20)
		var target *shared.InsufficientPlanetCargoError
		require.True(t, errors.As(err, &target))
		assertUnchanged(t, earth, vessel, 10, 0)
	})

	t.Run("stock is checked before space", func(t *testing.T) {
		earth := mustPlanet(t, "Earth", 1, 1, 10)
		vessel := mustVessel(t, "Falcon", navigation.DockedAt(earth), 5)
		err := earth.LoadCargoTo(vessel, 20)
		var target *shared.InsufficientPlanetCargoError
		assert.True(t, errors.As(err, &target))
	})

	t.Run("nil vessel", func(t *testing.T) {
		earth := mustPlanet(t, "Earth", 1, 1, 10)
		err := earth.LoadCargoTo(nil, 1)
		var target *shared.InvalidVesselArgumentError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, "loadCargoTo", target.Operation)
	})

	t.Run("vessel in transit", func(t *testing.T) {
		earth := mustPlanet(t, "Earth", 1, 1, 100)
		vessel := mustVessel(t, "Falcon", navigation.InTransit(shared.MustNewCoordinates(1, 1)), 50)
		err := earth.LoadCargoTo(vessel, 10)
		var target *shared.NotDockedError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, "Earth", target.Planet)
		assert.Contains(t, err.Error(), "vessel must land on the planet Earth")
		assertUnchanged(t, earth, vessel, 100, 0)
	})

	t.Run("docking is checked before weight", func(t *testing.T) {
		earth := mustPlanet(t, "Earth", 1, 1, 100)
		vessel := mustVessel(t, "Falcon", navigation.InTransit(shared.MustNewCoordinates(0, 0)), 50)
		err := earth.LoadCargoTo(vessel, -1)
		var target *shared.NotDockedError
		assert.True(t, errors.As(err, &target))
	})

	t.Run("negative weight", func(t *testing.T) {
		earth, vessel := dockedFalcon(t)
		err := earth.LoadCargoTo(vessel, -1)
		var target *shared.InvalidCargoAmountError
		require.True(t, errors.As(err, &target))
		assertUnchanged(t, earth, vessel, 100, 0)
	})

	t.Run("NaN weight", func(t *testing.T) {
		earth, vessel := dockedFalcon(t)
		err := earth.LoadCargoTo(vessel, math.NaN())
		var target *shared.InvalidCargoAmountError
		assert.True(t, errors.As(err, &target))
	})
}

func TestPlanet_UnloadCargoFrom(t *testing.T) {
	earth, vessel := dockedFalcon(t)
	require.NoError(t, earth.LoadCargoTo(vessel, 30))

	require.NoError(t, earth.UnloadCargoFrom(vessel, 10))

	assert.Equal(t, 20.0, vessel.OccupiedSpace())
	assert.Equal(t, 80.0, earth.AvailableCargo())

	err := earth.UnloadCargoFrom(vessel, 25)
	var target *shared.InsufficientVesselCargoError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 20.0, target.Available)
	assertUnchanged(t, earth, vessel, 80, 20)
}

func TestPlanet_UnloadCargoFrom_Preconditions(t *testing.T) {
	earth := mustPlanet(t, "Earth", 1, 1, 100)

	err := earth.UnloadCargoFrom(nil, 1)
	var argErr *shared.InvalidVesselArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "unloadCargoFrom", argErr.Operation)

	vessel := mustVessel(t, "Falcon", navigation.InTransit(shared.MustNewCoordinates(3, 3)), 50)
	err = earth.UnloadCargoFrom(vessel, 0)
	var dockErr *shared.NotDockedError
	assert.True(t, errors.As(err, &dockErr))
}

func TestPlanet_RoundTrip(t *testing.T) {
	weights := []float64{0, 1, 12.5, 30, 50}

	for _, w := range weights {
		earth, vessel := dockedFalcon(t)
		stockBefore, occupiedBefore := earth.AvailableCargo(), vessel.OccupiedSpace()

		require.NoError(t, earth.LoadCargoTo(vessel, w))
		assert.Equal(t, occupiedBefore+w, vessel.OccupiedSpace())
		assert.Equal(t, stockBefore-w, earth.AvailableCargo())

		require.NoError(t, earth.UnloadCargoFrom(vessel, w))
		assertUnchanged(t, earth, vessel, stockBefore, occupiedBefore)
	}
}

func TestPlanet_LenientDocking(t *testing.T) {
	// Docked at (1,5) while operating on (1,1): X matches, so the lenient
	// policy accepts it. Strict equality is the likely intended rule.
	earth := mustPlanet(t, "Earth", 1, 1, 100)
	moon := mustPlanet(t, "Moon", 1, 5, 0)
	vessel := mustVessel(t, "Falcon", navigation.DockedAt(moon), 50)

	assert.Equal(t, navigation.DockingLenient, earth.DockingPolicy())
	require.NoError(t, earth.LoadCargoTo(vessel, 10))
	assert.Equal(t, 10.0, vessel.OccupiedSpace())

	// Both axes differ: rejected under either policy.
	far := mustPlanet(t, "Far", 9, 9, 0)
	require.NoError(t, vessel.FlyTo(navigation.DockedAt(far)))
	err := earth.LoadCargoTo(vessel, 1)
	var target *shared.NotDockedError
	assert.True(t, errors.As(err, &target))
}

func TestPlanet_StrictDocking(t *testing.T) {
	earth := mustPlanet(t, "Earth", 1, 1, 100, navigation.WithDockingPolicy(navigation.DockingStrict))
	moon := mustPlanet(t, "Moon", 1, 5, 0)
	twin := mustPlanet(t, "Twin", 1, 1, 0)
	vessel := mustVessel(t, "Falcon", navigation.DockedAt(moon), 50)

	err := earth.LoadCargoTo(vessel, 10)
	var target *shared.NotDockedError
	require.True(t, errors.As(err, &target))

	require.NoError(t, vessel.FlyTo(navigation.DockedAt(twin)))
	assert.NoError(t, earth.LoadCargoTo(vessel, 10), "another planet at the same coordinates counts as landed")
}

func TestParseDockingPolicy(t *testing.T) {
	policy, err := navigation.ParseDockingPolicy("STRICT")
	require.NoError(t, err)
	assert.Equal(t, navigation.DockingStrict, policy)

	policy, err = navigation.ParseDockingPolicy("")
	require.NoError(t, err)
	assert.Equal(t, navigation.DockingLenient, policy)

	_, err = navigation.ParseDockingPolicy("loose")
	assert.Error(t, err)
}
