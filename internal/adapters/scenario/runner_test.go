package scenario_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacecargo/internal/adapters/memory"
	"github.com/andrescamacho/spacecargo/internal/adapters/scenario"
	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/application/setup"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
	"github.com/andrescamacho/spacecargo/test/helpers"
)

func newRunner(t *testing.T, out *bytes.Buffer, policy navigation.DockingPolicy) *scenario.Runner {
	t.Helper()
	registry := setup.NewHandlerRegistry(memory.NewVesselStore(), memory.NewPlanetStore())
	med, err := registry.NewMediator()
	require.NoError(t, err)
	return scenario.NewRunner(med, out, policy)
}

func TestRunner_EarthRun(t *testing.T) {
	// Arrange
	var out bytes.Buffer
	logger := helpers.NewCapturingLogger()
	ctx := common.WithLogger(context.Background(), logger)
	sc, err := scenario.LoadFile("testdata/earth_run.toml")
	require.NoError(t, err)

	// Act
	result, err := newRunner(t, &out, "").Run(ctx, sc)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Steps, 4)
	assert.Equal(t, 4, result.Passed())
	assert.Equal(t, shared.KindInsufficientVesselSpace, result.Steps[3].Kind)
	assert.Equal(t, "Vessel \"Falcon\". Location: Planet \"Earth\". Occupied: 30 of 50t.\n", out.String())
	assert.True(t, logger.HasMessageContaining("INFO", "[Scenario] earth-run: 4/4 steps passed"))
}

func TestRunner_StopsAtUnexpectedFailure(t *testing.T) {
	var out bytes.Buffer
	sc := &scenario.Scenario{
		Name:    "broken",
		Planets: []scenario.PlanetDef{{Name: "Earth", X: 1, Y: 1, Cargo: 10}},
		Vessels: []scenario.VesselDef{{Name: "Falcon", Capacity: 50, Planet: "Earth"}},
		Steps: []scenario.StepDef{
			{Action: scenario.ActionLoad, Vessel: "Falcon", Planet: "Earth", Weight: 20},
			{Action: scenario.ActionReport},
		},
	}

	result, err := newRunner(t, &out, "").Run(context.Background(), sc)

	require.ErrorIs(t, err, scenario.ErrStepFailed)
	require.Len(t, result.Steps, 1)
	assert.False(t, result.Steps[0].Passed)
	assert.Equal(t, shared.KindInsufficientPlanetCargo, result.Steps[0].Kind)
	assert.Empty(t, out.String())
}

func TestRunner_ExpectedErrorThatDoesNotHappen(t *testing.T) {
	var out bytes.Buffer
	sc := &scenario.Scenario{
		Name:    "optimistic",
		Planets: []scenario.PlanetDef{{Name: "Earth", X: 1, Y: 1, Cargo: 10}},
		Vessels: []scenario.VesselDef{{Name: "Falcon", Capacity: 50, Planet: "Earth"}},
		Steps: []scenario.StepDef{
			{Action: scenario.ActionLoad, Vessel: "Falcon", Planet: "Earth", Weight: 5, ExpectError: "NotDocked"},
		},
	}

	_, err := newRunner(t, &out, "").Run(context.Background(), sc)

	require.ErrorIs(t, err, scenario.ErrStepFailed)
	assert.Contains(t, err.Error(), "got success")
}

func TestRunner_DockingPolicies(t *testing.T) {
	sc, err := scenario.LoadFile("testdata/lenient_docking.toml")
	require.NoError(t, err)

	t.Run("lenient default with a strict planet", func(t *testing.T) {
		var out bytes.Buffer
		result, err := newRunner(t, &out, "").Run(context.Background(), sc)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Passed())
	})

	t.Run("scenario-wide strict", func(t *testing.T) {
		strict := *sc
		strict.DockingPolicy = string(navigation.DockingStrict)
		var out bytes.Buffer
		result, err := newRunner(t, &out, "").Run(context.Background(), &strict)
		require.ErrorIs(t, err, scenario.ErrStepFailed)
		assert.Equal(t, shared.KindNotDocked, result.Steps[0].Kind)
	})

	t.Run("runner default strict", func(t *testing.T) {
		var out bytes.Buffer
		result, err := newRunner(t, &out, navigation.DockingStrict).Run(context.Background(), sc)
		require.ErrorIs(t, err, scenario.ErrStepFailed)
		assert.Equal(t, shared.KindNotDocked, result.Steps[0].Kind)
	})
}

func TestRunner_RegistrationFailure(t *testing.T) {
	var out bytes.Buffer
	sc := &scenario.Scenario{
		Name:    "bad-planet",
		Planets: []scenario.PlanetDef{{Name: "Earth", X: 1, Y: 1, Cargo: -1}},
	}

	_, err := newRunner(t, &out, "").Run(context.Background(), sc)

	require.Error(t, err)
	assert.Equal(t, shared.KindInvalidCargoAmount, shared.KindOf(err))
}

func TestRunner_Demo(t *testing.T) {
	var out bytes.Buffer

	result, err := newRunner(t, &out, "").Run(context.Background(), scenario.Demo())

	require.NoError(t, err)
	assert.Equal(t, len(scenario.Demo().Steps), result.Passed())
	assert.Contains(t, out.String(), `Vessel "Falcon". Location: Planet "Earth". Occupied: 30 of 50t.`)
	assert.Contains(t, out.String(), `Planet "Mars". Location: 6,4. Available cargo: 30t.`)
	assert.Contains(t, out.String(), `Vessel "Falcon". Location: 3,7. Occupied: 0 of 50t.`)
}

func TestRunner_TranslatesStepsToCommands(t *testing.T) {
	// Arrange
	var out bytes.Buffer
	med := helpers.NewMockMediator()
	x, y := 3.0, 7.0
	sc := &scenario.Scenario{
		Name:          "translation",
		DockingPolicy: "strict",
		Planets: []scenario.PlanetDef{
			{Name: "Earth", X: 1, Y: 1, Cargo: 100},
			{Name: "Moon", X: 1, Y: 5, Cargo: 10, DockingPolicy: "lenient"},
		},
		Vessels: []scenario.VesselDef{{Name: "Falcon", Capacity: 50, Planet: "Earth"}},
		Steps: []scenario.StepDef{
			{Action: scenario.ActionFly, Vessel: "Falcon", X: &x, Y: &y},
			{Action: scenario.ActionLoad, Vessel: "Falcon", Planet: "Earth", Weight: 2.5},
			{Action: scenario.ActionUnload, Vessel: "Falcon", Planet: "Moon", Weight: 1},
			{Action: scenario.ActionReport, Target: "Moon"},
		},
	}

	// Act
	result, err := scenario.NewRunner(med, &out, navigation.DockingLenient).Run(context.Background(), sc)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, result.Passed())
	assert.Equal(t, []string{
		"RegisterPlanet:Earth:strict",
		"RegisterPlanet:Moon:lenient",
		"RegisterVessel:Falcon",
		"FlyTo:Falcon->3,7",
		"Load:Earth->Falcon:2.5",
		"Unload:Falcon->Moon:1",
		"Report:Moon",
	}, med.GetCallLog())
	assert.Equal(t, "report Moon\n", out.String())
}
