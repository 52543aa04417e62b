package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacecargo/internal/adapters/scenario"
)

func TestLoadFile(t *testing.T) {
	sc, err := scenario.LoadFile("testdata/earth_run.toml")

	require.NoError(t, err)
	assert.Equal(t, "earth-run", sc.Name)
	require.Len(t, sc.Planets, 1)
	assert.Equal(t, 100.0, sc.Planets[0].Cargo)
	require.Len(t, sc.Vessels, 1)
	require.NotNil(t, sc.Vessels[0].X)
	assert.Equal(t, 0.0, *sc.Vessels[0].X)
	require.Len(t, sc.Steps, 4)
	assert.Equal(t, "InsufficientVesselSpace", sc.Steps[3].ExpectError)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := scenario.LoadFile("testdata/nope.toml")
	assert.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			name: "unknown field",
			toml: "name = \"x\"\nspeed = 3\n",
		},
		{
			name: "unknown action",
			toml: "[[steps]]\naction = \"warp\"\nvessel = \"Falcon\"\n",
		},
		{
			name: "unknown error kind",
			toml: "[[steps]]\naction = \"fly\"\nvessel = \"Falcon\"\nplanet = \"Earth\"\nexpect_error = \"Boom\"\n",
		},
		{
			name: "planet without name",
			toml: "[[planets]]\nx = 1\ny = 1\n",
		},
		{
			name: "load without planet",
			toml: "[[steps]]\naction = \"load\"\nvessel = \"Falcon\"\nweight = 1\n",
		},
		{
			name: "half a coordinate",
			toml: "[[vessels]]\nname = \"Falcon\"\ncapacity = 1\nx = 1\n",
		},
		{
			name: "bad docking policy",
			toml: "docking_policy = \"loose\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestDemo_IsValid(t *testing.T) {
	assert.NoError(t, scenario.Demo().Validate())
}
