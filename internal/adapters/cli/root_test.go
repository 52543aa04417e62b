package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgPath := writeFile(t, "config.yaml", "logging:\n  level: info\n  format: json\n")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDemoCommand(t *testing.T) {
	stdout, stderr, err := execute(t, "demo")

	require.NoError(t, err)
	assert.Contains(t, stdout, `Planet "Mars". Location: 6,4. No cargo.`)
	assert.Contains(t, stdout, `Vessel "Falcon". Location: Planet "Earth". Occupied: 30 of 50t.`)
	assert.Contains(t, stdout, "rejected as expected: InsufficientVesselSpace")
	assert.Contains(t, stdout, "12/12 steps passed")
	assert.Contains(t, stderr, `"app":"spacecargo"`)
	assert.Contains(t, stderr, "[Cargo] load 30t")
}

func TestRunCommand(t *testing.T) {
	stdout, _, err := execute(t, "run", "../scenario/testdata/earth_run.toml")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Scenario earth-run")
	assert.Contains(t, stdout, "4/4 steps passed")
}

func TestRunCommand_UnexpectedOutcome(t *testing.T) {
	path := writeFile(t, "broken.toml", `
name = "broken"

[[planets]]
name = "Earth"
x = 1
y = 1
cargo = 5

[[vessels]]
name = "Falcon"
capacity = 50
planet = "Earth"

[[steps]]
action = "load"
vessel = "Falcon"
planet = "Earth"
weight = 10
`)

	stdout, _, err := execute(t, "run", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario broken")
	assert.Contains(t, stdout, "FAIL")
	assert.Contains(t, stdout, "not enough cargo on planet")
}

func TestRunCommand_StrictDockingFlag(t *testing.T) {
	_, _, err := execute(t, "run", "../scenario/testdata/lenient_docking.toml")
	require.NoError(t, err)

	_, _, err = execute(t, "--docking-policy", "strict", "run", "../scenario/testdata/lenient_docking.toml")
	assert.Error(t, err)
}

func TestRunCommand_RequiresFile(t *testing.T) {
	_, _, err := execute(t, "run")
	assert.Error(t, err)
}

func TestConfigShow(t *testing.T) {
	stdout, _, err := execute(t, "--docking-policy", "strict", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Policy:           strict")
	assert.Contains(t, stdout, "Format:           json")
}

func TestConfigShow_InvalidOverride(t *testing.T) {
	_, _, err := execute(t, "--docking-policy", "loose", "config", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid flags")
}

func TestDemoCommand_WithMetrics(t *testing.T) {
	stdout, _, err := execute(t, "--metrics", "demo")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Metrics")
	assert.Contains(t, stdout, `spacecargo_cargo_tons_transferred_total{direction="load",planet="Earth"} 30`)
	assert.Contains(t, stdout, `spacecargo_cargo_rejections_total{command="LoadCargoCommand",kind="NotDocked"} 1`)
}
