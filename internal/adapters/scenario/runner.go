package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andrescamacho/spacecargo/internal/application/cargo/types"
	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// ErrStepFailed is returned when a step's outcome differs from what it declared
var ErrStepFailed = errors.New("scenario step failed")

// StepResult records what happened to one step
type StepResult struct {
	Index       int
	Action      string
	Description string
	Err         error
	Kind        shared.ErrorKind
	ExpectError string
	Passed      bool
	Lines       []string
}

// Result summarises a run
type Result struct {
	Name  string
	Steps []StepResult
}

// Passed counts the steps that behaved as declared
func (r *Result) Passed() int {
	n := 0
	for _, step := range r.Steps {
		if step.Passed {
			n++
		}
	}
	return n
}

// Runner executes scenarios through the mediator
type Runner struct {
	mediator      mediator.Mediator
	out           io.Writer
	dockingPolicy navigation.DockingPolicy
}

// NewRunner creates a runner; report lines go to out, planets without an
// explicit policy get dockingPolicy.
func NewRunner(med mediator.Mediator, out io.Writer, dockingPolicy navigation.DockingPolicy) *Runner {
	if dockingPolicy == "" {
		dockingPolicy = navigation.DefaultDockingPolicy
	}
	return &Runner{mediator: med, out: out, dockingPolicy: dockingPolicy}
}

// Run registers the scenario's planets and vessels, then executes its steps in
// order, stopping at the first step whose outcome differs from its declaration.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	logger := common.LoggerFromContext(ctx)
	result := &Result{Name: sc.Name}

	if err := r.register(ctx, sc); err != nil {
		return result, err
	}

	for i, step := range sc.Steps {
		stepResult := r.runStep(ctx, i+1, step)
		result.Steps = append(result.Steps, stepResult)

		if !stepResult.Passed {
			logger.Log("ERROR", fmt.Sprintf("[Scenario] %s: step %d %s failed", sc.Name, stepResult.Index, stepResult.Description), nil)
			if stepResult.Err != nil {
				return result, fmt.Errorf("%w: step %d (%s): %v", ErrStepFailed, stepResult.Index, stepResult.Description, stepResult.Err)
			}
			return result, fmt.Errorf("%w: step %d (%s): expected %s, got success", ErrStepFailed, stepResult.Index, stepResult.Description, step.ExpectError)
		}
	}

	logger.Log("INFO", fmt.Sprintf("[Scenario] %s: %d/%d steps passed", sc.Name, result.Passed(), len(result.Steps)), nil)
	return result, nil
}

func (r *Runner) register(ctx context.Context, sc *Scenario) error {
	for _, def := range sc.Planets {
		policy := r.dockingPolicy
		if sc.DockingPolicy != "" {
			policy = navigation.DockingPolicy(sc.DockingPolicy)
		}
		if def.DockingPolicy != "" {
			policy = navigation.DockingPolicy(def.DockingPolicy)
		}

		_, err := r.mediator.Send(ctx, &types.RegisterPlanetCommand{
			Name:          def.Name,
			Position:      shared.Coordinates{X: def.X, Y: def.Y},
			Cargo:         def.Cargo,
			DockingPolicy: policy,
		})
		if err != nil {
			return fmt.Errorf("planet %s: %w", def.Name, err)
		}
	}

	for _, def := range sc.Vessels {
		_, err := r.mediator.Send(ctx, &types.RegisterVesselCommand{
			Name:        def.Name,
			Capacity:    def.Capacity,
			PlanetName:  def.Planet,
			Coordinates: coordinates(def.X, def.Y),
		})
		if err != nil {
			return fmt.Errorf("vessel %s: %w", def.Name, err)
		}
	}

	return nil
}

func (r *Runner) runStep(ctx context.Context, index int, step StepDef) StepResult {
	result := StepResult{
		Index:       index,
		Action:      step.Action,
		Description: describe(step),
		ExpectError: step.ExpectError,
	}

	var err error
	switch step.Action {
	case ActionFly:
		_, err = r.mediator.Send(ctx, &types.FlyToCommand{
			VesselName:  step.Vessel,
			PlanetName:  step.Planet,
			Coordinates: coordinates(step.X, step.Y),
		})
	case ActionLoad:
		_, err = r.mediator.Send(ctx, &types.LoadCargoCommand{PlanetName: step.Planet, VesselName: step.Vessel, Weight: step.Weight})
	case ActionUnload:
		_, err = r.mediator.Send(ctx, &types.UnloadCargoCommand{PlanetName: step.Planet, VesselName: step.Vessel, Weight: step.Weight})
	case ActionReport:
		result.Lines, err = r.report(ctx, step.Target)
	default:
		err = fmt.Errorf("unknown action %q", step.Action)
	}

	result.Err = err
	result.Kind = shared.KindOf(err)
	result.Passed = string(result.Kind) == step.ExpectError
	return result
}

func (r *Runner) report(ctx context.Context, target string) ([]string, error) {
	resp, err := r.mediator.Send(ctx, &types.ReportQuery{Name: target})
	if err != nil {
		return nil, err
	}

	lines := resp.(*types.ReportResponse).Lines
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return lines, fmt.Errorf("failed to write report: %w", err)
		}
	}
	return lines, nil
}

func coordinates(x, y *float64) *shared.Coordinates {
	if x == nil || y == nil {
		return nil
	}
	return &shared.Coordinates{X: *x, Y: *y}
}

func describe(step StepDef) string {
	switch step.Action {
	case ActionFly:
		if step.Planet != "" {
			return fmt.Sprintf("fly %s to %s", step.Vessel, step.Planet)
		}
		if c := coordinates(step.X, step.Y); c != nil {
			return fmt.Sprintf("fly %s to %s", step.Vessel, c)
		}
		return fmt.Sprintf("fly %s", step.Vessel)
	case ActionLoad:
		return fmt.Sprintf("load %st from %s to %s", shared.FormatTons(step.Weight), step.Planet, step.Vessel)
	case ActionUnload:
		return fmt.Sprintf("unload %st from %s to %s", shared.FormatTons(step.Weight), step.Vessel, step.Planet)
	case ActionReport:
		if step.Target == "" {
			return "report all"
		}
		return "report " + step.Target
	default:
		return step.Action
	}
}
