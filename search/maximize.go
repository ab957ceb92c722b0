package search

import (
	"fmt"

	"github.com/katalvlaran/valveflow/compress"
)

// Maximize returns the most pressure one agent can release from startID
// within budget minutes.
//
// The agent repeatedly walks to a closed valve (compressed distance) and
// spends one minute opening it; the valve then contributes rate × minutes
// left. Every activation order is explored depth-first, cut by the bound
// selected in opts.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrInvalidTimeBudget,
// ErrOptionViolation, ErrStepLimit, ErrTimeLimit or the context error.
func Maximize(g *compress.Graph, startID string, budget int, opts Options) (Result, error) {
	start, err := validate(g, startID, budget, opts)
	if err != nil {
		return Result{}, err
	}
	e := newEngine(g, opts)

	return e.run(
		agent{id: 0, node: start, minutes: budget},
		agent{id: 1, node: start}, // never moves
	)
}

// MaximizeTwoAgents returns the most pressure two agents release together
// from startID within budget minutes each. A valve opened by one agent is
// closed to the other.
//
// The agent with more minutes left always moves next (the first agent on
// ties); either agent may retire and leave the rest to the other. The
// result is never below Maximize for the same inputs.
func MaximizeTwoAgents(g *compress.Graph, startID string, budget int, opts Options) (Result, error) {
	start, err := validate(g, startID, budget, opts)
	if err != nil {
		return Result{}, err
	}
	e := newEngine(g, opts)

	return e.run(
		agent{id: 0, node: start, minutes: budget},
		agent{id: 1, node: start, minutes: budget},
	)
}

// Solve dispatches on the number of agents.
func Solve(g *compress.Graph, startID string, budget, agents int, opts Options) (Result, error) {
	switch agents {
	case 1:
		return Maximize(g, startID, budget, opts)
	case 2:
		return MaximizeTwoAgents(g, startID, budget, opts)
	default:
		return Result{}, fmt.Errorf("%w: got %d", ErrAgentCount, agents)
	}
}

// validate checks inputs before any search time is spent and returns the
// start index.
func validate(g *compress.Graph, startID string, budget int, opts Options) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	start, ok := g.Index(startID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	if budget <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTimeBudget, budget)
	}
	if opts.StepLimit < 0 {
		return 0, fmt.Errorf("%w: StepLimit cannot be negative (%d)", ErrOptionViolation, opts.StepLimit)
	}
	if opts.TimeLimit < 0 {
		return 0, fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, opts.TimeLimit)
	}
	if _, known := boundNames[opts.Bound]; !known {
		return 0, fmt.Errorf("%w: unknown bound %v", ErrOptionViolation, opts.Bound)
	}

	return start, nil
}
