package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors returned by the maximizers.
var (
	// ErrGraphNil is returned when a nil compressed graph is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID was not kept by compression.
	ErrStartVertexNotFound = errors.New("search: start vertex not found")

	// ErrInvalidTimeBudget is returned for a time budget ≤ 0.
	ErrInvalidTimeBudget = errors.New("search: time budget must be positive")

	// ErrAgentCount is returned by Solve for an agent count other than 1 or 2.
	ErrAgentCount = errors.New("search: agent count must be 1 or 2")

	// ErrOptionViolation is returned for malformed Options.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepLimit is returned when Options.StepLimit expansions were used up.
	ErrStepLimit = errors.New("search: step limit exceeded")

	// ErrTimeLimit is returned when Options.TimeLimit elapsed before the search finished.
	ErrTimeLimit = errors.New("search: time limit exceeded")
)

// BoundAlgo selects the optimistic bound used to cut branches.
type BoundAlgo int

const (
	// LooseBound assumes every still-closed valve opens right away at the
	// leading agent's clock: accrued + closedRate × (minutes − 1).
	LooseBound BoundAlgo = iota

	// TightBound charges each closed valve the travel time from the nearer
	// agent. Never looser than LooseBound; same result, fewer expansions.
	TightBound

	// NoBound disables pruning (testing and benchmarking only).
	NoBound
)

var boundNames = map[BoundAlgo]string{
	LooseBound: "loose",
	TightBound: "tight",
	NoBound:    "none",
}

func (b BoundAlgo) String() string {
	if s, ok := boundNames[b]; ok {
		return s
	}

	return fmt.Sprintf("BoundAlgo(%d)", int(b))
}

// ParseBound maps "none", "loose" or "tight" to a BoundAlgo.
func ParseBound(s string) (BoundAlgo, error) {
	for b, name := range boundNames {
		if strings.EqualFold(s, name) {
			return b, nil
		}
	}

	return LooseBound, fmt.Errorf("%w: unknown bound %q", ErrOptionViolation, s)
}

// Options tunes a search run. The zero value runs LooseBound without limits
// or logging; DefaultOptions spells the same thing out.
type Options struct {
	// Bound picks the pruning bound.
	Bound BoundAlgo

	// StepLimit caps node expansions; 0 means unlimited.
	StepLimit int64

	// TimeLimit is a soft wall-clock budget; 0 means none.
	TimeLimit time.Duration

	// Ctx cancels the search. Checked every 4096 expansions.
	Ctx context.Context

	// Logger receives a debug entry on every improvement of the best reward.
	Logger *zap.Logger

	// OnImprove, if set, is called with each new best reward.
	OnImprove func(reward int)
}

// DefaultOptions returns LooseBound, no limits, background context and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Bound:  LooseBound,
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// Step is one valve activation in a plan.
type Step struct {
	// Agent is 0 for the first agent and 1 for the second.
	Agent int

	// Node is the activated valve.
	Node string

	// MinutesLeft is the remaining time once the valve is open.
	MinutesLeft int

	// Gain is rate × MinutesLeft.
	Gain int
}

// Stats counts search work.
type Stats struct {
	Expanded     int64
	Pruned       int64
	Improvements int64
}

// Result is the outcome of a search.
type Result struct {
	// Reward is the maximum total pressure released.
	Reward int

	// Plan lists the activations of one optimal schedule in chronological order
	// (descending MinutesLeft). Empty when Reward is 0.
	Plan []Step

	Stats Stats
}
