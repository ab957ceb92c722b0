// Package search finds the maximum pressure one or two agents can release
// from a compressed valve graph within a shared time budget.
//
// Model
//
//   - Each agent starts at the start node with the full budget.
//   - Walking costs the compressed distance; opening a valve costs one
//     minute and releases rate × (minutes left after opening).
//   - A valve opens at most once, whichever agent gets there.
//
// Search (branch-and-bound, single-threaded)
//
//  1. Depth-first over activation sequences. Walking through a valve never
//     needs to be modelled separately: compressed distances are already
//     shortest paths.
//  2. Two agents are not simulated tick by tick. The agent with more minutes
//     left always acts next, so the recursion swaps roles instead of
//     interleaving clocks. An agent can also retire, which is how the
//     other one ends up working alone.
//  3. Opened valves live in one slice, set before descending and cleared on
//     backtrack, so a branch only sees its ancestors' activations.
//  4. The best-so-far reward is one scalar for the whole call. It is raised
//     the moment an activation beats it, before recursing, so sibling
//     branches are already cut against it.
//  5. Cut: LooseBound = accrued + closedRate × (leadMinutes − 1);
//     TightBound additionally charges each closed valve the travel time from
//     the nearer agent. NoBound is for tests.
//  6. Targets are tried in descending rate/(distance+1) order.
//
// Complexity: exponential in the number of reward-bearing valves in the
// worst case. Options.StepLimit, Options.TimeLimit and Options.Ctx bound a
// run on pathological inputs.
//
// Time budgets ≤ 0 are rejected with ErrInvalidTimeBudget rather than
// answered with 0.
package search
