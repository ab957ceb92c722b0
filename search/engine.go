package search

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/valveflow/compress"
)

// agent is one walker's clock and position. minutes == 0 marks a retired agent.
type agent struct {
	id      int
	node    int
	minutes int
}

// engine holds all search data and policies for one top-level call.
type engine struct {
	n     int
	ids   []string
	rates []int
	w     []int   // w[u*n+v]: travel minutes
	order [][]int // for each u: reward-bearing v sorted by rate/(w[u→v]+1) desc
	bound BoundAlgo

	// Budgets
	ctx         context.Context
	stepLimit   int64
	useDeadline bool
	deadline    time.Time
	err         error

	// Current branch: opened[v] is true once any ancestor activated v.
	opened []bool
	plan   []Step

	// Best-so-far, shared by every branch.
	best     int
	bestPlan []Step

	stats     Stats
	logger    *zap.Logger
	onImprove func(int)
}

func newEngine(g *compress.Graph, opts Options) *engine {
	n := g.Len()
	e := &engine{
		n:         n,
		ids:       g.IDs(),
		rates:     make([]int, n),
		w:         make([]int, n*n),
		bound:     opts.Bound,
		ctx:       opts.Ctx,
		stepLimit: opts.StepLimit,
		opened:    make([]bool, n),
		logger:    opts.Logger,
		onImprove: opts.OnImprove,
	}
	if e.ctx == nil {
		e.ctx = context.Background()
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	var u, v int
	for u = 0; u < n; u++ {
		e.rates[u] = g.Rate(u)
		// Nothing to gain from a zero-rate node; treat it as already open.
		e.opened[u] = e.rates[u] == 0
		for v = 0; v < n; v++ {
			e.w[u*n+v] = g.Dist(u, v)
		}
	}
	e.buildOrder()

	return e
}

// at is a fast accessor into the dense distance buffer.
func (e *engine) at(u, v int) int { return e.w[u*e.n+v] }

// targetOrder sorts one row of candidate targets for source u.
type targetOrder struct {
	u   int
	row []int
	e   *engine
}

func (t targetOrder) Len() int { return len(t.row) }

// Less compares rate/(dist+1) by cross-multiplication; index breaks ties.
func (t targetOrder) Less(i, j int) bool {
	vi, vj := t.row[i], t.row[j]
	ki := t.e.rates[vi] * (t.e.at(t.u, vj) + 1)
	kj := t.e.rates[vj] * (t.e.at(t.u, vi) + 1)
	if ki == kj {
		return vi < vj
	}

	return ki > kj
}
func (t *targetOrder) Swap(i, j int) { t.row[i], t.row[j] = t.row[j], t.row[i] }

// buildOrder lists, for each u, the reward-bearing targets most likely to
// pay off first. Good incumbents early make the bound bite sooner.
func (e *engine) buildOrder() {
	e.order = make([][]int, e.n)
	var u, v int
	for u = 0; u < e.n; u++ {
		row := make([]int, 0, e.n)
		for v = 0; v < e.n; v++ {
			if e.rates[v] > 0 {
				row = append(row, v)
			}
		}
		to := targetOrder{u: u, row: row, e: e}
		sort.Sort(&to)
		e.order[u] = to.row
	}
}

// tick counts one expansion and reports whether the search must stop.
// Context and deadline are polled every 4096 expansions.
func (e *engine) tick() bool {
	if e.err != nil {
		return true
	}
	e.stats.Expanded++
	if e.stepLimit > 0 && e.stats.Expanded > e.stepLimit {
		e.err = ErrStepLimit
		return true
	}
	if e.stats.Expanded&4095 != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.err = err
		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.err = ErrTimeLimit
		return true
	}

	return false
}

// upperBound is an optimistic estimate of the best total reachable from
// this branch. lead has at least as many minutes as wait.
func (e *engine) upperBound(lead, wait agent, accrued, closedRate int) int {
	switch e.bound {
	case NoBound:
		return math.MaxInt
	case TightBound:
		extra := 0
		var v, left, alt int
		for v = 0; v < e.n; v++ {
			if e.opened[v] {
				continue
			}
			left = lead.minutes - e.at(lead.node, v) - 1
			if alt = wait.minutes - e.at(wait.node, v) - 1; alt > left {
				left = alt
			}
			if left > 0 {
				extra += e.rates[v] * left
			}
		}
		return accrued + extra
	default:
		return accrued + closedRate*(lead.minutes-1)
	}
}

// improve commits a new best-so-far before the branch descends further, so
// siblings explored later are cut against it.
func (e *engine) improve(total int) {
	e.best = total
	e.bestPlan = append(e.bestPlan[:0], e.plan...)
	e.stats.Improvements++
	e.logger.Debug("new best",
		zap.Int("reward", total),
		zap.Int64("expanded", e.stats.Expanded),
		zap.Int("activations", len(e.plan)),
	)
	if e.onImprove != nil {
		e.onImprove(total)
	}
}

// dfs advances whichever agent has more minutes left. That agent either
// walks to a closed valve and opens it, or retires and leaves the rest of
// the clock to the other one.
func (e *engine) dfs(lead, wait agent, accrued, closedRate int) {
	if e.tick() {
		return
	}
	if closedRate == 0 {
		return
	}
	if wait.minutes > lead.minutes {
		lead, wait = wait, lead
	}
	// Opening a valve with one minute left releases nothing.
	if lead.minutes <= 1 {
		return
	}
	if e.upperBound(lead, wait, accrued, closedRate) <= e.best {
		e.stats.Pruned++
		return
	}

	var v, left, gain, total int
	for _, v = range e.order[lead.node] {
		if e.opened[v] {
			continue
		}
		left = lead.minutes - e.at(lead.node, v) - 1
		if left <= 0 {
			continue
		}
		gain = e.rates[v] * left
		total = accrued + gain

		e.opened[v] = true
		e.plan = append(e.plan, Step{Agent: lead.id, Node: e.ids[v], MinutesLeft: left, Gain: gain})
		if total > e.best {
			e.improve(total)
		}
		e.dfs(agent{id: lead.id, node: v, minutes: left}, wait, total, closedRate-e.rates[v])
		e.plan = e.plan[:len(e.plan)-1]
		e.opened[v] = false
	}

	if wait.minutes > 1 {
		e.dfs(agent{id: lead.id, node: lead.node}, wait, accrued, closedRate)
	}
}

// run searches from start with the given agents and returns the result.
func (e *engine) run(first, second agent) (Result, error) {
	closedRate := 0
	for v := 0; v < e.n; v++ {
		if !e.opened[v] {
			closedRate += e.rates[v]
		}
	}
	e.dfs(first, second, 0, closedRate)
	if e.err != nil {
		return Result{Stats: e.stats}, e.err
	}

	plan := make([]Step, len(e.bestPlan))
	copy(plan, e.bestPlan)
	sort.SliceStable(plan, func(i, j int) bool { return plan[i].MinutesLeft > plan[j].MinutesLeft })

	return Result{Reward: e.best, Plan: plan, Stats: e.stats}, nil
}
