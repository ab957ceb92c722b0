// Package valveflow plans valve activations in a tunnel network so that the
// most pressure is released before time runs out.
//
// A cave is a set of valves (each with a release rate, many of them zero)
// joined by tunnels that take one minute to walk. Opening a valve takes one
// minute; from then on it releases rate units per remaining minute.
//
// Packages:
//
//	core/       thread-safe raw graph of valves and tunnels
//	bfs/        breadth-first hop distances with hooks and limits
//	compress/   reduction to the start plus reward-bearing valves, with
//	             all-pairs walking distances
//	search/     branch-and-bound reward maximization for one or two agents
//	scenario/   YAML, JSON and scan-report cave documents
//	config/     layered run settings (defaults, file, env, flags)
//	logging/    zap logger construction
//	metrics/    Prometheus collectors for search runs
//	cmd/valveflow  the command-line front end
//
// Quick start:
//
//	sc, _ := scenario.LoadFile("cave.yaml")
//	raw, _ := sc.Graph()
//	g, _ := compress.Compress(raw, sc.Start)
//	res, _ := search.Solve(g, sc.Start, 26, 2, search.DefaultOptions())
//	fmt.Println(res.Reward)
package valveflow
