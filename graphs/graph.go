package graphs

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/turing"
)

// Edge points at a successor node. Transition is the index, in the source
// state's transition list, of the first transition found to produce it.
type Edge struct {
	To         turing.Hash
	Transition int
}

// Node is a configuration in the graph.
// Expanded means Next holds every successor; otherwise Next is empty.
type Node struct {
	Config   turing.Configuration
	Expanded bool
	Next     []Edge
}

// Graph is the deduplicated, memoized graph of configurations reachable
// from a start configuration. Nodes and edges are only ever added.
// All methods are safe for concurrent use; expansions are serialized.
type Graph struct {
	mu        sync.RWMutex
	start     turing.Configuration
	startHash turing.Hash
	nodes     map[turing.Hash]*Node
	edges     int
	logger    logs.Logger
}

// Stats describes the work done by one Deepen call.
type Stats struct {
	Expanded   int
	Discovered int
	Edges      int
	// Exhausted is set when the BFS queue emptied before reaching the target.
	Exhausted bool
}

func New(start turing.Configuration, logger logs.Logger) *Graph {
	return &Graph{
		start:     start,
		startHash: start.Hash(),
		nodes:     make(map[turing.Hash]*Node),
		logger:    logger,
	}
}

// Compute builds a fresh graph from start, expanded until it holds at least minNodes nodes
// or every reachable configuration is known.
func Compute(ctx context.Context, m *turing.Machine, start turing.Configuration, minNodes int, logger logs.Logger) (*Graph, error) {
	g := New(start, logger)
	if _, err := g.Deepen(ctx, m, start, minNodes); err != nil {
		return g, err
	}
	return g, nil
}

// Deepen runs a breadth first expansion from from until the graph holds target nodes
// or the queue empties. Nodes already expanded are skipped, so repeated calls only do new work.
// Cancelling ctx stops between two node expansions and leaves the graph consistent.
func (g *Graph) Deepen(ctx context.Context, m *turing.Machine, from turing.Configuration, target int) (stats Stats, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.deepen(ctx, m, from, target)
}

// DeepenFrom asks for at least minAdditional more nodes than the graph currently holds.
// A from outside the graph does not count as one of them, so it is always expanded.
func (g *Graph) DeepenFrom(ctx context.Context, m *turing.Machine, from turing.Configuration, minAdditional int) (Stats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	target := len(g.nodes) + max(minAdditional, 1)
	if _, ok := g.nodes[from.Hash()]; !ok {
		target++
	}
	return g.deepen(ctx, m, from, target)
}

func (g *Graph) deepen(ctx context.Context, m *turing.Machine, from turing.Configuration, target int) (stats Stats, err error) {
	fromHash := from.Hash()
	if node, ok := g.nodes[fromHash]; ok && node.Expanded {
		deepenNoops.Inc()
		return
	}

	t0 := time.Now()
	defer func() {
		deepenDuration.Observe(time.Since(t0).Seconds())
		expansions.Add(float64(stats.Expanded))
		discoveredNodes.Add(float64(stats.Discovered))
		recordedEdges.Add(float64(stats.Edges))
		g.logger.DebugContext(ctx, "deepen",
			"from", fromHash.Short(),
			"target", target,
			"nodes", len(g.nodes),
			"expanded", stats.Expanded,
			"discovered", stats.Discovered,
			"exhausted", stats.Exhausted,
		)
	}()

	if _, ok := g.nodes[fromHash]; !ok {
		g.nodes[fromHash] = &Node{
			Config: from,
		}
		stats.Discovered++
	}

	queue := []turing.Configuration{from}
	for len(queue) > 0 && len(g.nodes) < target {
		if err = ctx.Err(); err != nil {
			return
		}

		current := queue[0]
		queue = queue[1:]
		currentHash := current.Hash()
		node := g.nodes[currentHash]
		if node.Expanded {
			continue
		}

		succs, nextErr := turing.NextConfigurations(m, current)
		if errors.Is(nextErr, turing.ErrMissingTransitions) {
			missingTransitions.Inc()
			g.logger.ErrorContext(ctx, "no transitions for reachable state",
				"state", current.State,
				"config", currentHash.Short(),
			)
		}

		for _, succ := range succs {
			nextHash := succ.Configuration.Hash()
			if _, ok := g.nodes[nextHash]; !ok {
				g.nodes[nextHash] = &Node{
					Config: succ.Configuration,
				}
				stats.Discovered++
				queue = append(queue, succ.Configuration)
			}
			if !slices.ContainsFunc(node.Next, func(e Edge) bool {
				return e.To == nextHash
			}) {
				node.Next = append(node.Next, Edge{
					To:         nextHash,
					Transition: succ.Transition,
				})
				g.edges++
				stats.Edges++
			}
		}

		node.Expanded = true
		stats.Expanded++
	}

	stats.Exhausted = len(queue) == 0
	return
}

func (g *Graph) Start() turing.Configuration {
	return g.start
}

func (g *Graph) StartHash() turing.Hash {
	return g.startHash
}

// Node returns a copy of the node with hash h.
func (g *Graph) Node(h turing.Hash) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	node, ok := g.nodes[h]
	if !ok {
		return Node{}, false
	}
	return Node{
		Config:   node.Config,
		Expanded: node.Expanded,
		Next:     slices.Clone(node.Next),
	}, true
}

func (g *Graph) Has(h turing.Hash) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[h]
	return ok
}

func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.edges
}

// Frontier returns the number of discovered but not yet expanded nodes.
func (g *Graph) Frontier() (n int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, node := range g.nodes {
		if !node.Expanded {
			n++
		}
	}
	return
}

// Nodes iterates over a snapshot of the graph in breadth first order from the start node,
// followed by nodes only reachable from other expansion roots.
func (g *Graph) Nodes() iter.Seq2[turing.Hash, Node] {
	return func(yield func(turing.Hash, Node) bool) {
		for _, h := range g.order() {
			node, ok := g.Node(h)
			if !ok {
				continue
			}
			if !yield(h, node) {
				return
			}
		}
	}
}

func (g *Graph) order() []turing.Hash {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ret := make([]turing.Hash, 0, len(g.nodes))
	seen := make(map[turing.Hash]bool, len(g.nodes))
	visit := func(root turing.Hash) {
		if seen[root] {
			return
		}
		seen[root] = true
		queue := []turing.Hash{root}
		for len(queue) > 0 {
			h := queue[0]
			queue = queue[1:]
			ret = append(ret, h)
			for _, edge := range g.nodes[h].Next {
				if !seen[edge.To] {
					seen[edge.To] = true
					queue = append(queue, edge.To)
				}
			}
		}
	}

	if _, ok := g.nodes[g.startHash]; ok {
		visit(g.startHash)
	}
	if len(ret) < len(g.nodes) {
		// roots of later expansions, in a stable order
		var rest []turing.Hash
		for h := range g.nodes {
			if !seen[h] {
				rest = append(rest, h)
			}
		}
		slices.SortFunc(rest, func(a, b turing.Hash) int {
			return slices.Compare(a[:], b[:])
		})
		for _, h := range rest {
			visit(h)
		}
	}
	return ret
}
