package graphs

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/reusee/tmsim/turing"
)

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(slog.NewTextHandler(t.Output(), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func move(from, to turing.StateID, cond turing.PatternField, write turing.WriteField, m turing.Move) turing.Transition {
	return turing.Transition{
		From:      from,
		To:        to,
		Condition: []turing.PatternField{cond},
		Write:     []turing.WriteField{write},
		Moves:     []turing.Move{m},
	}
}

func machine(input string, transitions ...turing.Transition) *turing.Machine {
	table := turing.NewTable()
	for _, tr := range transitions {
		table.Add(tr)
	}
	start := turing.StateID("s")
	if len(transitions) > 0 {
		start = transitions[0].From
	}
	return &turing.Machine{
		Table:      table,
		Blank:      " ",
		TapeCount:  1,
		StartState: start,
		Input:      []turing.Tape{turing.TapeFromString(input)},
	}
}

// goes right over zeros, bounces on blank, goes left, bounces again
func circle() *turing.Machine {
	return machine("0",
		move("goright", "goright", turing.Exactly("0"), turing.Keep(), turing.Right),
		move("goright", "goleft", turing.Exactly(" "), turing.Keep(), turing.Left),
		move("goleft", "goleft", turing.Exactly("0"), turing.Keep(), turing.Left),
		move("goleft", "goright", turing.Exactly(" "), turing.Keep(), turing.Right),
	)
}

// writes 1 and moves right forever
func forever() *turing.Machine {
	return machine("",
		move("s", "s", turing.AnySymbol(), turing.Put("1"), turing.Right),
	)
}

// writes 0 or 1 and moves right forever
func branching() *turing.Machine {
	return machine("",
		move("s", "s", turing.AnySymbol(), turing.Put("0"), turing.Right),
		move("s", "s", turing.AnySymbol(), turing.Put("1"), turing.Right),
	)
}

func TestExhaustFiniteGraph(t *testing.T) {
	ctx := t.Context()
	m := circle()
	g, err := Compute(ctx, m, m.StartConfiguration(), 1000, testLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	// windows stop growing once both ends hold a blank
	if g.Size() == 0 || g.Size() >= 1000 {
		t.Fatalf("got %d", g.Size())
	}
	if g.Frontier() != 0 {
		t.Fatalf("got %d", g.Frontier())
	}
	for h, node := range g.Nodes() {
		if !node.Expanded {
			t.Fatalf("%s not expanded", h.Short())
		}
		if len(node.Next) != 1 {
			t.Fatalf("got %v", node.Next)
		}
		if !g.Has(node.Next[0].To) {
			t.Fatal("dangling edge")
		}
	}
	if g.EdgeCount() != g.Size() {
		t.Fatalf("got %d edges for %d nodes", g.EdgeCount(), g.Size())
	}
}

func TestDeepenIdempotent(t *testing.T) {
	ctx := t.Context()
	m := circle()
	g, err := Compute(ctx, m, m.StartConfiguration(), 1000, testLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	nodes, edges := g.Size(), g.EdgeCount()

	noops := testutil.ToFloat64(deepenNoops)
	stats, err := g.Deepen(ctx, m, m.StartConfiguration(), 1000)
	if err != nil {
		t.Fatal(err)
	}
	if stats != (Stats{}) {
		t.Fatalf("got %+v", stats)
	}
	if testutil.ToFloat64(deepenNoops) != noops+1 {
		t.Fatal("expected a no-op")
	}
	if g.Size() != nodes || g.EdgeCount() != edges {
		t.Fatalf("graph changed: %d %d", g.Size(), g.EdgeCount())
	}
}

func TestTargetBound(t *testing.T) {
	ctx := t.Context()

	m := forever()
	g, err := Compute(ctx, m, m.StartConfiguration(), 10, testLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 10 {
		t.Fatalf("got %d", g.Size())
	}

	m = branching()
	for _, n := range []int{1, 2, 5, 16, 100} {
		g, err := Compute(ctx, m, m.StartConfiguration(), n, testLogger(t))
		if err != nil {
			t.Fatal(err)
		}
		// one expansion adds at most two nodes
		if g.Size() < n || g.Size() > n+1 {
			t.Fatalf("target %d: got %d", n, g.Size())
		}
	}
}

func TestMonotonicGrowth(t *testing.T) {
	ctx := t.Context()
	m := branching()
	start := m.StartConfiguration()
	g := New(start, testLogger(t))

	known := make(map[turing.Hash]bool)
	from := start
	for round := range 5 {
		stats, err := g.DeepenFrom(ctx, m, from, 7)
		if err != nil {
			t.Fatal(err)
		}
		if stats.Exhausted {
			t.Fatal("infinite machine exhausted")
		}
		for h := range known {
			if !g.Has(h) {
				t.Fatalf("round %d: lost %s", round, h.Short())
			}
		}
		size := 0
		found := false
		for h, node := range g.Nodes() {
			known[h] = true
			size++
			if !node.Expanded && !found {
				from = node.Config
				found = true
			}
		}
		if size != g.Size() {
			t.Fatalf("iterated %d of %d", size, g.Size())
		}
		if g.Size() < 7*(round+1) {
			t.Fatalf("round %d: got %d", round, g.Size())
		}
	}

	// the start node is expanded, asking again from it is a no-op
	size := g.Size()
	stats, err := g.DeepenFrom(ctx, m, start, 7)
	if err != nil {
		t.Fatal(err)
	}
	if stats != (Stats{}) || g.Size() != size {
		t.Fatalf("got %+v", stats)
	}
}

func TestDeepenFromOtherNode(t *testing.T) {
	ctx := t.Context()
	m := forever()
	g, err := Compute(ctx, m, m.StartConfiguration(), 3, testLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	// pick the unexpanded tail
	var tail Node
	var tailHash turing.Hash
	for h, node := range g.Nodes() {
		if !node.Expanded {
			tail, tailHash = node, h
		}
	}
	if tailHash == (turing.Hash{}) {
		t.Fatal("no frontier")
	}

	stats, err := g.DeepenFrom(ctx, m, tail.Config, 4)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Expanded != 4 || stats.Discovered != 4 {
		t.Fatalf("got %+v", stats)
	}
	if g.Size() != 7 {
		t.Fatalf("got %d", g.Size())
	}
	node, _ := g.Node(tailHash)
	if !node.Expanded || len(node.Next) != 1 {
		t.Fatalf("got %+v", node)
	}

	// a configuration outside the graph becomes a new root
	other := turing.Configuration{
		State: "s",
		Tapes: []turing.Tape{turing.TapeFromString("x")},
		Heads: []int{0},
	}
	if _, err := g.DeepenFrom(ctx, m, other, 2); err != nil {
		t.Fatal(err)
	}
	if !g.Has(other.Hash()) {
		t.Fatal("root not inserted")
	}
	if node, _ := g.Node(other.Hash()); !node.Expanded {
		t.Fatalf("got %+v", node)
	}

	// one additional node still expands a new root
	another := turing.Configuration{
		State: "s",
		Tapes: []turing.Tape{turing.TapeFromString("y")},
		Heads: []int{0},
	}
	stats, err = g.DeepenFrom(ctx, m, another, 1)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Expanded != 1 {
		t.Fatalf("got %+v", stats)
	}
	if node, _ := g.Node(another.Hash()); !node.Expanded || len(node.Next) != 1 {
		t.Fatalf("got %+v", node)
	}
	first := true
	for h := range g.Nodes() {
		if first && h != g.StartHash() {
			t.Fatal("start node must come first")
		}
		first = false
	}
}

func TestEdgeDedup(t *testing.T) {
	ctx := t.Context()
	// both transitions produce the same successor
	m := machine("1",
		move("s", "t", turing.AnySymbol(), turing.Keep(), turing.Right),
		move("s", "t", turing.Exactly("1"), turing.Put("1"), turing.Right),
	)
	m.Table.Declare("t")
	g, err := Compute(ctx, m, m.StartConfiguration(), 10, testLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	start, ok := g.Node(g.StartHash())
	if !ok {
		t.Fatal()
	}
	if len(start.Next) != 1 {
		t.Fatalf("got %v", start.Next)
	}
	if start.Next[0].Transition != 0 {
		t.Fatalf("got %v", start.Next[0])
	}
	if g.Size() != 2 {
		t.Fatalf("got %d", g.Size())
	}
}

func TestMissingTransitionsIsDeadEnd(t *testing.T) {
	ctx := t.Context()
	// "t" is never declared
	m := machine("1",
		move("s", "t", turing.AnySymbol(), turing.Keep(), turing.Stay),
	)
	missing := testutil.ToFloat64(missingTransitions)
	g, err := Compute(ctx, m, m.StartConfiguration(), 10, testLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 {
		t.Fatalf("got %d", g.Size())
	}
	for _, node := range g.Nodes() {
		if !node.Expanded {
			t.Fatal("not expanded")
		}
		if node.Config.State == "t" && len(node.Next) != 0 {
			t.Fatalf("got %v", node.Next)
		}
	}
	if testutil.ToFloat64(missingTransitions) != missing+1 {
		t.Fatal("diagnostic not counted")
	}
}

func TestHaltingLeaf(t *testing.T) {
	ctx := t.Context()
	m := machine("1",
		move("s", "done", turing.Exactly("1"), turing.Keep(), turing.Stay),
	)
	m.Table.Declare("done")
	g, err := Compute(ctx, m, m.StartConfiguration(), 10, testLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 || g.Frontier() != 0 {
		t.Fatalf("got %d %d", g.Size(), g.Frontier())
	}
	stats, err := g.Deepen(ctx, m, m.StartConfiguration(), 100)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Expanded != 0 {
		t.Fatalf("got %+v", stats)
	}
}

func TestCancelledDeepen(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	m := forever()
	g, err := Compute(ctx, m, m.StartConfiguration(), 100, testLogger(t))
	if err != context.Canceled {
		t.Fatalf("got %v", err)
	}
	// the start node is known but not expanded
	if g.Size() != 1 || g.Frontier() != 1 {
		t.Fatalf("got %d %d", g.Size(), g.Frontier())
	}
	// and a later call resumes
	if _, err := g.Deepen(t.Context(), m, m.StartConfiguration(), 5); err != nil {
		t.Fatal(err)
	}
	if g.Size() != 5 {
		t.Fatalf("got %d", g.Size())
	}
}

func TestConcurrentDeepen(t *testing.T) {
	ctx := t.Context()
	m := branching()
	start := m.StartConfiguration()
	g := New(start, testLogger(t))
	done := make(chan error)
	for range 8 {
		go func() {
			_, err := g.DeepenFrom(ctx, m, start, 10)
			done <- err
		}()
	}
	for range 8 {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
	for _, node := range g.Nodes() {
		for _, edge := range node.Next {
			if !g.Has(edge.To) {
				t.Fatal("dangling edge")
			}
		}
	}
}
