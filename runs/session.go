package runs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/reusee/tmsim/graphs"
	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/turing"
)

var (
	ErrGraphNotInitialized = errors.New("configuration graph not initialized")
	ErrDanglingEdge        = errors.New("edge to unknown configuration")
	ErrNotExpanded         = errors.New("configuration not expanded")
)

type Outcome uint8

const (
	// Advanced means the current configuration moved along the only outgoing edge.
	Advanced Outcome = iota + 1
	// Ambiguous means more than one successor exists and one must be selected explicitly.
	Ambiguous
	// Halted means there is no successor.
	Halted
	// Stopped means a run loop was cancelled before its next step.
	Stopped
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Ambiguous:
		return "ambiguous"
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Last records how the current configuration was reached.
type Last struct {
	State      turing.StateID
	Transition int
	Config     turing.Configuration
}

// Session holds the mutable execution state over one machine and its graph.
type Session struct {
	machine   *turing.Machine
	logger    logs.Logger
	newSpan   logs.NewSpan
	stepBatch int
	runDelay  time.Duration
	maxSteps  int

	mu      sync.Mutex
	graph   *graphs.Graph
	start   turing.Configuration
	current turing.Configuration
	last    *Last
	running bool

	// runID invalidates scheduled steps of older run loops
	runID atomic.Uint64
	live  atomic.Bool
}

type Options struct {
	StepBatch int
	RunDelay  time.Duration
	// MaxSteps bounds the steps of one run loop, 0 means unbounded
	MaxSteps int
}

func NewSession(m *turing.Machine, logger logs.Logger, newSpan logs.NewSpan, opts Options) *Session {
	if opts.StepBatch < 1 {
		opts.StepBatch = 1
	}
	start := m.StartConfiguration()
	return &Session{
		machine:   m,
		logger:    logger,
		newSpan:   newSpan,
		stepBatch: opts.StepBatch,
		runDelay:  opts.RunDelay,
		maxSteps:  opts.MaxSteps,
		start:     start,
		current:   start,
	}
}

func (s *Session) Machine() *turing.Machine {
	return s.machine
}

// ComputeGraph replaces the graph with a fresh one grown from the start configuration.
func (s *Session) ComputeGraph(ctx context.Context, minNodes int) error {
	g, err := graphs.Compute(ctx, s.machine, s.start, minNodes, s.logger)
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
	return err
}

func (s *Session) Graph() *graphs.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph
}

func (s *Session) Current() turing.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) Start() turing.Configuration {
	return s.start
}

func (s *Session) Last() (Last, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Last{}, false
	}
	return *s.last, true
}

// Running reports whether at least one step was taken since the last reset or jump.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Live reports whether a run loop is active.
func (s *Session) Live() bool {
	return s.live.Load()
}

// NextConfigurations computes the successors of the current configuration without touching the graph.
func (s *Session) NextConfigurations() ([]turing.Successor, error) {
	return turing.NextConfigurations(s.machine, s.Current())
}

// Deepen grows the graph by at least minAdditional nodes from config.
func (s *Session) Deepen(ctx context.Context, config turing.Configuration, minAdditional int) (graphs.Stats, error) {
	g := s.Graph()
	if g == nil {
		return graphs.Stats{}, ErrGraphNotInitialized
	}
	return g.DeepenFrom(ctx, s.machine, config, minAdditional)
}

// Step follows the single outgoing edge of the current configuration.
// An unexpanded current configuration is expanded on demand first.
func (s *Session) Step(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step(ctx)
}

func (s *Session) step(ctx context.Context) (Outcome, error) {
	if s.graph == nil {
		return 0, ErrGraphNotInitialized
	}

	node, err := s.expandCurrent(ctx)
	if err != nil {
		return 0, err
	}

	switch len(node.Next) {
	case 0:
		s.logger.InfoContext(ctx, "machine halted",
			"state", s.current.State,
		)
		return Halted, nil
	case 1:
	default:
		s.logger.WarnContext(ctx, "multiple next configurations, select one",
			"state", s.current.State,
			"choices", len(node.Next),
		)
		return Ambiguous, nil
	}

	edge := node.Next[0]
	next, ok := s.graph.Node(edge.To)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrDanglingEdge, edge.To.Short())
	}
	s.advance(next.Config, edge.Transition)
	return Advanced, nil
}

// expandCurrent returns the node of the current configuration, expanding it first when needed.
func (s *Session) expandCurrent(ctx context.Context) (graphs.Node, error) {
	currentHash := s.current.Hash()
	node, ok := s.graph.Node(currentHash)
	if ok && node.Expanded {
		return node, nil
	}
	stats, err := s.graph.DeepenFrom(ctx, s.machine, s.current, s.stepBatch)
	if err != nil {
		return graphs.Node{}, err
	}
	s.logger.WarnContext(ctx, "current configuration was not expanded, computed next configurations",
		"config", currentHash.Short(),
		"discovered", stats.Discovered,
	)
	node, ok = s.graph.Node(currentHash)
	if !ok || !node.Expanded {
		return graphs.Node{}, fmt.Errorf("%w: %s", ErrNotExpanded, currentHash.Short())
	}
	return node, nil
}

func (s *Session) advance(to turing.Configuration, transition int) {
	s.last = &Last{
		State:      s.current.State,
		Transition: transition,
		Config:     s.current,
	}
	s.current = to
	s.running = true
}

// Select moves to target. A direct successor of the current configuration is
// followed like a step, expanding the current configuration first when needed.
// Any other configuration is jumped to and clears the last transition.
// Active run loops are stopped.
func (s *Session) Select(ctx context.Context, target turing.Configuration) (successor bool, err error) {
	s.StopRun()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graph == nil {
		return false, ErrGraphNotInitialized
	}

	node, err := s.expandCurrent(ctx)
	if err != nil {
		return false, err
	}
	targetHash := target.Hash()
	for _, edge := range node.Next {
		if edge.To == targetHash {
			s.advance(target, edge.Transition)
			return true, nil
		}
	}

	s.logger.InfoContext(ctx, "jump to configuration",
		"config", targetHash.Short(),
		"state", target.State,
	)
	s.current = target
	s.last = nil
	s.running = false
	return false, nil
}

// Reset returns to the start configuration. The graph is kept.
func (s *Session) Reset() {
	s.StopRun()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.start
	s.last = nil
	s.running = false
}
