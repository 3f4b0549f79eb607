package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service/i"
)

const (
	defaultMaxAutoRetries = 5
)

var (
	ErrOperatorAbort   = errors.New("maze generation aborted by operator")
	ErrUnreachableExit = errors.New("exit is unreachable from the entrance")
	ErrNilEscalator    = errors.New("generator requires an escalator")
	ErrNilLogger       = errors.New("a logger is required")
	ErrNilGenerator    = errors.New("a maze generator is required")
)

// State is a step of the regeneration state machine.
type State int

const (
	Idle State = iota
	Generating
	Validating
	Succeeded
	FailedRetry
	FailedEscalate
	Aborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	case Validating:
		return "validating"
	case Succeeded:
		return "succeeded"
	case FailedRetry:
		return "failed-retry"
	case FailedEscalate:
		return "failed-escalate"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Builder carves one maze attempt without checking reachability.
type Builder func(size int, seed uint32, a maze.Algorithm) (*maze.Maze, error)

// GeneratorConfig holds the collaborators of a Generator.
type GeneratorConfig struct {
	Builder        Builder     // Defaults to maze.Build.
	Escalator      i.Escalator // Decides what happens after repeated failures.
	Logger         i.Logger
	MaxAutoRetries int                  // Consecutive failures before escalating.
	OnTransition   func(from, to State) // Optional hook called on every state change.
}

// Generator runs generate, validate and retry until a reachable maze is
// produced or the operator aborts. It holds no per-generation state and is
// safe for concurrent use.
type Generator struct {
	build        Builder
	escalator    i.Escalator
	logger       i.Logger
	maxRetries   int
	onTransition func(from, to State)
}

// NewGenerator creates a Generator from c.
func NewGenerator(c *GeneratorConfig) (*Generator, error) {
	if c.Escalator == nil {
		return nil, ErrNilEscalator
	}
	if c.Logger == nil {
		return nil, ErrNilLogger
	}

	build := c.Builder
	if build == nil {
		build = maze.Build
	}

	maxRetries := c.MaxAutoRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxAutoRetries
	}

	return &Generator{
		build:        build,
		escalator:    c.Escalator,
		logger:       c.Logger,
		maxRetries:   maxRetries,
		onTransition: c.OnTransition,
	}, nil
}

// Generate returns a maze whose exit is reachable from the entrance. A zero
// seed is replaced by one drawn from the clock. The returned error wraps
// ErrOperatorAbort when the escalator aborts or ctx is done while waiting
// for a decision.
func (g *Generator) Generate(ctx context.Context, size int, seed uint32, a maze.Algorithm) (*maze.Maze, error) {
	if err := maze.ValidateSize(size); err != nil {
		return nil, err
	}
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", maze.ErrUnknownAlgorithm, int(a))
	}
	if seed == 0 {
		seed = RandomSeed()
	}

	r := &run{gen: g, state: Idle}
	return r.loop(ctx, size, seed, a)
}

// run tracks a single call to Generate.
type run struct {
	gen         *Generator
	state       State
	attempts    int
	failures    int
	escalations int
}

func (r *run) to(s State) {
	from := r.state
	r.state = s
	if r.gen.onTransition != nil {
		r.gen.onTransition(from, s)
	}
}

func (r *run) loop(ctx context.Context, size int, seed uint32, a maze.Algorithm) (*maze.Maze, error) {
	log := r.gen.logger
	for {
		r.to(Generating)
		r.attempts++
		log.Info(fmt.Sprintf("Generating maze: attempt=%d algorithm=%s size=%d seed=%d", r.attempts, a, size, seed))

		m, err := r.gen.build(size, seed, a)
		if err != nil {
			log.Error(fmt.Sprintf("Maze build failed: %s", err))
			return nil, err
		}

		r.to(Validating)
		if m.Solvable() {
			m.Attempts = r.attempts
			r.to(Succeeded)
			log.Info(fmt.Sprintf("Maze ready: algorithm=%s size=%d seed=%d exit=(%d,%d) attempts=%d",
				a, size, seed, m.Exit.Row, m.Exit.Col, r.attempts))
			return m, nil
		}

		r.failures++
		r.to(FailedRetry)
		log.Warning(fmt.Sprintf("%s: attempt=%d failure=%d/%d seed=%d", ErrUnreachableExit, r.attempts, r.failures, r.gen.maxRetries, seed))
		if r.failures < r.gen.maxRetries {
			seed = NextSeed(seed)
			continue
		}

		r.to(FailedEscalate)
		d, err := r.gen.escalator.Decide(ctx, i.Escalation{
			Size:        size,
			Algorithm:   a,
			Seed:        seed,
			Failures:    r.failures,
			Escalations: r.escalations,
		})
		if err != nil {
			r.to(Aborted)
			log.Warning(fmt.Sprintf("Escalation interrupted: %s", err))
			return nil, fmt.Errorf("%w: %w", ErrOperatorAbort, err)
		}
		r.escalations++
		log.Info(fmt.Sprintf("Escalation decided: action=%s algorithm=%s", d.Action, d.Algorithm))

		switch d.Action {
		case i.RetryNewSeed:
			seed = NextSeed(seed)
		case i.ChangeAlgorithm:
			if !d.Algorithm.Valid() {
				r.to(Aborted)
				return nil, fmt.Errorf("%w: %w: %d", ErrOperatorAbort, maze.ErrUnknownAlgorithm, int(d.Algorithm))
			}
			a = d.Algorithm
		default:
			r.to(Aborted)
			log.Info(fmt.Sprintf("Maze generation aborted after %d attempts", r.attempts))
			return nil, ErrOperatorAbort
		}
		r.failures = 0
	}
}

// NextSeed derives the seed tried after a failed attempt. Zero is skipped.
func NextSeed(seed uint32) uint32 {
	seed++
	if seed == 0 {
		seed = 1
	}
	return seed
}

// RandomSeed draws a non-zero seed from the clock.
func RandomSeed() uint32 {
	seed := uint32(time.Now().UnixNano())
	if seed == 0 {
		seed = 1
	}
	return seed
}
