package service

import (
	"context"
	"math"
	"testing"

	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type buildCall struct {
	seed uint32
	alg  maze.Algorithm
}

// scriptedBuilder returns unreachable mazes for the first failFirst calls.
type scriptedBuilder struct {
	failFirst int
	calls     []buildCall
}

func (b *scriptedBuilder) build(size int, seed uint32, a maze.Algorithm) (*maze.Maze, error) {
	b.calls = append(b.calls, buildCall{seed: seed, alg: a})
	if len(b.calls) <= b.failFirst {
		return unreachableMaze(size, seed, a), nil
	}
	return maze.Build(size, seed, a)
}

func unreachableMaze(size int, seed uint32, a maze.Algorithm) *maze.Maze {
	g, _ := maze.NewGrid(size)
	g.Set(maze.Entrance, maze.Path)
	exit := maze.Position{Row: size - 2, Col: size - 2}
	g.Set(exit, maze.Exit)
	return &maze.Maze{Grid: g, Entrance: maze.Entrance, Exit: exit, Seed: seed, Algorithm: a, Attempts: 1}
}

type fakeEscalator struct {
	decisions []i.Decision
	seen      []i.Escalation
}

func (f *fakeEscalator) Decide(_ context.Context, e i.Escalation) (i.Decision, error) {
	f.seen = append(f.seen, e)
	if len(f.decisions) == 0 {
		return i.Decision{Action: i.Abort}, nil
	}
	d := f.decisions[0]
	f.decisions = f.decisions[1:]
	return d, nil
}

func newTestGenerator(t *testing.T, b Builder, e i.Escalator, transitions *[]State) *Generator {
	t.Helper()
	c := &GeneratorConfig{Builder: b, Escalator: e, Logger: nopLogger{}}
	if transitions != nil {
		c.OnTransition = func(_, to State) { *transitions = append(*transitions, to) }
	}
	g, err := NewGenerator(c)
	require.NoError(t, err)
	return g
}

func TestNewGenerator(t *testing.T) {
	_, err := NewGenerator(&GeneratorConfig{Logger: nopLogger{}})
	assert.ErrorIs(t, err, ErrNilEscalator)

	_, err = NewGenerator(&GeneratorConfig{Escalator: &fakeEscalator{}})
	assert.ErrorIs(t, err, ErrNilLogger)

	g, err := NewGenerator(&GeneratorConfig{Escalator: &fakeEscalator{}, Logger: nopLogger{}})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxAutoRetries, g.maxRetries)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Every algorithm yields a reachable exit", func(t *testing.T) {
		g := newTestGenerator(t, nil, &fakeEscalator{}, nil)
		for _, a := range maze.Algorithms {
			for _, size := range []int{maze.MinSize, 11, maze.DefaultSize, maze.MaxSize} {
				m, err := g.Generate(ctx, size, 1234, a)
				require.NoError(t, err, "%s size %d", a, size)
				assert.True(t, m.Solvable())
				assert.Equal(t, size, m.Grid.Size())
				assert.Equal(t, maze.Entrance, m.Entrance)
				assert.Equal(t, 1, m.Attempts)
			}
		}
	})

	t.Run("Success passes through validation", func(t *testing.T) {
		var states []State
		b := &scriptedBuilder{}
		g := newTestGenerator(t, b.build, &fakeEscalator{}, &states)

		_, err := g.Generate(ctx, 9, 7, maze.Prim)
		require.NoError(t, err)
		assert.Equal(t, []State{Generating, Validating, Succeeded}, states)
	})

	t.Run("Retries increment the seed", func(t *testing.T) {
		b := &scriptedBuilder{failFirst: 3}
		esc := &fakeEscalator{}
		g := newTestGenerator(t, b.build, esc, nil)

		m, err := g.Generate(ctx, 9, 10, maze.Kruskal)
		require.NoError(t, err)
		assert.Equal(t, 4, m.Attempts)
		assert.Equal(t, uint32(13), m.Seed)
		assert.Empty(t, esc.seen)
		for n, c := range b.calls {
			assert.Equal(t, uint32(10+n), c.seed)
			assert.Equal(t, maze.Kruskal, c.alg)
		}
	})

	t.Run("Seed successor skips zero", func(t *testing.T) {
		b := &scriptedBuilder{failFirst: 1}
		g := newTestGenerator(t, b.build, &fakeEscalator{}, nil)

		m, err := g.Generate(ctx, 7, math.MaxUint32, maze.Wilson)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), m.Seed)
	})

	t.Run("Escalates after five failures and retries", func(t *testing.T) {
		var states []State
		b := &scriptedBuilder{failFirst: 5}
		esc := &fakeEscalator{decisions: []i.Decision{{Action: i.RetryNewSeed}}}
		g := newTestGenerator(t, b.build, esc, &states)

		m, err := g.Generate(ctx, 11, 100, maze.Backtracker)
		require.NoError(t, err)
		assert.Equal(t, 6, m.Attempts)
		assert.Equal(t, uint32(105), m.Seed)

		require.Len(t, esc.seen, 1)
		assert.Equal(t, i.Escalation{Size: 11, Algorithm: maze.Backtracker, Seed: 104, Failures: 5}, esc.seen[0])
		assert.Contains(t, states, FailedEscalate)
		assert.Equal(t, Succeeded, states[len(states)-1])
	})

	t.Run("Change algorithm keeps the failing seed", func(t *testing.T) {
		b := &scriptedBuilder{failFirst: 5}
		esc := &fakeEscalator{decisions: []i.Decision{{Action: i.ChangeAlgorithm, Algorithm: maze.Wilson}}}
		g := newTestGenerator(t, b.build, esc, nil)

		m, err := g.Generate(ctx, 11, 100, maze.Prim)
		require.NoError(t, err)
		assert.Equal(t, maze.Wilson, m.Algorithm)
		assert.Equal(t, uint32(104), m.Seed)
		assert.Equal(t, buildCall{seed: 104, alg: maze.Wilson}, b.calls[5])
	})

	t.Run("Failure counter resets after a decision", func(t *testing.T) {
		b := &scriptedBuilder{failFirst: 10}
		esc := &fakeEscalator{decisions: []i.Decision{{Action: i.RetryNewSeed}, {Action: i.RetryNewSeed}}}
		g := newTestGenerator(t, b.build, esc, nil)

		m, err := g.Generate(ctx, 7, 1, maze.Prim)
		require.NoError(t, err)
		assert.Equal(t, 11, m.Attempts)
		require.Len(t, esc.seen, 2)
		assert.Equal(t, 5, esc.seen[1].Failures)
		assert.Equal(t, 1, esc.seen[1].Escalations)
	})

	t.Run("Abort is a clean error", func(t *testing.T) {
		var states []State
		b := &scriptedBuilder{failFirst: math.MaxInt}
		g := newTestGenerator(t, b.build, &fakeEscalator{}, &states)

		m, err := g.Generate(ctx, 7, 1, maze.Prim)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrOperatorAbort)
		assert.Len(t, b.calls, defaultMaxAutoRetries)
		assert.Equal(t, Aborted, states[len(states)-1])
	})

	t.Run("Invalid algorithm from the operator aborts", func(t *testing.T) {
		b := &scriptedBuilder{failFirst: math.MaxInt}
		esc := &fakeEscalator{decisions: []i.Decision{{Action: i.ChangeAlgorithm}}}
		g := newTestGenerator(t, b.build, esc, nil)

		_, err := g.Generate(ctx, 7, 1, maze.Prim)
		assert.ErrorIs(t, err, ErrOperatorAbort)
		assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
	})

	t.Run("Cancelled context aborts at escalation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		esc, err := NewPolicyEscalator(PolicyRetry, 0)
		require.NoError(t, err)
		b := &scriptedBuilder{failFirst: math.MaxInt}
		g := newTestGenerator(t, b.build, esc, nil)

		_, err = g.Generate(cctx, 7, 1, maze.Prim)
		assert.ErrorIs(t, err, ErrOperatorAbort)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Change policy rotates then gives up", func(t *testing.T) {
		esc, err := NewPolicyEscalator(PolicyChange, 3)
		require.NoError(t, err)
		b := &scriptedBuilder{failFirst: math.MaxInt}
		g := newTestGenerator(t, b.build, esc, nil)

		_, err = g.Generate(ctx, 7, 1, maze.Prim)
		assert.ErrorIs(t, err, ErrOperatorAbort)
		require.Len(t, b.calls, 4*defaultMaxAutoRetries)
		assert.Equal(t, maze.Prim, b.calls[0].alg)
		assert.Equal(t, maze.Kruskal, b.calls[5].alg)
		assert.Equal(t, maze.Wilson, b.calls[10].alg)
		assert.Equal(t, maze.Backtracker, b.calls[15].alg)
	})

	t.Run("Build errors propagate", func(t *testing.T) {
		fail := func(int, uint32, maze.Algorithm) (*maze.Maze, error) { return nil, maze.ErrInvalidGrid }
		g := newTestGenerator(t, fail, &fakeEscalator{}, nil)

		_, err := g.Generate(ctx, 7, 1, maze.Prim)
		assert.ErrorIs(t, err, maze.ErrInvalidGrid)
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		g := newTestGenerator(t, nil, &fakeEscalator{}, nil)

		_, err := g.Generate(ctx, 4, 1, maze.Prim)
		assert.ErrorIs(t, err, maze.ErrInvalidSize)
		_, err = g.Generate(ctx, 53, 1, maze.Prim)
		assert.ErrorIs(t, err, maze.ErrInvalidSize)
		_, err = g.Generate(ctx, 7, 1, maze.Algorithm(9))
		assert.ErrorIs(t, err, maze.ErrUnknownAlgorithm)
	})

	t.Run("Zero seed is replaced", func(t *testing.T) {
		g := newTestGenerator(t, nil, &fakeEscalator{}, nil)

		m, err := g.Generate(ctx, 7, 0, maze.Prim)
		require.NoError(t, err)
		assert.NotZero(t, m.Seed)
	})
}

func TestNextSeed(t *testing.T) {
	assert.Equal(t, uint32(2), NextSeed(1))
	assert.Equal(t, uint32(1), NextSeed(math.MaxUint32))
	assert.NotZero(t, RandomSeed())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "failed-escalate", FailedEscalate.String())
	assert.Equal(t, "unknown", State(42).String())
}
