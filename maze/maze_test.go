package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var perfect = map[Algorithm]bool{
	Prim:            true,
	Kruskal:         true,
	Wilson:          true,
	Backtracker:     true,
	BacktrackerLoop: false,
}

func TestBuildEverySizeAndAlgorithm(t *testing.T) {
	seeds := []uint32{1, 42, 4294967295}

	for _, a := range Algorithms {
		t.Run(a.String(), func(t *testing.T) {
			for n := MinSize; n <= MaxSize; n += 2 {
				for _, seed := range seeds {
					m, err := Build(n, seed, a)
					require.NoError(t, err)

					g := m.Grid
					assert.True(t, m.Solvable(), "size %d seed %d", n, seed)
					assert.Equal(t, Entrance, m.Entrance)
					assert.Equal(t, Path, g.At(Entrance))
					assert.Equal(t, Position{Row: n - 2, Col: n - 2}, m.Exit)
					assert.Equal(t, Exit, g.At(m.Exit))

					for _, p := range g.lattice() {
						assert.True(t, g.At(p).Open(), "cell %v left uncarved", p)
					}

					want := g.LogicalCells() - 1
					if perfect[a] {
						assert.Equal(t, want, g.ConnectingWalls(), "size %d seed %d", n, seed)
					} else {
						assert.GreaterOrEqual(t, g.ConnectingWalls(), want, "size %d seed %d", n, seed)
					}
				}
			}
		})
	}
}

func TestBuildSmallestMaze(t *testing.T) {
	for _, a := range Algorithms {
		if !perfect[a] {
			continue
		}
		m, err := Build(5, 7, a)
		require.NoError(t, err)
		assert.Equal(t, 3, m.Grid.ConnectingWalls(), a.String())
	}
}

func TestBuildDeterminism(t *testing.T) {
	for _, a := range Algorithms {
		t.Run(a.String(), func(t *testing.T) {
			first, err := Build(21, 1234, a)
			require.NoError(t, err)
			second, err := Build(21, 1234, a)
			require.NoError(t, err)

			assert.Equal(t, first.Grid.Cells(), second.Grid.Cells())
			assert.Equal(t, first.Exit, second.Exit)
			assert.Equal(t, first.Bonus, second.Bonus)

			other, err := Build(21, 1235, a)
			require.NoError(t, err)
			assert.NotEqual(t, first.Grid.Cells(), other.Grid.Cells())
		})
	}
}

func TestBuildBonus(t *testing.T) {
	m, err := Build(21, 99, Prim)
	require.NoError(t, err)

	count := 0
	for _, c := range m.Grid.Cells() {
		if c == Bonus {
			count++
		}
	}
	assert.Equal(t, m.Bonus, count)
	assert.Positive(t, m.Bonus)
	assert.LessOrEqual(t, m.Bonus, 21/2)
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	_, err := Build(4, 1, Prim)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Build(21, 1, Algorithm(0))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestKruskalSingleComponent(t *testing.T) {
	for _, n := range []int{5, 11, 51} {
		g, err := NewGrid(n)
		require.NoError(t, err)

		sets := kruskal(g, Entrance, rand.New(rand.NewSource(int64(n))))
		require.Len(t, sets, g.LogicalCells())
		root := sets[0].Find()
		for i, e := range sets {
			assert.Same(t, root, e.Find(), "size %d cell %d", n, i)
		}
		assert.Equal(t, g.LogicalCells()-1, g.ConnectingWalls(), "size %d", n)
	}
}

func TestWalkLoopErasure(t *testing.T) {
	a := Position{Row: 1, Col: 1}
	b := Position{Row: 1, Col: 3}
	c := Position{Row: 3, Col: 3}
	d := Position{Row: 3, Col: 5}

	w := newWalk(9)
	for _, p := range []Position{a, b, c, b, d} {
		w.visit(p)
	}

	assert.Equal(t, []Position{a, b, d}, w.path)
	assert.Equal(t, 0, w.marks[w.index(c)], "erased cell must be unmarked")
	assert.Equal(t, 2, w.marks[w.index(b)])
	assert.Equal(t, 3, w.marks[w.index(d)])

	w.reset()
	assert.Empty(t, w.path)
	for _, m := range w.marks {
		assert.Zero(t, m)
	}
}

func TestWalkErasesBackToStart(t *testing.T) {
	a := Position{Row: 1, Col: 1}
	b := Position{Row: 1, Col: 3}
	c := Position{Row: 3, Col: 3}

	w := newWalk(7)
	for _, p := range []Position{a, b, c, a} {
		w.visit(p)
	}
	assert.Equal(t, []Position{a}, w.path)
}

func TestBacktrackerLoopOpensExtraWalls(t *testing.T) {
	extra := 0
	for seed := int64(1); seed <= 20; seed++ {
		g, err := NewGrid(31)
		require.NoError(t, err)
		carveBacktrackerLoop(g, Entrance, rand.New(rand.NewSource(seed)))
		extra += g.ConnectingWalls() - (g.LogicalCells() - 1)
	}
	assert.Positive(t, extra)
}
