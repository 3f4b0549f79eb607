package maze

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// frontier is the unordered set of uncarved cells bordering the carved
// region. The slice gives uniform random removal, the set gives
// membership checks.
type frontier struct {
	cells   []Position
	members mapset.Set[Position]
}

func newFrontier() *frontier {
	return &frontier{members: mapset.New[Position]()}
}

// add inserts p unless it is already present.
func (f *frontier) add(p Position) {
	if f.members.Has(p) {
		return
	}
	f.members.Put(p)
	f.cells = append(f.cells, p)
}

// pop removes and returns a uniformly chosen member.
func (f *frontier) pop(rng *rand.Rand) Position {
	i := rng.Intn(len(f.cells))
	p := f.cells[i]
	last := len(f.cells) - 1
	f.cells[i] = f.cells[last]
	f.cells = f.cells[:last]
	f.members.Remove(p)
	return p
}

func (f *frontier) empty() bool {
	return len(f.cells) == 0
}

// carvePrim grows the maze from start by repeatedly attaching a random
// frontier cell to one of its carved neighbors.
func carvePrim(g *Grid, start Position, rng *rand.Rand) {
	f := newFrontier()

	g.Set(start, Path)
	for _, n := range g.neighbors(start) {
		if g.At(n) == Wall {
			f.add(n)
		}
	}

	carved := make([]Position, 0, len(steps))
	for !f.empty() {
		cell := f.pop(rng)

		carved = carved[:0]
		for _, n := range g.neighbors(cell) {
			if g.At(n) == Path {
				carved = append(carved, n)
			}
		}
		if len(carved) == 0 {
			continue
		}

		connectTo := carved[rng.Intn(len(carved))]
		g.Set(between(cell, connectTo), Path)
		g.Set(cell, Path)

		for _, n := range g.neighbors(cell) {
			if g.At(n) == Wall {
				f.add(n)
			}
		}
	}
}
