package maze

import "math/rand"

// walk is the loop-erased path of a single random walk. marks holds, per
// grid position, the 1-based index of the cell on the current path, or 0.
type walk struct {
	size  int
	path  []Position
	marks []int
}

func newWalk(size int) *walk {
	return &walk{
		size:  size,
		path:  make([]Position, 0, size),
		marks: make([]int, size*size),
	}
}

// visit appends p to the path. Revisiting a cell already on the path
// erases the loop back to its first occurrence.
func (w *walk) visit(p Position) {
	if step := w.marks[w.index(p)]; step > 0 {
		w.truncate(step - 1)
	}
	w.path = append(w.path, p)
	w.marks[w.index(p)] = len(w.path)
}

// truncate drops every cell from position n of the path onwards.
func (w *walk) truncate(n int) {
	for _, p := range w.path[n:] {
		w.marks[w.index(p)] = 0
	}
	w.path = w.path[:n]
}

// reset clears the walk, touching only the cells it visited.
func (w *walk) reset() {
	w.truncate(0)
}

func (w *walk) index(p Position) int {
	return p.Row*w.size + p.Col
}

// carveWilson builds a uniform spanning tree: random walks start from
// uncarved cells, have their loops erased, and are committed once they
// touch the maze.
func carveWilson(g *Grid, start Position, rng *rand.Rand) {
	g.Set(start, Path)

	cells := g.lattice()
	remaining := len(cells) - 1
	w := newWalk(g.size)

	for remaining > 0 {
		cur := cells[rng.Intn(len(cells))]
		for g.At(cur) != Wall {
			cur = cells[rng.Intn(len(cells))]
		}

		for g.At(cur) == Wall {
			w.visit(cur)
			options := g.neighbors(cur)
			cur = options[rng.Intn(len(options))]
		}

		// cur is now the maze cell the walk ran into.
		for i, p := range w.path {
			g.Set(p, Path)
			remaining--
			if i > 0 {
				g.Set(between(w.path[i-1], p), Path)
			}
		}
		g.Set(between(w.path[len(w.path)-1], cur), Path)

		w.reset()
	}
}
