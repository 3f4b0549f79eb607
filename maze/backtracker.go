package maze

import "math/rand"

// loopChance is the percentage chance of opening a wall into an already
// carved neighbor when carving with loops.
const loopChance = 15

// frame is one level of the depth-first carve: the cell being expanded,
// its shuffled directions and the next direction to try.
type frame struct {
	pos  Position
	dirs [4]int
	next int
}

func carveBacktracker(g *Grid, start Position, rng *rand.Rand) {
	backtrack(g, start, rng, false)
}

func carveBacktrackerLoop(g *Grid, start Position, rng *rand.Rand) {
	backtrack(g, start, rng, true)
}

// backtrack performs a depth-first carve using an explicit stack so the
// depth is bounded by memory rather than the goroutine stack.
// With loops set, a still-standing wall towards an already carved
// neighbor is opened with loopChance percent probability.
func backtrack(g *Grid, start Position, rng *rand.Rand, loops bool) {
	stack := []frame{enter(g, start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := steps[top.dirs[top.next]]
		top.next++

		n := top.pos.add(d)
		if !g.isLogical(n) {
			continue
		}

		wall := between(top.pos, n)
		switch {
		case g.At(n) == Wall:
			g.Set(wall, Path)
			stack = append(stack, enter(g, n, rng))
		case loops && g.At(wall) == Wall && rng.Intn(100) < loopChance:
			g.Set(wall, Path)
		}
	}
}

// enter carves p and prepares its frame with a uniformly shuffled
// direction order.
func enter(g *Grid, p Position, rng *rand.Rand) frame {
	g.Set(p, Path)
	f := frame{pos: p, dirs: [4]int{0, 1, 2, 3}}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}
