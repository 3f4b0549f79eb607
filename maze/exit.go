package maze

// nearEntrance are the last-resort exit candidates, tried in order.
var nearEntrance = []Position{{Row: 1, Col: 3}, {Row: 3, Col: 1}, Entrance}

// PlaceExit picks the exit position after carving and marks it Exit.
//
// The logical cell at the far corner is preferred. Failing that, its
// logical neighbors are tried up, left, down, right; then the grid is
// scanned backwards from the far corner for any path; finally a fixed
// near-entrance position is used.
func PlaceExit(g *Grid) Position {
	exit := findExit(g)
	g.Set(exit, Exit)
	return exit
}

func findExit(g *Grid) Position {
	corner := Position{Row: g.size - 2, Col: g.size - 2}
	if g.At(corner) == Path {
		return corner
	}

	for _, n := range g.neighbors(corner) {
		if g.At(n) == Path {
			return n
		}
	}

	for r := g.size - 2; r > 0; r-- {
		for c := g.size - 2; c > 0; c-- {
			if p := (Position{Row: r, Col: c}); g.At(p) == Path {
				return p
			}
		}
	}

	for _, p := range nearEntrance[:len(nearEntrance)-1] {
		if g.At(p) != Wall {
			return p
		}
	}
	return nearEntrance[len(nearEntrance)-1]
}
