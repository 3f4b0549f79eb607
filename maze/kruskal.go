package maze

import (
	"math/rand"

	"github.com/spakin/disjoint"
)

// edge is a candidate wall between two logically adjacent cells.
type edge struct {
	a, b Position
}

func carveKruskal(g *Grid, start Position, rng *rand.Rand) {
	kruskal(g, start, rng)
}

// kruskal carves a spanning tree by joining cells across a shuffled list
// of every candidate wall. It returns the set element of each logical cell,
// indexed in row-major lattice order.
func kruskal(g *Grid, start Position, rng *rand.Rand) []*disjoint.Element {
	side := g.side()
	total := side * side
	index := func(p Position) int {
		return (p.Row/2)*side + p.Col/2
	}

	edges := make([]edge, 0, 2*total)
	for _, p := range g.lattice() {
		if right := p.add(Position{Col: 2}); g.isLogical(right) {
			edges = append(edges, edge{a: p, b: right})
		}
		if below := p.add(Position{Row: 2}); g.isLogical(below) {
			edges = append(edges, edge{a: p, b: below})
		}
	}

	for i := len(edges) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}

	g.Set(start, Path)

	sets := make([]*disjoint.Element, total)
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	joined := 0
	for _, e := range edges {
		if joined == total-1 {
			break
		}
		a, b := sets[index(e.a)], sets[index(e.b)]
		if a.Find() == b.Find() {
			continue
		}
		disjoint.Union(a, b)
		g.Set(between(e.a, e.b), Path)
		g.Set(e.a, Path)
		g.Set(e.b, Path)
		joined++
	}

	return sets
}
