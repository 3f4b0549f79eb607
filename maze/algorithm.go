package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Algorithm selects the construction strategy used to carve a grid.
// Values follow the menu numbering players pick from.
type Algorithm int

const (
	Prim            Algorithm = iota + 1 // Randomized Prim's: frontier growth.
	Kruskal                              // Randomized Kruskal's: edge union.
	Wilson                               // Wilson's: loop-erased random walks.
	Backtracker                          // Recursive backtracker: depth-first carve.
	BacktrackerLoop                      // Backtracker that also opens some loops.

	DefaultAlgorithm = Prim
)

var ErrUnknownAlgorithm = errors.New("unknown maze algorithm")

// Algorithms lists every strategy in menu order.
var Algorithms = []Algorithm{Prim, Kruskal, Wilson, Backtracker, BacktrackerLoop}

type carveFunc func(g *Grid, start Position, rng *rand.Rand)

var strategies = map[Algorithm]struct {
	name  string
	title string
	carve carveFunc
}{
	Prim:            {name: "prim", title: "Prim's", carve: carvePrim},
	Kruskal:         {name: "kruskal", title: "Kruskal's", carve: carveKruskal},
	Wilson:          {name: "wilson", title: "Wilson's", carve: carveWilson},
	Backtracker:     {name: "backtracker", title: "Recursive Backtracker", carve: carveBacktracker},
	BacktrackerLoop: {name: "backtracker-loop", title: "Recursive Backtracker (Alternative)", carve: carveBacktrackerLoop},
}

// ParseAlgorithm accepts an algorithm name ("prim", "backtracker-loop", ...)
// or its menu number ("1" to "5").
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if a := Algorithm(n); a.Valid() {
			return a, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
	for _, a := range Algorithms {
		if strategies[a].name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Valid reports whether a names one of the five strategies.
func (a Algorithm) Valid() bool {
	_, ok := strategies[a]
	return ok
}

// String returns the algorithm's stable name.
func (a Algorithm) String() string {
	if s, ok := strategies[a]; ok {
		return s.name
	}
	return "unknown(" + strconv.Itoa(int(a)) + ")"
}

// Title returns the human readable algorithm name.
func (a Algorithm) Title() string {
	if s, ok := strategies[a]; ok {
		return s.title
	}
	return "Unknown"
}

// Next returns the following algorithm in menu order, wrapping around.
func (a Algorithm) Next() Algorithm {
	if !a.Valid() {
		return DefaultAlgorithm
	}
	return Algorithms[int(a)%len(Algorithms)]
}

// Carve runs the chosen strategy on g starting from start, drawing all
// randomness from rng. It is the single dispatch point for strategies.
func Carve(g *Grid, a Algorithm, start Position, rng *rand.Rand) error {
	s, ok := strategies[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	s.carve(g, start, rng)
	return nil
}
