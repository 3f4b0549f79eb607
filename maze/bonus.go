package maze

import "math/rand"

// bonusAttemptsPerCell bounds random placement attempts to this many per
// grid position.
const bonusAttemptsPerCell = 2

// PlaceBonus scatters size/2 bonus dots (at least one) over path
// positions, skipping the entrance and exit. It gives up after a bounded
// number of attempts and returns how many dots were placed.
func PlaceBonus(g *Grid, exit Position, rng *rand.Rand) int {
	want := max(g.size/2, 1)
	maxAttempts := g.size * g.size * bonusAttemptsPerCell

	placed := 0
	for attempts := 0; placed < want && attempts < maxAttempts; attempts++ {
		p := Position{Row: 1 + rng.Intn(g.size-2), Col: 1 + rng.Intn(g.size-2)}
		if p == Entrance || p == exit || g.At(p) != Path {
			continue
		}
		g.Set(p, Bonus)
		placed++
	}
	return placed
}
