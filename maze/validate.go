package maze

// orthogonal are the one-step moves a walker can make.
var orthogonal = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Reachable reports whether to can be reached from from by walking
// through open positions. It runs a breadth-first search and never
// mutates the grid.
func Reachable(g *Grid, from, to Position) bool {
	if from == to {
		return true
	}
	if !g.InBound(from) || !g.InBound(to) || !g.At(from).Open() {
		return false
	}

	visited := make([]bool, g.size*g.size)
	queue := make([]Position, 0, g.size)
	queue = append(queue, from)
	visited[g.index(from)] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == to {
			return true
		}

		for _, d := range orthogonal {
			n := cur.add(d)
			if !g.InBound(n) || visited[g.index(n)] || !g.At(n).Open() {
				continue
			}
			visited[g.index(n)] = true
			queue = append(queue, n)
		}
	}

	return false
}
