// Package mazeapi serves generated mazes over HTTP.
package mazeapi

// MazeRequest asks for a maze. Zero values select the server defaults; a
// zero seed asks for a random one.
type MazeRequest struct {
	Size      int    `json:"size"`
	Seed      uint32 `json:"seed"`
	Algorithm string `json:"algorithm"`
}

// PositionResponse is a grid coordinate.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse describes a generated maze. Rows render walls as '#',
// paths as ' ', the entrance as 'S', the exit as 'E' and bonus dots as '.'.
type MazeResponse struct {
	Size      int              `json:"size"`
	Seed      uint32           `json:"seed"`
	Algorithm string           `json:"algorithm"`
	Title     string           `json:"title"`
	Entrance  PositionResponse `json:"entrance"`
	Exit      PositionResponse `json:"exit"`
	Bonus     int              `json:"bonus"`
	Attempts  int              `json:"attempts"`
	Rows      []string         `json:"rows"`
}

// AlgorithmResponse describes one construction strategy.
type AlgorithmResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}
