package mazeapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service"
	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeController generates mazes on request.
type MazeController struct {
	generator        i.MazeGenerator
	defaultSize      int
	defaultAlgorithm maze.Algorithm
}

// NewMazeController creates a MazeController. Invalid defaults fall back to
// size 21 and Prim's algorithm.
func NewMazeController(g i.MazeGenerator, defaultSize int, defaultAlgorithm maze.Algorithm) *MazeController {
	if maze.ValidateSize(defaultSize) != nil {
		defaultSize = maze.DefaultSize
	}
	if !defaultAlgorithm.Valid() {
		defaultAlgorithm = maze.DefaultAlgorithm
	}
	return &MazeController{
		generator:        g,
		defaultSize:      defaultSize,
		defaultAlgorithm: defaultAlgorithm,
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/algorithms", mc.algorithms)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	// An empty body asks for the defaults.
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size := request.Size
	if size == 0 {
		size = mc.defaultSize
	}
	alg := mc.defaultAlgorithm
	if request.Algorithm != "" {
		var err error
		if alg, err = maze.ParseAlgorithm(request.Algorithm); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	m, err := mc.generator.Generate(ctx.Request.Context(), size, request.Seed, alg)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(m))
}

func (mc *MazeController) algorithms(ctx *gin.Context) {
	response := make([]AlgorithmResponse, 0, len(maze.Algorithms))
	for _, a := range maze.Algorithms {
		response = append(response, AlgorithmResponse{ID: int(a), Name: a.String(), Title: a.Title()})
	}
	ctx.JSON(http.StatusOK, response)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidSize), errors.Is(err, maze.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrOperatorAbort):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func toResponse(m *maze.Maze) *MazeResponse {
	return &MazeResponse{
		Size:      m.Grid.Size(),
		Seed:      m.Seed,
		Algorithm: m.Algorithm.String(),
		Title:     m.Algorithm.Title(),
		Entrance:  PositionResponse{Row: m.Entrance.Row, Col: m.Entrance.Col},
		Exit:      PositionResponse{Row: m.Exit.Row, Col: m.Exit.Col},
		Bonus:     m.Bonus,
		Attempts:  m.Attempts,
		Rows:      m.Grid.Rows(),
	}
}
