package scoreapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/Mnour3593/C-Maze/api/identity"
	dmn "github.com/Mnour3593/C-Maze/domain"
	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service"
	"github.com/Mnour3593/C-Maze/service/i"
	"github.com/gin-gonic/gin"
)

// ScoreController records runs and serves leaderboards.
type ScoreController struct {
	scores i.ScoreKeeper
}

// NewScoreController creates a ScoreController.
func NewScoreController(s i.ScoreKeeper) *ScoreController {
	return &ScoreController{scores: s}
}

// RegisterPublic registers public routes.
func (sc *ScoreController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/scores/top", sc.top)
}

// RegisterProtected registers protected routes.
func (sc *ScoreController) RegisterProtected(route *gin.RouterGroup) {
	scores := route.Group("/scores")
	{
		scores.POST("", sc.submit)
		scores.GET("/me", sc.history)
	}
}

func (sc *ScoreController) submit(ctx *gin.Context) {
	userID, username, ok := identity.Player(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request ScoreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alg, err := maze.ParseAlgorithm(request.Algorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score, err := sc.scores.Submit(ctx.Request.Context(), dmn.ScoreConfig{
		UserID:    userID,
		Username:  username,
		Points:    request.Points,
		Moves:     request.Moves,
		Duration:  time.Duration(request.DurationMs) * time.Millisecond,
		Seed:      request.Seed,
		Size:      request.Size,
		Algorithm: alg,
		Mode:      request.Mode,
	})
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(score))
}

func (sc *ScoreController) top(ctx *gin.Context) {
	var query TopQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alg := maze.DefaultAlgorithm
	if query.Algorithm != "" {
		var err error
		if alg, err = maze.ParseAlgorithm(query.Algorithm); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	scores, total, err := sc.scores.Top(ctx.Request.Context(), query.Size, alg, query.Limit)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, &TopResponse{
		Board:  dmn.BoardKey(query.Size, alg),
		Total:  total,
		Scores: toResponses(scores),
	})
}

func (sc *ScoreController) history(ctx *gin.Context) {
	userID, _, ok := identity.Player(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	scores, err := sc.scores.History(ctx.Request.Context(), userID, 0)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toResponses(scores))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidSize),
		errors.Is(err, maze.ErrUnknownAlgorithm),
		errors.Is(err, dmn.ErrNegativeScore),
		errors.Is(err, dmn.ErrInvalidMode),
		errors.Is(err, service.ErrInvalidLimit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toResponses(scores []*dmn.Score) []*ScoreResponse {
	response := make([]*ScoreResponse, 0, len(scores))
	for _, s := range scores {
		response = append(response, toResponse(s))
	}
	return response
}

func toResponse(s *dmn.Score) *ScoreResponse {
	return &ScoreResponse{
		ID:          s.ID.String(),
		Username:    s.Username,
		Points:      s.Points,
		Moves:       s.Moves,
		DurationMs:  s.Duration.Milliseconds(),
		Seed:        s.Seed,
		Size:        s.Size,
		Algorithm:   s.Algorithm.String(),
		Mode:        s.Mode,
		CompletedAt: s.CompletedAt,
	}
}
