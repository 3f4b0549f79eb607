// Package scoreapi records finished runs and serves leaderboards.
package scoreapi

import "time"

// ScoreRequest reports a finished run.
type ScoreRequest struct {
	Points     int    `json:"points"`
	Moves      int    `json:"moves"`
	DurationMs int64  `json:"duration_ms"`
	Seed       uint32 `json:"seed"`
	Size       int    `json:"size" binding:"required"`
	Algorithm  string `json:"algorithm" binding:"required"`
	Mode       string `json:"mode"`
}

// ScoreResponse is a stored run.
type ScoreResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Points      int       `json:"points"`
	Moves       int       `json:"moves"`
	DurationMs  int64     `json:"duration_ms"`
	Seed        uint32    `json:"seed"`
	Size        int       `json:"size"`
	Algorithm   string    `json:"algorithm"`
	Mode        string    `json:"mode"`
	CompletedAt time.Time `json:"completed_at"`
}

// TopResponse is a page of a leaderboard.
type TopResponse struct {
	Board  string           `json:"board"`
	Total  int64            `json:"total"`
	Scores []*ScoreResponse `json:"scores"`
}

// TopQuery selects a leaderboard.
type TopQuery struct {
	Size      int    `form:"size,default=21"`
	Algorithm string `form:"algorithm"`
	Limit     int64  `form:"limit"`
}
