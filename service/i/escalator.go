package i

import (
	"context"

	"github.com/Mnour3593/C-Maze/maze"
)

// Action is the operator's answer to repeated generation failures.
type Action int

const (
	RetryNewSeed    Action = iota + 1 // Keep the algorithm and try the next seed.
	ChangeAlgorithm                   // Switch to Decision.Algorithm.
	Abort                             // Give up on this generation.
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case RetryNewSeed:
		return "retry"
	case ChangeAlgorithm:
		return "change-algorithm"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Escalation describes the failure streak handed to the operator.
type Escalation struct {
	Size        int            // Grid dimension being generated.
	Algorithm   maze.Algorithm // Algorithm that kept failing.
	Seed        uint32         // Last failing seed.
	Failures    int            // Consecutive failures since the last decision.
	Escalations int            // Decisions already taken during this generation.
}

// Decision is the operator's choice for an escalation.
type Decision struct {
	Action    Action
	Algorithm maze.Algorithm // New algorithm when Action is ChangeAlgorithm.
}

// Escalator surfaces an escalation to an operator and blocks for the answer.
type Escalator interface {
	Decide(ctx context.Context, e Escalation) (Decision, error)
}
