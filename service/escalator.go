package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service/i"
)

const (
	PolicyRetry  = "retry"
	PolicyChange = "change"
	PolicyAbort  = "abort"

	defaultMaxEscalations = 3
)

var ErrUnknownPolicy = errors.New("escalation policy must be retry, change or abort")

// PolicyEscalator answers every escalation with a fixed action until
// maxEscalations decisions have been taken, then aborts.
type PolicyEscalator struct {
	action         i.Action
	maxEscalations int
}

// NewPolicyEscalator creates a PolicyEscalator for policy. A non-positive
// maxEscalations falls back to the default of 3.
func NewPolicyEscalator(policy string, maxEscalations int) (*PolicyEscalator, error) {
	var action i.Action
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case PolicyRetry:
		action = i.RetryNewSeed
	case PolicyChange:
		action = i.ChangeAlgorithm
	case PolicyAbort:
		action = i.Abort
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	if maxEscalations <= 0 {
		maxEscalations = defaultMaxEscalations
	}

	return &PolicyEscalator{action: action, maxEscalations: maxEscalations}, nil
}

// Decide implements i.Escalator.
func (p *PolicyEscalator) Decide(ctx context.Context, e i.Escalation) (i.Decision, error) {
	if err := ctx.Err(); err != nil {
		return i.Decision{}, err
	}
	if e.Escalations >= p.maxEscalations {
		return i.Decision{Action: i.Abort}, nil
	}

	d := i.Decision{Action: p.action}
	if p.action == i.ChangeAlgorithm {
		d.Algorithm = e.Algorithm.Next()
	}
	return d, nil
}

// PromptEscalator asks an operator on a terminal what to do.
type PromptEscalator struct {
	out   io.Writer
	lines chan string
}

// NewPromptEscalator starts reading answers from in. The reader is consumed
// by a background goroutine until it returns EOF.
func NewPromptEscalator(in io.Reader, out io.Writer) *PromptEscalator {
	p := &PromptEscalator{out: out, lines: make(chan string)}
	go p.read(in)
	return p
}

func (p *PromptEscalator) read(in io.Reader) {
	defer close(p.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		p.lines <- strings.TrimSpace(scanner.Text())
	}
}

// Decide implements i.Escalator. It blocks until the operator answers, the
// input is exhausted, or ctx is done. Exhausted input counts as Quit.
func (p *PromptEscalator) Decide(ctx context.Context, e i.Escalation) (i.Decision, error) {
	fmt.Fprintf(p.out, "Maze generation failed %d times with %s (size %d, seed %d).\n",
		e.Failures, e.Algorithm.Title(), e.Size, e.Seed)

	for {
		fmt.Fprint(p.out, "Retry new seed (R), Change Algorithm (C), Quit (Q)? ")
		answer, err := p.next(ctx)
		if errors.Is(err, io.EOF) {
			return i.Decision{Action: i.Abort}, nil
		}
		if err != nil {
			return i.Decision{}, err
		}

		switch strings.ToUpper(answer) {
		case "R":
			return i.Decision{Action: i.RetryNewSeed}, nil
		case "Q":
			return i.Decision{Action: i.Abort}, nil
		case "C":
			a, err := p.algorithm(ctx)
			if errors.Is(err, io.EOF) {
				return i.Decision{Action: i.Abort}, nil
			}
			if err != nil {
				return i.Decision{}, err
			}
			return i.Decision{Action: i.ChangeAlgorithm, Algorithm: a}, nil
		default:
			fmt.Fprintln(p.out, "Please answer R, C or Q.")
		}
	}
}

func (p *PromptEscalator) algorithm(ctx context.Context) (maze.Algorithm, error) {
	for {
		fmt.Fprintln(p.out, "Choose an algorithm:")
		for _, a := range maze.Algorithms {
			fmt.Fprintf(p.out, "  %d. %s\n", int(a), a.Title())
		}
		fmt.Fprint(p.out, "> ")

		answer, err := p.next(ctx)
		if err != nil {
			return 0, err
		}
		a, err := maze.ParseAlgorithm(answer)
		if err == nil {
			return a, nil
		}
		fmt.Fprintln(p.out, err)
	}
}

func (p *PromptEscalator) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
