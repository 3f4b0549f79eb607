// Command console generates a maze in the terminal. When generation keeps
// failing it asks the operator whether to retry, switch algorithm or quit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Mnour3593/C-Maze/logger"
	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service"
)

func main() {
	size := flag.Int("size", maze.DefaultSize, "odd grid dimension between 5 and 51")
	seed := flag.Uint("seed", 0, "random seed, 0 picks one from the clock")
	algorithm := flag.String("algorithm", maze.DefaultAlgorithm.String(), "prim, kruskal, wilson, backtracker, backtracker-loop or menu number 1-5")
	retries := flag.Int("retries", 5, "failed attempts before asking what to do")
	flag.Parse()

	log, err := logger.New("CONSOLE", logger.ColorCyan, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	alg, err := maze.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Error(err.Error())
		os.Exit(2)
	}

	generator, err := service.NewGenerator(&service.GeneratorConfig{
		Escalator:      service.NewPromptEscalator(os.Stdin, os.Stdout),
		Logger:         log,
		MaxAutoRetries: *retries,
	})
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m, err := generator.Generate(ctx, *size, uint32(*seed), alg)
	if errors.Is(err, service.ErrOperatorAbort) {
		fmt.Println("Maze generation aborted.")
		return
	}
	if err != nil {
		log.Error(err.Error())
		stop()
		os.Exit(1)
	}

	fmt.Print(m)
	fmt.Printf("%s, size %d, seed %d, exit (%d, %d), %d bonus dots, %d attempt(s)\n",
		m.Algorithm.Title(), m.Grid.Size(), m.Seed, m.Exit.Row, m.Exit.Col, m.Bonus, m.Attempts)
}
