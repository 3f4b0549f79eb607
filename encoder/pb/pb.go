// Package pb encodes generated mazes in the protobuf wire format.
package pb

import (
	"errors"
	"fmt"

	"github.com/Mnour3593/C-Maze/maze"
	"github.com/Mnour3593/C-Maze/service/i"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the Maze message.
const (
	fieldSize        protowire.Number = 1
	fieldSeed        protowire.Number = 2
	fieldAlgorithm   protowire.Number = 3
	fieldEntranceRow protowire.Number = 4
	fieldEntranceCol protowire.Number = 5
	fieldExitRow     protowire.Number = 6
	fieldExitCol     protowire.Number = 7
	fieldBonus       protowire.Number = 8
	fieldAttempts    protowire.Number = 9
	fieldCells       protowire.Number = 10
)

var (
	ErrNilMaze      = errors.New("cannot encode a nil maze")
	ErrMissingCells = errors.New("encoded maze has no cells")
	ErrBadPosition  = errors.New("encoded position outside the grid")
)

var _ i.MazeEncoder = Protobuf{}

// Protobuf implements i.MazeEncoder.
type Protobuf struct{}

// MarshalMaze encodes m.
func (Protobuf) MarshalMaze(m *maze.Maze) ([]byte, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNilMaze
	}

	size := m.Grid.Size()
	b := make([]byte, 0, size*size+64)
	b = appendVarint(b, fieldSize, uint64(size))
	b = appendVarint(b, fieldSeed, uint64(m.Seed))
	b = appendVarint(b, fieldAlgorithm, uint64(m.Algorithm))
	b = appendVarint(b, fieldEntranceRow, uint64(m.Entrance.Row))
	b = appendVarint(b, fieldEntranceCol, uint64(m.Entrance.Col))
	b = appendVarint(b, fieldExitRow, uint64(m.Exit.Row))
	b = appendVarint(b, fieldExitCol, uint64(m.Exit.Col))
	b = appendVarint(b, fieldBonus, uint64(m.Bonus))
	b = appendVarint(b, fieldAttempts, uint64(m.Attempts))

	cells := m.Grid.Cells()
	raw := make([]byte, len(cells))
	for i, c := range cells {
		raw[i] = byte(c)
	}
	b = protowire.AppendTag(b, fieldCells, protowire.BytesType)
	b = protowire.AppendBytes(b, raw)
	return b, nil
}

// UnmarshalMaze decodes a maze written by MarshalMaze. Unknown fields are
// skipped.
func (Protobuf) UnmarshalMaze(b []byte) (*maze.Maze, error) {
	var (
		m     maze.Maze
		size  int
		cells []maze.CellState
	)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		if num == fieldCells && typ == protowire.BytesType {
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			cells = make([]maze.CellState, len(raw))
			for i, c := range raw {
				cells[i] = maze.CellState(c)
			}
			b = b[n:]
			continue
		}

		if typ != protowire.VarintType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}

		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		switch num {
		case fieldSize:
			size = int(v)
		case fieldSeed:
			m.Seed = uint32(v)
		case fieldAlgorithm:
			m.Algorithm = maze.Algorithm(v)
		case fieldEntranceRow:
			m.Entrance.Row = int(v)
		case fieldEntranceCol:
			m.Entrance.Col = int(v)
		case fieldExitRow:
			m.Exit.Row = int(v)
		case fieldExitCol:
			m.Exit.Col = int(v)
		case fieldBonus:
			m.Bonus = int(v)
		case fieldAttempts:
			m.Attempts = int(v)
		}
	}

	if cells == nil {
		return nil, ErrMissingCells
	}
	if !m.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %d", maze.ErrUnknownAlgorithm, int(m.Algorithm))
	}

	g, err := maze.LoadGrid(size, cells)
	if err != nil {
		return nil, err
	}
	if !g.InBound(m.Entrance) || !g.InBound(m.Exit) {
		return nil, ErrBadPosition
	}
	m.Grid = g
	return &m, nil
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}
