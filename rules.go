package main

import "fmt"

type OutcomeKind int

const (
	OutcomeInProgress OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
)

// Outcome is computed fresh from a board on demand and never stored. Winner
// is only meaningful when Kind is OutcomeWin.
type Outcome struct {
	Kind   OutcomeKind
	Winner PlayerColor
}

func WinFor(player PlayerColor) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: player}
}

func (o Outcome) IsWinFor(player PlayerColor) bool {
	return o.Kind == OutcomeWin && o.Winner == player
}

type InvalidMoveReason int

const (
	MoveOutOfBounds InvalidMoveReason = iota
	MoveCellOccupied
	MoveGameNotRunning
	MoveNotYourTurn
)

type InvalidMoveError struct {
	Move   Move
	Reason InvalidMoveReason
}

func (e *InvalidMoveError) Error() string {
	switch e.Reason {
	case MoveOutOfBounds:
		return fmt.Sprintf("move (%d,%d) out of bounds", e.Move.X, e.Move.Y)
	case MoveCellOccupied:
		return fmt.Sprintf("cell (%d,%d) occupied", e.Move.X, e.Move.Y)
	case MoveGameNotRunning:
		return "game not running"
	default:
		return "not your turn"
	}
}

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

// The four line axes; the opposite signs are scanned by negating a direction.
var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

func (r Rules) IsLegal(state GameState, move Move, player PlayerColor) error {
	if !move.IsValid(r.settings.BoardSize) {
		return &InvalidMoveError{Move: move, Reason: MoveOutOfBounds}
	}
	if !state.Board.IsEmpty(move.X, move.Y) {
		return &InvalidMoveError{Move: move, Reason: MoveCellOccupied}
	}
	return nil
}

func (r Rules) IsLegalDefault(state GameState, move Move) error {
	return r.IsLegal(state, move, state.ToMove)
}

// CheckFive reports whether the stone at (x,y) completes an alignment of at
// least WinLength. It assumes (x,y) is occupied by player.
func (r Rules) CheckFive(board Board, x, y int, player PlayerColor) bool {
	cell := CellFromPlayer(player)
	start := Move{X: x, Y: y}
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		count := 1
		count += r.countDirection(board, start, dx, dy, cell)
		count += r.countDirection(board, start, -dx, -dy, cell)
		if count >= r.settings.WinLength {
			return true
		}
	}
	return false
}

// GameOver scans every occupied cell in row-major order (Y outer, X inner)
// and returns the first completed alignment as a win; a full board with no
// alignment is a draw.
func (r Rules) GameOver(board Board) Outcome {
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := board.At(x, y)
			if cell == CellEmpty {
				continue
			}
			player, err := PlayerFromCell(cell)
			if err != nil {
				continue
			}
			if r.CheckFive(board, x, y, player) {
				return WinFor(player)
			}
		}
	}
	if board.CountEmpty() == 0 {
		return Outcome{Kind: OutcomeDraw}
	}
	return Outcome{Kind: OutcomeInProgress}
}

func (r Rules) IsWin(board Board, lastMove Move) bool {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return false
	}
	cell := board.At(lastMove.X, lastMove.Y)
	if cell == CellEmpty {
		return false
	}
	player, err := PlayerFromCell(cell)
	if err != nil {
		return false
	}
	return r.CheckFive(board, lastMove.X, lastMove.Y, player)
}

func (r Rules) IsDraw(board Board) bool {
	return board.CountEmpty() == 0
}

// WinningLine collects the aligned stones through lastMove, for display.
func (r Rules) WinningLine(board Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return nil, false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return nil, false
	}
	for i := 0; i < 4; i++ {
		dx := lineDirections[i][0]
		dy := lineDirections[i][1]
		line := r.collectLine(board, lastMove, dx, dy)
		if len(line) >= r.settings.WinLength {
			return line, true
		}
	}
	return nil, false
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

func (r Rules) BoardSize() int {
	return r.settings.BoardSize
}

func (r Rules) countDirection(board Board, start Move, dx, dy int, target Cell) int {
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func (r Rules) collectLine(board Board, start Move, dx, dy int) []Move {
	line := []Move{}
	target := board.At(start.X, start.Y)
	x := start.X
	y := start.Y
	for board.InBounds(x-dx, y-dy) && board.At(x-dx, y-dy) == target {
		x -= dx
		y -= dy
	}
	for board.InBounds(x, y) && board.At(x, y) == target {
		line = append(line, Move{X: x, Y: y})
		x += dx
		y += dy
	}
	return line
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d}", r.settings.BoardSize, r.settings.WinLength)
}
