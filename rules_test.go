package main

import (
	"errors"
	"testing"
)

func TestCheckFiveAllDirections(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	directions := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for _, dir := range directions {
		board := NewBoard(15)
		for i := 0; i < 5; i++ {
			board.Set(7+dir[0]*i, 7+dir[1]*i, CellBlack)
		}
		// Every stone of the line must report the win, not just the ends.
		for i := 0; i < 5; i++ {
			if !rules.CheckFive(board, 7+dir[0]*i, 7+dir[1]*i, PlayerBlack) {
				t.Fatalf("direction %v: expected five detected at stone %d", dir, i)
			}
		}
		if rules.CheckFive(board, 7, 7, PlayerWhite) {
			t.Fatalf("direction %v: white must not claim black's line", dir)
		}
	}
}

func TestCheckFiveCountsBothSides(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	// Stones on both sides of (7,7): 5,6,_,8,9 then fill the gap.
	for _, x := range []int{5, 6, 8, 9} {
		board.Set(x, 7, CellBlack)
	}
	board.Set(7, 7, CellBlack)
	if !rules.CheckFive(board, 7, 7, PlayerBlack) {
		t.Fatalf("expected gap fill to complete five")
	}
}

func TestGameOverFourInARowScenario(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	for x := 3; x <= 6; x++ {
		board.Set(x, 7, CellBlack)
	}
	outcome := rules.GameOver(board)
	if outcome.Kind != OutcomeInProgress {
		t.Fatalf("four in a row must not end the game, got %v", outcome.Kind)
	}
	board.Set(7, 7, CellBlack)
	if !rules.CheckFive(board, 7, 7, PlayerBlack) {
		t.Fatalf("expected completing stone to finish the line")
	}
	outcome = rules.GameOver(board)
	if !outcome.IsWinFor(PlayerBlack) {
		t.Fatalf("expected win for black, got %+v", outcome)
	}
}

func TestGameOverDrawOnFullBoard(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BoardSize = 6
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	// Shifted two-wide stripes cap every run, in all four directions, below
	// the win length.
	for y := 0; y < settings.BoardSize; y++ {
		for x := 0; x < settings.BoardSize; x++ {
			if ((x+2*y)/2)%2 == 0 {
				board.Set(x, y, CellBlack)
			} else {
				board.Set(x, y, CellWhite)
			}
		}
	}
	outcome := rules.GameOver(board)
	if outcome.Kind != OutcomeDraw {
		t.Fatalf("expected draw on full board without alignment, got %+v", outcome)
	}
}

func TestGameOverInProgressOnEmptyBoard(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	if rules.GameOver(board).Kind != OutcomeInProgress {
		t.Fatalf("expected empty board to be in progress")
	}
}

func TestIsLegalDistinguishesReasons(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning

	err := rules.IsLegalDefault(state, Move{X: -1, Y: 3})
	var invalid *InvalidMoveError
	if !errors.As(err, &invalid) || invalid.Reason != MoveOutOfBounds {
		t.Fatalf("expected out-of-bounds rejection, got %v", err)
	}

	state.Board.Set(4, 4, CellWhite)
	err = rules.IsLegalDefault(state, Move{X: 4, Y: 4})
	if !errors.As(err, &invalid) || invalid.Reason != MoveCellOccupied {
		t.Fatalf("expected occupied rejection, got %v", err)
	}

	if err := rules.IsLegalDefault(state, Move{X: 5, Y: 5}); err != nil {
		t.Fatalf("expected legal move, got %v", err)
	}
}

func TestWinningLineCollectsAlignment(t *testing.T) {
	rules := NewRules(DefaultGameSettings())
	board := NewBoard(15)
	for i := 0; i < 5; i++ {
		board.Set(2+i, 2+i, CellWhite)
	}
	line, ok := rules.WinningLine(board, Move{X: 4, Y: 4})
	if !ok {
		t.Fatalf("expected winning line through (4,4)")
	}
	if len(line) != 5 {
		t.Fatalf("expected line of 5 stones, got %d", len(line))
	}
}
