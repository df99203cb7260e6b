package main

import "testing"

func TestCandidateMovesEmptyBoardIsCenter(t *testing.T) {
	board := NewBoard(15)
	moves := CandidateMoves(board)
	if len(moves) != 1 {
		t.Fatalf("expected exactly one candidate on empty board, got %d", len(moves))
	}
	if !moves[0].Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("expected center candidate (7,7), got (%d,%d)", moves[0].X, moves[0].Y)
	}
}

func TestCandidateMovesSingleStoneNeighborhood(t *testing.T) {
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	moves := CandidateMoves(board)
	want := []Move{
		{X: 6, Y: 6}, {X: 7, Y: 6}, {X: 8, Y: 6},
		{X: 6, Y: 7}, {X: 8, Y: 7},
		{X: 6, Y: 8}, {X: 7, Y: 8}, {X: 8, Y: 8},
	}
	if len(moves) != len(want) {
		t.Fatalf("expected %d candidates, got %d: %v", len(want), len(moves), moves)
	}
	for i, move := range moves {
		if !move.Equals(want[i]) {
			t.Fatalf("candidate %d: expected (%d,%d), got (%d,%d)", i, want[i].X, want[i].Y, move.X, move.Y)
		}
	}
}

func TestCandidateMovesDeduplicatesAndSkipsStones(t *testing.T) {
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	board.Set(8, 7, CellWhite)
	moves := CandidateMoves(board)
	seen := make(map[Move]bool, len(moves))
	for _, move := range moves {
		if seen[move] {
			t.Fatalf("duplicate candidate (%d,%d)", move.X, move.Y)
		}
		seen[move] = true
		if board.At(move.X, move.Y) != CellEmpty {
			t.Fatalf("candidate (%d,%d) points at an occupied cell", move.X, move.Y)
		}
	}
	// Two adjacent stones share a neighborhood of 10 empty cells.
	if len(moves) != 10 {
		t.Fatalf("expected 10 candidates around adjacent stones, got %d", len(moves))
	}
}

func TestCandidateMovesStoneAtCorner(t *testing.T) {
	board := NewBoard(15)
	board.Set(0, 0, CellWhite)
	moves := CandidateMoves(board)
	want := []Move{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if len(moves) != len(want) {
		t.Fatalf("expected %d candidates at corner, got %d: %v", len(want), len(moves), moves)
	}
	for i, move := range moves {
		if !move.Equals(want[i]) {
			t.Fatalf("candidate %d: expected (%d,%d), got (%d,%d)", i, want[i].X, want[i].Y, move.X, move.Y)
		}
	}
}

func TestOrderByCenterDistanceIsStable(t *testing.T) {
	moves := []Move{{X: 0, Y: 0}, {X: 7, Y: 7}, {X: 7, Y: 6}, {X: 14, Y: 14}}
	orderByCenterDistance(moves, 15)
	want := []Move{{X: 7, Y: 7}, {X: 7, Y: 6}, {X: 0, Y: 0}, {X: 14, Y: 14}}
	for i, move := range moves {
		if !move.Equals(want[i]) {
			t.Fatalf("position %d: expected (%d,%d), got (%d,%d)", i, want[i].X, want[i].Y, move.X, move.Y)
		}
	}
}
