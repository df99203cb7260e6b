package main

import "testing"

func TestLineScoreTable(t *testing.T) {
	weights := DefaultHeuristics()
	cases := []struct {
		count    int
		openEnds int
		want     int
	}{
		{5, 0, 100_000},
		{5, 2, 100_000},
		{4, 2, 10_000},
		{4, 1, 1_000},
		{4, 0, 0},
		{3, 2, 500},
		{3, 1, 100},
		{3, 0, 0},
		{2, 2, 10},
		{2, 1, 2},
		{2, 0, 0},
		{1, 2, 0},
		{0, 2, 0},
	}
	for _, tc := range cases {
		got := LineScore(tc.count, tc.openEnds, weights)
		if got != tc.want {
			t.Fatalf("LineScore(%d, %d) = %d, want %d", tc.count, tc.openEnds, got, tc.want)
		}
	}
}

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	board := NewBoard(15)
	weights := DefaultHeuristics()
	if score := Evaluate(board, PlayerBlack, weights); score != 0 {
		t.Fatalf("expected 0 for black on empty board, got %d", score)
	}
	if score := Evaluate(board, PlayerWhite, weights); score != 0 {
		t.Fatalf("expected 0 for white on empty board, got %d", score)
	}
}

func TestEvaluateIsZeroSum(t *testing.T) {
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	board.Set(8, 7, CellBlack)
	board.Set(6, 6, CellWhite)
	board.Set(3, 10, CellWhite)
	weights := DefaultHeuristics()
	black := Evaluate(board, PlayerBlack, weights)
	white := Evaluate(board, PlayerWhite, weights)
	if black != -white {
		t.Fatalf("expected zero-sum evaluation, black=%d white=%d", black, white)
	}
}

func TestEvaluateOpenFourContribution(t *testing.T) {
	board := NewBoard(15)
	for x := 3; x <= 6; x++ {
		board.Set(x, 7, CellBlack)
	}
	weights := DefaultHeuristics()
	base := EvaluatePlayer(board, PlayerBlack, weights)
	// Zeroing the open-four weight must drop the total by one contribution
	// per count-4 window with both ends open; the windows anchored at x=2
	// and x=3 both qualify.
	zeroed := weights
	zeroed.OpenFour = 0
	without := EvaluatePlayer(board, PlayerBlack, zeroed)
	if base-without != 2*weights.OpenFour {
		t.Fatalf("expected two open-four window contributions (%d), got %d", 2*weights.OpenFour, base-without)
	}
	if EvaluatePlayer(board, PlayerWhite, weights) != 0 {
		t.Fatalf("expected no score for the player without stones")
	}
}

func TestEvaluateOpponentStoneDisqualifiesWindow(t *testing.T) {
	board := NewBoard(15)
	for x := 3; x <= 6; x++ {
		board.Set(x, 7, CellBlack)
	}
	// Plug one end; the remaining four-windows have a single open end.
	board.Set(2, 7, CellWhite)
	weights := DefaultHeuristics()
	score := EvaluatePlayer(board, PlayerBlack, weights)
	zeroed := weights
	zeroed.OpenFour = 0
	if score != EvaluatePlayer(board, PlayerBlack, zeroed) {
		t.Fatalf("expected no open-four window once an end is blocked")
	}
	halfZeroed := weights
	halfZeroed.HalfFour = 0
	if score == EvaluatePlayer(board, PlayerBlack, halfZeroed) {
		t.Fatalf("expected a half-open four window to contribute")
	}
}

func TestEvaluateWindowsStopAtBoardEdge(t *testing.T) {
	board := NewBoard(15)
	// Stones hugging the corner: windows that would run off the board are
	// skipped rather than scored.
	board.Set(0, 0, CellBlack)
	board.Set(1, 0, CellBlack)
	weights := DefaultHeuristics()
	score := EvaluatePlayer(board, PlayerBlack, weights)
	// Only the horizontal window anchored at x=0 sees both stones, with a
	// single open end at x=5... the exact value documents the edge rule.
	if score <= 0 {
		t.Fatalf("expected positive score for two stones, got %d", score)
	}
	if score >= weights.OpenThree {
		t.Fatalf("expected only two-stone window scores near the corner, got %d", score)
	}
}
