package main

import "sort"

// CandidateMoves returns the restricted search frontier: every empty cell
// adjacent (Moore neighborhood) to at least one stone, de-duplicated and
// emitted in row-major order. An empty board yields only the center cell.
func CandidateMoves(board Board) []Move {
	size := board.Size()
	seen := make([]bool, size*size)
	found := false
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) == CellEmpty {
				continue
			}
			found = true
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					ny := y + dy
					if board.IsEmpty(nx, ny) {
						seen[ny*size+nx] = true
					}
				}
			}
		}
	}
	if !found {
		center := size / 2
		return []Move{{X: center, Y: center}}
	}
	moves := make([]Move, 0, 32)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if seen[y*size+x] {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}

// orderByCenterDistance sorts candidates closest-to-center first. This only
// improves pruning and tie selection; the minimax value is unaffected. The
// sort is stable so equally distant moves keep their row-major order.
func orderByCenterDistance(moves []Move, boardSize int) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].centerDistance(boardSize) < moves[j].centerDistance(boardSize)
	})
}
