package main

const (
	winScore  = 1_000_000
	drawScore = 0
)

// LineScore scores a single 5-cell window from the stone count and the number
// of open ends (0, 1 or 2). Windows with no open end score nothing unless
// they already hold a full alignment.
func LineScore(count, openEnds int, weights HeuristicConfig) int {
	if count >= 5 {
		return weights.Five
	}
	if openEnds == 0 {
		return 0
	}
	switch count {
	case 4:
		if openEnds == 2 {
			return weights.OpenFour
		}
		return weights.HalfFour
	case 3:
		if openEnds == 2 {
			return weights.OpenThree
		}
		return weights.HalfThree
	case 2:
		if openEnds == 2 {
			return weights.OpenTwo
		}
		return weights.HalfTwo
	default:
		return 0
	}
}

// EvaluatePlayer sums LineScore over every 5-cell window on the board, one
// window per anchor cell per direction. Overlapping windows each contribute
// on their own, so a position with several simultaneously strong lines is
// rewarded more than once.
func EvaluatePlayer(board Board, player PlayerColor, weights HeuristicConfig) int {
	size := board.Size()
	playerCell := CellFromPlayer(player)
	score := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			for i := 0; i < 4; i++ {
				dx := lineDirections[i][0]
				dy := lineDirections[i][1]
				count := 0
				for k := 0; k < 5; k++ {
					nx := x + dx*k
					ny := y + dy*k
					if !board.InBounds(nx, ny) {
						count = -1
						break
					}
					cell := board.At(nx, ny)
					if cell == playerCell {
						count++
					} else if cell != CellEmpty {
						count = -1
						break
					}
				}
				if count == -1 {
					continue
				}
				openEnds := 0
				if board.IsEmpty(x-dx, y-dy) {
					openEnds++
				}
				if board.IsEmpty(x+dx*5, y+dy*5) {
					openEnds++
				}
				score += LineScore(count, openEnds, weights)
			}
		}
	}
	return score
}

// Evaluate is the zero-sum heuristic: positive favors player, negative favors
// the opponent.
func Evaluate(board Board, player PlayerColor, weights HeuristicConfig) int {
	return EvaluatePlayer(board, player, weights) - EvaluatePlayer(board, otherPlayer(player), weights)
}
