package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	scoreInfinity = math.MaxInt
	scoreNegInf   = math.MinInt
)

type SearchResult struct {
	Move    Move
	HasMove bool
	Score   int
}

type SearchStats struct {
	Nodes          int
	Cutoffs        int
	CandidateCount int
	Start          time.Time
	Elapsed        time.Duration
}

type searchContext struct {
	rules      Rules
	weights    HeuristicConfig
	rootPlayer PlayerColor
	stats      *SearchStats
}

// minimax explores the game tree depth-first with alpha-beta pruning. Scores
// are always from the root player's perspective, even in minimizing frames.
// The board is mutated in place and restored along every return path, so the
// caller sees it unchanged.
func minimax(board *Board, ctx searchContext, depth, alpha, beta int, maximizing bool) (Move, bool, int) {
	if ctx.stats != nil {
		ctx.stats.Nodes++
	}
	outcome := ctx.rules.GameOver(*board)
	switch {
	case outcome.IsWinFor(ctx.rootPlayer):
		return Move{}, false, winScore
	case outcome.Kind == OutcomeWin:
		return Move{}, false, -winScore
	case outcome.Kind == OutcomeDraw:
		return Move{}, false, drawScore
	}
	if depth == 0 {
		return Move{}, false, Evaluate(*board, ctx.rootPlayer, ctx.weights)
	}

	moves := CandidateMoves(*board)
	orderByCenterDistance(moves, board.Size())
	if ctx.stats != nil {
		ctx.stats.CandidateCount += len(moves)
	}

	bestMove := Move{}
	hasBest := false
	if maximizing {
		value := scoreNegInf
		cell := CellFromPlayer(ctx.rootPlayer)
		for _, move := range moves {
			board.Set(move.X, move.Y, cell)
			_, _, val := minimax(board, ctx, depth-1, alpha, beta, false)
			board.Remove(move.X, move.Y)
			if val > value {
				value = val
				bestMove = move
				hasBest = true
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				if ctx.stats != nil {
					ctx.stats.Cutoffs++
				}
				break
			}
		}
		return bestMove, hasBest, value
	}

	value := scoreInfinity
	cell := CellFromPlayer(otherPlayer(ctx.rootPlayer))
	for _, move := range moves {
		board.Set(move.X, move.Y, cell)
		_, _, val := minimax(board, ctx, depth-1, alpha, beta, true)
		board.Remove(move.X, move.Y)
		if val < value {
			value = val
			bestMove = move
			hasBest = true
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			if ctx.stats != nil {
				ctx.stats.Cutoffs++
			}
			break
		}
	}
	return bestMove, hasBest, value
}

// SearchBestMove runs a full search and picks a move for player. A search
// that comes back without a move falls back to a uniform random candidate;
// the move generator's center fallback should make that unreachable, but it
// is kept as a guard.
func SearchBestMove(board Board, rules Rules, weights HeuristicConfig, player PlayerColor, depth int, stats *SearchStats) SearchResult {
	if stats != nil && stats.Start.IsZero() {
		stats.Start = time.Now()
	}
	ctx := searchContext{rules: rules, weights: weights, rootPlayer: player, stats: stats}
	working := board.Clone()
	move, ok, score := minimax(&working, ctx, depth, scoreNegInf, scoreInfinity, true)
	if !ok {
		candidates := CandidateMoves(board)
		if len(candidates) > 0 {
			move = candidates[rand.Intn(len(candidates))]
			ok = true
		}
	}
	if stats != nil {
		stats.Elapsed = time.Since(stats.Start)
	}
	return SearchResult{Move: move, HasMove: ok, Score: score}
}

func logSearchStats(tag string, stats *SearchStats, depth int, result SearchResult) {
	if stats == nil {
		return
	}
	elapsed := stats.Elapsed
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	avgBranch := 0.0
	if stats.Nodes > 0 {
		avgBranch = float64(stats.CandidateCount) / float64(stats.Nodes)
	}
	fmt.Printf("[ai:%s] t=%dms depth=%d nodes=%d nps=%.0f cutoffs=%d avg_branch=%.2f move=(%d,%d) score=%d\n",
		tag,
		elapsed.Milliseconds(),
		depth,
		stats.Nodes,
		nps,
		stats.Cutoffs,
		avgBranch,
		result.Move.X,
		result.Move.Y,
		result.Score,
	)
}
