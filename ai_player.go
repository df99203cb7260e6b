package main

import (
	"sync"
	"sync/atomic"
	"time"
)

// AIPlayer wraps the search engine behind the IPlayer interface. The search
// itself is synchronous and single-threaded; StartThinking only moves the
// whole call off the driver's tick loop so the HTTP surface stays responsive
// while the engine works.
type AIPlayer struct {
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	readyMove  Move
}

func NewAIPlayer() *AIPlayer {
	return &AIPlayer{}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState, rules Rules) Move {
	config := GetConfig()
	stats := &SearchStats{Start: time.Now()}
	result := SearchBestMove(state.Board, rules, config.Heuristics, state.ToMove, config.AiDepth, stats)
	if config.AiLogSearchStats {
		logSearchStats("choose", stats, config.AiDepth, result)
	}
	if !result.HasMove {
		return Move{X: -1, Y: -1}
	}
	move := result.Move
	move.Depth = config.AiDepth
	return move
}

// StartThinking launches one search in the background. statsSink, when not
// nil, receives the finished search for analytics broadcasting.
func (a *AIPlayer) StartThinking(state GameState, rules Rules, statsSink func(SearchResult, *SearchStats)) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)

	stateCopy := state.Clone()
	rulesCopy := rules
	done := make(chan struct{})
	a.workerDone = done
	config := GetConfig()
	go func() {
		defer close(done)
		stats := &SearchStats{Start: time.Now()}
		result := SearchBestMove(stateCopy.Board, rulesCopy, config.Heuristics, stateCopy.ToMove, config.AiDepth, stats)
		if result.HasMove {
			result.Move.Depth = config.AiDepth
		}
		if config.AiLogSearchStats {
			logSearchStats("think", stats, config.AiDepth, result)
		}
		if statsSink != nil {
			statsSink(result, stats)
		}
		a.moveMutex.Lock()
		if result.HasMove {
			a.readyMove = result.Move
		} else {
			a.readyMove = Move{X: -1, Y: -1}
		}
		a.moveMutex.Unlock()
		a.moveReady.Store(result.HasMove)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() Move {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove
}
