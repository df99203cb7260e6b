package main

import (
	"log"
	"time"
)

type Game struct {
	settings    GameSettings
	rules       Rules
	state       GameState
	history     MoveHistory
	blackPlayer IPlayer
	whitePlayer IPlayer
	turnStart   time.Time
	statsSink   func(PlayerColor, SearchResult, *SearchStats)
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) SetStatsSink(sink func(PlayerColor, SearchResult, *SearchStats)) {
	g.statsSink = sink
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove validates and commits one move for the side to move, records
// it in the history, and settles the game status from the resulting board.
func (g *Game) TryApplyMove(move Move) error {
	if g.state.Status != StatusRunning {
		return &InvalidMoveError{Move: move, Reason: MoveGameNotRunning}
	}
	if err := g.rules.IsLegalDefault(g.state, move); err != nil {
		g.state.LastMessage = "Illegal move: " + err.Error()
		return err
	}
	g.state.LastMessage = ""
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	cell := CellFromPlayer(g.state.ToMove)
	g.state.Board.Set(move.X, move.Y, cell)
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.WinningLine = nil
	g.history.Push(HistoryEntry{Move: move, Player: g.state.ToMove, ElapsedMs: elapsedMs, IsAi: isAiMove, Depth: move.Depth})

	if g.rules.IsWin(g.state.Board, move) {
		if line, ok := g.rules.WinningLine(g.state.Board, move); ok {
			g.state.WinningLine = line
		}
		if g.state.ToMove == PlayerBlack {
			g.state.Status = StatusBlackWon
		} else {
			g.state.Status = StatusWhiteWon
		}
		g.logWin(g.state.ToMove)
		return nil
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		return nil
	}

	g.state.ToMove = otherPlayer(g.state.ToMove)
	g.turnStart = time.Now()
	return nil
}

// Tick advances the game by at most one move and reports whether anything
// was applied. Human moves come from the pending slot; AI moves from the
// background thinking worker.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			return g.TryApplyMove(move) == nil
		}
		return false
	}
	ai, ok := player.(*AIPlayer)
	if ok {
		if ai.HasMoveReady() {
			move := ai.TakeMove()
			return g.TryApplyMove(move) == nil
		}
		if !ai.IsThinking() {
			mover := g.state.ToMove
			var sink func(SearchResult, *SearchStats)
			if g.statsSink != nil {
				statsSink := g.statsSink
				sink = func(result SearchResult, stats *SearchStats) {
					statsSink(mover, result, stats)
				}
			}
			ai.StartThinking(g.state.Clone(), g.rules, sink)
		}
		return false
	}
	move := player.ChooseMove(g.state.Clone(), g.rules)
	return g.TryApplyMove(move) == nil
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	return ok && ai.IsThinking()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = NewAIPlayer()
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = NewAIPlayer()
	}
}

func (g *Game) logWin(player PlayerColor) {
	label := "Black"
	if player == PlayerWhite {
		label = "White"
	}
	log.Printf("[game] %s wins after %d moves", label, g.history.Size())
}
