package main

import "sync"

type GameController struct {
	mu     sync.Mutex
	game   Game
	gameID string
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) SetStatsSink(sink func(PlayerColor, SearchResult, *SearchStats)) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.SetStatsSink(sink)
}

func (gc *GameController) ApplyHumanMove(move Move) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if !gc.game.CurrentPlayerIsHuman() {
		return &InvalidMoveError{Move: move, Reason: MoveNotYourTurn}
	}
	return gc.game.TryApplyMove(move)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.settings
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) CurrentTurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	history := gc.game.History()
	if history.Size() == 0 {
		return HistoryEntry{}, false
	}
	entries := history.All()
	return entries[len(entries)-1], true
}

func (gc *GameController) AiThinking() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.AiThinking()
}

func (gc *GameController) GameID() string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.gameID
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.gameID = ""
	gc.game.Reset(settings)
}

func (gc *GameController) StartGame(settings GameSettings, gameID string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.gameID = gameID
	gc.game.Reset(settings)
	gc.game.Start()
}

func (gc *GameController) UpdateSettings(update GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.settings = update
	gc.game.createPlayers()
}
