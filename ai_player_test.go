package main

import (
	"testing"
	"time"
)

func waitForMove(t *testing.T, ai *AIPlayer) Move {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for !ai.HasMoveReady() {
		if time.Now().After(deadline) {
			t.Fatalf("engine did not produce a move in time")
		}
		time.Sleep(time.Millisecond)
	}
	return ai.TakeMove()
}

func TestAIPlayerStartThinkingDeliversMove(t *testing.T) {
	config := DefaultConfig()
	config.AiDepth = 1
	configStore.Update(config)
	defer configStore.Update(DefaultConfig())

	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning
	state.Board.Set(7, 7, CellWhite)
	state.ToMove = PlayerBlack

	ai := NewAIPlayer()
	sinkCalled := make(chan SearchResult, 1)
	ai.StartThinking(state, rules, func(result SearchResult, stats *SearchStats) {
		sinkCalled <- result
	})

	move := waitForMove(t, ai)
	if !move.IsValid(settings.BoardSize) {
		t.Fatalf("expected a valid move, got (%d,%d)", move.X, move.Y)
	}
	if move.Depth != 1 {
		t.Fatalf("expected move tagged with search depth 1, got %d", move.Depth)
	}
	if ai.HasMoveReady() {
		t.Fatalf("expected TakeMove to consume the ready move")
	}

	select {
	case result := <-sinkCalled:
		if !result.HasMove {
			t.Fatalf("expected the sink to receive a move")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("stats sink was never invoked")
	}
}

func TestAIPlayerChooseMoveOpensAtCenter(t *testing.T) {
	config := DefaultConfig()
	config.AiDepth = 1
	configStore.Update(config)
	defer configStore.Update(DefaultConfig())

	settings := DefaultGameSettings()
	state := DefaultGameState(settings)
	state.Status = StatusRunning

	ai := NewAIPlayer()
	move := ai.ChooseMove(state, NewRules(settings))
	if !move.Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("expected opening move at the center, got (%d,%d)", move.X, move.Y)
	}
}

func TestConfigStoreNormalizesUpdates(t *testing.T) {
	store := &ConfigStore{config: DefaultConfig()}
	store.Update(Config{AiDepth: 0, TickIntervalMs: 25})
	got := store.Get()
	if got.AiDepth != DefaultConfig().AiDepth {
		t.Fatalf("expected non-positive depth to fall back to the default, got %d", got.AiDepth)
	}
	if got.Heuristics != DefaultHeuristics() {
		t.Fatalf("expected zero heuristics to fall back to the defaults")
	}
	if got.TickIntervalMs != 25 {
		t.Fatalf("expected tick interval to be kept, got %d", got.TickIntervalMs)
	}
}
