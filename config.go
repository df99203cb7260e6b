package main

import "sync"

type Config struct {
	AiDepth          int             `json:"ai_depth"`
	AiLogSearchStats bool            `json:"ai_log_search_stats"`
	TickIntervalMs   int             `json:"tick_interval_ms"`
	Heuristics       HeuristicConfig `json:"heuristics"`
}

// HeuristicConfig holds the per-window scores used by the static evaluator.
// The defaults are the canonical scale; LineScore consults them directly.
type HeuristicConfig struct {
	Five      int `json:"five"`
	OpenFour  int `json:"open_four"`
	HalfFour  int `json:"half_four"`
	OpenThree int `json:"open_three"`
	HalfThree int `json:"half_three"`
	OpenTwo   int `json:"open_two"`
	HalfTwo   int `json:"half_two"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		AiDepth:          2,
		AiLogSearchStats: false,
		TickIntervalMs:   50,
		Heuristics:       DefaultHeuristics(),
	}
}

func DefaultHeuristics() HeuristicConfig {
	return HeuristicConfig{
		Five:      100_000,
		OpenFour:  10_000,
		HalfFour:  1_000,
		OpenThree: 500,
		HalfThree: 100,
		OpenTwo:   10,
		HalfTwo:   2,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	if newConfig.Heuristics == (HeuristicConfig{}) {
		newConfig.Heuristics = DefaultHeuristics()
	}
	if newConfig.AiDepth <= 0 {
		newConfig.AiDepth = DefaultConfig().AiDepth
	}
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
