package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// searchStatsPayload is one finished engine search, broadcast to analytics
// subscribers so a UI can show how hard the engine worked for a move.
type searchStatsPayload struct {
	GameID     string  `json:"game_id"`
	Player     int     `json:"player"`
	Move       Move    `json:"move"`
	Score      int     `json:"score"`
	Depth      int     `json:"depth"`
	Nodes      int     `json:"nodes"`
	Cutoffs    int     `json:"cutoffs"`
	Candidates int     `json:"candidates"`
	ElapsedMs  int64   `json:"elapsed_ms"`
	Nps        float64 `json:"nps"`
	UpdatedAt  int64   `json:"updated_at_ms"`
}

type AnalyticsClient struct {
	hub  *AnalyticsHub
	conn *websocket.Conn
	send chan []byte
}

type AnalyticsHub struct {
	mu        sync.Mutex
	clients   map[*AnalyticsClient]struct{}
	broadcast chan searchStatsPayload
}

func NewAnalyticsHub() *AnalyticsHub {
	return &AnalyticsHub{
		clients:   make(map[*AnalyticsClient]struct{}),
		broadcast: make(chan searchStatsPayload, 64),
	}
}

func (h *AnalyticsHub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.broadcast:
			h.mu.Lock()
			if len(h.clients) == 0 {
				h.mu.Unlock()
				continue
			}
			for client := range h.clients {
				client.sendJSON(wsMessage{Type: "analytics", Payload: mustMarshal(payload)})
			}
			h.mu.Unlock()
		}
	}
}

func (h *AnalyticsHub) Publish(payload searchStatsPayload) {
	select {
	case h.broadcast <- payload:
	default:
	}
}

func (h *AnalyticsHub) Register(c *AnalyticsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *AnalyticsHub) Unregister(c *AnalyticsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (c *AnalyticsClient) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func serveAnalyticsWS(hub *AnalyticsHub, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &AnalyticsClient{hub: hub, conn: conn, send: make(chan []byte, 16)}
	hub.Register(client)

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(client)
			return
		}
	}
}

func searchStatsToPayload(gameID string, player PlayerColor, result SearchResult, stats *SearchStats) searchStatsPayload {
	payload := searchStatsPayload{
		GameID:    gameID,
		Player:    playerToInt(player),
		Move:      result.Move,
		Score:     result.Score,
		Depth:     result.Move.Depth,
		UpdatedAt: time.Now().UnixMilli(),
	}
	if stats == nil {
		return payload
	}
	payload.Nodes = stats.Nodes
	payload.Cutoffs = stats.Cutoffs
	payload.Candidates = stats.CandidateCount
	payload.ElapsedMs = stats.Elapsed.Milliseconds()
	if stats.Elapsed > 0 {
		payload.Nps = float64(stats.Nodes) / stats.Elapsed.Seconds()
	}
	return payload
}
