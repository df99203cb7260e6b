package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

// Terminal client for the gomoku backend. It drives the game over the
// backend's HTTP API and renders the board in the terminal, the same split
// the backend uses for its other companion processes.
type client struct {
	http    *http.Client
	baseURL string
	out     *termenv.Output
}

type statusResponse struct {
	GameID     string  `json:"game_id"`
	NextPlayer int     `json:"next_player"`
	Winner     int     `json:"winner"`
	BoardSize  int     `json:"board_size"`
	Board      [][]int `json:"board"`
	Status     string  `json:"status"`
	AiThinking bool    `json:"ai_thinking"`
	WinningLine []struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"winning_line"`
}

func main() {
	baseURL := flag.String("server", getenv("BACKEND_URL", "http://localhost:8080"), "backend base URL")
	mode := flag.String("mode", "ai_vs_human", "game mode: ai_vs_human, ai_vs_ai, human_vs_human")
	humanPlayer := flag.Int("human", 1, "which color the human plays in ai_vs_human (1=black, 2=white)")
	flag.Parse()

	c := &client{
		http:    &http.Client{Timeout: 5 * time.Minute},
		baseURL: strings.TrimRight(*baseURL, "/"),
		out:     termenv.NewOutput(os.Stdout),
	}

	if err := c.ping(); err != nil {
		log.Fatalf("[cli] backend not reachable at %s: %v", c.baseURL, err)
	}
	if err := c.start(*mode, *humanPlayer); err != nil {
		log.Fatalf("[cli] failed to start game: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		status, err := c.status()
		if err != nil {
			log.Fatalf("[cli] status failed: %v", err)
		}
		c.render(status)
		if status.Status != "running" {
			c.printResult(status)
			return
		}
		humanTurn := *mode == "human_vs_human" ||
			(*mode == "ai_vs_human" && status.NextPlayer == *humanPlayer)
		if !humanTurn {
			time.Sleep(200 * time.Millisecond)
			continue
		}
		move, quit := promptMove(reader, status.BoardSize)
		if quit {
			return
		}
		if err := c.move(move[0], move[1]); err != nil {
			fmt.Printf("rejected: %v\n", err)
			time.Sleep(time.Second)
		}
	}
}

func promptMove(reader *bufio.Reader, boardSize int) ([2]int, bool) {
	for {
		fmt.Printf("your move (x y, 0-%d, or q): ", boardSize-1)
		line, err := reader.ReadString('\n')
		if err != nil {
			return [2]int{}, true
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return [2]int{}, true
		}
		var x, y int
		if _, err := fmt.Sscanf(line, "%d %d", &x, &y); err != nil {
			fmt.Println("expected two numbers, e.g. '7 7'")
			continue
		}
		if x < 0 || y < 0 || x >= boardSize || y >= boardSize {
			fmt.Println("out of bounds")
			continue
		}
		return [2]int{x, y}, false
	}
}

func (c *client) render(status statusResponse) {
	c.out.ClearScreen()
	winning := make(map[[2]int]bool, len(status.WinningLine))
	for _, cell := range status.WinningLine {
		winning[[2]int{cell.X, cell.Y}] = true
	}
	var b strings.Builder
	b.WriteString("    ")
	for x := 0; x < status.BoardSize; x++ {
		b.WriteString(fmt.Sprintf("%2d", x))
	}
	b.WriteString("\n")
	for y := 0; y < status.BoardSize; y++ {
		b.WriteString(fmt.Sprintf("%3d ", y))
		for x := 0; x < status.BoardSize; x++ {
			b.WriteString(" ")
			b.WriteString(c.stone(status.Board[y][x], winning[[2]int{x, y}]))
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
	if status.AiThinking {
		fmt.Println(c.out.String("engine thinking...").Foreground(termenv.ANSIYellow))
	}
}

func (c *client) stone(value int, highlight bool) string {
	switch value {
	case 1:
		style := c.out.String("●").Foreground(termenv.ANSIBrightBlue)
		if highlight {
			style = style.Reverse()
		}
		return style.String()
	case 2:
		style := c.out.String("○").Foreground(termenv.ANSIBrightRed)
		if highlight {
			style = style.Reverse()
		}
		return style.String()
	default:
		return c.out.String("·").Faint().String()
	}
}

func (c *client) printResult(status statusResponse) {
	switch status.Status {
	case "black_won":
		fmt.Println(c.out.String("Black wins").Bold())
	case "white_won":
		fmt.Println(c.out.String("White wins").Bold())
	case "draw":
		fmt.Println(c.out.String("Draw").Bold())
	default:
		fmt.Println("game stopped")
	}
}

func (c *client) ping() error {
	var out map[string]bool
	return c.getJSON("/api/ping", &out)
}

func (c *client) start(mode string, humanPlayer int) error {
	payload := map[string]any{
		"settings": map[string]any{
			"mode":         mode,
			"human_player": humanPlayer,
		},
	}
	var out statusResponse
	return c.postJSON("/api/start", payload, &out)
}

func (c *client) status() (statusResponse, error) {
	var out statusResponse
	err := c.getJSON("/api/status", &out)
	return out, err
}

func (c *client) move(x, y int) error {
	var out statusResponse
	return c.postJSON("/api/move", map[string]int{"x": x, "y": y}, &out)
}

func (c *client) getJSON(path string, out any) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func (c *client) postJSON(path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeResponse(resp, out)
}

func decodeResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
