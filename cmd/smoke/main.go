// Command smoke plays one full match against a running server and prints
// every round.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"insect_duel/internal/domain"

	"github.com/pterm/pterm"
)

type client struct {
	base string
	lang string
	http *http.Client
}

func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	lang := os.Getenv("SMOKE_LANG")
	if lang == "" {
		lang = "zh"
	}

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	c := &client{
		base: "http://127.0.0.1:" + port,
		lang: lang,
		http: &http.Client{Timeout: 5 * time.Second},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, c); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client) error {
	var state domain.GameState
	if err := c.do(ctx, http.MethodGet, "/new-game", nil, &state); err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	if len(state.PlayerACards) != len(state.PlayerBCards) {
		return fmt.Errorf("uneven decks: %d vs %d", len(state.PlayerACards), len(state.PlayerBCards))
	}
	pterm.Info.Printfln("dealt %d cards per side", len(state.PlayerACards))

	// A plays in order, B plays reversed so every outcome shows up
	n := len(state.PlayerACards)
	rows := pterm.TableData{{"#", "A", "B", "winner", "result"}}
	for i := 0; i < n; i++ {
		req := map[string]domain.Card{
			"card_a": state.PlayerACards[i],
			"card_b": state.PlayerBCards[n-1-i],
		}
		var res domain.RoundResult
		if err := c.do(ctx, http.MethodPost, "/compare", req, &res); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
		state.RoundResults = append(state.RoundResults, res)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%s (%d)", res.CardA.Insect, res.CardA.Score),
			fmt.Sprintf("%s (%d)", res.CardB.Insect, res.CardB.Score),
			string(res.Winner),
			res.Result,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	var summary domain.MatchSummary
	body := map[string][]domain.RoundResult{"round_results": state.RoundResults}
	if err := c.do(ctx, http.MethodPost, "/finalize", body, &summary); err != nil {
		return fmt.Errorf("finalize: %w", err)
	}
	if summary.PlayerAScore+summary.PlayerBScore > n {
		return fmt.Errorf("scores %d:%d exceed %d rounds", summary.PlayerAScore, summary.PlayerBScore, n)
	}

	pterm.DefaultBox.WithTitle("final").Println(summary.FinalResult)
	pterm.Success.Printfln("score %d:%d", summary.PlayerAScore, summary.PlayerBScore)
	return nil
}

func (c *client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path+"?lang="+c.lang, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, data)
	}
	return json.Unmarshal(data, out)
}
