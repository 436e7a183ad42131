package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"insect_duel/internal/domain"
	"insect_duel/internal/game"
	"insect_duel/internal/i18n"
	"insect_duel/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	decks, err := game.LoadDecks()
	if err != nil {
		t.Fatalf("LoadDecks: %v", err)
	}
	loc, err := i18n.New("zh")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	h := NewHandler(service.NewGameService(decks, loc))

	r := gin.New()
	r.GET("/new-game", h.NewGame)
	r.GET("/decks", h.Decks)
	r.POST("/compare", h.Compare)
	r.POST("/finalize", h.Finalize)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestNewGameEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/new-game", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var raw map[string]json.RawMessage
	decode(t, w, &raw)
	if string(raw["round_results"]) != "[]" {
		t.Fatalf("round_results = %s; want []", raw["round_results"])
	}
	if string(raw["game_over"]) != "false" || string(raw["player_a_score"]) != "0" {
		t.Fatalf("scoreboard not zeroed: %s", w.Body.String())
	}

	var st domain.GameState
	decode(t, w, &st)
	if len(st.PlayerACards) != 4 || len(st.PlayerBCards) != 4 {
		t.Fatalf("expected 4 cards per side: %+v", st)
	}
	if st.PlayerACards[2] != (domain.Card{Insect: "a-3", Score: 3, Image: "a-3.png"}) {
		t.Fatalf("unexpected card %+v", st.PlayerACards[2])
	}
}

func TestDecksEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/decks", "")

	var resp DecksResponse
	decode(t, w, &resp)
	if len(resp.PlayerACards) != 4 || resp.PlayerBCards[0].Insect != "b-1" {
		t.Fatalf("unexpected decks %+v", resp)
	}
}

func TestCompareEndpoint(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name, query, body string
		winner            domain.Winner
		result            string
	}{
		{
			name:   "a wins",
			body:   `{"card_a":{"insect":"a-3","score":3,"image":"a-3.png"},"card_b":{"insect":"b-1","score":1,"image":"b-1.png"}}`,
			winner: domain.WinnerA,
			result: "玩家A获胜!",
		},
		{
			name:   "b wins",
			body:   `{"card_a":{"score":1},"card_b":{"score":4}}`,
			winner: domain.WinnerB,
			result: "玩家B获胜!",
		},
		{
			name:   "draw",
			body:   `{"card_a":{"score":2},"card_b":{"score":2}}`,
			winner: domain.WinnerDraw,
			result: "平局!",
		},
		{
			name:   "english",
			query:  "?lang=en",
			body:   `{"card_a":{"score":2},"card_b":{"score":1}}`,
			winner: domain.WinnerA,
			result: "Player A wins!",
		},
	}

	for _, tc := range cases {
		w := do(t, r, http.MethodPost, "/compare"+tc.query, tc.body)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d body=%s", tc.name, w.Code, w.Body.String())
		}
		var res domain.RoundResult
		decode(t, w, &res)
		if res.Winner != tc.winner || res.Result != tc.result {
			t.Fatalf("%s: got %+v", tc.name, res)
		}
	}
}

func TestCompareEchoesCards(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/compare",
		`{"card_a":{"insect":"a-4","score":4,"image":"a-4.png"},"card_b":{"insect":"b-2","score":2,"image":"b-2.png"}}`)

	var raw map[string]json.RawMessage
	decode(t, w, &raw)
	if _, ok := raw["points"]; ok {
		t.Fatalf("points must not be part of the round result: %s", w.Body.String())
	}
	var res domain.RoundResult
	decode(t, w, &res)
	if res.CardA.Insect != "a-4" || res.CardB.Image != "b-2.png" {
		t.Fatalf("cards not echoed: %+v", res)
	}
}

func TestCompareErrors(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name, body, code, field string
	}{
		{"missing score a", `{"card_a":{"insect":"a-1"},"card_b":{"score":1}}`, "MissingField", "card_a.score"},
		{"missing score b", `{"card_a":{"score":1},"card_b":{"insect":"b-1"}}`, "MissingField", "card_b.score"},
		{"missing card", `{"card_a":{"score":1}}`, "MissingField", "card_b"},
		{"bad json", `{"card_a":`, "MalformedRequest", ""},
		{"wrong type", `{"card_a":{"score":"3"},"card_b":{"score":1}}`, "MalformedRequest", ""},
		{"empty body", ``, "MalformedRequest", ""},
	}

	for _, tc := range cases {
		w := do(t, r, http.MethodPost, "/compare", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d; want 400", tc.name, w.Code)
		}
		var body map[string]string
		decode(t, w, &body)
		if body["code"] != tc.code || body["field"] != tc.field {
			t.Fatalf("%s: got %v; want code=%s field=%s", tc.name, body, tc.code, tc.field)
		}
	}
}

func TestFinalizeEndpoint(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name, body string
		want       domain.MatchSummary
	}{
		{
			name: "a wins 2:1",
			body: `{"round_results":[{"winner":"A"},{"winner":"A"},{"winner":"B"}]}`,
			want: domain.MatchSummary{FinalResult: "游戏结束! 玩家A获胜! (得分 2:1)", PlayerAScore: 2, PlayerBScore: 1},
		},
		{
			name: "bare list",
			body: ` [{"winner":"B","result":"玩家B获胜!","card_a":{"score":1},"card_b":{"score":2}},{"winner":"Draw"}]`,
			want: domain.MatchSummary{FinalResult: "游戏结束! 玩家B获胜! (得分 0:1)", PlayerAScore: 0, PlayerBScore: 1},
		},
		{
			name: "no rounds",
			body: `{"round_results":[]}`,
			want: domain.MatchSummary{FinalResult: "游戏结束! 平局! (得分 0:0)"},
		},
	}

	for _, tc := range cases {
		for i := 0; i < 2; i++ {
			w := do(t, r, http.MethodPost, "/finalize", tc.body)
			if w.Code != http.StatusOK {
				t.Fatalf("%s: status = %d body=%s", tc.name, w.Code, w.Body.String())
			}
			var got domain.MatchSummary
			decode(t, w, &got)
			if got != tc.want {
				t.Fatalf("%s (call %d): got %+v; want %+v", tc.name, i+1, got, tc.want)
			}
		}
	}
}

func TestFinalizeErrors(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name, body, code, field string
	}{
		{"missing winner", `{"round_results":[{"winner":"A"},{"result":"x"}]}`, "MissingField", "round_results[1].winner"},
		{"missing list", `{}`, "MissingField", "round_results"},
		{"bad entry", `{"round_results":[1,2]}`, "MalformedRequest", ""},
		{"truncated", `[{"winner":"A"}`, "MalformedRequest", ""},
	}

	for _, tc := range cases {
		w := do(t, r, http.MethodPost, "/finalize", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d; want 400", tc.name, w.Code)
		}
		var body map[string]string
		decode(t, w, &body)
		if body["code"] != tc.code || body["field"] != tc.field {
			t.Fatalf("%s: got %v; want code=%s field=%s", tc.name, body, tc.code, tc.field)
		}
	}
}
