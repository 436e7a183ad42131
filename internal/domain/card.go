package domain

// Winner - tag of the side that took a round or a match
type Winner string

const (
	WinnerA    Winner = "A"
	WinnerB    Winner = "B"
	WinnerDraw Winner = "Draw"
)

// Card is a single playable insect card.
type Card struct {
	Insect string `json:"insect" yaml:"insect"`
	Score  int    `json:"score" yaml:"score"`
	Image  string `json:"image" yaml:"image"`
}

// RoundResult is the outcome of one comparison. The client keeps it and
// resubmits the whole list when the match is finalized.
type RoundResult struct {
	CardA  Card   `json:"card_a"`
	CardB  Card   `json:"card_b"`
	Winner Winner `json:"winner"`
	Result string `json:"result"`
}

// MatchSummary is recomputed from the full round history on every call.
type MatchSummary struct {
	FinalResult  string `json:"final_result"`
	PlayerAScore int    `json:"player_a_score"`
	PlayerBScore int    `json:"player_b_score"`
}

// GameState - initial scoreboard returned by new-game
type GameState struct {
	PlayerACards []Card        `json:"player_a_cards"`
	PlayerBCards []Card        `json:"player_b_cards"`
	RoundResults []RoundResult `json:"round_results"`
	PlayerAScore int           `json:"player_a_score"`
	PlayerBScore int           `json:"player_b_score"`
	GameOver     bool          `json:"game_over"`
}
