package service

import (
	"context"

	"insect_duel/internal/domain"
	"insect_duel/internal/game"
	"insect_duel/internal/i18n"
	"insect_duel/internal/logger"

	"golang.org/x/text/language"
)

// GameService deals decks, judges rounds and finalizes matches. It keeps no
// per-game state; every call works only on its arguments.
type GameService struct {
	decks *game.Decks
	loc   *i18n.Localizer
}

// NewGameService creates a new game service
func NewGameService(decks *game.Decks, loc *i18n.Localizer) *GameService {
	return &GameService{decks: decks, loc: loc}
}

// Localizer exposes the message catalog used for results.
func (s *GameService) Localizer() *i18n.Localizer {
	return s.loc
}

// Decks returns copies of both fixed decks.
func (s *GameService) Decks() (a, b []domain.Card) {
	return s.decks.PlayerA(), s.decks.PlayerB()
}

// NewGame deals both decks with an empty scoreboard.
func (s *GameService) NewGame(ctx context.Context) domain.GameState {
	logger.WithContext(ctx).Info("new game dealt")
	gamesDealt.Inc()

	return domain.GameState{
		PlayerACards: s.decks.PlayerA(),
		PlayerBCards: s.decks.PlayerB(),
		RoundResults: []domain.RoundResult{},
		PlayerAScore: 0,
		PlayerBScore: 0,
		GameOver:     false,
	}
}

// CompareRound judges one round. The point value from game.Compare is only
// counted in metrics; match scores are recounted from winner tags in Finalize.
func (s *GameService) CompareRound(ctx context.Context, tag language.Tag, a, b domain.Card) domain.RoundResult {
	winner, points := game.Compare(a, b)

	roundsCompared.WithLabelValues(string(winner)).Inc()
	roundPoints.Add(float64(points))
	logger.WithContext(ctx).Debug("round compared",
		"insect_a", a.Insect, "score_a", a.Score,
		"insect_b", b.Insect, "score_b", b.Score,
		"winner", winner)

	return domain.RoundResult{
		CardA:  a,
		CardB:  b,
		Winner: winner,
		Result: s.loc.RoundMessage(tag, winner),
	}
}

// Finalize tallies a round history into the match summary.
func (s *GameService) Finalize(ctx context.Context, tag language.Tag, winners []domain.Winner) domain.MatchSummary {
	t := game.TallyRounds(winners)

	matchesFinalized.WithLabelValues(string(t.Winner)).Inc()
	logger.WithContext(ctx).Debug("match finalized",
		"rounds", len(winners), "score_a", t.A, "score_b", t.B, "draws", t.Draws, "winner", t.Winner)

	return domain.MatchSummary{
		FinalResult:  s.loc.FinalMessage(tag, t.Winner, t.A, t.B),
		PlayerAScore: t.A,
		PlayerBScore: t.B,
	}
}
