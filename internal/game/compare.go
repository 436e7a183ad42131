package game

import "insect_duel/internal/domain"

// Compare decides a single round. The higher score wins one point; equal
// scores are a draw worth nothing.
func Compare(a, b domain.Card) (domain.Winner, int) {
	switch {
	case a.Score > b.Score:
		return domain.WinnerA, 1
	case b.Score > a.Score:
		return domain.WinnerB, 1
	default:
		return domain.WinnerDraw, 0
	}
}
