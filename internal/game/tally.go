package game

import "insect_duel/internal/domain"

// Tally is the aggregate of a round history.
type Tally struct {
	A      int
	B      int
	Draws  int
	Winner domain.Winner
}

// TallyRounds counts round wins per side. Any tag other than A or B counts
// as a draw, which covers the legacy "平局" tag older clients still send.
func TallyRounds(winners []domain.Winner) Tally {
	var t Tally
	for _, w := range winners {
		switch w {
		case domain.WinnerA:
			t.A++
		case domain.WinnerB:
			t.B++
		default:
			t.Draws++
		}
	}

	switch {
	case t.A > t.B:
		t.Winner = domain.WinnerA
	case t.B > t.A:
		t.Winner = domain.WinnerB
	default:
		t.Winner = domain.WinnerDraw
	}
	return t
}
