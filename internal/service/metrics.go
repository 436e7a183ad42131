package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	gamesDealt = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "insect_duel_games_dealt_total",
			Help: "Total new games dealt",
		},
	)
	roundsCompared = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insect_duel_rounds_compared_total",
			Help: "Total rounds compared, by round winner",
		},
		[]string{"winner"},
	)
	roundPoints = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "insect_duel_round_points_total",
			Help: "Total points awarded by round comparisons",
		},
	)
	matchesFinalized = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insect_duel_matches_finalized_total",
			Help: "Total matches finalized, by match winner",
		},
		[]string{"winner"},
	)
)

func init() {
	prometheus.MustRegister(gamesDealt)
	prometheus.MustRegister(roundsCompared)
	prometheus.MustRegister(roundPoints)
	prometheus.MustRegister(matchesFinalized)
}
