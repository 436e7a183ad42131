package handlers

import (
	"bytes"
	"net/http"

	"insect_duel/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CardPayload is a card as submitted by the client. Score is a pointer so an
// absent key can be told apart from zero.
type CardPayload struct {
	Insect string `json:"insect"`
	Score  *int   `json:"score" binding:"required"`
	Image  string `json:"image"`
}

func (p *CardPayload) card() domain.Card {
	return domain.Card{Insect: p.Insect, Score: *p.Score, Image: p.Image}
}

// CompareRequest represents the compare endpoint body
type CompareRequest struct {
	CardA *CardPayload `json:"card_a" binding:"required"`
	CardB *CardPayload `json:"card_b" binding:"required"`
}

// RoundPayload is a previously returned round result. Only the winner tag
// is used; cards and message are accepted and ignored.
type RoundPayload struct {
	Winner *domain.Winner `json:"winner" binding:"required"`
}

// FinalizeRequest represents the finalize endpoint body
type FinalizeRequest struct {
	RoundResults []RoundPayload `json:"round_results" binding:"required,dive"`
}

// DecksResponse lists both fixed decks
type DecksResponse struct {
	PlayerACards []domain.Card `json:"player_a_cards"`
	PlayerBCards []domain.Card `json:"player_b_cards"`
}

// NewGame deals both decks with a zeroed scoreboard
func (h *Handler) NewGame(c *gin.Context) {
	c.JSON(http.StatusOK, h.Game.NewGame(c.Request.Context()))
}

// Decks returns the fixed decks without a scoreboard
func (h *Handler) Decks(c *gin.Context) {
	a, b := h.Game.Decks()
	c.JSON(http.StatusOK, DecksResponse{PlayerACards: a, PlayerBCards: b})
}

// Compare judges a single round
func (h *Handler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	res := h.Game.CompareRound(c.Request.Context(), h.locale(c), req.CardA.card(), req.CardB.card())
	c.JSON(http.StatusOK, res)
}

// Finalize tallies the round history resubmitted by the client. A bare JSON
// array of rounds is accepted as well as {"round_results": [...]}.
func (h *Handler) Finalize(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		wrapped := make([]byte, 0, len(trimmed)+len(`{"round_results":}`))
		wrapped = append(wrapped, `{"round_results":`...)
		wrapped = append(wrapped, trimmed...)
		body = append(wrapped, '}')
	}

	var req FinalizeRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		abortBadRequest(c, err)
		return
	}

	winners := make([]domain.Winner, 0, len(req.RoundResults))
	for _, r := range req.RoundResults {
		winners = append(winners, *r.Winner)
	}

	c.JSON(http.StatusOK, h.Game.Finalize(c.Request.Context(), h.locale(c), winners))
}
