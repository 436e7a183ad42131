package game

import (
	_ "embed"
	"fmt"

	"insect_duel/internal/domain"

	"github.com/goccy/go-yaml"
)

// DeckSize is the number of cards dealt to each side.
const DeckSize = 4

//go:embed decks.yaml
var embeddedDecks []byte

// Decks holds the two fixed decks. It is loaded once and never mutated;
// accessors hand out copies.
type Decks struct {
	a []domain.Card
	b []domain.Card
}

type decksFile struct {
	PlayerA []domain.Card `yaml:"player_a"`
	PlayerB []domain.Card `yaml:"player_b"`
}

// LoadDecks parses the embedded deck definitions.
func LoadDecks() (*Decks, error) {
	return ParseDecks(embeddedDecks)
}

// ParseDecks parses and validates a deck document.
func ParseDecks(data []byte) (*Decks, error) {
	var f decksFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse decks: %w", err)
	}
	if err := validateDeck("player_a", f.PlayerA); err != nil {
		return nil, err
	}
	if err := validateDeck("player_b", f.PlayerB); err != nil {
		return nil, err
	}
	return &Decks{a: f.PlayerA, b: f.PlayerB}, nil
}

func validateDeck(side string, cards []domain.Card) error {
	if len(cards) != DeckSize {
		return fmt.Errorf("deck %s: want %d cards, got %d", side, DeckSize, len(cards))
	}
	seen := make(map[int]bool, len(cards))
	for i, c := range cards {
		if c.Insect == "" {
			return fmt.Errorf("deck %s: card %d has no insect id", side, i)
		}
		if c.Score <= 0 {
			return fmt.Errorf("deck %s: card %s has non-positive score %d", side, c.Insect, c.Score)
		}
		if seen[c.Score] {
			return fmt.Errorf("deck %s: duplicate score %d", side, c.Score)
		}
		seen[c.Score] = true
	}
	return nil
}

// PlayerA returns a copy of deck A.
func (d *Decks) PlayerA() []domain.Card {
	return append([]domain.Card(nil), d.a...)
}

// PlayerB returns a copy of deck B.
func (d *Decks) PlayerB() []domain.Card {
	return append([]domain.Card(nil), d.b...)
}
