// Package i18n holds the display strings returned to players and picks the
// language for each request.
package i18n

import (
	"fmt"
	"strings"

	"insect_duel/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

const (
	keyRoundWinA = "round.win_a"
	keyRoundWinB = "round.win_b"
	keyRoundDraw = "round.draw"
	keyFinalWinA = "final.win_a %d %d"
	keyFinalWinB = "final.win_b %d %d"
	keyFinalDraw = "final.draw %d %d"
)

var messages = map[language.Tag]map[string]string{
	language.Chinese: {
		keyRoundWinA: "玩家A获胜!",
		keyRoundWinB: "玩家B获胜!",
		keyRoundDraw: "平局!",
		keyFinalWinA: "游戏结束! 玩家A获胜! (得分 %d:%d)",
		keyFinalWinB: "游戏结束! 玩家B获胜! (得分 %d:%d)",
		keyFinalDraw: "游戏结束! 平局! (得分 %d:%d)",
	},
	language.English: {
		keyRoundWinA: "Player A wins!",
		keyRoundWinB: "Player B wins!",
		keyRoundDraw: "Draw!",
		keyFinalWinA: "Game over! Player A wins! (score %d:%d)",
		keyFinalWinB: "Game over! Player B wins! (score %d:%d)",
		keyFinalDraw: "Game over! Draw! (score %d:%d)",
	},
}

// Localizer renders round and match messages. It is read-only after New
// and safe for concurrent use.
type Localizer struct {
	cat      *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
}

// New builds the catalog. defaultLocale is used when a request names no
// supported language; it must itself be supported.
func New(defaultLocale string) (*Localizer, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	tags := []language.Tag{language.Chinese, language.English}
	_, idx, conf := language.NewMatcher(tags).Match(fallback)
	if conf == language.No {
		return nil, fmt.Errorf("default locale %q is not supported", defaultLocale)
	}
	fallback = tags[idx]

	cat := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := cat.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", tag, key, err)
			}
		}
	}

	// fallback first so that an unmatched request resolves to it
	ordered := []language.Tag{fallback}
	for _, t := range tags {
		if t != fallback {
			ordered = append(ordered, t)
		}
	}

	return &Localizer{
		cat:      cat,
		matcher:  language.NewMatcher(ordered),
		tags:     ordered,
		fallback: fallback,
	}, nil
}

// Default returns the fallback language.
func (l *Localizer) Default() language.Tag {
	return l.fallback
}

// Resolve picks the language for a request from the lang query value, then
// the Accept-Language header, then the default.
func (l *Localizer) Resolve(lang, acceptLanguage string) language.Tag {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if t, ok := l.match(tag); ok {
				return t
			}
		}
	}

	if acceptLanguage = strings.TrimSpace(acceptLanguage); acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if t, ok := l.match(tags...); ok {
				return t
			}
		}
	}

	return l.fallback
}

func (l *Localizer) match(tags ...language.Tag) (language.Tag, bool) {
	_, idx, conf := l.matcher.Match(tags...)
	if conf == language.No {
		return language.Und, false
	}
	return l.tags[idx], true
}

func (l *Localizer) printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(l.cat))
}

// RoundMessage returns the announcement for a round won by winner.
func (l *Localizer) RoundMessage(tag language.Tag, winner domain.Winner) string {
	p := l.printer(tag)
	switch winner {
	case domain.WinnerA:
		return p.Sprintf(keyRoundWinA)
	case domain.WinnerB:
		return p.Sprintf(keyRoundWinB)
	default:
		return p.Sprintf(keyRoundDraw)
	}
}

// FinalMessage returns the end-of-match announcement with both scores.
func (l *Localizer) FinalMessage(tag language.Tag, winner domain.Winner, scoreA, scoreB int) string {
	p := l.printer(tag)
	switch winner {
	case domain.WinnerA:
		return p.Sprintf(keyFinalWinA, scoreA, scoreB)
	case domain.WinnerB:
		return p.Sprintf(keyFinalWinB, scoreA, scoreB)
	default:
		return p.Sprintf(keyFinalDraw, scoreA, scoreB)
	}
}
