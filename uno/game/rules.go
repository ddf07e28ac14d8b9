package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidate may be placed on top. A zero top card
// accepts anything. Wilds are always playable. On a wild top only the active
// color matters; otherwise color or rank must match.
func Playable(candidate card.Card, top card.Card, activeColor color.Color) bool {
	if top.IsZero() || candidate.IsWild() {
		return true
	}
	if top.IsWild() {
		return candidate.Color() == activeColor
	}
	return candidate.Color() == top.Color() || candidate.Rank() == top.Rank()
}

// MostFrequentColor returns the playable color held most often, ties going
// to the earlier color in color.Playables. Hands with no colored cards
// get red.
func MostFrequentColor(cards []card.Card) color.Color {
	counts := make(map[color.Color]int, len(color.Playables))
	for _, c := range cards {
		if c.Color().Playable() {
			counts[c.Color()]++
		}
	}
	favorite, best := color.Red, 0
	for _, c := range color.Playables {
		if counts[c] > best {
			favorite, best = c, counts[c]
		}
	}
	return favorite
}
