package player

import (
	"context"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// goodPlayer plays the card that leaves it the most follow-up plays and
// declares the color it holds most of.
type goodPlayer struct{}

func NewGoodPlayer() game.Decider {
	return goodPlayer{}
}

func (p goodPlayer) Decide(_ context.Context, state game.State) (game.Decision, error) {
	if len(state.PlayableCards) == 0 {
		return game.DrawDecision{}, nil
	}

	mostDiscardableCard := state.PlayableCards[0]
	maxSpareCards := -1
	for _, playableCard := range state.PlayableCards {
		rest := without(state.Hand, playableCard)
		nextColor := playableCard.Color()
		if playableCard.IsWild() {
			nextColor = game.MostFrequentColor(rest)
		}
		spareCards := 0
		for _, handCard := range rest {
			if game.Playable(handCard, playableCard, nextColor) {
				spareCards++
			}
		}
		// Wilds are kept for later when a colored card does as well.
		if spareCards > maxSpareCards || (spareCards == maxSpareCards && mostDiscardableCard.IsWild() && !playableCard.IsWild()) {
			maxSpareCards = spareCards
			mostDiscardableCard = playableCard
		}
	}

	decision := game.PlayDecision{Card: mostDiscardableCard.Face()}
	if mostDiscardableCard.IsWild() {
		decision.DeclaredColor = p.pickColor(without(state.Hand, mostDiscardableCard))
	}
	return decision, nil
}

func (p goodPlayer) pickColor(hand []card.Card) color.Color {
	return game.MostFrequentColor(hand)
}

func without(cards []card.Card, removed card.Card) []card.Card {
	rest := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if c.ID() != removed.ID() {
			rest = append(rest, c)
		}
	}
	return rest
}
