package game

import "github.com/ratel-online/uno/uno/card"

// AllCards returns every card the game holds, wherever it is.
func (g *Game) AllCards() []card.Card {
	cards := append(g.deck.Cards(), g.pile.Cards()...)
	g.seats.ForEach(func(seat Seat) {
		cards = append(cards, g.hands[seat].Cards()...)
	})
	return cards
}

func (g *Game) DiscardPile() []card.Card {
	return g.pile.Cards()
}
