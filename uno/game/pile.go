package game

import "github.com/ratel-online/uno/uno/card"

// Pile is the discard pile. The last card added is the top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Len() int {
	return len(p.cards)
}

// Top returns the zero Card when the pile is empty.
func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}
	}
	return p.cards[pileSize-1]
}

// TakeUnderTop removes and returns every card below the top one.
func (p *Pile) TakeUnderTop() []card.Card {
	if len(p.cards) < 2 {
		return nil
	}
	under := append([]card.Card(nil), p.cards[:len(p.cards)-1]...)
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return under
}
