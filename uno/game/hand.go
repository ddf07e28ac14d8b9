package game

import (
	"github.com/google/uuid"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Hand keeps cards in the order they were received.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// Find returns the first card showing face.
func (h *Hand) Find(face card.Face) (card.Card, bool) {
	for _, cardInHand := range h.cards {
		if cardInHand.Matches(face) {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) PlayableCards(top card.Card, activeColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, top, activeColor) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// RemoveCard removes the card with the given identity and reports whether it
// was held.
func (h *Hand) RemoveCard(id uuid.UUID) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.ID() == id {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) MostFrequentColor() color.Color {
	return MostFrequentColor(h.cards)
}
