package event

import "github.com/ratel-online/uno/uno/card"

type CardsDrawnPayload struct {
	PlayerName string
	Cards      []card.Card
	// Requested is how many cards were owed; Cards may be shorter when
	// the deck and discard pile ran dry.
	Requested  int
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
