package event

// Bus holds one emitter per event kind. Each game owns its own bus so that
// listeners never observe another game's events.
type Bus struct {
	FirstCardPlayed    *firstCardPlayedEmitter
	CardPlayed         *cardPlayedEmitter
	CardsDrawn         *cardsDrawnEmitter
	ColorPicked        *colorPickedEmitter
	TurnEnded          *turnEndedEmitter
	DeckReshuffled     *deckReshuffledEmitter
	DecisionDowngraded *decisionDowngradedEmitter
	GameWon            *gameWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:    &firstCardPlayedEmitter{},
		CardPlayed:         &cardPlayedEmitter{},
		CardsDrawn:         &cardsDrawnEmitter{},
		ColorPicked:        &colorPickedEmitter{},
		TurnEnded:          &turnEndedEmitter{},
		DeckReshuffled:     &deckReshuffledEmitter{},
		DecisionDowngraded: &decisionDowngradedEmitter{},
		GameWon:            &gameWonEmitter{},
	}
}

// AddListener subscribes listener to every event kind it implements a
// handler for.
func (b *Bus) AddListener(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(TurnEndedListener); ok {
		b.TurnEnded.AddListener(l)
	}
	if l, ok := listener.(DeckReshuffledListener); ok {
		b.DeckReshuffled.AddListener(l)
	}
	if l, ok := listener.(DecisionDowngradedListener); ok {
		b.DecisionDowngraded.AddListener(l)
	}
	if l, ok := listener.(GameWonListener); ok {
		b.GameWon.AddListener(l)
	}
}
