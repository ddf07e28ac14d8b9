package service

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/event"
)

// eventLogger writes every game event to the server log.
type eventLogger struct{}

func (eventLogger) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	log.Infof("first card is %s\n", payload.Card.Face().Label())
}

func (eventLogger) OnCardPlayed(payload event.CardPlayedPayload) {
	log.Infof("%s played %s\n", payload.PlayerName, payload.Card.Face().Label())
}

func (eventLogger) OnCardsDrawn(payload event.CardsDrawnPayload) {
	log.Infof("%s drew %d of %d card(s)\n", payload.PlayerName, len(payload.Cards), payload.Requested)
}

func (eventLogger) OnColorPicked(payload event.ColorPickedPayload) {
	log.Infof("%s picked %s\n", payload.PlayerName, payload.Color.Name())
}

func (eventLogger) OnTurnEnded(payload event.TurnEndedPayload) {
	log.Infof("%s ended the turn, %s is next\n", payload.PlayerName, payload.NextPlayer)
}

func (eventLogger) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	log.Infof("%d cards shuffled back into the deck\n", payload.Count)
}

func (eventLogger) OnDecisionDowngraded(payload event.DecisionDowngradedPayload) {
	log.Infof("%s decision downgraded to draw: %s\n", payload.PlayerName, payload.Reason)
}

func (eventLogger) OnGameWon(payload event.GameWonPayload) {
	log.Infof("%s won the game\n", payload.PlayerName)
}
