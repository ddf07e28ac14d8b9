package game

import (
	"strings"

	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// narrator keeps a plain text log of what automated seats did during the
// current run of automated turns.
type narrator struct {
	kinds map[Seat]SeatKind
	lines []string
}

func newNarrator(kinds map[Seat]SeatKind) *narrator {
	return &narrator{kinds: kinds}
}

func (n *narrator) reset() {
	n.lines = nil
}

func (n *narrator) text() string {
	return strings.TrimSpace(strings.Join(n.lines, ""))
}

func (n *narrator) record(playerName string, line string) {
	if n.kinds[Seat(playerName)] == Automated {
		n.lines = append(n.lines, line)
	}
}

func (n *narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	n.record(payload.PlayerName, msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (n *narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	n.record(payload.PlayerName, msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (n *narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.record(payload.PlayerName, msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *narrator) OnDecisionDowngraded(payload event.DecisionDowngradedPayload) {
	n.record(payload.PlayerName, msg.Message.DecisionDowngraded(payload.PlayerName, payload.Reason))
}

func (n *narrator) OnGameWon(payload event.GameWonPayload) {
	n.record(payload.PlayerName, msg.Message.WinnerFound(payload.PlayerName))
}
