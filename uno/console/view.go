package console

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

// options lists the playable cards followed by the draw and end actions.
// While a penalty is owed only cards that pass it on are offered, and the
// turn cannot be ended.
func options(snapshot game.Snapshot) []ui.Option {
	var result []ui.Option
	for _, c := range playableCards(snapshot) {
		result = append(result, ui.Option{Text: c.String(), Value: c})
	}
	drawText := "Draw a card"
	if snapshot.PendingPenalty > 0 {
		drawText = fmt.Sprintf("Draw %d cards", snapshot.PendingPenalty)
	}
	result = append(result, ui.Option{Text: drawText, Value: choiceDraw})
	if owesPenalty(snapshot) {
		return result
	}
	return append(result, ui.Option{Text: "End your turn", Value: choiceEnd})
}

func playableCards(snapshot game.Snapshot) []card.Card {
	var result []card.Card
	for _, c := range snapshot.Hand {
		if !game.Playable(c, snapshot.Top, snapshot.ActiveColor) {
			continue
		}
		if owesPenalty(snapshot) && !stacks(c) {
			continue
		}
		result = append(result, c)
	}
	return result
}

func owesPenalty(snapshot game.Snapshot) bool {
	return snapshot.PenaltyOwed && snapshot.PendingPenalty > 0
}

func stacks(c card.Card) bool {
	return c.Rank() == card.DrawTwo || c.Rank() == card.WildDrawFour
}

func (c *Console) declare(selected card.Card) (color.Color, error) {
	if !selected.IsWild() {
		return color.None, nil
	}
	return ui.PromptColor()
}

func stateOf(snapshot game.Snapshot) game.State {
	counts := map[game.Seat]int{snapshot.Seat: len(snapshot.Hand)}
	for _, seat := range snapshot.Seats {
		if seat != snapshot.Seat {
			counts[seat] = snapshot.OpponentHandCount
		}
	}
	return game.State{
		Seat:              snapshot.Seat,
		Hand:              snapshot.Hand,
		Top:               snapshot.Top,
		ActiveColor:       snapshot.ActiveColor,
		PendingPenalty:    snapshot.PendingPenalty,
		OpponentHandCount: snapshot.OpponentHandCount,
		PlayerSequence:    snapshot.Seats,
		PlayerHandCounts:  counts,
	}
}

// newCards returns the cards of after that were not in before.
func newCards(before, after []card.Card) []card.Card {
	held := make(map[uuid.UUID]struct{}, len(before))
	for _, c := range before {
		held[c.ID()] = struct{}{}
	}
	var drawn []card.Card
	for _, c := range after {
		if _, ok := held[c.ID()]; !ok {
			drawn = append(drawn, c)
		}
	}
	return drawn
}

// narrated renders narration with a blank line after it.
func narrated(narration string) string {
	if narration == "" {
		return ""
	}
	return msg.Sprintln(narration)
}

func asGameError(err error, target *consts.Error) bool {
	return errors.As(err, target) && !target.Exit
}
