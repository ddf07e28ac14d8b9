package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Message renders plain text, Painted renders with terminal colors.
var (
	Message = MessageWriter{}
	Painted = MessageWriter{painted: true}
)

type MessageWriter struct {
	painted bool
}

func (m MessageWriter) card(c card.Card) string {
	if m.painted {
		return c.String()
	}
	return c.Face().Label()
}

func (m MessageWriter) cards(cards []card.Card) string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, m.card(c))
	}
	return "[" + strings.Join(labels, " ") + "]"
}

func (m MessageWriter) color(c color.Color) string {
	if m.painted {
		return c.Paint(c.Name())
	}
	return c.Name()
}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", m.card(card))
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", m.cards(cards))
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	switch len(cards) {
	case 0:
		return Sprintfln("%s could not draw, the deck is empty!", playerName)
	case 1:
		return Sprintfln("%s drew a card!", playerName)
	default:
		return Sprintfln("%s drew %d cards!", playerName, len(cards))
	}
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, m.color(color))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, m.card(card))
}

func (m MessageWriter) DeckReshuffled(count int) string {
	return Sprintfln("%d cards were shuffled back into the deck!", count)
}

func (m MessageWriter) DecisionDowngraded(playerName string, reason string) string {
	return Sprintfln("%s had to draw instead (%s)", playerName, strings.TrimSpace(reason))
}

func (m MessageWriter) Welcome() string {
	if !m.painted {
		return Sprintln("WELCOME TO UNO")
	}
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintln(fmt.Sprintf(format, args...))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}
