package card

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Face is what a card shows: its color and rank. Two physical cards can
// share a face; only their Card identity tells them apart.
type Face struct {
	Color color.Color
	Rank  Rank
}

// Validate checks that the face could exist in a deck: wilds are black and
// everything else carries one of the four playable colors.
func (f Face) Validate() error {
	if !f.Rank.Valid() {
		return fmt.Errorf("invalid rank %d", int(f.Rank))
	}
	if f.Rank.IsWild() {
		if f.Color != color.Black {
			return fmt.Errorf("%s must be black, got %s", f.Rank, f.Color)
		}
		return nil
	}
	if !f.Color.Playable() {
		return fmt.Errorf("%s must have a playable color, got %s", f.Rank, f.Color)
	}
	return nil
}

// Label is the unpainted name of the face, e.g. "red 5" or "wildDrawFour".
func (f Face) Label() string {
	if f.Rank.IsWild() {
		return f.Rank.String()
	}
	return f.Color.Name() + " " + f.Rank.String()
}

func (f Face) String() string {
	return f.Color.Paint(f.Rank.symbol())
}

// Card is one physical card. Cards are values and never change once built.
type Card struct {
	id   uuid.UUID
	face Face
}

// New builds a card with a fresh identity. Wild ranks are always black.
// It panics on faces that cannot exist in a deck.
func New(cardColor color.Color, rank Rank) Card {
	if rank.IsWild() {
		cardColor = color.Black
	}
	face := Face{Color: cardColor, Rank: rank}
	if err := face.Validate(); err != nil {
		panic(err)
	}
	return Card{id: uuid.New(), face: face}
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return New(cardColor, Rank(number))
}

func NewSkipCard(cardColor color.Color) Card {
	return New(cardColor, Skip)
}

func NewReverseCard(cardColor color.Color) Card {
	return New(cardColor, Reverse)
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return New(cardColor, DrawTwo)
}

func NewWildCard() Card {
	return New(color.Black, Wild)
}

func NewWildDrawFourCard() Card {
	return New(color.Black, WildDrawFour)
}

func (c Card) ID() uuid.UUID {
	return c.id
}

func (c Card) Face() Face {
	return c.face
}

func (c Card) Color() color.Color {
	return c.face.Color
}

func (c Card) Rank() Rank {
	return c.face.Rank
}

// IsZero reports whether c is the zero Card, used for "no card".
func (c Card) IsZero() bool {
	return c.id == uuid.Nil
}

func (c Card) IsWild() bool {
	return c.face.Rank.IsWild()
}

// Matches reports whether c shows the given face.
func (c Card) Matches(face Face) bool {
	return c.face == face
}

// Actions lists the card's effects in resolution order: penalty, skip,
// reverse, then color choice.
func (c Card) Actions() []action.Action {
	switch c.face.Rank {
	case DrawTwo:
		return []action.Action{action.NewDrawCardsAction(2)}
	case WildDrawFour:
		return []action.Action{action.NewDrawCardsAction(4), action.NewPickColorAction()}
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case Wild:
		return []action.Action{action.NewPickColorAction()}
	default:
		return []action.Action{}
	}
}

func (c Card) String() string {
	return c.face.String()
}
