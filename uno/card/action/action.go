// Package action describes the effects a card triggers when it lands on the
// discard pile.
package action

import "fmt"

type Kind int

const (
	DrawCards Kind = iota + 1
	SkipTurn
	ReverseTurns
	PickColor
)

type Action struct {
	Kind Kind
	// Amount is the number of penalty cards for DrawCards, zero otherwise.
	Amount int
}

func NewDrawCardsAction(amount int) Action {
	return Action{Kind: DrawCards, Amount: amount}
}

func NewSkipTurnAction() Action {
	return Action{Kind: SkipTurn}
}

func NewReverseTurnsAction() Action {
	return Action{Kind: ReverseTurns}
}

func NewPickColorAction() Action {
	return Action{Kind: PickColor}
}

func (a Action) String() string {
	switch a.Kind {
	case DrawCards:
		return fmt.Sprintf("draw %d", a.Amount)
	case SkipTurn:
		return "skip"
	case ReverseTurns:
		return "reverse"
	case PickColor:
		return "pick color"
	default:
		return fmt.Sprintf("action(%d)", int(a.Kind))
	}
}
