package game

import (
	"context"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Decider picks the move of an automated seat. Implementations may block;
// the engine bounds every call with its decision timeout.
type Decider interface {
	Decide(ctx context.Context, state State) (Decision, error)
}

type DeciderFunc func(ctx context.Context, state State) (Decision, error)

func (f DeciderFunc) Decide(ctx context.Context, state State) (Decision, error) {
	return f(ctx, state)
}

// Decision is either a PlayDecision or a DrawDecision.
type Decision interface {
	decision()
}

// PlayDecision plays one card showing Card. DeclaredColor is only read for
// wild cards; color.None leaves the choice to the engine.
type PlayDecision struct {
	Card          card.Face
	DeclaredColor color.Color
}

type DrawDecision struct{}

func (PlayDecision) decision() {}

func (DrawDecision) decision() {}
