package player

import (
	"context"
	"math/rand"
	"sync"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// naivePlayer plays its first playable card and declares a random color.
type naivePlayer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewNaivePlayer(rng *rand.Rand) game.Decider {
	return &naivePlayer{rng: rng}
}

func (p *naivePlayer) Decide(_ context.Context, state game.State) (game.Decision, error) {
	if len(state.PlayableCards) == 0 {
		return game.DrawDecision{}, nil
	}
	firstCard := state.PlayableCards[0]
	decision := game.PlayDecision{Card: firstCard.Face()}
	if firstCard.IsWild() {
		decision.DeclaredColor = p.pickColor()
	}
	return decision, nil
}

func (p *naivePlayer) pickColor() color.Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	return color.Playables[p.rng.Intn(len(color.Playables))]
}
