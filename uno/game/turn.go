package game

import (
	"context"

	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type turnStep int

const (
	stepYield turnStep = iota
	stepResolvePenalty
	stepDecide
	stepPickColor
	stepEndTurn
)

type turnKey struct {
	kind          SeatKind
	penaltyOwed   bool
	awaitingColor bool
	acted         bool
}

// automatedTurn maps the position of an automated seat within its turn to
// the next step. Keys that are absent, every human seat included, yield.
// An owed penalty is drawn before the Decider is asked, and drawing it does
// not count as the turn's action.
var automatedTurn = map[turnKey]turnStep{
	{kind: Automated, penaltyOwed: true}:                      stepResolvePenalty,
	{kind: Automated, penaltyOwed: true, awaitingColor: true}: stepPickColor,
	{kind: Automated, awaitingColor: true}:                    stepPickColor,
	{kind: Automated, awaitingColor: true, acted: true}:       stepPickColor,
	{kind: Automated}:                                         stepDecide,
	{kind: Automated, acted: true}:                            stepEndTurn,
}

func (g *Game) playAutomatedTurns(ctx context.Context) {
	acted, narrating := false, false
	for g.winner == "" {
		seat := g.seats.Current()
		step := automatedTurn[turnKey{
			kind:          g.kinds[seat],
			penaltyOwed:   g.penaltyOwed && g.pendingPenalty > 0,
			awaitingColor: g.awaitingColor,
			acted:         acted,
		}]
		if step == stepYield {
			return
		}
		if !narrating {
			g.narrator.reset()
			narrating = true
		}
		switch step {
		case stepResolvePenalty:
			g.draw(seat)
		case stepDecide:
			g.decide(ctx, seat)
			acted = true
		case stepPickColor:
			g.pickColor(seat, g.hands[seat].MostFrequentColor())
		case stepEndTurn:
			g.advance()
			acted = false
		}
	}
}

type decisionResult struct {
	decision Decision
	err      error
}

// decide asks the Decider for a move and applies it. Anything that cannot be
// applied as asked turns into a plain draw.
func (g *Game) decide(ctx context.Context, seat Seat) {
	decision, err := g.askDecider(ctx, seat)
	if err != nil {
		g.downgrade(seat, err.Error())
		return
	}
	switch decision := decision.(type) {
	case PlayDecision:
		declared := decision.DeclaredColor
		if !declared.Playable() {
			declared = color.None
		}
		if err := g.play(seat, decision.Card, declared); err != nil {
			g.downgrade(seat, err.Error())
		}
	case DrawDecision:
		g.draw(seat)
	default:
		g.downgrade(seat, consts.ErrorsDecisionInvalid.Detail("no decision").Error())
	}
}

func (g *Game) askDecider(ctx context.Context, seat Seat) (Decision, error) {
	decider := g.decider
	if decider == nil {
		return nil, consts.ErrorsDecisionInvalid.Detail("no decider for %s", seat)
	}
	ctx, cancel := context.WithTimeout(ctx, g.decisionTimeout)
	defer cancel()

	state := g.ExtractState(seat)
	results := make(chan decisionResult, 1)
	async.Async(func() {
		decision, err := decider.Decide(ctx, state)
		results <- decisionResult{decision: decision, err: err}
	})
	select {
	case result := <-results:
		return result.decision, result.err
	case <-ctx.Done():
		return nil, consts.ErrorsTimeout.Detail("decider for %s: %v", seat, ctx.Err())
	}
}

func (g *Game) downgrade(seat Seat, reason string) {
	g.events.DecisionDowngraded.Emit(event.DecisionDowngradedPayload{
		PlayerName: string(seat),
		Reason:     reason,
	})
	g.draw(seat)
}
