package game_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

type downgradeRecorder struct {
	reasons []string
}

func (r *downgradeRecorder) OnDecisionDowngraded(payload event.DecisionDowngradedPayload) {
	r.reasons = append(r.reasons, payload.Reason)
}

func TestDecisionDowngrade(t *testing.T) {
	botFive := card.NewNumberCard(color.Blue, 5)
	scenarios := []struct {
		description string
		decider     game.Decider
	}{
		{
			description: "decider_error",
			decider: game.DeciderFunc(func(context.Context, game.State) (game.Decision, error) {
				return nil, errors.New("service unavailable")
			}),
		},
		{
			description: "timeout",
			decider: game.DeciderFunc(func(ctx context.Context, _ game.State) (game.Decision, error) {
				<-ctx.Done()
				time.Sleep(10 * time.Millisecond)
				return game.DrawDecision{}, nil
			}),
		},
		{
			description: "nil_decision",
			decider: game.DeciderFunc(func(context.Context, game.State) (game.Decision, error) {
				return nil, nil
			}),
		},
		{
			description: "card_not_in_hand",
			decider:     script(game.PlayDecision{Card: card.Face{Color: color.Red, Rank: card.Nine}}),
		},
		{
			description: "illegal_card",
			decider:     script(game.PlayDecision{Card: botFive.Face()}),
		},
		{
			description: "no_decider",
			decider:     nil,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			recorder := &downgradeRecorder{}
			g, err := game.New(game.Options{
				HandSize: 2,
				Deck: []card.Card{
					card.NewNumberCard(color.Red, 1), card.NewNumberCard(color.Red, 2),
					botFive, card.NewNumberCard(color.Yellow, 8),
					card.NewNumberCard(color.Red, 3),
					card.NewNumberCard(color.Green, 4),
				},
				Decider:         scenario.decider,
				DecisionTimeout: 20 * time.Millisecond,
				Rand:            rand.New(rand.NewSource(1)),
				Listeners:       []interface{}{recorder},
			})
			require.NoError(t, err)

			require.NoError(t, g.EndTurn(context.Background(), human))

			snapshot := g.Snapshot(human)
			require.Equal(t, human, snapshot.Current)
			require.Equal(t, 3, snapshot.OpponentHandCount)
			require.Len(t, recorder.reasons, 1)
			require.Contains(t, snapshot.Narration, "bot had to draw instead")
		})
	}
}

func TestAutomatedColorChoice(t *testing.T) {
	t.Run("undeclared_wild_takes_the_most_frequent_color", func(t *testing.T) {
		wild := card.NewWildCard()
		g := stackedGame(t,
			numbers(color.Red, 1, 2, 3),
			[]card.Card{wild, card.NewNumberCard(color.Green, 1), card.NewNumberCard(color.Green, 2)},
			card.NewNumberCard(color.Red, 3),
			nil,
			script(game.PlayDecision{Card: wild.Face()}),
		)
		require.NoError(t, g.EndTurn(context.Background(), human))

		snapshot := g.Snapshot(human)
		require.Equal(t, human, snapshot.Current)
		require.Equal(t, color.Green, snapshot.ActiveColor)
		require.False(t, snapshot.AwaitingColor)
		require.Equal(t, "bot played wild!\nbot picked color green!", snapshot.Narration)
	})

	t.Run("declared_color_is_kept", func(t *testing.T) {
		wildDrawFour := card.NewWildDrawFourCard()
		g := stackedGame(t,
			numbers(color.Red, 1, 2),
			[]card.Card{wildDrawFour, card.NewNumberCard(color.Green, 1)},
			card.NewNumberCard(color.Red, 3),
			numbers(color.Yellow, 1, 2, 3, 4),
			script(game.PlayDecision{Card: wildDrawFour.Face(), DeclaredColor: color.Blue}),
		)
		require.NoError(t, g.EndTurn(context.Background(), human))

		snapshot := g.Snapshot(human)
		require.Equal(t, color.Blue, snapshot.ActiveColor)
		require.Equal(t, 4, snapshot.PendingPenalty)
		require.True(t, snapshot.PenaltyOwed)
	})
}

func TestDeciderState(t *testing.T) {
	botFive := card.NewNumberCard(color.Red, 5)
	decider := script()
	g := stackedGame(t,
		numbers(color.Blue, 1, 2),
		[]card.Card{botFive, card.NewNumberCard(color.Green, 9)},
		card.NewNumberCard(color.Red, 3),
		numbers(color.Yellow, 1),
		decider,
	)
	require.NoError(t, g.EndTurn(context.Background(), human))
	require.Equal(t, 1, decider.calls())

	state := decider.states[0]
	require.Equal(t, bot, state.Seat)
	require.Equal(t, []card.Card{botFive}, state.PlayableCards)
	require.Equal(t, color.Red, state.ActiveColor)
	require.Equal(t, 2, state.OpponentHandCount)
	require.Equal(t, []game.Seat{human, bot}, state.PlayerSequence)
	require.Equal(t, map[game.Seat]int{human: 2, bot: 2}, state.PlayerHandCounts)
}

func TestResume(t *testing.T) {
	botFive := card.NewNumberCard(color.Red, 5)
	g, err := game.New(game.Options{
		Seats: []game.SeatConfig{
			{Seat: bot, Kind: game.Automated},
			{Seat: human, Kind: game.Human},
		},
		HandSize: 2,
		Deck: []card.Card{
			botFive, card.NewNumberCard(color.Green, 9),
			card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Blue, 2),
			card.NewNumberCard(color.Red, 3),
		},
		Decider: script(game.PlayDecision{Card: botFive.Face()}),
		Rand:    rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	require.Equal(t, bot, g.Current())

	g.Resume(context.Background())

	snapshot := g.Snapshot(human)
	require.Equal(t, human, snapshot.Current)
	require.Equal(t, botFive, snapshot.Top)
	require.Equal(t, "bot played red 5!", snapshot.Narration)

	g.Resume(context.Background())
	require.Equal(t, human, g.Current())
}

func TestAutomatedWinEndsTheRun(t *testing.T) {
	botFive := card.NewNumberCard(color.Red, 5)
	g := stackedGame(t,
		numbers(color.Blue, 1),
		[]card.Card{botFive},
		card.NewNumberCard(color.Red, 3),
		nil,
		script(game.PlayDecision{Card: botFive.Face()}),
	)
	require.NoError(t, g.EndTurn(context.Background(), human))
	snapshot := g.Snapshot(human)
	require.Equal(t, bot, snapshot.Winner)
	require.Equal(t, bot, snapshot.Current)
	require.Equal(t, "bot played red 5!\nbot wins!", snapshot.Narration)
}
