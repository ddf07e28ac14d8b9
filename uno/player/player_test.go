package player_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/model"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateFor(hand []card.Card, top card.Card, activeColor color.Color) game.State {
	var playable []card.Card
	for _, c := range hand {
		if game.Playable(c, top, activeColor) {
			playable = append(playable, c)
		}
	}
	return game.State{
		Seat:          consts.SeatBot,
		Hand:          hand,
		PlayableCards: playable,
		Top:           top,
		ActiveColor:   activeColor,
	}
}

func TestNaivePlayer(t *testing.T) {
	decider := player.NewNaivePlayer(rand.New(rand.NewSource(3)))

	t.Run("draws_without_playable_cards", func(t *testing.T) {
		decision, err := decider.Decide(context.Background(), stateFor(
			[]card.Card{card.NewNumberCard(color.Blue, 1)},
			card.NewNumberCard(color.Red, 3), color.Red,
		))
		require.NoError(t, err)
		require.Equal(t, game.DrawDecision{}, decision)
	})

	t.Run("plays_the_first_playable_card", func(t *testing.T) {
		redOne := card.NewNumberCard(color.Red, 1)
		decision, err := decider.Decide(context.Background(), stateFor(
			[]card.Card{card.NewNumberCard(color.Blue, 1), redOne, card.NewWildCard()},
			card.NewNumberCard(color.Red, 3), color.Red,
		))
		require.NoError(t, err)
		require.Equal(t, game.PlayDecision{Card: redOne.Face()}, decision)
	})

	t.Run("declares_a_playable_color_for_wilds", func(t *testing.T) {
		decision, err := decider.Decide(context.Background(), stateFor(
			[]card.Card{card.NewWildCard()},
			card.NewNumberCard(color.Red, 3), color.Red,
		))
		require.NoError(t, err)
		play, ok := decision.(game.PlayDecision)
		require.True(t, ok)
		require.True(t, play.DeclaredColor.Playable())
	})
}

func TestGoodPlayer(t *testing.T) {
	decider := player.NewGoodPlayer()

	t.Run("keeps_the_color_it_can_follow_up_on", func(t *testing.T) {
		redSeven := card.NewNumberCard(color.Red, 7)
		blueSeven := card.NewNumberCard(color.Blue, 7)
		decision, err := decider.Decide(context.Background(), stateFor(
			[]card.Card{redSeven, blueSeven, card.NewNumberCard(color.Blue, 2), card.NewSkipCard(color.Blue)},
			card.NewNumberCard(color.Red, 7), color.Red,
		))
		require.NoError(t, err)
		require.Equal(t, game.PlayDecision{Card: blueSeven.Face()}, decision)
	})

	t.Run("prefers_colored_cards_over_wilds", func(t *testing.T) {
		redOne := card.NewNumberCard(color.Red, 1)
		decision, err := decider.Decide(context.Background(), stateFor(
			[]card.Card{card.NewWildCard(), redOne},
			card.NewNumberCard(color.Red, 3), color.Red,
		))
		require.NoError(t, err)
		require.Equal(t, game.PlayDecision{Card: redOne.Face()}, decision)
	})

	t.Run("declares_the_most_frequent_color", func(t *testing.T) {
		wild := card.NewWildCard()
		decision, err := decider.Decide(context.Background(), stateFor(
			[]card.Card{wild, card.NewNumberCard(color.Yellow, 1), card.NewNumberCard(color.Yellow, 2)},
			card.NewNumberCard(color.Red, 3), color.Red,
		))
		require.NoError(t, err)
		require.Equal(t, game.PlayDecision{Card: wild.Face(), DeclaredColor: color.Yellow}, decision)
	})
}

func TestRemotePlayer(t *testing.T) {
	state := stateFor(
		[]card.Card{card.NewNumberCard(color.Red, 1), card.NewWildCard()},
		card.NewNumberCard(color.Red, 3), color.Red,
	)

	t.Run("sends_the_state_and_decodes_the_decision", func(t *testing.T) {
		var received model.DecisionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"action":"PLAY","card":{"color":"black","value":"wild"},"declaredColor":"blue"}`))
		}))
		defer server.Close()

		decision, err := player.NewRemotePlayer(server.URL, server.Client()).Decide(context.Background(), state)
		require.NoError(t, err)
		require.Equal(t, game.PlayDecision{
			Card:          card.Face{Color: color.Black, Rank: card.Wild},
			DeclaredColor: color.Blue,
		}, decision)
		require.Equal(t, "bot", received.Seat)
		require.Len(t, received.PlayableCards, 2)
		require.Equal(t, "red", received.ActiveColor)
	})

	scenarios := []struct {
		description string
		status      int
		body        string
	}{
		{"server_error", http.StatusInternalServerError, `{"action":"DRAW"}`},
		{"not_json", http.StatusOK, `draw please`},
		{"unknown_field", http.StatusOK, `{"action":"DRAW","confidence":0.9}`},
		{"unknown_action", http.StatusOK, `{"action":"PASS"}`},
		{"play_without_card", http.StatusOK, `{"action":"PLAY"}`},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(scenario.status)
				_, _ = w.Write([]byte(scenario.body))
			}))
			defer server.Close()

			decision, err := player.NewRemotePlayer(server.URL, server.Client()).Decide(context.Background(), state)
			require.Nil(t, decision)
			require.True(t, errors.Is(err, consts.ErrorsDecisionInvalid), "got %v", err)
		})
	}

	t.Run("gives_up_with_the_context", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := player.NewRemotePlayer(server.URL, server.Client()).Decide(ctx, state)
		require.Error(t, err)
	})
}

func TestNewDecider(t *testing.T) {
	for _, strategy := range []string{consts.StrategyNaive, consts.StrategyGood, ""} {
		decider, err := player.NewDecider(strategy, "", time.Second)
		require.NoError(t, err, strategy)
		require.NotNil(t, decider)
	}

	decider, err := player.NewDecider(consts.StrategyRemote, "http://localhost:9/decide", time.Second)
	require.NoError(t, err)
	require.NotNil(t, decider)

	_, err = player.NewDecider(consts.StrategyRemote, "", time.Second)
	require.True(t, errors.Is(err, consts.ErrorsDecisionInvalid))

	_, err = player.NewDecider("clever", "", time.Second)
	require.True(t, errors.Is(err, consts.ErrorsDecisionInvalid))
}
