package model_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/model"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestCardFace(t *testing.T) {
	scenarios := []struct {
		description string
		card        model.Card
		face        card.Face
		valid       bool
	}{
		{"number", model.Card{Color: "red", Value: "5"}, card.Face{Color: color.Red, Rank: card.Five}, true},
		{"action", model.Card{Color: "blue", Value: "drawTwo"}, card.Face{Color: color.Blue, Rank: card.DrawTwo}, true},
		{"wild_without_color", model.Card{Value: "wild"}, card.Face{Color: color.Black, Rank: card.Wild}, true},
		{"wild_with_black", model.Card{Color: "black", Value: "wildDrawFour"}, card.Face{Color: color.Black, Rank: card.WildDrawFour}, true},
		{"wild_with_color", model.Card{Color: "red", Value: "wild"}, card.Face{}, false},
		{"unknown_value", model.Card{Color: "red", Value: "ten"}, card.Face{}, false},
		{"unknown_color", model.Card{Color: "pink", Value: "1"}, card.Face{}, false},
		{"missing_color", model.Card{Value: "1"}, card.Face{}, false},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			face, err := scenario.card.Face()
			if !scenario.valid {
				require.True(t, errors.Is(err, consts.ErrorsInputInvalid), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.face, face)
		})
	}
}

func TestNewCard(t *testing.T) {
	require.Nil(t, model.NewCard(card.Card{}))
	require.Equal(t, &model.Card{Color: "black", Value: "wild"}, model.NewCard(card.NewWildCard()))
	require.Equal(t, &model.Card{Color: "yellow", Value: "skip"}, model.NewCard(card.NewSkipCard(color.Yellow)))
}

func TestNewGameState(t *testing.T) {
	top := card.NewNumberCard(color.Green, 3)
	state := model.NewGameState(game.Snapshot{
		Hand:          []card.Card{card.NewNumberCard(color.Red, 1)},
		Top:           top,
		ActiveColor:   color.None,
		DeckCount:     80,
		DiscardCount:  3,
		Current:       consts.SeatHuman,
		Seats:         []game.Seat{consts.SeatHuman, consts.SeatBot},
		Direction:     game.CounterClockwise,
		AwaitingColor: true,
		Narration:     "bot played green 3!",
	})
	require.Equal(t, []model.Card{{Color: "red", Value: "1"}}, state.PlayerHand)
	require.Equal(t, &model.Card{Color: "green", Value: "3"}, state.DiscardPileTopCard)
	require.Equal(t, "", state.CurrentChosenColor)
	require.Equal(t, []string{"human", "bot"}, state.PlayersList)
	require.Equal(t, "counterclockwise", state.PlayDirection)
	require.True(t, state.AwaitingColorChoice)
	require.Equal(t, "bot played green 3!", state.Message)
}

func TestErrResp(t *testing.T) {
	resp := model.ErrResp(consts.ErrorsOutOfTurn.Detail("it is bot's turn"))
	require.Equal(t, consts.CodeOutOfTurn, resp.Code)
	require.Equal(t, "Not your turn. it is bot's turn", resp.Msg)

	resp = model.ErrResp(errors.New("boom"))
	require.Equal(t, consts.CodeInputInvalid, resp.Code)
}
