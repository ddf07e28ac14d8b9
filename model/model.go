package model

import (
	"errors"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Card is the wire form of a card face.
type Card struct {
	Color string `json:"color"`
	Value string `json:"value"`
}

func NewCard(c card.Card) *Card {
	if c.IsZero() {
		return nil
	}
	return &Card{Color: c.Color().Name(), Value: c.Rank().String()}
}

func NewCards(cards []card.Card) []Card {
	models := make([]Card, 0, len(cards))
	for _, c := range cards {
		models = append(models, *NewCard(c))
	}
	return models
}

// Face parses the wire form. Wild values may omit the color.
func (c Card) Face() (card.Face, error) {
	rank, err := card.ParseRank(c.Value)
	if err != nil {
		return card.Face{}, consts.ErrorsInputInvalid.Detail("%v", err)
	}
	cardColor := color.Black
	if !rank.IsWild() || c.Color != "" {
		cardColor, err = color.ByName(c.Color)
		if err != nil {
			return card.Face{}, consts.ErrorsInputInvalid.Detail("%v", err)
		}
	}
	face := card.Face{Color: cardColor, Rank: rank}
	if err := face.Validate(); err != nil {
		return card.Face{}, consts.ErrorsInputInvalid.Detail("%v", err)
	}
	return face, nil
}

// ColorName is the wire name of an active or declared color, empty for none.
func ColorName(c color.Color) string {
	if c == color.None {
		return ""
	}
	return c.Name()
}

// ParseColor reads an optional color. The empty string is color.None.
func ParseColor(name string) (color.Color, error) {
	if name == "" {
		return color.None, nil
	}
	c, err := color.ByName(name)
	if err != nil {
		return color.None, consts.ErrorsInputInvalid.Detail("%v", err)
	}
	return c, nil
}

type GameState struct {
	PlayerHand          []Card   `json:"player_hand"`
	DiscardPileTopCard  *Card    `json:"discard_pile_top_card"`
	DeckCardCount       int      `json:"deck_card_count"`
	DiscardCardCount    int      `json:"discard_card_count"`
	CurrentPlayer       string   `json:"current_player"`
	CurrentChosenColor  string   `json:"current_chosen_color"`
	PlayersList         []string `json:"players_list"`
	PlayDirection       string   `json:"play_direction"`
	AwaitingColorChoice bool     `json:"awaiting_color_choice"`
	PendingPenaltyDraw  int      `json:"pending_penalty_draw"`
	OpponentHandCount   int      `json:"opponent_hand_count"`
	Winner              string   `json:"winner,omitempty"`
	Message             string   `json:"message,omitempty"`
}

func NewGameState(snapshot game.Snapshot) GameState {
	players := make([]string, 0, len(snapshot.Seats))
	for _, seat := range snapshot.Seats {
		players = append(players, string(seat))
	}
	return GameState{
		PlayerHand:          NewCards(snapshot.Hand),
		DiscardPileTopCard:  NewCard(snapshot.Top),
		DeckCardCount:       snapshot.DeckCount,
		DiscardCardCount:    snapshot.DiscardCount,
		CurrentPlayer:       string(snapshot.Current),
		CurrentChosenColor:  ColorName(snapshot.ActiveColor),
		PlayersList:         players,
		PlayDirection:       snapshot.Direction.String(),
		AwaitingColorChoice: snapshot.AwaitingColor,
		PendingPenaltyDraw:  snapshot.PendingPenalty,
		OpponentHandCount:   snapshot.OpponentHandCount,
		Winner:              string(snapshot.Winner),
		Message:             snapshot.Narration,
	}
}

// Req is one request on the packet transports. Seat defaults to the human
// seat when empty.
type Req struct {
	Action string `json:"action"`
	Seat   string `json:"seat,omitempty"`
	Card   *Card  `json:"card,omitempty"`
	Color  string `json:"color,omitempty"`
}

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

func SucResp(data interface{}) Resp {
	return Resp{Code: consts.CodeOK, Data: data}
}

func ErrResp(err error) Resp {
	var e consts.Error
	if errors.As(err, &e) {
		return Resp{Code: e.Code, Msg: e.Msg}
	}
	return Resp{Code: consts.CodeInputInvalid, Msg: err.Error()}
}
