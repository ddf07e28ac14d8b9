package model

import (
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const (
	DecisionPlay = "PLAY"
	DecisionDraw = "DRAW"
)

// DecisionRequest is what the external decision service is shown.
type DecisionRequest struct {
	Seat               string `json:"seat"`
	Hand               []Card `json:"hand"`
	PlayableCards      []Card `json:"playable_cards"`
	TopCard            *Card  `json:"top_card"`
	ActiveColor        string `json:"active_color"`
	PendingPenaltyDraw int    `json:"pending_penalty_draw"`
	OpponentHandCount  int    `json:"opponent_hand_count"`
}

func NewDecisionRequest(state game.State) DecisionRequest {
	return DecisionRequest{
		Seat:               string(state.Seat),
		Hand:               NewCards(state.Hand),
		PlayableCards:      NewCards(state.PlayableCards),
		TopCard:            NewCard(state.Top),
		ActiveColor:        ColorName(state.ActiveColor),
		PendingPenaltyDraw: state.PendingPenalty,
		OpponentHandCount:  state.OpponentHandCount,
	}
}

type DecisionResponse struct {
	Action        string `json:"action"`
	Card          *Card  `json:"card,omitempty"`
	DeclaredColor string `json:"declaredColor,omitempty"`
}

// Decision validates the response shape and converts it for the engine.
// Whether the card is held and legal is left to the engine.
func (r DecisionResponse) Decision() (game.Decision, error) {
	switch strings.ToUpper(r.Action) {
	case DecisionDraw:
		return game.DrawDecision{}, nil
	case DecisionPlay:
		if r.Card == nil {
			return nil, consts.ErrorsDecisionInvalid.Detail("PLAY without a card")
		}
		face, err := r.Card.Face()
		if err != nil {
			return nil, consts.ErrorsDecisionInvalid.Detail("%v", err)
		}
		declared, err := ParseColor(r.DeclaredColor)
		if err != nil {
			return nil, consts.ErrorsDecisionInvalid.Detail("%v", err)
		}
		if declared != color.None && !declared.Playable() {
			return nil, consts.ErrorsDecisionInvalid.Detail("%s cannot be declared", declared.Name())
		}
		return game.PlayDecision{Card: face, DeclaredColor: declared}, nil
	default:
		return nil, consts.ErrorsDecisionInvalid.Detail("unknown action %q", r.Action)
	}
}
