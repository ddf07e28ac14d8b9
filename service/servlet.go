package service

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/model"
	"github.com/ratel-online/uno/uno/game"
)

type servlet func(ctx context.Context, s *Service, seat game.Seat, req model.Req) (game.Snapshot, error)

var servlets = map[string]servlet{
	consts.ActionState: getState,
	consts.ActionNew:   newGame,
	consts.ActionDraw:  drawCard,
	consts.ActionPlay:  playCard,
	consts.ActionColor: chooseColor,
	consts.ActionEnd:   endTurn,
}

// Handle runs one request and wraps the resulting game state or error.
func (s *Service) Handle(ctx context.Context, req model.Req) model.Resp {
	handler, ok := servlets[req.Action]
	if !ok {
		return model.ErrResp(consts.ErrorsInputInvalid.Detail("unknown action %q", req.Action))
	}
	seat := game.Seat(req.Seat)
	if seat == "" {
		seat = consts.SeatHuman
	}
	snapshot, err := handler(ctx, s, seat, req)
	if err != nil {
		log.Infof("%s by %s rejected: %v\n", req.Action, seat, err)
		return model.ErrResp(err)
	}
	return model.SucResp(model.NewGameState(snapshot))
}

func getState(ctx context.Context, s *Service, seat game.Seat, _ model.Req) (game.Snapshot, error) {
	return s.GetState(ctx, seat)
}

func newGame(ctx context.Context, s *Service, seat game.Seat, _ model.Req) (game.Snapshot, error) {
	return s.NewGame(ctx, seat)
}

func drawCard(ctx context.Context, s *Service, seat game.Seat, _ model.Req) (game.Snapshot, error) {
	return s.Draw(ctx, seat)
}

func playCard(ctx context.Context, s *Service, seat game.Seat, req model.Req) (game.Snapshot, error) {
	if req.Card == nil {
		return game.Snapshot{}, consts.ErrorsInputInvalid.Detail("card is required")
	}
	face, err := req.Card.Face()
	if err != nil {
		return game.Snapshot{}, err
	}
	declared, err := model.ParseColor(req.Color)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.Play(ctx, seat, face, declared)
}

func chooseColor(ctx context.Context, s *Service, seat game.Seat, req model.Req) (game.Snapshot, error) {
	picked, err := model.ParseColor(req.Color)
	if err != nil {
		return game.Snapshot{}, err
	}
	return s.ChooseColor(ctx, seat, picked)
}

func endTurn(ctx context.Context, s *Service, seat game.Seat, _ model.Req) (game.Snapshot, error) {
	return s.EndTurn(ctx, seat)
}
