// Package console plays a game in the terminal against the automated seat.
package console

import (
	"context"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

type choice int

const (
	choiceDraw choice = iota + 1
	choiceEnd
)

type Console struct {
	svc  *service.Service
	seat game.Seat
}

func New(svc *service.Service) *Console {
	return &Console{svc: svc, seat: consts.SeatHuman}
}

// Run deals a new game and plays it until someone wins or input ends.
func (c *Console) Run(ctx context.Context) error {
	ui.Print(msg.Painted.Welcome())
	snapshot, err := c.svc.NewGame(ctx, c.seat)
	if err != nil {
		return err
	}
	ui.Print(msg.Painted.FirstCardPlayed(snapshot.Top))
	ui.Print(narrated(snapshot.Narration))

	for snapshot.Winner == "" {
		next, err := c.turn(ctx, snapshot)
		if err != nil {
			var e consts.Error
			if !asGameError(err, &e) {
				return err
			}
			ui.Println(e.Error())
			continue
		}
		snapshot = next
	}
	ui.Print(msg.Painted.WinnerFound(string(snapshot.Winner)))
	return nil
}

// turn performs one action of the human seat.
func (c *Console) turn(ctx context.Context, snapshot game.Snapshot) (game.Snapshot, error) {
	if snapshot.AwaitingColor {
		picked, err := ui.PromptColor()
		if err != nil {
			return snapshot, err
		}
		return c.svc.ChooseColor(ctx, c.seat, picked)
	}
	if owesPenalty(snapshot) && len(playableCards(snapshot)) == 0 {
		return c.draw(ctx, snapshot)
	}

	ui.Print(msg.Painted.HumanPlayerTurnStarted(string(c.seat)))
	ui.Println(stateOf(snapshot))
	selected, err := ui.PromptSelection("Select a card to play or an action:", options(snapshot))
	if err != nil {
		return snapshot, err
	}
	switch selected := selected.(type) {
	case card.Card:
		declared, err := c.declare(selected)
		if err != nil {
			return snapshot, err
		}
		return c.svc.Play(ctx, c.seat, selected.Face(), declared)
	case choice:
		if selected == choiceDraw {
			return c.draw(ctx, snapshot)
		}
		next, err := c.svc.EndTurn(ctx, c.seat)
		if err == nil {
			ui.Print(narrated(next.Narration))
		}
		return next, err
	}
	return snapshot, nil
}

func (c *Console) draw(ctx context.Context, snapshot game.Snapshot) (game.Snapshot, error) {
	next, err := c.svc.Draw(ctx, c.seat)
	if err == nil {
		ui.Print(msg.Painted.HumanPlayerDrewCards(newCards(snapshot.Hand, next.Hand)))
	}
	return next, err
}
