package service

import (
	"context"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type Options struct {
	Decider         game.Decider
	DecisionTimeout time.Duration
	HandSize        int
	// NewGame overrides how games are built, mostly for tests.
	NewGame func(game.Options) (*game.Game, error)
}

// Service owns the single running game. Every mutation runs under the write
// lock, including the automated turns it triggers.
type Service struct {
	mu   sync.RWMutex
	game *game.Game
	opts Options
}

func New(opts Options) *Service {
	if opts.NewGame == nil {
		opts.NewGame = game.New
	}
	return &Service{opts: opts}
}

func (s *Service) start(ctx context.Context) error {
	g, err := s.opts.NewGame(game.Options{
		Decider:         s.opts.Decider,
		DecisionTimeout: s.opts.DecisionTimeout,
		HandSize:        s.opts.HandSize,
		Listeners:       []interface{}{eventLogger{}},
	})
	if err != nil {
		log.Errorf("new game failed: %v\n", err)
		return err
	}
	s.game = g
	log.Info("new game started ")
	g.Resume(ctx)
	return nil
}

// GetState returns the view of seat, starting a game when none exists.
func (s *Service) GetState(ctx context.Context, seat game.Seat) (game.Snapshot, error) {
	s.mu.RLock()
	if s.game != nil {
		defer s.mu.RUnlock()
		return s.snapshot(seat)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		if err := s.start(ctx); err != nil {
			return game.Snapshot{}, err
		}
	}
	return s.snapshot(seat)
}

// NewGame discards the running game, if any, and deals a fresh one.
func (s *Service) NewGame(ctx context.Context, seat game.Seat) (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.start(ctx); err != nil {
		return game.Snapshot{}, err
	}
	return s.snapshot(seat)
}

func (s *Service) Draw(ctx context.Context, seat game.Seat) (game.Snapshot, error) {
	return s.mutate(seat, func(g *game.Game) error {
		_, err := g.Draw(seat)
		return err
	})
}

func (s *Service) Play(ctx context.Context, seat game.Seat, face card.Face, declared color.Color) (game.Snapshot, error) {
	return s.mutate(seat, func(g *game.Game) error {
		return g.Play(seat, face, declared)
	})
}

func (s *Service) ChooseColor(ctx context.Context, seat game.Seat, picked color.Color) (game.Snapshot, error) {
	return s.mutate(seat, func(g *game.Game) error {
		return g.ChooseColor(seat, picked)
	})
}

func (s *Service) EndTurn(ctx context.Context, seat game.Seat) (game.Snapshot, error) {
	return s.mutate(seat, func(g *game.Game) error {
		return g.EndTurn(ctx, seat)
	})
}

func (s *Service) mutate(seat game.Seat, operation func(*game.Game) error) (game.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return game.Snapshot{}, consts.ErrorsNotStarted
	}
	if err := operation(s.game); err != nil {
		return game.Snapshot{}, err
	}
	return s.snapshot(seat)
}

func (s *Service) snapshot(seat game.Seat) (game.Snapshot, error) {
	if !s.game.HasSeat(seat) {
		return game.Snapshot{}, consts.ErrorsUnknownSeat.Detail("%q", seat)
	}
	return s.game.Snapshot(seat), nil
}
