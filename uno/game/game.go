package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

const openingWildColor = color.Red

type Options struct {
	// Seats defaults to DefaultSeats. Exactly two seats are supported.
	Seats    []SeatConfig
	HandSize int
	Decider  Decider
	// DecisionTimeout bounds every Decider call.
	DecisionTimeout time.Duration
	Rand            *rand.Rand
	// Deck, when set, is dealt from in the given order without shuffling.
	Deck []card.Card
	// Listeners are subscribed to the game's event bus before dealing.
	Listeners []interface{}
}

// Game is a single UNO game. It is not safe for concurrent use.
type Game struct {
	seats *Cycler
	kinds map[Seat]SeatKind
	hands map[Seat]*Hand
	deck  *Deck
	pile  *Pile

	activeColor    color.Color
	pendingPenalty int
	penaltyOwed    bool
	awaitingColor  bool
	skipNext       bool
	winner         Seat

	decider         Decider
	decisionTimeout time.Duration
	rng             *rand.Rand
	events          *event.Bus
	narrator        *narrator
}

func New(opts Options) (*Game, error) {
	if opts.Seats == nil {
		opts.Seats = DefaultSeats()
	}
	if opts.HandSize <= 0 {
		opts.HandSize = consts.HandSize
	}
	if opts.DecisionTimeout <= 0 {
		opts.DecisionTimeout = consts.DecisionTimeout
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(opts.Seats) != 2 {
		return nil, consts.ErrorsGamePlayersInvalid.Detail("want 2 seats, got %d", len(opts.Seats))
	}

	g := &Game{
		kinds:           make(map[Seat]SeatKind, len(opts.Seats)),
		hands:           make(map[Seat]*Hand, len(opts.Seats)),
		pile:            NewPile(),
		decider:         opts.Decider,
		decisionTimeout: opts.DecisionTimeout,
		rng:             opts.Rand,
		events:          event.NewBus(),
	}
	seats := make([]Seat, 0, len(opts.Seats))
	for _, seat := range opts.Seats {
		if seat.Seat == "" {
			return nil, consts.ErrorsGamePlayersInvalid.Detail("empty seat name")
		}
		if _, ok := g.kinds[seat.Seat]; ok {
			return nil, consts.ErrorsGamePlayersInvalid.Detail("duplicate seat %s", seat.Seat)
		}
		g.kinds[seat.Seat] = seat.Kind
		g.hands[seat.Seat] = NewHand()
		seats = append(seats, seat.Seat)
	}
	g.seats = NewCycler(seats)

	if opts.Deck != nil {
		g.deck = NewDeck(opts.Deck)
	} else {
		g.deck = NewStandardDeck(g.rng)
	}
	if needed := len(seats)*opts.HandSize + 1; g.deck.Len() < needed {
		return nil, consts.ErrorsDeckInvalid.Detail("need at least %d cards, got %d", needed, g.deck.Len())
	}

	g.narrator = newNarrator(g.kinds)
	g.events.AddListener(g.narrator)
	for _, listener := range opts.Listeners {
		g.events.AddListener(listener)
	}

	g.dealStartingCards(opts.HandSize)
	if err := g.playFirstCard(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) dealStartingCards(handSize int) {
	g.seats.ForEach(func(seat Seat) {
		cards := g.deck.Draw(handSize)
		g.hands[seat].AddCards(cards)
	})
}

// playFirstCard turns the opening discard. A wildDrawFour goes back into the
// deck until something else comes up.
func (g *Game) playFirstCard() error {
	for {
		firstCard, ok := g.deck.DrawOne()
		if !ok {
			return consts.ErrorsDeckInvalid.Detail("no opening card")
		}
		if firstCard.Rank() != card.WildDrawFour {
			g.pile.Add(firstCard)
			g.activeColor = firstCard.Color()
			if firstCard.IsWild() {
				g.activeColor = openingWildColor
			}
			g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
			return nil
		}
		if onlyWildDrawFours(g.deck.cards) {
			return consts.ErrorsDeckInvalid.Detail("no valid opening card")
		}
		g.deck.Refill([]card.Card{firstCard}, g.rng)
	}
}

func onlyWildDrawFours(cards []card.Card) bool {
	for _, c := range cards {
		if c.Rank() != card.WildDrawFour {
			return false
		}
	}
	return true
}

func (g *Game) HasSeat(seat Seat) bool {
	_, ok := g.kinds[seat]
	return ok
}

func (g *Game) Current() Seat {
	return g.seats.Current()
}

func (g *Game) Winner() Seat {
	return g.winner
}

func (g *Game) checkTurn(seat Seat) error {
	if g.winner != "" {
		return consts.ErrorsGameOver.Detail("%s already won", g.winner)
	}
	if !g.HasSeat(seat) {
		return consts.ErrorsUnknownSeat.Detail("%q", seat)
	}
	if seat != g.seats.Current() {
		return consts.ErrorsOutOfTurn.Detail("it is %s's turn", g.seats.Current())
	}
	return nil
}

// Draw gives seat the pending penalty, or a single card when none is
// pending. Fewer cards come back when the deck and discard pile run dry.
func (g *Game) Draw(seat Seat) ([]card.Card, error) {
	if err := g.checkTurn(seat); err != nil {
		return nil, err
	}
	if g.awaitingColor {
		return nil, consts.ErrorsBlockedByPendingChoice.Detail("choose a color before drawing")
	}
	return g.draw(seat), nil
}

func (g *Game) draw(seat Seat) []card.Card {
	amount := 1
	if g.pendingPenalty > 0 {
		amount = g.pendingPenalty
		g.pendingPenalty = 0
		g.penaltyOwed = false
	}
	cards := g.drawCards(amount)
	g.hands[seat].AddCards(cards)
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: string(seat),
		Cards:      cards,
		Requested:  amount,
	})
	return cards
}

func (g *Game) drawCards(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for len(cards) < amount {
		if g.deck.Len() == 0 && !g.reshuffle() {
			break
		}
		cards = append(cards, g.deck.Draw(amount-len(cards))...)
	}
	return cards
}

// reshuffle moves every discard below the top back into the deck.
func (g *Game) reshuffle() bool {
	under := g.pile.TakeUnderTop()
	if len(under) == 0 {
		return false
	}
	g.deck.Refill(under, g.rng)
	g.events.DeckReshuffled.Emit(event.DeckReshuffledPayload{Count: len(under)})
	return true
}

// Play puts one card showing face from seat's hand on the discard pile.
// declared names the color for a wild card, or resolves a color choice left
// pending by an earlier wild. Anything that is not a playable color counts
// as no declaration.
func (g *Game) Play(seat Seat, face card.Face, declared color.Color) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if !declared.Playable() {
		declared = color.None
	}
	if g.awaitingColor && declared == color.None {
		return consts.ErrorsBlockedByPendingChoice.Detail("choose a color before playing")
	}
	return g.play(seat, face, declared)
}

func (g *Game) play(seat Seat, face card.Face, declared color.Color) error {
	hand := g.hands[seat]
	playedCard, ok := hand.Find(face)
	if !ok {
		return consts.ErrorsIllegalMove.Detail("%s is not in %s's hand", face.Label(), seat)
	}
	activeColor := g.activeColor
	if g.awaitingColor {
		activeColor = declared
	}
	top := g.pile.Top()
	if !Playable(playedCard, top, activeColor) {
		return consts.ErrorsIllegalMove.Detail("%s cannot be played on %s", face.Label(), top.Face().Label())
	}

	if g.awaitingColor {
		g.pickColor(seat, declared)
	}
	hand.RemoveCard(playedCard.ID())
	g.pile.Add(playedCard)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: string(seat),
		Card:       playedCard,
	})
	g.performCardActions(seat, playedCard, declared)

	if hand.Empty() {
		// A finished game never waits for a color.
		g.awaitingColor = false
		g.winner = seat
		g.events.GameWon.Emit(event.GameWonPayload{PlayerName: string(seat)})
	}
	return nil
}

func (g *Game) performCardActions(seat Seat, playedCard card.Card, declared color.Color) {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction.Kind {
		case action.DrawCards:
			g.pendingPenalty += cardAction.Amount
			g.penaltyOwed = false
		case action.SkipTurn:
			g.skipNext = true
		case action.ReverseTurns:
			g.seats.Reverse()
			if g.seats.Len() == 2 {
				g.skipNext = true
			}
		case action.PickColor:
			if declared.Playable() {
				g.pickColor(seat, declared)
			} else {
				g.activeColor = color.None
				g.awaitingColor = true
			}
		}
	}
	if !playedCard.IsWild() {
		g.activeColor = playedCard.Color()
		g.awaitingColor = false
	}
}

func (g *Game) pickColor(seat Seat, picked color.Color) {
	g.activeColor = picked
	g.awaitingColor = false
	g.events.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: string(seat),
		Color:      picked,
	})
}

// ChooseColor resolves the color choice left pending by a wild card.
func (g *Game) ChooseColor(seat Seat, picked color.Color) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if !g.awaitingColor {
		return consts.ErrorsIllegalMove.Detail("no color choice is pending")
	}
	if !picked.Playable() {
		return consts.ErrorsIllegalMove.Detail("%s cannot be chosen", picked.Name())
	}
	g.pickColor(seat, picked)
	return nil
}

// EndTurn passes the turn on and plays every automated turn that follows,
// returning once a human seat holds the turn or the game is won.
func (g *Game) EndTurn(ctx context.Context, seat Seat) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	if g.awaitingColor {
		return consts.ErrorsBlockedByPendingChoice.Detail("choose a color before ending the turn")
	}
	if g.penaltyOwed && g.pendingPenalty > 0 {
		return consts.ErrorsBlockedByPendingChoice.Detail("draw the %d penalty card(s) first", g.pendingPenalty)
	}
	g.advance()
	g.playAutomatedTurns(ctx)
	return nil
}

// Resume plays automated turns when an automated seat holds the turn.
func (g *Game) Resume(ctx context.Context) {
	g.playAutomatedTurns(ctx)
}

func (g *Game) advance() {
	previous := g.seats.Current()
	g.seats.Next()
	if g.skipNext {
		g.skipNext = false
		g.seats.Next()
	}
	g.penaltyOwed = g.pendingPenalty > 0
	g.events.TurnEnded.Emit(event.TurnEndedPayload{
		PlayerName: string(previous),
		NextPlayer: string(g.seats.Current()),
	})
}
