package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// State is what an automated seat gets to see when it is asked to decide.
type State struct {
	Seat              Seat
	Hand              []card.Card
	PlayableCards     []card.Card
	Top               card.Card
	ActiveColor       color.Color
	PendingPenalty    int
	OpponentHandCount int
	PlayerSequence    []Seat
	PlayerHandCounts  map[Seat]int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s (active color %s)", s.Top, s.ActiveColor.Paint(s.ActiveColor.Name())))

	var playerStatuses []string
	for _, seat := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", seat, s.PlayerHandCounts[seat])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))
	if s.PendingPenalty > 0 {
		lines = append(lines, fmt.Sprintf("Pending penalty: %d card(s)", s.PendingPenalty))
	}

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.Hand))

	return strings.Join(lines, "\n")
}

// Snapshot is the full public view of a game from one seat.
type Snapshot struct {
	Seat              Seat
	Hand              []card.Card
	Top               card.Card
	ActiveColor       color.Color
	DeckCount         int
	DiscardCount      int
	Current           Seat
	Seats             []Seat
	Direction         Direction
	AwaitingColor     bool
	PendingPenalty    int
	PenaltyOwed       bool
	Winner            Seat
	OpponentHandCount int
	// Narration describes what the automated seats did since the last time
	// a human seat was handed the turn.
	Narration string
}

func (g *Game) ExtractState(seat Seat) State {
	playerSequence := g.seats.Elements()
	playerHandCounts := make(map[Seat]int, len(playerSequence))
	for _, other := range playerSequence {
		playerHandCounts[other] = g.hands[other].Size()
	}

	hand := g.hands[seat]
	top := g.pile.Top()
	return State{
		Seat:              seat,
		Hand:              hand.Cards(),
		PlayableCards:     hand.PlayableCards(top, g.activeColor),
		Top:               top,
		ActiveColor:       g.activeColor,
		PendingPenalty:    g.pendingPenalty,
		OpponentHandCount: g.opponentHandCount(seat),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  playerHandCounts,
	}
}

// Snapshot returns the view of seat. An unknown seat gets an empty hand.
func (g *Game) Snapshot(seat Seat) Snapshot {
	var hand []card.Card
	if h, ok := g.hands[seat]; ok {
		hand = h.Cards()
	}
	return Snapshot{
		Seat:              seat,
		Hand:              hand,
		Top:               g.pile.Top(),
		ActiveColor:       g.activeColor,
		DeckCount:         g.deck.Len(),
		DiscardCount:      g.pile.Len(),
		Current:           g.seats.Current(),
		Seats:             g.seats.Elements(),
		Direction:         g.seats.Direction(),
		AwaitingColor:     g.awaitingColor,
		PendingPenalty:    g.pendingPenalty,
		PenaltyOwed:       g.penaltyOwed,
		Winner:            g.winner,
		OpponentHandCount: g.opponentHandCount(seat),
		Narration:         g.narrator.text(),
	}
}

func (g *Game) opponentHandCount(seat Seat) int {
	count := 0
	g.seats.ForEach(func(other Seat) {
		if other != seat {
			count += g.hands[other].Size()
		}
	})
	return count
}
