package game

import "github.com/ratel-online/uno/consts"

// Seat identifies one participant of a game.
type Seat string

// SeatKind tells the turn engine whether a seat acts through the public
// operations or through the Decider.
type SeatKind int

const (
	Human SeatKind = iota
	Automated
)

func (k SeatKind) String() string {
	if k == Automated {
		return "automated"
	}
	return "human"
}

type SeatConfig struct {
	Seat Seat
	Kind SeatKind
}

// DefaultSeats is the human seat followed by one automated seat.
func DefaultSeats() []SeatConfig {
	return []SeatConfig{
		{Seat: consts.SeatHuman, Kind: Human},
		{Seat: consts.SeatBot, Kind: Automated},
	}
}
