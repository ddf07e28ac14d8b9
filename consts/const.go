package consts

import (
	"fmt"
	"time"
)

const (
	SeatHuman = "human"
	SeatBot   = "bot"

	HandSize = 7

	DecisionTimeout = 3 * time.Second

	StrategyNaive  = "naive"
	StrategyGood   = "good"
	StrategyRemote = "remote"
)

// Action names accepted by the request dispatcher.
const (
	ActionState = "state"
	ActionNew   = "new"
	ActionDraw  = "draw"
	ActionPlay  = "play"
	ActionColor = "color"
	ActionEnd   = "end"
)

const (
	CodeOK = iota
	CodeNotStarted
	CodeOutOfTurn
	CodeIllegalMove
	CodeBlockedByPendingChoice
	CodeGameOver
	CodeInputInvalid
	CodeUnknownSeat
	CodeSeatTaken
	CodeGamePlayersInvalid
	CodeDeckInvalid
	CodeDecisionInvalid
	CodeTimeout
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

// Is reports whether target carries the same code, so detailed copies made
// with Detail still match their sentinel.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

// Detail returns a copy of e with context appended to the message.
func (e Error) Detail(format string, args ...interface{}) Error {
	e.Msg = e.Msg + fmt.Sprintf(format, args...)
	return e
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsNotStarted             = NewErr(CodeNotStarted, false, "Game not started. ")
	ErrorsOutOfTurn              = NewErr(CodeOutOfTurn, false, "Not your turn. ")
	ErrorsIllegalMove            = NewErr(CodeIllegalMove, false, "Illegal move. ")
	ErrorsBlockedByPendingChoice = NewErr(CodeBlockedByPendingChoice, false, "Blocked by pending choice. ")
	ErrorsGameOver               = NewErr(CodeGameOver, false, "Game over. ")
	ErrorsInputInvalid           = NewErr(CodeInputInvalid, false, "Input invalid. ")
	ErrorsUnknownSeat            = NewErr(CodeUnknownSeat, false, "Unknown seat. ")
	ErrorsSeatTaken              = NewErr(CodeSeatTaken, true, "Seat is driven by another connection. ")
	ErrorsGamePlayersInvalid     = NewErr(CodeGamePlayersInvalid, true, "Game players invalid. ")
	ErrorsDeckInvalid            = NewErr(CodeDeckInvalid, true, "Deck invalid. ")
	ErrorsDecisionInvalid        = NewErr(CodeDecisionInvalid, false, "Decision invalid. ")
	ErrorsTimeout                = NewErr(CodeTimeout, false, "Timeout. ")
)
