package network

import (
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/model"
)

var sessions = hashmap.New()
var seats = hashmap.New()

// claims makes the read and write of a seat claim one step.
var claims sync.Mutex

func online(session *model.Session) {
	sessions.Set(session.ID, session)
}

func offline(session *model.Session) {
	claims.Lock()
	defer claims.Unlock()
	releaseSeat(session)
	sessions.Del(session.ID)
}

// claimSeat binds seat to session. A seat is driven by at most one live
// connection; a session moving to another seat gives up the old one.
func claimSeat(session *model.Session, seat string) error {
	claims.Lock()
	defer claims.Unlock()
	if v, ok := seats.Get(seat); ok && v.(int64) != session.ID {
		return consts.ErrorsSeatTaken.Detail("%s is held by connection %d", seat, v.(int64))
	}
	if session.Seat != seat {
		releaseSeat(session)
	}
	seats.Set(seat, session.ID)
	session.Seat = seat
	return nil
}

func releaseSeat(session *model.Session) {
	if session.Seat == "" {
		return
	}
	if v, ok := seats.Get(session.Seat); ok && v.(int64) == session.ID {
		seats.Del(session.Seat)
	}
	session.Seat = ""
}
