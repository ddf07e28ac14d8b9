package model

import (
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
)

// Session is one packet connection and the seat it acts for.
type Session struct {
	ID   int64
	Seat string

	conn *network.Conn
}

func NewSession(conn *network.Conn) *Session {
	return &Session{ID: conn.ID(), conn: conn}
}

func (s *Session) Read() (*protocol.Packet, error) {
	return s.conn.Read()
}

func (s *Session) Write(resp Resp) error {
	return s.conn.Write(protocol.Packet{
		Body: json.Marshal(resp),
	})
}

func (s *Session) WriteError(err error) error {
	return s.Write(ErrResp(err))
}
