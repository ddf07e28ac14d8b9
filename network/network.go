package network

import (
	"context"
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/model"
	"github.com/ratel-online/uno/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// handle answers every request packet on rwc with one response packet until
// the connection fails or is rejected.
func handle(rwc protocol.ReadWriteCloser, svc *service.Service) error {
	c := network.Wrapper(rwc)
	session := model.NewSession(c)
	online(session)
	defer func() {
		offline(session)
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Infof("new connection %d\n", session.ID)

	ctx := context.Background()
	for {
		packet, err := session.Read()
		if err != nil {
			return err
		}
		req := model.Req{}
		if err := packet.Unmarshal(&req); err != nil {
			if err := session.WriteError(consts.ErrorsInputInvalid.Detail("%v", err)); err != nil {
				return err
			}
			continue
		}
		if req.Seat == "" {
			req.Seat = consts.SeatHuman
		}
		if req.Action != consts.ActionState {
			if err := claimSeat(session, req.Seat); err != nil {
				if werr := session.WriteError(err); werr != nil {
					return werr
				}
				var e consts.Error
				if errors.As(err, &e) && e.Exit {
					return err
				}
				continue
			}
		}
		if err := session.Write(svc.Handle(ctx, req)); err != nil {
			return err
		}
	}
}
