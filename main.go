package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/network"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/console"
	"github.com/ratel-online/uno/uno/player"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	terminal := flag.Bool("console", false, "play in the terminal instead of serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	decider, err := player.NewDecider(cfg.Strategy, cfg.DecisionURL, cfg.DecisionTimeout)
	if err != nil {
		log.Error(err)
		return
	}
	svc := service.New(service.Options{
		Decider:         decider,
		DecisionTimeout: cfg.DecisionTimeout,
		HandSize:        cfg.HandSize,
	})

	if *terminal {
		if err := console.New(svc).Run(context.Background()); err != nil {
			log.Error(err)
		}
		return
	}

	servers := []network.Network{
		network.NewTcpServer(cfg.TcpAddr, svc),
		network.NewWebsocketServer(cfg.WsAddr, svc),
	}
	for _, server := range servers {
		server := server
		async.Async(func() {
			log.Error(server.Serve())
		})
	}
	log.Error(network.NewHttpServer(cfg.HttpAddr, svc).Serve())
}
