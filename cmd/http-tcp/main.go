package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	httptcp "github.com/vaibhavm18/http-tcp"
	"github.com/vaibhavm18/http-tcp/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file. Defaults are used if empty")
		addr       = flag.String("addr", "", "address to listen on. Overrides the config value")
	)
	flag.Parse()

	cfg := config.Default()
	if len(*configPath) > 0 {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	if len(*addr) > 0 {
		cfg.NET.Addr = *addr
	}

	app := httptcp.New(cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	app.NotifyOnStart(func() {
		go func() {
			<-stop
			log.Print("shutting down, waiting for connections to be served")
			app.Stop()
		}()
	})

	if err := app.Serve(); err != nil {
		log.Fatal(err)
	}
}
