package main

import (
	"flag"
	"log"
	"net/http"

	"jungle-engine/config"
	"jungle-engine/server"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	srv := server.NewServer(cfg.Engine.HashMB)
	log.Printf("listening on %s", listen)
	log.Fatal(http.ListenAndServe(listen, srv.Router()))
}
