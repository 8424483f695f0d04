package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	resolvercmd "github.com/emberlight/chronicle/internal/cmd/resolver"
)

func main() {
	cfg, err := resolvercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[RESOLVER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := resolvercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
