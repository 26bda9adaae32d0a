package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ospfwatch/internal/cli"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
