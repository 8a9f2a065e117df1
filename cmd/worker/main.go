package main

import (
	"FileTransfer/config"
	"FileTransfer/internal/worker"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	config.InitConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("notify worker started")
	if err := worker.RunNotifyWorker(ctx); err != nil {
		log.Fatalf("notify worker stopped: %v", err)
	}
}
